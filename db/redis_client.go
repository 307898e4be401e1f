package db

import "context"

// RedisClient defines the storage operations the catalog DAO needs.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(geoKey string, lat, lng, radiusMeters float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
