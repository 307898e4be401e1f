package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient backs the catalog with Redis: GEOADD/GEORADIUS for the
// spatial index plus plain keys holding each member's JSON record.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an already-configured Redis client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// AddLocationWithJSON stores a geolocation member along with its JSON record.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lng,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation: %v", err)
	}

	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %v", err)
	}

	return nil
}

// GetLocationsWithinRadius finds all members within radiusMeters of the
// center and returns their JSON records.
func (r *GeoRedisClient) GetLocationsWithinRadius(geoKey string, lat, lng, radiusMeters float64) ([]string, error) {
	ctx := r.ctx
	results, err := r.client.GeoRadius(ctx, geoKey, lng, lat, &redis.GeoRadiusQuery{
		Radius:      radiusMeters,
		Unit:        "m",
		WithCoord:   false,
		WithDist:    false,
		WithGeoHash: false,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby locations: %v", err)
	}

	var objects []string
	for _, loc := range results {
		data, err := r.client.Get(ctx, loc.Name).Result()
		if err != nil {
			log.Printf("[GeoRedisClient] Skipping member %s due to error: %v", loc.Name, err)
			continue
		}
		objects = append(objects, data)
	}

	return objects, nil
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
