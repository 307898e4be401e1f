package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"sync"

	"outings-server/models"
)

// MockRedisClient simulates a Redis client for testing purposes.
// Radius queries use real haversine distances so DAO tests exercise the
// same containment semantics as the GEORADIUS path.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data per geo key
	mu      sync.RWMutex
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON adds a geolocation member with its JSON record.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lng}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns JSON records for members whose
// great-circle distance from the center is within radiusMeters.
func (m *MockRedisClient) GetLocationsWithinRadius(geoKey string, lat, lng, radiusMeters float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[geoKey]
	if !exists {
		return nil, nil
	}

	center := models.GeoPoint{Lat: lat, Lng: lng}
	memberKeys := make([]string, 0, len(geoMembers))
	for memberKey := range geoMembers {
		memberKeys = append(memberKeys, memberKey)
	}
	sort.Strings(memberKeys)

	var results []string
	for _, memberKey := range memberKeys {
		loc := geoMembers[memberKey]
		dist := models.HaversineMeters(center, models.GeoPoint{Lat: loc.Latitude, Lng: loc.Longitude})
		if dist > radiusMeters {
			continue
		}
		if data, ok := m.data[memberKey]; ok {
			results = append(results, data)
		}
	}
	return results, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}

// Keys returns keys matching a glob-style pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.data {
		matched, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %v", pattern, err)
		}
		if matched {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Del removes a key and any geo member referencing it.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	for _, members := range m.geoData {
		delete(members, key)
	}
	return nil
}
