package models

import (
	"fmt"
	"math"
)

const EARTH_RADIUS_METERS = 6371000.0

// Linear unit conversions for radii supplied by callers.
const (
	METERS_PER_KILOMETER = 1000.0
	METERS_PER_MILE      = 1609.344
)

// GeoPoint is an immutable spherical coordinate used both for venue
// locations and for search-area centers.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewGeoPoint validates latitude/longitude ranges.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, fmt.Errorf("latitude out of range [-90, 90]: %f", lat)
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, fmt.Errorf("longitude out of range [-180, 180]: %f", lng)
	}
	return GeoPoint{Lat: lat, Lng: lng}, nil
}

func (p GeoPoint) ToString() string {
	return fmt.Sprintf("GeoPoint(lat=%f, lng=%f)", p.Lat, p.Lng)
}

// GeoArea is a circular search region: a center plus a radius stored in
// meters regardless of the unit the caller supplied.
type GeoArea struct {
	Center       GeoPoint `json:"center"`
	RadiusMeters float64  `json:"radius_meters"`
}

// NewGeoArea rejects non-positive radii up front.
func NewGeoArea(center GeoPoint, radiusMeters float64) (GeoArea, error) {
	if radiusMeters <= 0 {
		return GeoArea{}, fmt.Errorf("search area radius must be > 0 meters, got %f", radiusMeters)
	}
	return GeoArea{Center: center, RadiusMeters: radiusMeters}, nil
}

// NewGeoAreaMiles builds a GeoArea from a radius expressed in miles.
func NewGeoAreaMiles(center GeoPoint, radiusMiles float64) (GeoArea, error) {
	return NewGeoArea(center, radiusMiles*METERS_PER_MILE)
}

// NewGeoAreaKilometers builds a GeoArea from a radius expressed in kilometers.
func NewGeoAreaKilometers(center GeoPoint, radiusKm float64) (GeoArea, error) {
	return NewGeoArea(center, radiusKm*METERS_PER_KILOMETER)
}

// Contains reports whether the point lies on or inside the area boundary.
func (a GeoArea) Contains(p GeoPoint) bool {
	return HaversineMeters(a.Center, p) <= a.RadiusMeters
}

// HaversineMeters computes the great-circle distance between two points
// on a spherical earth.
func HaversineMeters(a, b GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EARTH_RADIUS_METERS * math.Asin(math.Sqrt(h))
}

// WithinAny reports whether the point falls inside at least one of the
// given areas. Multiple areas compose with OR semantics so a caller can
// search several disjoint regions in one query.
func WithinAny(areas []GeoArea, p GeoPoint) bool {
	for _, a := range areas {
		if a.Contains(p) {
			return true
		}
	}
	return false
}
