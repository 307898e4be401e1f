// Package catalog provides the in-process activity catalog: an R-tree
// spatial index over bookable entities, rebuilt wholesale on each
// ingest and read-only between rebuilds.
package catalog

import (
	"math"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	"outings-server/models"
)

const (
	tolerance   = 0.01
	minChildren = 25
	maxChildren = 50
	dimensions  = 2
)

// spatialEntry wraps a Bookable for R-tree indexing.
type spatialEntry struct {
	item models.Bookable
	rect *rtreego.Rect
}

func (se *spatialEntry) Bounds() *rtreego.Rect {
	return se.rect
}

// MemoryCatalog is a thread-safe in-memory catalog with an R-tree geo
// index. Searches never mutate it; ingest swaps entries under the lock.
type MemoryCatalog struct {
	mu      sync.RWMutex
	tree    *rtreego.Rtree
	entries map[string]*spatialEntry
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		tree:    rtreego.NewTree(dimensions, minChildren, maxChildren),
		entries: make(map[string]*spatialEntry),
	}
}

// Add inserts or replaces entities by id.
func (c *MemoryCatalog) Add(items ...models.Bookable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		c.addLocked(item)
	}
}

// ReplaceAll swaps the whole catalog for a fresh snapshot.
func (c *MemoryCatalog) ReplaceAll(items []models.Bookable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
	c.entries = make(map[string]*spatialEntry, len(items))
	for _, item := range items {
		c.addLocked(item)
	}
}

func (c *MemoryCatalog) addLocked(item models.Bookable) {
	if prev, exists := c.entries[item.BookableID()]; exists {
		c.tree.Delete(prev)
	}
	coords := item.Coordinates()
	point := rtreego.Point{coords.Lat, coords.Lng}
	entry := &spatialEntry{item: item, rect: point.ToRect(tolerance)}
	c.entries[item.BookableID()] = entry
	c.tree.Insert(entry)
}

// Size returns the number of indexed entities.
func (c *MemoryCatalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// All returns every entity, ascending by id.
func (c *MemoryCatalog) All() ([]models.Bookable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.Bookable, 0, len(c.entries))
	for _, e := range c.entries {
		items = append(items, e.item)
	}
	sortByID(items)
	return items, nil
}

// WithinAreas returns entities inside at least one of the areas,
// ascending by id. The R-tree narrows each area to a bounding box, then
// exact haversine containment filters the box corners back out.
func (c *MemoryCatalog) WithinAreas(areas []models.GeoArea) ([]models.Bookable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	var items []models.Bookable
	for _, area := range areas {
		bounds, err := boundingRect(area)
		if err != nil {
			return nil, err
		}
		for _, result := range c.tree.SearchIntersect(bounds) {
			entry, ok := result.(*spatialEntry)
			if !ok {
				continue
			}
			id := entry.item.BookableID()
			if _, dup := seen[id]; dup {
				continue
			}
			if area.Contains(entry.item.Coordinates()) {
				seen[id] = struct{}{}
				items = append(items, entry.item)
			}
		}
	}
	sortByID(items)
	return items, nil
}

// boundingRect over-approximates the circular area in degree space.
func boundingRect(area models.GeoArea) (*rtreego.Rect, error) {
	deg := (area.RadiusMeters / models.EARTH_RADIUS_METERS) * (180 / math.Pi)
	// Widen longitude away from the equator so the box still covers the circle.
	lngDeg := deg
	if cos := math.Cos(area.Center.Lat * math.Pi / 180); cos > 0.01 {
		lngDeg = deg / cos
	}
	return rtreego.NewRect(
		rtreego.Point{area.Center.Lat - deg, area.Center.Lng - lngDeg},
		[]float64{2 * deg, 2 * lngDeg},
	)
}

func sortByID(items []models.Bookable) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].BookableID() < items[j].BookableID()
	})
}
