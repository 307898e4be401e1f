package redis

import (
	"encoding/json"
	"fmt"
	"sort"

	"outings-server/db"
	"outings-server/models"
)

const CATALOG_GEO_KEY_V1 = "catalog_geo_v1"
const CATALOG_RECORD_MEMBER_FORMAT_V1 = "catalog_record_v1:%s"

// catalogRecord tags the stored JSON so activities and one-off events
// round-trip through the same geo set.
type catalogRecord struct {
	Kind     string           `json:"kind"` // "activity" | "event"
	Activity *models.Activity `json:"activity,omitempty"`
	Event    *models.Event    `json:"event,omitempty"`
}

func (rec catalogRecord) bookable() (models.Bookable, error) {
	switch rec.Kind {
	case "activity":
		if rec.Activity == nil {
			return nil, fmt.Errorf("activity record missing payload")
		}
		return rec.Activity, nil
	case "event":
		if rec.Event == nil {
			return nil, fmt.Errorf("event record missing payload")
		}
		return rec.Event, nil
	default:
		return nil, fmt.Errorf("unknown catalog record kind %q", rec.Kind)
	}
}

// RedisCatalogDAO persists the bookable catalog in Redis: one GEOADD
// member per entity plus a JSON record keyed by id. It serves the geo
// dimension of searches as a radius pushdown.
type RedisCatalogDAO struct {
	client db.RedisClient
}

// NewRedisCatalogDAO initializes a RedisCatalogDAO with the Redis client.
func NewRedisCatalogDAO(client db.RedisClient) *RedisCatalogDAO {
	return &RedisCatalogDAO{client: client}
}

// UpsertActivity stores the activity as a geolocation member with its JSON record.
func (dao *RedisCatalogDAO) UpsertActivity(a *models.Activity) error {
	return dao.upsert(a.ID, a.Location, catalogRecord{Kind: "activity", Activity: a})
}

// UpsertEvent stores the one-off event as a geolocation member with its JSON record.
func (dao *RedisCatalogDAO) UpsertEvent(e *models.Event) error {
	return dao.upsert(e.ID, e.Location, catalogRecord{Kind: "event", Event: e})
}

func (dao *RedisCatalogDAO) upsert(id string, location models.GeoPoint, rec catalogRecord) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(CATALOG_RECORD_MEMBER_FORMAT_V1, id)
	if err := dao.client.AddLocationWithJSON(ctx, CATALOG_GEO_KEY_V1, memberKey, location.Lat, location.Lng, rec); err != nil {
		return fmt.Errorf("[RedisCatalogDAO] failed to upsert record %s: %w", id, err)
	}
	return nil
}

// Delete removes an entity's JSON record. The stale geo member is
// skipped on read once its record is gone.
func (dao *RedisCatalogDAO) Delete(id string) error {
	memberKey := fmt.Sprintf(CATALOG_RECORD_MEMBER_FORMAT_V1, id)
	if err := dao.client.Del(memberKey); err != nil {
		return fmt.Errorf("[RedisCatalogDAO] failed to delete record %s: %w", id, err)
	}
	return nil
}

// All returns every stored entity, ascending by id.
func (dao *RedisCatalogDAO) All() ([]models.Bookable, error) {
	pattern := fmt.Sprintf(CATALOG_RECORD_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("[RedisCatalogDAO] failed to list catalog keys: %w", err)
	}

	items := make([]models.Bookable, 0, len(keys))
	for _, key := range keys {
		data, err := dao.client.Get(key)
		if err != nil {
			continue // record deleted between KEYS and GET
		}
		item, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sortByID(items)
	return items, nil
}

// WithinAreas returns entities inside at least one of the areas,
// ascending by id. Each area maps to one GEORADIUS call; overlapping
// areas are deduplicated by id.
func (dao *RedisCatalogDAO) WithinAreas(areas []models.GeoArea) ([]models.Bookable, error) {
	seen := make(map[string]struct{})
	var items []models.Bookable
	for _, area := range areas {
		records, err := dao.client.GetLocationsWithinRadius(
			CATALOG_GEO_KEY_V1, area.Center.Lat, area.Center.Lng, area.RadiusMeters)
		if err != nil {
			return nil, fmt.Errorf("[RedisCatalogDAO] failed to get records within radius: %w", err)
		}
		for _, data := range records {
			item, err := decodeRecord(data)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[item.BookableID()]; dup {
				continue
			}
			seen[item.BookableID()] = struct{}{}
			items = append(items, item)
		}
	}
	sortByID(items)
	return items, nil
}

func decodeRecord(data string) (models.Bookable, error) {
	var rec catalogRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog record JSON: %v", err)
	}
	return rec.bookable()
}

func sortByID(items []models.Bookable) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].BookableID() < items[j].BookableID()
	})
}
