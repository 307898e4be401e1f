package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outings-server/catalog"
	redisdao "outings-server/dao/redis"
	"outings-server/db"
	"outings-server/models"
)

// stubFeed returns a canned snapshot or a canned error.
type stubFeed struct {
	snapshot *models.CatalogSnapshot
	err      error
}

func (s *stubFeed) SetAPIKey(apiKey string) {}

func (s *stubFeed) FetchCatalogSnapshot() (*models.CatalogSnapshot, error) {
	return s.snapshot, s.err
}

func newRefresherFixture(feedStub *stubFeed) (*CatalogRefresherService, *redisdao.RedisCatalogDAO, *catalog.MemoryCatalog) {
	dao := redisdao.NewRedisCatalogDAO(db.NewMockRedisClient(context.Background()))
	memCatalog := catalog.NewMemoryCatalog()
	return NewCatalogRefresherService(dao, memCatalog, feedStub), dao, memCatalog
}

func TestRefreshCatalog_IndexesValidRecords(t *testing.T) {
	feedStub := &stubFeed{snapshot: &models.CatalogSnapshot{
		Activities: []models.ActivityRecord{
			{
				ID:         "act-1",
				Name:       "Bowling Alley",
				Lat:        45.5204,
				Lng:        -73.5541,
				CategoryID: "sports",
				IsBookable: true,
			},
		},
		Events: []models.EventRecord{
			{
				ID:           "evt-1",
				Name:         "Jazz Night",
				Lat:          45.5088,
				Lng:          -73.5678,
				CategoryID:   "music",
				StartsAt:     "2026-09-24T19:00:00-04:00",
				EndsAt:       "2026-09-24T23:30:00-04:00",
				MinCostCents: 4500,
				MaxCostCents: 12000,
				IsBookable:   true,
			},
		},
	}}
	refresher, dao, memCatalog := newRefresherFixture(feedStub)

	require.NoError(t, refresher.RefreshCatalog())

	// Both the serving index and the durable store carry the records.
	assert.Equal(t, 2, memCatalog.Size())

	persisted, err := dao.All()
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestRefreshCatalog_SkipsMalformedRecords(t *testing.T) {
	feedStub := &stubFeed{snapshot: &models.CatalogSnapshot{
		Activities: []models.ActivityRecord{
			{
				ID:         "act-good",
				Name:       "Bowling Alley",
				Lat:        45.5204,
				Lng:        -73.5541,
				CategoryID: "sports",
				IsBookable: true,
			},
			{
				ID:         "act-bad",
				Name:       "Nowhere",
				Lat:        91, // out of range
				Lng:        0,
				CategoryID: "sports",
			},
		},
	}}
	refresher, _, memCatalog := newRefresherFixture(feedStub)

	require.NoError(t, refresher.RefreshCatalog(), "bad records are dropped, not fatal")

	items, err := memCatalog.All()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "act-good", items[0].BookableID())
}

func TestRefreshCatalog_FeedErrorLeavesIndexUntouched(t *testing.T) {
	refresher, dao, memCatalog := newRefresherFixture(&stubFeed{err: errors.New("feed down")})

	seed := &models.Activity{
		ID:         "act-existing",
		Name:       "Existing",
		Location:   models.GeoPoint{Lat: 45.52, Lng: -73.55},
		CategoryID: "outdoors",
		IsBookable: true,
	}
	require.NoError(t, dao.UpsertActivity(seed))
	memCatalog.Add(seed)

	err := refresher.RefreshCatalog()
	assert.Error(t, err)
	assert.Equal(t, 1, memCatalog.Size(), "a failed refresh keeps serving the old index")
}

func TestWarmFromStore(t *testing.T) {
	refresher, dao, memCatalog := newRefresherFixture(&stubFeed{})

	require.NoError(t, dao.UpsertActivity(&models.Activity{
		ID:         "act-persisted",
		Name:       "Persisted",
		Location:   models.GeoPoint{Lat: 45.52, Lng: -73.55},
		CategoryID: "outdoors",
		IsBookable: true,
	}))

	require.NoError(t, refresher.WarmFromStore())
	assert.Equal(t, 1, memCatalog.Size())
}
