package redis

import (
	"context"
	"testing"
	"time"

	"outings-server/db"
	"outings-server/models"
)

func testActivity(id string, lat, lng float64) *models.Activity {
	return &models.Activity{
		ID:         id,
		Name:       "Test Activity " + id,
		Location:   models.GeoPoint{Lat: lat, Lng: lng},
		CategoryID: "sports",
		IsBookable: true,
	}
}

func TestRedisCatalogDAO_UpsertActivity_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCatalogDAO(mockClient)

	activity := testActivity("act123", 45.5204, -73.5541)

	// Act
	err := dao.UpsertActivity(activity)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify data stored in mock Redis
	expectedKey := "catalog_record_v1:act123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	stored, err := decodeRecord(storedValue)
	if err != nil {
		t.Fatalf("Failed to decode stored record: %v", err)
	}
	if stored.BookableID() != activity.ID {
		t.Errorf("Expected id %s, got %s", activity.ID, stored.BookableID())
	}
}

func TestRedisCatalogDAO_WithinAreas_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCatalogDAO(mockClient)

	_ = dao.UpsertActivity(testActivity("act123", 45.5204, -73.5541))
	_ = dao.UpsertActivity(testActivity("act456", 45.5225, -73.5695))
	_ = dao.UpsertActivity(testActivity("far789", 43.6532, -79.3832))

	area, _ := models.NewGeoArea(models.GeoPoint{Lat: 45.5204, Lng: -73.5541}, 2000)

	// Act
	items, err := dao.WithinAreas([]models.GeoArea{area})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 records within radius, got %d", len(items))
	}

	expectedIDs := map[string]bool{
		"act123": true,
		"act456": true,
	}
	for _, item := range items {
		if !expectedIDs[item.BookableID()] {
			t.Errorf("Unexpected record ID: %s", item.BookableID())
		}
	}
}

func TestRedisCatalogDAO_WithinAreas_NoResults(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCatalogDAO(mockClient)

	area, _ := models.NewGeoArea(models.GeoPoint{Lat: 45.5204, Lng: -73.5541}, 2000)

	// Act
	items, err := dao.WithinAreas([]models.GeoArea{area})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no records, got %d", len(items))
	}
}

func TestRedisCatalogDAO_EventRoundTrip(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCatalogDAO(mockClient)

	event := &models.Event{
		ID:           "evt123",
		Name:         "Test Event",
		Location:     models.GeoPoint{Lat: 45.5088, Lng: -73.5678},
		CategoryID:   "music",
		StartsAt:     time.Date(2026, 9, 24, 19, 0, 0, 0, time.UTC),
		EndsAt:       time.Date(2026, 9, 24, 23, 30, 0, 0, time.UTC),
		MinCostCents: 4500,
		MaxCostCents: 12000,
		IsBookable:   true,
	}

	if err := dao.UpsertEvent(event); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Act
	items, err := dao.All()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(items))
	}

	restored, ok := items[0].(*models.Event)
	if !ok {
		t.Fatalf("Expected an *models.Event, got %T", items[0])
	}
	if !restored.StartsAt.Equal(event.StartsAt) || !restored.EndsAt.Equal(event.EndsAt) {
		t.Errorf("Event window did not survive the round trip")
	}
	if restored.MinCostCents != event.MinCostCents {
		t.Errorf("Expected min cost %d, got %d", event.MinCostCents, restored.MinCostCents)
	}
}

func TestRedisCatalogDAO_All_SortedById(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCatalogDAO(mockClient)

	_ = dao.UpsertActivity(testActivity("zzz", 45.52, -73.55))
	_ = dao.UpsertActivity(testActivity("aaa", 45.53, -73.56))

	// Act
	items, err := dao.All()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(items))
	}
	if items[0].BookableID() != "aaa" || items[1].BookableID() != "zzz" {
		t.Errorf("Expected ids sorted ascending, got %s, %s",
			items[0].BookableID(), items[1].BookableID())
	}
}

func TestRedisCatalogDAO_Delete(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisCatalogDAO(mockClient)
	_ = dao.UpsertActivity(testActivity("act123", 45.52, -73.55))

	// Act
	if err := dao.Delete("act123"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	items, err := dao.All()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no records after delete, got %d", len(items))
	}
}
