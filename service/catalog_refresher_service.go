package services

import (
	"fmt"
	"log"
	"time"

	"outings-server/api/feed"
	"outings-server/catalog"
	redisdao "outings-server/dao/redis"
	"outings-server/models"
)

// CatalogRefresherService periodically pulls the catalog snapshot from
// the feed, persists it to Redis and rebuilds the in-memory index the
// engine serves queries from.
type CatalogRefresherService struct {
	catalogDao  *redisdao.RedisCatalogDAO
	memCatalog  *catalog.MemoryCatalog
	catalogFeed feed.CatalogFeedAPI
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	catalogDao *redisdao.RedisCatalogDAO,
	memCatalog *catalog.MemoryCatalog,
	catalogFeed feed.CatalogFeedAPI,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		catalogDao:  catalogDao,
		memCatalog:  memCatalog,
		catalogFeed: catalogFeed,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresher job.")
		if err := cr.RefreshCatalog(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
		}
	}
}

// WarmFromStore rebuilds the in-memory index from the records already
// persisted in Redis, so searches work before the first feed fetch.
func (cr *CatalogRefresherService) WarmFromStore() error {
	items, err := cr.catalogDao.All()
	if err != nil {
		return fmt.Errorf("[CatalogRefresherService] failed to load persisted catalog: %w", err)
	}
	cr.memCatalog.ReplaceAll(items)
	log.Printf("[CatalogRefresherService] Warmed index with %d persisted records", len(items))
	return nil
}

// RefreshCatalog fetches a snapshot, converts and validates every
// record, persists the survivors and swaps the in-memory index.
// Malformed records are logged and dropped; they never poison the index.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	snapshot, err := cr.catalogFeed.FetchCatalogSnapshot()
	if err != nil {
		return fmt.Errorf("[CatalogRefresherService] failed to fetch catalog snapshot: %w", err)
	}

	items := make([]models.Bookable, 0, len(snapshot.Activities)+len(snapshot.Events))

	for _, record := range snapshot.Activities {
		activity, err := record.ToActivity()
		if err != nil {
			log.Printf("[CatalogRefresherService] Skipping activity record: %v", err)
			continue
		}
		if err := cr.catalogDao.UpsertActivity(activity); err != nil {
			log.Printf("[CatalogRefresherService] Failed to upsert activity %s: %v", activity.ID, err)
			continue
		}
		items = append(items, activity)
	}

	for _, record := range snapshot.Events {
		event, err := record.ToEvent()
		if err != nil {
			log.Printf("[CatalogRefresherService] Skipping event record: %v", err)
			continue
		}
		if err := cr.catalogDao.UpsertEvent(event); err != nil {
			log.Printf("[CatalogRefresherService] Failed to upsert event %s: %v", event.ID, err)
			continue
		}
		items = append(items, event)
	}

	cr.memCatalog.ReplaceAll(items)
	log.Printf("[CatalogRefresherService] Indexed %d catalog records", len(items))
	return nil
}
