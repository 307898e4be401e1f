package feed

import "outings-server/models"

// CatalogFeedAPI defines the interface for the upstream catalog feed
// that delivers activity and event snapshots for ingestion.
type CatalogFeedAPI interface {
	FetchCatalogSnapshot() (*models.CatalogSnapshot, error)
	SetAPIKey(apiKey string)
}
