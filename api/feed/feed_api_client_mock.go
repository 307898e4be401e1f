package feed

import (
	"log"

	"outings-server/config"
	"outings-server/models"
	"outings-server/util"
)

// CatalogFeedClientMock serves the bundled fixture snapshot instead of
// calling the remote feed.
type CatalogFeedClientMock struct {
	snapshotPath string
}

// NewCatalogFeedClientMock creates a new instance of CatalogFeedClientMock
func NewCatalogFeedClientMock() *CatalogFeedClientMock {
	return &CatalogFeedClientMock{
		snapshotPath: config.GetResourcePath(config.CATALOG_SNAPSHOT_RESOURCE),
	}
}

// SetAPIKey is a no-op on the mock.
func (c *CatalogFeedClientMock) SetAPIKey(apiKey string) {}

// FetchCatalogSnapshot reads the snapshot fixture from disk.
func (c *CatalogFeedClientMock) FetchCatalogSnapshot() (*models.CatalogSnapshot, error) {
	snapshot, err := util.ReadCatalogSnapshotFromJSON(c.snapshotPath)
	if err != nil {
		log.Printf("[CatalogFeedClientMock] Could not read catalog snapshot fixture: %v", err)
		return nil, err
	}
	return snapshot, nil
}
