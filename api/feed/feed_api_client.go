package feed

import (
	"outings-server/api"
	"outings-server/models"
)

// CatalogFeedClient embeds the common HTTPClient
type CatalogFeedClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewCatalogFeedClient creates a new instance of CatalogFeedClient
func NewCatalogFeedClient(httpClient *api.HTTPClient) *CatalogFeedClient {
	return &CatalogFeedClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey stores the feed credential sent with every request.
func (c *CatalogFeedClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// FetchCatalogSnapshot retrieves the current catalog snapshot from the feed.
func (c *CatalogFeedClient) FetchCatalogSnapshot() (*models.CatalogSnapshot, error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	var snapshot models.CatalogSnapshot
	if err := c.Request("GET", "/catalog/snapshot", headers, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
