package util

import (
	"encoding/json"
	"fmt"
	"os"

	"outings-server/models"
)

// ReadCatalogSnapshotFromJSON loads a CatalogSnapshot from JSON on disk.
func ReadCatalogSnapshotFromJSON(filePath string) (*models.CatalogSnapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var snapshot models.CatalogSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CatalogSnapshot: %w", err)
	}
	return &snapshot, nil
}

// ReadCategoryIds loads a slice of category IDs from JSON on disk.
func ReadCategoryIds(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category IDs: %w", err)
	}
	return ids, nil
}
