package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"outings-server/models"
)

func TestPlotSearchMatches(t *testing.T) {
	// Arrange
	center, err := models.NewGeoPoint(45.5204, -73.5541)
	if err != nil {
		t.Fatalf("Failed to build center: %v", err)
	}
	area, err := models.NewGeoArea(center, 2500)
	if err != nil {
		t.Fatalf("Failed to build area: %v", err)
	}
	query := models.SearchQuery{Areas: []models.GeoArea{area}}
	matches := []models.Bookable{
		&models.Activity{
			ID:         "act-1",
			Name:       "Riverside Park",
			Location:   models.GeoPoint{Lat: 45.5225, Lng: -73.5595},
			CategoryID: "outdoors",
			IsBookable: true,
		},
	}
	outputPath := filepath.Join(t.TempDir(), "map.html")

	// Act
	err = PlotSearchMatches(query, matches, outputPath)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Expected map file to exist, got %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "SearchAreas") || !strings.Contains(html, "Matches") {
		t.Error("Expected both series to be rendered")
	}
	if !strings.Contains(html, "Riverside Park") {
		t.Error("Expected match name to appear in the map")
	}
}

func TestPlotSearchMatches_BadOutputPath(t *testing.T) {
	err := PlotSearchMatches(models.SearchQuery{}, nil, filepath.Join(t.TempDir(), "missing", "map.html"))
	if err == nil {
		t.Fatal("Expected an error for an uncreatable output path")
	}
}
