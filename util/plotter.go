package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"outings-server/models"
)

const MATCHES_MAP_FILE = "search_matches_map.html"

// PlotSearchMatches renders an HTML map of a query's search-area centers
// and the matched catalog entries. Debug aid for eyeballing geo
// composition.
func PlotSearchMatches(query models.SearchQuery, matches []models.Bookable, outputPath string) error {
	var centers []opts.GeoData
	for i, area := range query.Areas {
		centers = append(centers, opts.GeoData{
			Name:  fmt.Sprintf("area-%d (%.0fm)", i, area.RadiusMeters),
			Value: []float64{area.Center.Lng, area.Center.Lat},
		})
	}

	var points []opts.GeoData
	for _, m := range matches {
		coords := m.Coordinates()
		points = append(points, opts.GeoData{
			Name:  m.DisplayName(),
			Value: []float64{coords.Lng, coords.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Search Matches Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("SearchAreas", types.ChartScatter, centers,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Matches", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", outputPath, err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	log.Println("[Plotter] Search matches map generated: " + outputPath)
	return nil
}
