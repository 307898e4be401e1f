package main

import (
	"fmt"
	"log"
	"time"

	"outings-server/config"
	"outings-server/di"
	"outings-server/models"
	"outings-server/util"
)

// Demo search center: downtown Montreal.
const demoLat = 45.5204
const demoLon = -73.5541
const demoRadiusMeters = 2500

// plotDemoSearch runs one sample search and renders its areas and
// matches to an HTML map. Gated behind OUTINGS_PLOT_DEMO.
func plotDemoSearch(container *di.Container) {
	center, err := models.NewGeoPoint(demoLat, demoLon)
	if err != nil {
		log.Printf("[MAIN] Invalid demo plot center: %v", err)
		return
	}
	area, err := models.NewGeoArea(center, demoRadiusMeters)
	if err != nil {
		log.Printf("[MAIN] Invalid demo plot area: %v", err)
		return
	}

	query := models.SearchQuery{Areas: []models.GeoArea{area}}
	matches, err := container.OutingService.FindMatches(query)
	if err != nil {
		log.Printf("[MAIN] Demo search failed: %v", err)
		return
	}
	if err := util.PlotSearchMatches(query, matches, util.MATCHES_MAP_FILE); err != nil {
		log.Printf("[MAIN] Failed to plot demo search: %v", err)
	}
}

func main() {
	config.LoadEnv()
	container := di.NewContainer(config.Env())

	// Serve whatever is already persisted, then ingest a fresh snapshot.
	if err := container.CatalogRefresherService.WarmFromStore(); err != nil {
		log.Printf("Could not warm catalog from store: %v", err)
	}
	if err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		log.Printf("Initial catalog refresh failed: %v", err)
	}
	container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	if config.PlotDemoEnabled() {
		plotDemoSearch(container)
	}

	fmt.Println("starting server!")
	container.OutingsHttpServer.Start()
}
