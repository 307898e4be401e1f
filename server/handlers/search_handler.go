package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"outings-server/models"
	services "outings-server/service"
)

const (
	LAT_QUERY_ARG        = "lat"
	LON_QUERY_ARG        = "lon"
	RADIUS_QUERY_ARG     = "radius"
	UNIT_QUERY_ARG       = "unit"
	CATEGORIES_QUERY_ARG = "categories"
	BUDGET_QUERY_ARG     = "budget"
	AT_QUERY_ARG         = "at"
	FROM_QUERY_ARG       = "from"
	TO_QUERY_ARG         = "to"
	EXCLUDE_QUERY_ARG    = "exclude"
	VERBOSE_QUERY_ARG    = "verbose"
)

// MinifiedMatch is the small form returned when verbose=false.
type MinifiedMatch struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"category_id"`
	PriceCents int64   `json:"price_cents"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type SearchHandler struct {
	outingService *services.OutingService
}

func NewSearchHandler(outingService *services.OutingService) *SearchHandler {
	return &SearchHandler{outingService: outingService}
}

// GetMatches handles GET /v1/outings/search.
func (h *SearchHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args into a SearchQuery
	query, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Run the matching engine
	matches, err := h.outingService.FindMatches(query)
	if err != nil {
		log.Println("Error finding matches:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Transform according to verbose flag
	result := h.transform(matches, verbose)

	// 4) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetBudgetTiers handles GET /v1/outings/budget-tiers.
func (h *SearchHandler) GetBudgetTiers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.outingService.BudgetTiers()); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetCategories handles GET /v1/outings/categories.
func (h *SearchHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ids, err := h.outingService.CategoryIds()
	if err != nil {
		log.Println("Error loading category ids:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ids); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *SearchHandler) parseArgs(vals url.Values, w http.ResponseWriter) (models.SearchQuery, bool, bool) {
	var query models.SearchQuery

	areas, err := parseAreas(vals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return query, false, false
	}
	query.Areas = areas

	if raw := vals.Get(CATEGORIES_QUERY_ARG); raw != "" {
		query.CategoryIDs = strings.Split(raw, ",")
	}

	if raw := vals.Get(AT_QUERY_ARG); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
			return query, false, false
		}
		query.At = &at
	}

	fromRaw, toRaw := vals.Get(FROM_QUERY_ARG), vals.Get(TO_QUERY_ARG)
	if (fromRaw == "") != (toRaw == "") {
		http.Error(w, "Arguments "+FROM_QUERY_ARG+" and "+TO_QUERY_ARG+" must be supplied together", http.StatusBadRequest)
		return query, false, false
	}
	if fromRaw != "" {
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			http.Error(w, "Invalid argument "+FROM_QUERY_ARG, http.StatusBadRequest)
			return query, false, false
		}
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			http.Error(w, "Invalid argument "+TO_QUERY_ARG, http.StatusBadRequest)
			return query, false, false
		}
		window, err := models.NewTimeRange(from, to)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return query, false, false
		}
		query.Window = &window
	}

	if name := vals.Get(BUDGET_QUERY_ARG); name != "" {
		tier, found := h.outingService.TierByName(name)
		if !found {
			http.Error(w, "Unknown budget tier "+name, http.StatusBadRequest)
			return query, false, false
		}
		query.Budget = &tier
	}

	if raw := vals.Get(EXCLUDE_QUERY_ARG); raw != "" {
		query.ExcludedIDs = strings.Split(raw, ",")
	}

	verbose := false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	return query, verbose, true
}

// parseAreas builds one GeoArea per lat/lon/radius triple. Repeating the
// triple searches several disjoint regions in one query.
func parseAreas(vals url.Values) ([]models.GeoArea, error) {
	lats := vals[LAT_QUERY_ARG]
	lons := vals[LON_QUERY_ARG]
	radii := vals[RADIUS_QUERY_ARG]
	if len(lats) == 0 && len(lons) == 0 && len(radii) == 0 {
		return nil, nil
	}
	if len(lats) != len(lons) || len(lats) != len(radii) {
		return nil, badArgError("Arguments " + LAT_QUERY_ARG + ", " + LON_QUERY_ARG + " and " + RADIUS_QUERY_ARG + " must be supplied together")
	}

	var unitScale float64
	switch vals.Get(UNIT_QUERY_ARG) {
	case "", "m":
		unitScale = 1
	case "km":
		unitScale = models.METERS_PER_KILOMETER
	case "mi":
		unitScale = models.METERS_PER_MILE
	default:
		return nil, badArgError("Invalid argument " + UNIT_QUERY_ARG)
	}

	areas := make([]models.GeoArea, 0, len(lats))
	for i := range lats {
		lat, err := strconv.ParseFloat(lats[i], 64)
		if err != nil {
			return nil, badArgError("Invalid argument " + LAT_QUERY_ARG)
		}
		lon, err := strconv.ParseFloat(lons[i], 64)
		if err != nil {
			return nil, badArgError("Invalid argument " + LON_QUERY_ARG)
		}
		radius, err := strconv.ParseFloat(radii[i], 64)
		if err != nil {
			return nil, badArgError("Invalid argument " + RADIUS_QUERY_ARG)
		}
		center, err := models.NewGeoPoint(lat, lon)
		if err != nil {
			return nil, err
		}
		area, err := models.NewGeoArea(center, radius*unitScale)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, nil
}

type badArgError string

func (e badArgError) Error() string { return string(e) }

func (h *SearchHandler) transform(matches []models.Bookable, verbose bool) interface{} {
	if verbose {
		return matches
	}
	// minify
	min := make([]MinifiedMatch, 0, len(matches))
	for _, m := range matches {
		coords := m.Coordinates()
		min = append(min, MinifiedMatch{
			ID:         m.BookableID(),
			Name:       m.DisplayName(),
			CategoryID: m.Category(),
			PriceCents: m.PriceCents(),
			Lat:        coords.Lat,
			Lng:        coords.Lng,
		})
	}
	return min
}

// Ping handles GET /ping
func (h *SearchHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
