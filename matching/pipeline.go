// Package matching composes the catalog filter pipeline: category
// membership, geographic containment, schedule/time matching, budget
// matching and explicit id exclusion, with a stable output order.
//
// The pipeline is a pure computation over an already materialized
// candidate slice. It holds no mutable state and is safe to run
// concurrently over the same catalog.
package matching

import (
	"fmt"
	"sort"

	"outings-server/models"
)

// Catalog is the read surface the engine consumes.
type Catalog interface {
	All() ([]models.Bookable, error)
}

// GeoCatalog is an optional pushdown surface: stores that index
// coordinates can pre-narrow candidates to the requested areas.
type GeoCatalog interface {
	Catalog
	WithinAreas(areas []models.GeoArea) ([]models.Bookable, error)
}

// FindMatches applies every filter dimension present in the query to the
// candidate slice. Absent dimensions impose no constraint. Results come
// back ascending by id so pagination stays consistent across calls.
func FindMatches(candidates []models.Bookable, q models.SearchQuery) []models.Bookable {
	excluded := make(map[string]struct{}, len(q.ExcludedIDs))
	for _, id := range q.ExcludedIDs {
		excluded[id] = struct{}{}
	}
	tc := q.TimeConstraint()

	matches := make([]models.Bookable, 0, len(candidates))
	for _, c := range candidates {
		if !c.Bookable() {
			continue
		}
		if len(q.CategoryIDs) > 0 && !containsString(q.CategoryIDs, c.Category()) {
			continue
		}
		if len(q.Areas) > 0 && !models.WithinAny(q.Areas, c.Coordinates()) {
			continue
		}
		if !c.OccursAt(tc) {
			continue
		}
		if q.Budget != nil && !c.WithinBudget(*q.Budget) {
			continue
		}
		if _, skip := excluded[c.BookableID()]; skip {
			continue
		}
		matches = append(matches, c)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].BookableID() < matches[j].BookableID()
	})
	return matches
}

// Engine runs searches against a catalog, pushing the geo dimension down
// into the store when it supports that.
type Engine struct {
	catalog Catalog
}

// NewEngine wires the engine to its catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// FindMatches loads candidates and runs the filter pipeline. The
// pipeline re-applies geo containment exactly, so a pushdown only needs
// to return a superset of the areas' contents.
func (e *Engine) FindMatches(q models.SearchQuery) ([]models.Bookable, error) {
	var candidates []models.Bookable
	var err error

	if gc, ok := e.catalog.(GeoCatalog); ok && len(q.Areas) > 0 {
		candidates, err = gc.WithinAreas(q.Areas)
	} else {
		candidates, err = e.catalog.All()
	}
	if err != nil {
		return nil, fmt.Errorf("[Engine] failed to load candidates: %w", err)
	}

	return FindMatches(candidates, q), nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
