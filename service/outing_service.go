package services

import (
	"outings-server/config"
	"outings-server/matching"
	"outings-server/models"
	"outings-server/util"
)

const CATEGORY_IDS_RESOURCE = "static_category_ids.json"

// OutingService is the search facade: it resolves budget tier names and
// runs queries through the matching engine.
type OutingService struct {
	engine  *matching.Engine
	budgets *models.BudgetTable
}

// NewOutingService constructs a new OutingService.
func NewOutingService(engine *matching.Engine, budgets *models.BudgetTable) *OutingService {
	return &OutingService{
		engine:  engine,
		budgets: budgets,
	}
}

// FindMatches runs one search against the catalog.
func (s *OutingService) FindMatches(query models.SearchQuery) ([]models.Bookable, error) {
	return s.engine.FindMatches(query)
}

// TierByName resolves a budget tier name from the configured table.
func (s *OutingService) TierByName(name string) (models.BudgetTier, bool) {
	return s.budgets.TierByName(name)
}

// BudgetTiers returns the configured tier ladder.
func (s *OutingService) BudgetTiers() []models.BudgetTier {
	return s.budgets.Tiers
}

// CategoryIds returns the known category ids.
func (s *OutingService) CategoryIds() ([]string, error) {
	return util.ReadCategoryIds(config.GetResourcePath(CATEGORY_IDS_RESOURCE))
}
