package models

import (
	"fmt"
	"time"
)

// Bookable is the catalog entity under test in a search: an evergreen
// activity with a recurring weekly schedule, or a one-off event with a
// fixed start/end instant. The filter pipeline only sees this surface,
// so it never needs to know which kind it is filtering.
type Bookable interface {
	BookableID() string
	DisplayName() string
	Coordinates() GeoPoint
	Category() string
	PriceCents() int64
	OccursAt(tc TimeConstraint) bool
	WithinBudget(t BudgetTier) bool
	Bookable() bool
}

// Activity is a standing bookable entity whose availability follows a
// recurring weekly schedule. Read-only from the matching engine's
// perspective; ingestion owns its lifecycle.
type Activity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Location    GeoPoint         `json:"location"`
	CategoryID  string           `json:"category_id"`
	TicketTypes []CostComponents `json:"ticket_types,omitempty"`
	Schedules   []WeeklySchedule `json:"schedules,omitempty"`
	IsBookable  bool             `json:"is_bookable"`
}

func (a *Activity) BookableID() string    { return a.ID }
func (a *Activity) DisplayName() string   { return a.Name }
func (a *Activity) Coordinates() GeoPoint { return a.Location }
func (a *Activity) Category() string      { return a.CategoryID }
func (a *Activity) Bookable() bool        { return a.IsBookable }

// PriceCents is the cheapest total across the activity's ticket types.
func (a *Activity) PriceCents() int64 {
	return MinTotalCents(a.TicketTypes)
}

// OccursAt evaluates the weekly schedule set. A range constraint is
// evaluated at its start, the planned outing start.
func (a *Activity) OccursAt(tc TimeConstraint) bool {
	if tc.IsZero() {
		return true
	}
	at := tc.At
	if at == nil {
		at = &tc.Window.From
	}
	return OpenAt(a.Schedules, *at)
}

// WithinBudget applies cumulative tier matching to the activity price.
func (a *Activity) WithinBudget(t BudgetTier) bool {
	return t.Matches(a.PriceCents())
}

func (a *Activity) ToString() string {
	return fmt.Sprintf("Activity(id=%s, name=%s, category=%s, lat=%f, lng=%f)",
		a.ID, a.Name, a.CategoryID, a.Location.Lat, a.Location.Lng)
}

// Event is a one-off bookable entity with a fixed [StartsAt, EndsAt)
// occurrence window and a cost range stored directly on the row rather
// than per ticket type.
type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     GeoPoint  `json:"location"`
	CategoryID   string    `json:"category_id"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	MinCostCents int64     `json:"min_cost_cents"`
	MaxCostCents int64     `json:"max_cost_cents"`
	IsBookable   bool      `json:"is_bookable"`
}

func (e *Event) BookableID() string    { return e.ID }
func (e *Event) DisplayName() string   { return e.Name }
func (e *Event) Coordinates() GeoPoint { return e.Location }
func (e *Event) Category() string      { return e.CategoryID }
func (e *Event) Bookable() bool        { return e.IsBookable }

// PriceCents is the cheapest admission for the event.
func (e *Event) PriceCents() int64 {
	return e.MinCostCents
}

// OccursAt matches a target instant by half-open containment
// (StartsAt <= at < EndsAt) and a range constraint by half-open overlap.
func (e *Event) OccursAt(tc TimeConstraint) bool {
	if tc.IsZero() {
		return true
	}
	occurrence := TimeRange{From: e.StartsAt, To: e.EndsAt}
	if tc.At != nil {
		return occurrence.Contains(*tc.At)
	}
	return occurrence.Overlaps(*tc.Window)
}

// WithinBudget filters the event's stored cost range against the tier
// ceiling. The inclusive ceiling becomes an exclusive bound one cent
// higher before the half-open interval comparison, so an event priced
// exactly at the ceiling is retained.
func (e *Event) WithinBudget(t BudgetTier) bool {
	bound, bounded := t.ExclusiveUpperBound()
	if !bounded {
		return true
	}
	return e.MinCostCents < bound
}

func (e *Event) ToString() string {
	return fmt.Sprintf("Event(id=%s, name=%s, starts=%s, ends=%s)",
		e.ID, e.Name, e.StartsAt.Format(time.RFC3339), e.EndsAt.Format(time.RFC3339))
}
