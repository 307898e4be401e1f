package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var Validate = validator.New()

const WEEK_OF_DATE_LAYOUT = "2006-01-02"

// CatalogSnapshot is the wire shape delivered by the catalog feed: the
// full set of activities and one-off events to ingest.
type CatalogSnapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Activities  []ActivityRecord `json:"activities"`
	Events      []EventRecord    `json:"events"`
}

// ActivityRecord is one raw feed row. Records are validated and run
// through the model constructors before they reach the catalog, so
// malformed rows fail the ingest instead of surfacing at query time.
type ActivityRecord struct {
	ID          string             `json:"id"`
	Name        string             `json:"name" validate:"required"`
	Lat         float64            `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64            `json:"lng" validate:"gte=-180,lte=180"`
	CategoryID  string             `json:"category_id" validate:"required"`
	IsBookable  bool               `json:"is_bookable"`
	TicketTypes []TicketTypeRecord `json:"ticket_types" validate:"dive"`
	Schedules   []ScheduleRecord   `json:"schedules" validate:"dive"`
}

type TicketTypeRecord struct {
	MinBaseCostCents int64   `json:"min_base_cost_cents"`
	MaxBaseCostCents int64   `json:"max_base_cost_cents"`
	ServiceFeeCents  int64   `json:"service_fee_cents" validate:"gte=0"`
	TaxPercentage    float64 `json:"tax_percentage" validate:"gte=0"`
}

type ScheduleRecord struct {
	WeekOf string   `json:"week_of,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Spans  [][2]int `json:"spans"`
}

type EventRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" validate:"required"`
	Lat          float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng          float64 `json:"lng" validate:"gte=-180,lte=180"`
	CategoryID   string  `json:"category_id" validate:"required"`
	StartsAt     string  `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt       string  `json:"ends_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	MinCostCents int64   `json:"min_cost_cents" validate:"gte=0"`
	MaxCostCents int64   `json:"max_cost_cents" validate:"gte=0"`
	IsBookable   bool    `json:"is_bookable"`
}

// ToActivity validates the record and builds the domain entity. Rows
// without an id are assigned one.
func (r ActivityRecord) ToActivity() (*Activity, error) {
	if err := Validate.Struct(r); err != nil {
		return nil, fmt.Errorf("invalid activity record %q: %w", r.Name, err)
	}

	location, err := NewGeoPoint(r.Lat, r.Lng)
	if err != nil {
		return nil, fmt.Errorf("activity %q: %w", r.Name, err)
	}

	tickets := make([]CostComponents, 0, len(r.TicketTypes))
	for _, t := range r.TicketTypes {
		cost, err := NewCostComponents(t.MinBaseCostCents, t.MaxBaseCostCents, t.ServiceFeeCents, t.TaxPercentage)
		if err != nil {
			return nil, fmt.Errorf("activity %q: %w", r.Name, err)
		}
		tickets = append(tickets, cost)
	}

	schedules := make([]WeeklySchedule, 0, len(r.Schedules))
	for _, s := range r.Schedules {
		sched := WeeklySchedule{Spans: make([]MinuteSpan, 0, len(s.Spans))}
		for _, pair := range s.Spans {
			span, err := NewMinuteSpan(pair[0], pair[1])
			if err != nil {
				return nil, fmt.Errorf("activity %q: %w", r.Name, err)
			}
			sched.Spans = append(sched.Spans, span)
		}
		if s.WeekOf != "" {
			weekOf, err := time.Parse(WEEK_OF_DATE_LAYOUT, s.WeekOf)
			if err != nil {
				return nil, fmt.Errorf("activity %q: invalid week_of %q: %w", r.Name, s.WeekOf, err)
			}
			sched.WeekOf = &weekOf
		}
		schedules = append(schedules, sched)
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Activity{
		ID:          id,
		Name:        r.Name,
		Location:    location,
		CategoryID:  r.CategoryID,
		TicketTypes: tickets,
		Schedules:   schedules,
		IsBookable:  r.IsBookable,
	}, nil
}

// ToEvent validates the record and builds the domain entity.
func (r EventRecord) ToEvent() (*Event, error) {
	if err := Validate.Struct(r); err != nil {
		return nil, fmt.Errorf("invalid event record %q: %w", r.Name, err)
	}

	location, err := NewGeoPoint(r.Lat, r.Lng)
	if err != nil {
		return nil, fmt.Errorf("event %q: %w", r.Name, err)
	}

	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("event %q: invalid starts_at: %w", r.Name, err)
	}
	endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("event %q: invalid ends_at: %w", r.Name, err)
	}
	if _, err := NewTimeRange(startsAt, endsAt); err != nil {
		return nil, fmt.Errorf("event %q: %w", r.Name, err)
	}
	if r.MaxCostCents < r.MinCostCents {
		return nil, fmt.Errorf("event %q: max cost %d below min cost %d", r.Name, r.MaxCostCents, r.MinCostCents)
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Event{
		ID:           id,
		Name:         r.Name,
		Location:     location,
		CategoryID:   r.CategoryID,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		MinCostCents: r.MinCostCents,
		MaxCostCents: r.MaxCostCents,
		IsBookable:   r.IsBookable,
	}, nil
}
