package domain

import (
	"context"
	"time"
)

// EventStatus is the denormalized lifecycle status stored on an event.
type EventStatus string

// Event statuses.
const (
	EventStatusUpcoming EventStatus = "UPCOMING"
	EventStatusPast     EventStatus = "PAST"
)

// ClassifyEventStatus returns the lifecycle status of an event starting at
// startsAt, seen from now. An event starting exactly at now is PAST
// (the comparison is non-strict in the past direction).
func ClassifyEventStatus(startsAt, now time.Time) EventStatus {
	if startsAt.After(now) {
		return EventStatusUpcoming
	}
	return EventStatusPast
}

// Event represents a club event with bilingual (uz/en) content.
// Date is a calendar day ("2006-01-02") and Time a wall-clock "15:04" pair;
// both are naive and anchored to the club timezone when compared.
// Status is a snapshot computed at write time, not re-evaluated on read.
// swagger:model Event
type Event struct {
	ID            string      `json:"id"`
	TitleUz       string      `json:"title_uz"`
	TitleEn       string      `json:"title_en"`
	DescriptionUz string      `json:"description_uz"`
	DescriptionEn string      `json:"description_en"`
	LocationUz    string      `json:"location_uz"`
	LocationEn    string      `json:"location_en"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Status        EventStatus `json:"status"`

	RegistrationDeadline *time.Time `json:"registration_deadline"`
	CoverImage           *string    `json:"cover_image"`
	Gallery              []string   `json:"gallery"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventRepository defines the interface for event storage.
// GetByID loads the gallery; List does not.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, status *EventStatus) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
// Create and Update recompute and persist the status from the submitted
// date/time; clients cannot set it.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	ListEvents(ctx context.Context, status *EventStatus) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
