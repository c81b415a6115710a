package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legalclub/internal/domain"
	"legalclub/internal/lib/clubtime"
)

type eventService struct {
	eventRepo      domain.EventRepository
	clock          domain.Clock
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repository and clock.
func NewEventService(eventRepo domain.EventRepository, clock domain.Clock, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		clock:          clock,
		contextTimeout: timeout,
	}
}

// CreateEvent classifies the event from its date/time at write time and
// persists the result. The stored status is a snapshot: it is not
// re-evaluated as time passes, only on the next write.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	startsAt, err := clubtime.StartInstant(event.Date, event.Time)
	if err != nil {
		return domain.ErrInvalidInput
	}
	event.Status = domain.ClassifyEventStatus(startsAt, s.clock.Now())

	now := s.clock.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, status *domain.EventStatus) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// UpdateEvent recomputes the status from the submitted date/time, same as
// on create. Clients cannot set the status directly.
func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	startsAt, err := clubtime.StartInstant(event.Date, event.Time)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	event.Status = domain.ClassifyEventStatus(startsAt, s.clock.Now())
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.clock.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.eventRepo.GetByID(ctx, event.ID)
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
