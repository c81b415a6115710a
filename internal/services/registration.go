package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legalclub/internal/domain"
	"legalclub/internal/lib/clubtime"
)

type registrationService struct {
	registrationRepo domain.TeamRegistrationRepository
	eventRepo        domain.EventRepository
	clock            domain.Clock
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService. The clock supplies
// "now" for the admission checks so tests can pin it.
func NewRegistrationService(
	registrationRepo domain.TeamRegistrationRepository,
	eventRepo domain.EventRepository,
	clock domain.Clock,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		clock:            clock,
		contextTimeout:   timeout,
	}
}

// Register runs the admission checks in order, each failing fast with its
// own error: event exists, live status is UPCOMING (recomputed from the
// stored date/time, never from the stored status column), deadline not
// passed, team name free, members count in bounds.
func (s *registrationService) Register(ctx context.Context, eventID, teamName string, membersCount int, leaderID string) (*domain.RegistrationWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.clock.Now()

	startsAt, err := clubtime.StartInstant(event.Date, event.Time)
	if err != nil {
		return nil, fmt.Errorf("resolve event start: %w", err)
	}
	if domain.ClassifyEventStatus(startsAt, now) == domain.EventStatusPast {
		return nil, domain.ErrEventClosed
	}

	if event.RegistrationDeadline != nil && event.RegistrationDeadline.Before(now) {
		return nil, domain.ErrDeadlinePassed
	}

	// Pre-flight duplicate check; the unique constraint in the repository
	// is the real authority under concurrent submissions.
	if _, err := s.registrationRepo.GetByEventAndTeamName(ctx, eventID, teamName); err == nil {
		return nil, domain.ErrDuplicateTeamName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check team name: %w", err)
	}

	if membersCount < domain.MinTeamMembers || membersCount > domain.MaxTeamMembers {
		return nil, domain.ErrInvalidInput
	}

	reg := domain.NewTeamRegistration(eventID, leaderID, teamName, membersCount, now)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateTeamName) {
			return nil, domain.ErrDuplicateTeamName
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	out, err := s.registrationRepo.GetWithEventByID(ctx, reg.ID)
	if err != nil {
		return nil, fmt.Errorf("load created registration: %w", err)
	}
	return out, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, filter domain.RegistrationFilter, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, total, err := s.registrationRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}
	return regs, total, nil
}

func (s *registrationService) SetRating(ctx context.Context, id string, rating domain.RatingStatus, notes string) (*domain.RegistrationWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidRatingStatus(rating) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.registrationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if err := s.registrationRepo.UpdateRating(ctx, id, rating, notes, s.clock.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update rating: %w", err)
	}
	out, err := s.registrationRepo.GetWithEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load updated registration: %w", err)
	}
	return out, nil
}

// Decide resolves a PENDING registration. Decisions are terminal: a second
// call on the same registration fails with ErrAlreadyDecided instead of
// silently overwriting the first decision.
func (s *registrationService) Decide(ctx context.Context, id string, decision domain.DecisionStatus, note *string, deciderID string) (*domain.RegistrationWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if decision != domain.DecisionAccepted && decision != domain.DecisionDeclined {
		return nil, domain.ErrInvalidInput
	}

	reg, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if reg.DecisionStatus != domain.DecisionPending {
		return nil, domain.ErrAlreadyDecided
	}

	if err := s.registrationRepo.UpdateDecision(ctx, id, decision, note, s.clock.Now(), deciderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update decision: %w", err)
	}
	out, err := s.registrationRepo.GetWithEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load updated registration: %w", err)
	}
	return out, nil
}
