package domain

import (
	"context"
	"time"
)

// RatingStatus is the admin-assigned traffic-light evaluation of a team.
type RatingStatus string

// Rating statuses.
const (
	RatingGreen  RatingStatus = "GREEN"
	RatingYellow RatingStatus = "YELLOW"
	RatingRed    RatingStatus = "RED"
)

// ValidRatingStatus reports whether s is a known rating value.
func ValidRatingStatus(s RatingStatus) bool {
	return s == RatingGreen || s == RatingYellow || s == RatingRed
}

// DecisionStatus is the admin accept/decline outcome for a registration.
// It is independent of the rating axis: changing one never changes the other.
type DecisionStatus string

// Decision statuses.
const (
	DecisionPending  DecisionStatus = "PENDING"
	DecisionAccepted DecisionStatus = "ACCEPTED"
	DecisionDeclined DecisionStatus = "DECLINED"
)

// Team size bounds enforced on registration.
const (
	MinTeamMembers = 1
	MaxTeamMembers = 20
)

// TeamRegistration represents a team's registration for an event,
// submitted by an authenticated member (the leader).
// (event_id, team_name) is unique, case-sensitive.
// swagger:model TeamRegistration
type TeamRegistration struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	LeaderID     string `json:"leader_id"`
	TeamName     string `json:"team_name"`
	MembersCount int    `json:"members_count"`

	RatingStatus RatingStatus `json:"rating_status"`
	Notes        string       `json:"notes"`

	DecisionStatus DecisionStatus `json:"decision_status"`
	DecisionNote   *string        `json:"decision_note"`
	DecidedAt      *time.Time     `json:"decided_at"`
	DecidedBy      *string        `json:"decided_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTeamRegistration returns a registration in its initial state:
// rating YELLOW, decision PENDING.
func NewTeamRegistration(eventID, leaderID, teamName string, membersCount int, now time.Time) *TeamRegistration {
	return &TeamRegistration{
		EventID:        eventID,
		LeaderID:       leaderID,
		TeamName:       teamName,
		MembersCount:   membersCount,
		RatingStatus:   RatingYellow,
		DecisionStatus: DecisionPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// RegistrationWithEvent bundles a registration with event and leader
// summary fields for display.
type RegistrationWithEvent struct {
	Registration   *TeamRegistration `json:"registration"`
	EventTitleUz   string            `json:"event_title_uz"`
	EventTitleEn   string            `json:"event_title_en"`
	LeaderUsername string            `json:"leader_username"`
}

// RegistrationFilter holds optional filters for the admin listing.
type RegistrationFilter struct {
	EventID        *string
	RatingStatus   *RatingStatus
	DecisionStatus *DecisionStatus
}

// TeamRegistrationRepository defines storage operations for team registrations.
// Create must surface a unique-constraint violation on (event_id, team_name)
// as ErrDuplicateTeamName so concurrent submissions behave like the pre-check.
type TeamRegistrationRepository interface {
	Create(ctx context.Context, reg *TeamRegistration) error
	GetByID(ctx context.Context, id string) (*TeamRegistration, error)
	GetByEventAndTeamName(ctx context.Context, eventID, teamName string) (*TeamRegistration, error)
	GetWithEventByID(ctx context.Context, id string) (*RegistrationWithEvent, error)
	List(ctx context.Context, filter RegistrationFilter, params PaginationParams) ([]*RegistrationWithEvent, int, error)
	UpdateRating(ctx context.Context, id string, rating RatingStatus, notes string, updatedAt time.Time) error
	UpdateDecision(ctx context.Context, id string, decision DecisionStatus, note *string, decidedAt time.Time, decidedBy string) error
}

// RegistrationService defines the admission gate and the two-axis
// rating/decision workflow.
type RegistrationService interface {
	// Register runs the admission checks for the event and, on success,
	// creates the registration with rating YELLOW and decision PENDING.
	Register(ctx context.Context, eventID, teamName string, membersCount int, leaderID string) (*RegistrationWithEvent, error)
	ListRegistrations(ctx context.Context, filter RegistrationFilter, params PaginationParams) ([]*RegistrationWithEvent, int, error)
	// SetRating updates the rating axis only. Any rating may move to any other.
	SetRating(ctx context.Context, id string, rating RatingStatus, notes string) (*RegistrationWithEvent, error)
	// Decide resolves a PENDING registration to ACCEPTED or DECLINED.
	// A registration that is already decided returns ErrAlreadyDecided.
	Decide(ctx context.Context, id string, decision DecisionStatus, note *string, deciderID string) (*RegistrationWithEvent, error)
}
