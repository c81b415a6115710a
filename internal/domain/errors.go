package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to stable
// HTTP statuses; anything else is treated as an internal error.
var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller lacks the required role or ownership.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for malformed or out-of-range input that
	// slipped past request validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned on a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserDisabled is returned when a disabled user presents an otherwise
	// valid session token.
	ErrUserDisabled = errors.New("user is disabled")

	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrEventClosed is returned when registering for an event whose live
	// status is PAST.
	ErrEventClosed = errors.New("cannot register for past events")

	// ErrDeadlinePassed is returned when registering after the event's
	// registration deadline.
	ErrDeadlinePassed = errors.New("registration deadline has passed")

	// ErrDuplicateTeamName is returned when the event already has a
	// registration with the same team name, whether detected by the
	// pre-check or by the storage-layer unique constraint.
	ErrDuplicateTeamName = errors.New("team name already registered for this event")

	// ErrAlreadyDecided is returned when deciding a registration whose
	// decision is no longer PENDING.
	ErrAlreadyDecided = errors.New("registration already decided")
)
