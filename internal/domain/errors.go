package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. destination too short, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrOutOfRange is returned when a timestamp falls outside the window it is
// scheduled against (an activity outside its trip's dates).
// Handlers should map this to HTTP 422 with a distinct error code.
var ErrOutOfRange = errors.New("out of range")

// Specific conditions. Each wraps exactly one of the sentinels above so callers
// can match either the broad category or the precise cause with errors.Is.
var (
	ErrTripNotFound        = newError(ErrNotFound, "trip not found")
	ErrParticipantNotFound = newError(ErrNotFound, "participant not found")

	ErrStartInPast    = newError(ErrValidation, "trip start date must not be in the past")
	ErrEndBeforeStart = newError(ErrValidation, "trip end date must be after its start date")

	ErrActivityOutOfRange = newError(ErrOutOfRange, "activity must occur within the trip dates")
)

// Error is a categorized, user-facing failure. Its message is safe to show
// to API clients; Unwrap exposes the category sentinel.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// Message returns the client-facing text without any wrapping context.
func (e *Error) Message() string { return e.msg }

// Invalid returns a validation error carrying msg.
func Invalid(msg string) error {
	return newError(ErrValidation, msg)
}

// MessageOf extracts the client-facing message from err, falling back to the
// category text when err carries no *Error.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message()
	}
	switch KindOf(err) {
	case KindNotFound:
		return ErrNotFound.Error()
	case KindValidation:
		return ErrValidation.Error()
	case KindOutOfRange:
		return ErrOutOfRange.Error()
	}
	return "internal error"
}

// Kind classifies an error into the taxonomy the HTTP layer understands.
type Kind int

const (
	// KindInternal is anything not covered below: infrastructure failures.
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindOutOfRange
)

// KindOf reports which category err belongs to.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	default:
		return KindInternal
	}
}

func newError(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}
