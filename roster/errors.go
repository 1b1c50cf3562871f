package roster

import "errors"

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrParticipantNotFound is returned when the email is not on the
	// activity's roster.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadySignedUp is returned when the email is already on the
	// activity's roster.
	ErrAlreadySignedUp = errors.New("already signed up for this activity")

	// ErrActivityFull is returned when the roster has reached max_participants.
	ErrActivityFull = errors.New("activity is full")
)
