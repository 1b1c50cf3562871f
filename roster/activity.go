// Package roster holds the in-memory activity registry for the
// Mergington High School signup service.
//
// The Store is the sole owner of all activity records. Callers only
// ever see copies, so nothing outside this package can mutate a roster
// without going through Signup or Remove.
package roster

// Activity describes a single extracurricular offering.
type Activity struct {
	// Description is a one-line summary shown in the activity list.
	Description string `json:"description"`
	// Schedule is free-form scheduling text (e.g. "Fridays, 3:30 PM - 5:00 PM").
	Schedule string `json:"schedule"`
	// MaxParticipants caps the roster size, enforced at signup time.
	MaxParticipants int `json:"max_participants"`
	// Participants holds student emails in signup order.
	Participants []string `json:"participants"`
}

// clone returns a deep copy so callers cannot reach into the store's slices.
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// IsFull reports whether the roster has reached its participant cap.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}
