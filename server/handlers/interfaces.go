// Package handlers provides HTTP handlers for the activities server.
//
// Each handler is in its own file and implements http.Handler.
// Handlers use interfaces to access the activity store, keeping them
// testable with small mocks.
package handlers

import (
	"github.com/mergington/activities/roster"
)

// ActivityLister provides a snapshot of every activity.
type ActivityLister interface {
	List() map[string]roster.Activity
}

// SignupService adds a participant to an activity's roster.
type SignupService interface {
	Signup(activity, email string) error
}

// WithdrawalService removes a participant from an activity's roster.
type WithdrawalService interface {
	Remove(activity, email string) error
}
