package handlers

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
)

// mockLister is a test implementation of ActivityLister.
type mockLister struct {
	activities map[string]roster.Activity
}

func (m *mockLister) List() map[string]roster.Activity {
	return m.activities
}

// mockSignupService is a test implementation of SignupService.
type mockSignupService struct {
	err      error
	activity string
	email    string
}

func (m *mockSignupService) Signup(activity, email string) error {
	m.activity = activity
	m.email = email
	return m.err
}

// mockWithdrawalService is a test implementation of WithdrawalService.
type mockWithdrawalService struct {
	err      error
	activity string
	email    string
}

func (m *mockWithdrawalService) Remove(activity, email string) error {
	m.activity = activity
	m.email = email
	return m.err
}

// countingVec records counter increments keyed by label values.
type countingVec struct {
	mu     sync.Mutex
	counts map[string]float64
}

func newCountingVec() *countingVec {
	return &countingVec{counts: make(map[string]float64)}
}

func (v *countingVec) With(labels prometheus.Labels) metrics.Counter {
	return &countingCounter{vec: v, key: labels["activity"] + "/" + labels["outcome"]}
}

type countingCounter struct {
	vec *countingVec
	key string
}

func (c *countingCounter) Inc() {
	c.Add(1)
}

func (c *countingCounter) Add(delta float64) {
	c.vec.mu.Lock()
	defer c.vec.mu.Unlock()
	c.vec.counts[c.key] += delta
}
