// Package report publishes roster occupancy metrics.
//
// A Reporter snapshots the activity store and records one participant
// and one capacity sample per activity. Wired to a push registry and a
// cron trigger it feeds the school's enrollment dashboard; the same
// instruments work against the scrape registry in tests.
package report

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
)

// ActivityLister provides the roster snapshot to report on.
type ActivityLister interface {
	List() map[string]roster.Activity
}

// Reporter records roster occupancy into a metrics registry.
type Reporter struct {
	lister       ActivityLister
	logger       *slog.Logger
	participants metrics.GaugeVec
	capacity     metrics.GaugeVec
}

// New creates a Reporter with its instruments registered in registry.
func New(lister ActivityLister, registry metrics.Registry, logger *slog.Logger) (*Reporter, error) {
	participants, err := registry.NewGaugeVec(prometheus.GaugeOpts{
		Name: "activity_participants",
		Help: "Current number of students signed up per activity.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating participants gauge: %w", err)
	}

	capacity, err := registry.NewGaugeVec(prometheus.GaugeOpts{
		Name: "activity_capacity",
		Help: "Maximum number of students per activity.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating capacity gauge: %w", err)
	}

	return &Reporter{
		lister:       lister,
		logger:       logger,
		participants: participants,
		capacity:     capacity,
	}, nil
}

// Run records one sample per activity. Implements cron.Runnable.
func (r *Reporter) Run() error {
	activities := r.lister.List()

	for name, activity := range activities {
		labels := prometheus.Labels{"activity": name}
		r.participants.With(labels).Set(float64(len(activity.Participants)))
		r.capacity.With(labels).Set(float64(activity.MaxParticipants))
	}

	r.logger.Debug("roster report recorded", "activities", len(activities))
	return nil
}
