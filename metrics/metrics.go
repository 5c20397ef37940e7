// Package metrics provides in-process Prometheus counters for the logging
// facade: how many lines each category rendered at each level, and how many
// activities finished with which outcome.
//
// The counters live on a caller-supplied prometheus.Registerer, so an
// embedding application can expose them however it already exposes its own
// metrics. Nothing here ships data anywhere.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts rendered log lines and finished activities. A nil
// Recorder is valid and records nothing, so callers can wire it optionally.
type Recorder struct {
	lines      *prometheus.CounterVec
	activities *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "do_log_lines_total",
		Help: "Log lines rendered, by category and level.",
	}, []string{"category", "level"})
	if err := reg.Register(lines); err != nil {
		return nil, fmt.Errorf("registering line counter: %w", err)
	}

	activities := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "do_activities_total",
		Help: "Activities finished, by category and outcome.",
	}, []string{"category", "outcome"})
	if err := reg.Register(activities); err != nil {
		return nil, fmt.Errorf("registering activity counter: %w", err)
	}

	return &Recorder{lines: lines, activities: activities}, nil
}

// LineWritten counts one rendered log event for a category at a level.
func (r *Recorder) LineWritten(category, level string) {
	if r == nil {
		return
	}
	r.lines.WithLabelValues(category, level).Inc()
}

// ActivityFinished counts one closed activity scope.
func (r *Recorder) ActivityFinished(category string, success bool) {
	if r == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	r.activities.WithLabelValues(category, outcome).Inc()
}
