/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics exposes Prometheus counters for edit-session outcomes.
// A Recorder pre-binds the repository label so the session and publisher
// layers record without carrying label plumbing; a nil Recorder is a no-op,
// which keeps instrumentation optional in tests and dry runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edit_sessions_started_total",
			Help: "Total number of edit sessions started",
		},
		[]string{"repository"},
	)

	sessionsFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edit_sessions_finalized_total",
			Help: "Total number of edit sessions finalized into a pull request",
		},
		[]string{"repository"},
	)

	editsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edit_session_edits_total",
			Help: "Total number of committed mutations, by operation",
		},
		[]string{"repository", "operation"},
	)

	undosApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edit_session_undos_total",
			Help: "Total number of compensating undo commits",
		},
		[]string{"repository"},
	)

	publishAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edit_session_publish_attempts_total",
			Help: "Total number of pull-request publish attempts, by outcome",
		},
		[]string{"repository", "outcome"},
	)
)

// Recorder records edit-session metrics for one repository.
type Recorder struct {
	repository string

	started   prometheus.Counter
	finalized prometheus.Counter
	undos     prometheus.Counter
}

// ForRepository returns a Recorder labeled with "owner/name".
func ForRepository(owner, name string) *Recorder {
	repository := owner + "/" + name
	return &Recorder{
		repository: repository,
		started:    sessionsStarted.WithLabelValues(repository),
		finalized:  sessionsFinalized.WithLabelValues(repository),
		undos:      undosApplied.WithLabelValues(repository),
	}
}

// SessionStarted counts a new session.
func (r *Recorder) SessionStarted() {
	if r == nil {
		return
	}
	r.started.Inc()
}

// SessionFinalized counts a session that ended in a pull request.
func (r *Recorder) SessionFinalized() {
	if r == nil {
		return
	}
	r.finalized.Inc()
}

// EditApplied counts one committed mutation ("create", "edit", "delete").
func (r *Recorder) EditApplied(operation string) {
	if r == nil {
		return
	}
	editsApplied.WithLabelValues(r.repository, operation).Inc()
}

// UndoApplied counts one compensating undo commit.
func (r *Recorder) UndoApplied() {
	if r == nil {
		return
	}
	r.undos.Inc()
}

// PublishAttempt counts one publish attempt with its outcome
// ("success", "transient", "failure").
func (r *Recorder) PublishAttempt(outcome string) {
	if r == nil {
		return
	}
	publishAttempts.WithLabelValues(r.repository, outcome).Inc()
}
