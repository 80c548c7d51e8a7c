// Package metrics defines and registers all custom Prometheus metrics for the
// matchpoint dating API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "matchpoint"

// UsersRegisteredTotal counts successfully created accounts.
// Label:
//   - membership: the initial tier ("Free" or "Paid")
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created, by initial membership tier.",
	},
	[]string{"membership"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_fields" or "invalid_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// MatchGateRejectionsTotal counts match requests stopped before the query ran.
// Label:
//   - gate: "membership" (Free member) or "incomplete_profile"
var MatchGateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_gate_rejections_total",
		Help:      "Total number of match requests rejected by a precondition gate.",
	},
	[]string{"gate"},
)

// MatchCacheTotal counts match-cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (computed from Mongo)
var MatchCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_cache_total",
		Help:      "Total number of match cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// MatchesComputedTotal counts candidate lists computed from the store.
var MatchesComputedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_computed_total",
		Help:      "Total number of match candidate lists computed from MongoDB.",
	},
)

// RatingsSubmittedTotal counts accepted rating submissions.
// Label:
//   - stars: the star value ("1".."5")
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of ratings accepted, by star value.",
	},
	[]string{"stars"},
)

// CacheInvalidationQueueDepth tracks pending entries in each invalidator worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var CacheInvalidationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_invalidation_queue_depth",
		Help:      "Current number of user IDs pending in each invalidator worker channel.",
	},
	[]string{"worker_id"},
)
