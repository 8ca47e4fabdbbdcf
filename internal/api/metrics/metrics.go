// Package metrics defines and registers all custom Prometheus metrics for the
// Quotify API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics use promauto and register themselves with the default registry on
// package initialisation; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quotify"

// ── Quote metrics ─────────────────────────────────────────────────────────────

// RandomDrawsTotal counts random-quote draws.
// Label:
//   - outcome: "served" (a quote was returned) or "empty" (the pool had no quotes)
var RandomDrawsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "random_draws_total",
		Help:      "Total number of random quote draws, labelled by outcome.",
	},
	[]string{"outcome"},
)

// QuotesReassignedTotal counts quotes re-pointed to the fallback category when
// their category is deleted.
var QuotesReassignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_reassigned_total",
		Help:      "Total number of quotes reassigned to the fallback category on category deletion.",
	},
)

// ── Suggestion metrics ────────────────────────────────────────────────────────

// SuggestionsSubmittedTotal counts user-submitted quote suggestions.
var SuggestionsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_submitted_total",
		Help:      "Total number of quote suggestions submitted.",
	},
)

// SuggestionsModeratedTotal counts moderation decisions.
// Label:
//   - decision: "approved" or "rejected"
var SuggestionsModeratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_moderated_total",
		Help:      "Total number of suggestions moderated, labelled by decision.",
	},
	[]string{"decision"},
)

// ── Like metrics ──────────────────────────────────────────────────────────────

// LikesTotal counts like and unlike actions.
// Label:
//   - action: "like" or "unlike"
var LikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of like and unlike actions.",
	},
	[]string{"action"},
)

// ── AI generation metrics ─────────────────────────────────────────────────────

// AiQuoteRequestsTotal counts AI quote generation requests.
// Label:
//   - outcome: "ok", "rate_limited" or "error"
var AiQuoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_quote_requests_total",
		Help:      "Total number of AI quote generation requests, labelled by outcome.",
	},
	[]string{"outcome"},
)

// AiQuoteDuration measures the end-to-end latency of an AI generation call,
// including retries.
var AiQuoteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_quote_duration_seconds",
		Help:      "Duration of AI quote generation calls, including retries.",
		Buckets:   prometheus.DefBuckets,
	},
)
