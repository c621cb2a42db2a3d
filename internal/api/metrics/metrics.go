// Package metrics defines and registers all custom Prometheus metrics for the
// network categorizer backend. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry via promauto at package init;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "categorizer"

// ── Data metrics ──────────────────────────────────────────────────────────────

// CategoriesCreatedTotal counts user-created categories (seeds excluded).
var CategoriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "categories_created_total",
		Help:      "Total number of categories created.",
	},
)

// ConnectionsUpsertedTotal counts tagging panel saves.
// Label:
//   - result: "created" (first save for this profile id) or "updated"
var ConnectionsUpsertedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_upserted_total",
		Help:      "Total number of connection saves, by result (created/updated).",
	},
	[]string{"result"},
)

// ── Transfer metrics ──────────────────────────────────────────────────────────

// ExportsTotal counts generated export files.
// Label:
//   - mode: "all", "single", or "backup"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of export files generated, by mode.",
	},
	[]string{"mode"},
)

// ImportsTotal counts import attempts that passed validation.
// Label:
//   - result: "ok" or "error" (storage write failed after validation)
var ImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Total number of imports, by result.",
	},
	[]string{"result"},
)

// SyncsTotal counts mock sync runs.
var SyncsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "syncs_total",
		Help:      "Total number of mock connection syncs.",
	},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// BroadcastsDroppedTotal counts notifications lost because a subscriber's
// buffer was full. Delivery is best-effort; drops are expected under load.
var BroadcastsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_dropped_total",
		Help:      "Total number of broadcast events dropped on full subscriber buffers.",
	},
)

// HandoffsTotal counts category modal handoff records by outcome.
// Label:
//   - result: "written", "consumed", or "expired"
var HandoffsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handoffs_total",
		Help:      "Total number of category modal handoff records, by outcome.",
	},
	[]string{"result"},
)
