// Package metrics defines and registers all custom Prometheus metrics for the
// Senvo shipping API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "senvo"

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - carrier: the carrier name the shipment was booked with (e.g. "ups")
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by carrier.",
	},
	[]string{"carrier"},
)

// ShipmentsCreateErrorsTotal counts create requests that were rejected.
// Label:
//   - reason: short description of the failure (e.g. "validation", "reference_not_found", "conflict")
var ShipmentsCreateErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_create_errors_total",
		Help:      "Total number of shipment create requests that failed.",
	},
	[]string{"reason"},
)

// ShipmentsListedTotal counts list requests served successfully.
var ShipmentsListedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_listed_total",
		Help:      "Total number of shipment list requests served.",
	},
)

// IdempotentReplaysTotal counts create requests answered from the
// idempotency store instead of inserting a new row.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests replayed from the idempotency store.",
	},
)
