// Package metrics defines and registers the custom Prometheus metrics for the
// records API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init
// and are exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "records"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected" (invalid credentials; the two underlying
//     causes are intentionally not distinguished)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result (ok/rejected).",
	},
	[]string{"result"},
)

// TokenResolutionsTotal counts bearer-token resolutions on protected routes.
// Label:
//   - result: "ok" or "rejected" (malformed, bad signature, expired, or
//     subject no longer present)
var TokenResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_resolutions_total",
		Help:      "Total number of bearer token resolutions, labelled by result (ok/rejected).",
	},
	[]string{"result"},
)

// ItemsCreatedTotal counts newly created items.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of items created.",
	},
)
