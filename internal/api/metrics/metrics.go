// Package metrics defines all custom Prometheus metrics for the storefront
// gateway. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// UpstreamRequestsTotal counts calls to the Store Rating backend.
// Labels:
//   - endpoint: logical endpoint name (e.g. "list_stores")
//   - outcome: "ok", "rejected", "conflict", "unauthorized", "network", "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the backend, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// CacheDecisionsTotal counts query cache lookups.
// Labels:
//   - endpoint: logical endpoint name
//   - result: "hit", "miss" or "bypass" (forced refetch)
var CacheDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_decisions_total",
		Help:      "Total number of response cache lookups, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// CacheInvalidationsTotal counts tag invalidations fired by mutations.
// Label:
//   - tag: the invalidation tag (e.g. "stores")
var CacheInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Total number of cache tag invalidations fired by write endpoints.",
	},
	[]string{"tag"},
)

// GuardRedirectsTotal counts navigations the route guard bounced.
// Label:
//   - reason: "no_session", "bad_token", "role_mismatch", "already_signed_in"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of navigations redirected by the route guard, by reason.",
	},
	[]string{"reason"},
)

// SignInsTotal counts sign-in attempts through the gateway.
// Label:
//   - outcome: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by outcome.",
	},
	[]string{"outcome"},
)
