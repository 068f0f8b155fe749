// Package observability provides application-level Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GraphQLOperations counts executed GraphQL operations by name and outcome.
// HTTP-level metrics are handled by the fiberprometheus middleware; this
// tracks the operation inside the single /graphql route.
var GraphQLOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bulletin_graphql_operations_total",
		Help: "Number of GraphQL operations executed, by operation name and outcome.",
	},
	[]string{"operation", "outcome"},
)
