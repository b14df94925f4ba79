// Package observability provides OpenTelemetry-based instrumentation for
// query building.
//
// All instrumentation is opt-in. When no providers are configured, no-op
// implementations are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/nlstn/go-odata-query"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/nlstn/go-odata-query"
)

// Semantic attribute keys for build spans.
const (
	// Clause presence attributes
	AttrHasFilter  = "odataquery.clause.filter"
	AttrHasOrderBy = "odataquery.clause.orderby"
	AttrHasSkip    = "odataquery.clause.skip"
	AttrHasTop     = "odataquery.clause.top"
	AttrHasExpand  = "odataquery.clause.expand"

	// Result attributes
	AttrQueryLength = "odataquery.query.length"

	// Error attributes
	AttrErrorMessage = "odataquery.error.message"
)

// ClauseAttr builds a clause presence attribute.
func ClauseAttr(key string, present bool) attribute.KeyValue {
	return attribute.Bool(key, present)
}

// QueryLengthAttr builds the query length attribute.
func QueryLengthAttr(length int) attribute.KeyValue {
	return attribute.Int(AttrQueryLength, length)
}
