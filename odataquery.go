// Package odataquery translates typed predicate expression trees and
// ordering, paging and expansion directives into OData v4.01 query strings
// ($filter, $orderby, $skip, $top, $expand).
//
// Callers describe query intent with expression nodes, either assembled
// directly or through the fluent helpers (Property, Var, And, Or), and a
// Query renders them as unencoded query text. The library only emits text:
// it issues no request, and the caller is responsible for percent-encoding
// the result before placing it in a URL.
package odataquery

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-odata-query/internal/expr"
	"github.com/nlstn/go-odata-query/internal/observability"
)

// orderByItem pairs a navigation path with its sort direction.
type orderByItem struct {
	path       *MemberExpr
	descending bool
}

// Query accumulates OData query options and renders them as an unencoded
// query string. A Query carries no state between Build calls; distinct
// Query values may be built concurrently.
type Query struct {
	filter  Node
	orderBy []orderByItem
	skip    *int
	top     *int
	expand  []*MemberExpr

	logger  *slog.Logger
	tracer  *observability.Tracer
	metrics *observability.Metrics
}

// NewQuery creates an empty query. Building it without further options
// yields the empty string.
func NewQuery() *Query {
	return &Query{}
}

// Filter sets the predicate rendered as the $filter clause.
func (q *Query) Filter(pred Node) *Query {
	q.filter = pred
	return q
}

// OrderBy appends an ascending ordering directive.
func (q *Query) OrderBy(path *MemberExpr) *Query {
	q.orderBy = append(q.orderBy, orderByItem{path: path})
	return q
}

// OrderByDesc appends a descending ordering directive.
func (q *Query) OrderByDesc(path *MemberExpr) *Query {
	q.orderBy = append(q.orderBy, orderByItem{path: path, descending: true})
	return q
}

// Skip sets the number of entities to skip. The value must be non-negative.
func (q *Query) Skip(n int) *Query {
	q.skip = &n
	return q
}

// Top sets the maximum number of entities to return. The value must be
// non-negative.
func (q *Query) Top(n int) *Query {
	q.top = &n
	return q
}

// Expand appends navigation paths to include as the $expand clause.
func (q *Query) Expand(paths ...*MemberExpr) *Query {
	q.expand = append(q.expand, paths...)
	return q
}

// WithLogger sets the logger used to report built queries at debug level.
// Without a logger the query builds silently.
func (q *Query) WithLogger(logger *slog.Logger) *Query {
	q.logger = logger
	return q
}

// WithObservability enables OpenTelemetry instrumentation for Build calls.
func (q *Query) WithObservability(cfg ObservabilityConfig) *Query {
	q.tracer, q.metrics = observability.Configure(cfg)
	return q
}

// Build renders the accumulated options as an OData query string.
func (q *Query) Build() (string, error) {
	return q.BuildContext(context.Background())
}

// BuildContext renders the accumulated options as an OData query string,
// propagating ctx to the configured instrumentation.
func (q *Query) BuildContext(ctx context.Context) (string, error) {
	start := time.Now()
	if q.tracer != nil {
		var span trace.Span
		ctx, span = q.tracer.StartBuild(ctx, q.spanAttributes()...)
		defer span.End()
	}

	raw, err := q.build()

	if q.metrics != nil {
		q.metrics.RecordBuild(ctx, time.Since(start), err)
	}
	if err != nil {
		if q.tracer != nil {
			q.tracer.SetError(ctx, err)
		}
		return "", err
	}
	if q.tracer != nil {
		trace.SpanFromContext(ctx).SetAttributes(observability.QueryLengthAttr(len(raw)))
	}
	if q.logger != nil {
		q.logger.Debug("built OData query", slog.String("query", raw))
	}
	return raw, nil
}

// build assembles the clauses in their fixed order: $filter, $orderby,
// $skip, $top, $expand. Clauses are joined with '&' and absent options
// contribute nothing.
func (q *Query) build() (string, error) {
	var clauses []string

	if q.filter != nil {
		filter, err := expr.TranslateFilter(q.filter)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, "$filter="+filter)
	}

	if len(q.orderBy) > 0 {
		items := make([]string, len(q.orderBy))
		for i, item := range q.orderBy {
			path, err := expr.ResolvePath(item.path)
			if err != nil {
				return "", err
			}
			if item.descending {
				path += " desc"
			}
			items[i] = path
		}
		clauses = append(clauses, "$orderby="+strings.Join(items, ","))
	}

	if q.skip != nil {
		if *q.skip < 0 {
			return "", fmt.Errorf("%w: $skip=%d", ErrInvalidPaging, *q.skip)
		}
		clauses = append(clauses, "$skip="+strconv.Itoa(*q.skip))
	}

	if q.top != nil {
		if *q.top < 0 {
			return "", fmt.Errorf("%w: $top=%d", ErrInvalidPaging, *q.top)
		}
		clauses = append(clauses, "$top="+strconv.Itoa(*q.top))
	}

	if len(q.expand) > 0 {
		paths := make([]string, len(q.expand))
		for i, member := range q.expand {
			path, err := expr.ResolvePath(member)
			if err != nil {
				return "", err
			}
			paths[i] = path
		}
		clauses = append(clauses, "$expand="+strings.Join(paths, ","))
	}

	return strings.Join(clauses, "&"), nil
}

func (q *Query) spanAttributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		observability.ClauseAttr(observability.AttrHasFilter, q.filter != nil),
		observability.ClauseAttr(observability.AttrHasOrderBy, len(q.orderBy) > 0),
		observability.ClauseAttr(observability.AttrHasSkip, q.skip != nil),
		observability.ClauseAttr(observability.AttrHasTop, q.top != nil),
		observability.ClauseAttr(observability.AttrHasExpand, len(q.expand) > 0),
	}
}

// TranslateFilter renders a predicate tree as OData $filter text, without
// the surrounding query assembly.
func TranslateFilter(root Node) (string, error) {
	return expr.TranslateFilter(root)
}

// ResolvePath flattens a member access chain into a slash-separated
// navigation path.
func ResolvePath(path *MemberExpr) (string, error) {
	return expr.ResolvePath(path)
}

// Validate checks the structural invariants of a predicate tree without
// translating it.
func Validate(root Node) error {
	return expr.Validate(root)
}
