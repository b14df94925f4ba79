package odataquery_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	odataquery "github.com/nlstn/go-odata-query"
)

func TestBuild_EmptyQuery(t *testing.T) {
	got, err := odataquery.NewQuery().Build()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestBuild_SingleClauses(t *testing.T) {
	tests := []struct {
		name  string
		query *odataquery.Query
		want  string
	}{
		{
			name:  "Skip only",
			query: odataquery.NewQuery().Skip(10),
			want:  "$skip=10",
		},
		{
			name:  "Top only",
			query: odataquery.NewQuery().Top(5),
			want:  "$top=5",
		},
		{
			name:  "Skip zero is emitted",
			query: odataquery.NewQuery().Skip(0),
			want:  "$skip=0",
		},
		{
			name:  "Filter only",
			query: odataquery.NewQuery().Filter(odataquery.Property("Age").Gt(18)),
			want:  "$filter=Age gt 18",
		},
		{
			name:  "OrderBy only",
			query: odataquery.NewQuery().OrderBy(odataquery.Property("Address", "City")),
			want:  "$orderby=Address/City",
		},
		{
			name:  "OrderBy descending",
			query: odataquery.NewQuery().OrderByDesc(odataquery.Property("Name")),
			want:  "$orderby=Name desc",
		},
		{
			name: "Multiple orderby items",
			query: odataquery.NewQuery().
				OrderByDesc(odataquery.Property("Name")).
				OrderBy(odataquery.Property("Age")),
			want: "$orderby=Name desc,Age",
		},
		{
			name: "Expand with multiple paths",
			query: odataquery.NewQuery().Expand(
				odataquery.Property("Department"),
				odataquery.Property("Department", "Manager"),
			),
			want: "$expand=Department,Department/Manager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_ClauseOrderIsFixed(t *testing.T) {
	query := odataquery.NewQuery().
		Expand(odataquery.Property("Department")).
		Top(5).
		Skip(10).
		OrderBy(odataquery.Property("Address", "City")).
		Filter(odataquery.Property("Age").Gt(18))

	got, err := query.Build()
	require.NoError(t, err)
	assert.Equal(t, "$filter=Age gt 18&$orderby=Address/City&$skip=10&$top=5&$expand=Department", got)
}

func TestBuild_OrderByAndTopScenario(t *testing.T) {
	got, err := odataquery.NewQuery().
		OrderBy(odataquery.Property("Address", "City")).
		Top(5).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "$orderby=Address/City&$top=5", got)
}

func TestBuild_GroupedFilterScenario(t *testing.T) {
	pred := odataquery.And(
		odataquery.Property("Age").Gt(18),
		odataquery.Or(
			odataquery.Property("Status").Eq("Active"),
			odataquery.Property("Status").Eq("Pending"),
		),
	)

	got, err := odataquery.NewQuery().Filter(pred).Build()
	require.NoError(t, err)
	assert.Equal(t, "$filter=Age gt 18 and (Status eq 'Active' or Status eq 'Pending')", got)
}

func TestBuild_AnyQuantifierScenario(t *testing.T) {
	pred := odataquery.Property("Orders").Any("o",
		odataquery.Var("o").Member("Total").Gt(100),
	)

	got, err := odataquery.NewQuery().Filter(pred).Build()
	require.NoError(t, err)
	assert.Equal(t, "$filter=Orders/any(o: o/Total gt 100)", got)
}

func TestBuild_IsIdempotent(t *testing.T) {
	query := odataquery.NewQuery().
		Filter(odataquery.Property("Age").Gt(18)).
		OrderBy(odataquery.Property("Name")).
		Skip(10).
		Top(5).
		Expand(odataquery.Property("Department"))

	first, err := query.Build()
	require.NoError(t, err)
	second, err := query.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuild_NegativePagingRejected(t *testing.T) {
	tests := []struct {
		name  string
		query *odataquery.Query
	}{
		{
			name:  "Negative skip",
			query: odataquery.NewQuery().Skip(-1),
		},
		{
			name:  "Negative top",
			query: odataquery.NewQuery().Top(-5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Build()
			require.ErrorIs(t, err, odataquery.ErrInvalidPaging)
			assert.Equal(t, "", got)
		})
	}
}

func TestBuild_FilterErrorAbortsWholeQuery(t *testing.T) {
	bad := &odataquery.BinaryExpr{
		Left:     odataquery.Property("Age"),
		Operator: odataquery.Operator("mod"),
		Right:    odataquery.Literal(2),
	}

	got, err := odataquery.NewQuery().
		Filter(bad).
		Skip(10).
		Build()
	require.ErrorIs(t, err, odataquery.ErrUnsupportedOperator)
	assert.True(t, odataquery.IsUnsupportedOperator(err))
	assert.Equal(t, "", got)
}

func TestBuild_ExpandErrorPropagates(t *testing.T) {
	broken := &odataquery.MemberExpr{Name: "Department", Base: odataquery.Literal(1)}

	got, err := odataquery.NewQuery().Expand(broken).Build()
	require.ErrorIs(t, err, odataquery.ErrUnsupportedPathExpression)
	assert.Equal(t, "", got)
}

func TestBuildContext_WithObservabilityAndLogger(t *testing.T) {
	var logged strings.Builder
	logger := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))

	query := odataquery.NewQuery().
		Filter(odataquery.Property("Age").Gt(18)).
		WithLogger(logger).
		WithObservability(odataquery.ObservabilityConfig{})

	got, err := query.BuildContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$filter=Age gt 18", got)
	assert.Contains(t, logged.String(), "built OData query")
}

func TestTranslateFilter_Exported(t *testing.T) {
	got, err := odataquery.TranslateFilter(odataquery.Property("Status").Eq("Active"))
	require.NoError(t, err)
	assert.Equal(t, "Status eq 'Active'", got)
}

func TestResolvePath_Exported(t *testing.T) {
	got, err := odataquery.ResolvePath(odataquery.Property("Address", "City"))
	require.NoError(t, err)
	assert.Equal(t, "Address/City", got)
}

func TestValidate_Exported(t *testing.T) {
	require.NoError(t, odataquery.Validate(odataquery.Property("Age").Gt(18)))

	err := odataquery.Validate(&odataquery.MemberExpr{Name: "City"})
	require.ErrorIs(t, err, odataquery.ErrMalformedPredicate)
	assert.True(t, odataquery.IsMalformedPredicate(err))
}
