package odataquery

import (
	"github.com/nlstn/go-odata-query/internal/expr"
	"github.com/nlstn/go-odata-query/internal/observability"
)

// Node re-exports the predicate expression node interface for external consumers.
type Node = expr.Node

// BinaryExpr re-exports the binary expression node for external consumers.
type BinaryExpr = expr.BinaryExpr

// MemberExpr re-exports the member access node for external consumers.
type MemberExpr = expr.MemberExpr

// LiteralExpr re-exports the constant node for external consumers.
type LiteralExpr = expr.LiteralExpr

// ParamExpr re-exports the parameter node for external consumers.
type ParamExpr = expr.ParamExpr

// AnyExpr re-exports the collection quantifier node for external consumers.
type AnyExpr = expr.AnyExpr

// Operator re-exports the binary operator type for external consumers.
type Operator = expr.Operator

// Supported binary operators.
const (
	OpEq  = expr.OpEq
	OpNe  = expr.OpNe
	OpGt  = expr.OpGt
	OpGe  = expr.OpGe
	OpLt  = expr.OpLt
	OpLe  = expr.OpLe
	OpAnd = expr.OpAnd
	OpOr  = expr.OpOr
)

// ObservabilityConfig re-exports the opt-in OpenTelemetry configuration.
type ObservabilityConfig = observability.Config
