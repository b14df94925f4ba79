package odataquery

import (
	"errors"

	"github.com/nlstn/go-odata-query/internal/expr"
)

// Sentinel errors for query construction and translation failures.
// These can be used with errors.Is() for error handling.
var (
	// ErrMalformedPredicate indicates a structurally invalid expression tree,
	// such as a member chain that does not terminate in a parameter.
	ErrMalformedPredicate = expr.ErrMalformedPredicate

	// ErrUnsupportedOperator indicates a binary operator outside the
	// supported set (eq, ne, gt, ge, lt, le, and, or).
	ErrUnsupportedOperator = expr.ErrUnsupportedOperator

	// ErrUnsupportedPathExpression indicates a navigation path containing
	// anything other than member accesses rooted at a parameter.
	ErrUnsupportedPathExpression = expr.ErrUnsupportedPathExpression

	// ErrUnsupportedLiteral indicates a constant of a Go type that has no
	// OData literal form.
	ErrUnsupportedLiteral = expr.ErrUnsupportedLiteral

	// ErrInvalidPaging indicates a negative $skip or $top value.
	ErrInvalidPaging = errors.New("odataquery: invalid paging value")
)

// IsMalformedPredicate returns true if the error indicates a structurally
// invalid expression tree.
func IsMalformedPredicate(err error) bool {
	return errors.Is(err, ErrMalformedPredicate)
}

// IsUnsupportedOperator returns true if the error indicates an operator
// outside the supported set.
func IsUnsupportedOperator(err error) bool {
	return errors.Is(err, ErrUnsupportedOperator)
}

// IsUnsupportedPathExpression returns true if the error indicates an invalid
// navigation path.
func IsUnsupportedPathExpression(err error) bool {
	return errors.Is(err, ErrUnsupportedPathExpression)
}
