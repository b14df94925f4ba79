package expr

import "errors"

// Sentinel errors reported by predicate validation and translation.
// Callers match them with errors.Is().
var (
	// ErrMalformedPredicate indicates a structurally invalid expression tree,
	// such as a member chain that does not terminate in a parameter or a
	// quantifier without a range variable.
	ErrMalformedPredicate = errors.New("odataquery: malformed predicate")

	// ErrUnsupportedOperator indicates a binary operator outside the
	// supported set (eq, ne, gt, ge, lt, le, and, or).
	ErrUnsupportedOperator = errors.New("odataquery: unsupported operator")

	// ErrUnsupportedPathExpression indicates a navigation path containing
	// anything other than member accesses rooted at a parameter.
	ErrUnsupportedPathExpression = errors.New("odataquery: unsupported path expression")

	// ErrUnsupportedLiteral indicates a constant of a Go type that has no
	// OData literal form.
	ErrUnsupportedLiteral = errors.New("odataquery: unsupported literal type")
)
