// Package expr defines the predicate expression tree that the translator
// renders into OData $filter syntax, together with the path resolver and the
// filter translator that walk it.
package expr

import "fmt"

// Node represents a node in the predicate expression tree.
type Node interface {
	exprNode()
}

// Operator identifies a binary operator. The string value is the OData
// operator token emitted into $filter text.
type Operator string

// Supported binary operators. The comparison operators relate a property
// path to a literal; And and Or combine boolean subexpressions.
const (
	OpEq  Operator = "eq"
	OpNe  Operator = "ne"
	OpGt  Operator = "gt"
	OpGe  Operator = "ge"
	OpLt  Operator = "lt"
	OpLe  Operator = "le"
	OpAnd Operator = "and"
	OpOr  Operator = "or"
)

// valid reports whether op is one of the eight supported operators.
func (op Operator) valid() bool {
	switch op {
	case OpEq, OpNe, OpGt, OpGe, OpLt, OpLe, OpAnd, OpOr:
		return true
	}
	return false
}

// logical reports whether op joins boolean subexpressions rather than
// comparing a path to a literal.
func (op Operator) logical() bool {
	return op == OpAnd || op == OpOr
}

// BinaryExpr represents a binary expression (e.g., Price gt 100, A and B).
type BinaryExpr struct {
	Left     Node
	Operator Operator
	Right    Node
}

func (e *BinaryExpr) exprNode() {}

// MemberExpr represents access to a named property. Base is either another
// MemberExpr or the ParamExpr that roots the chain; chaining forms a
// navigation path.
type MemberExpr struct {
	Name string
	Base Node
}

func (e *MemberExpr) exprNode() {}

// LiteralExpr represents a constant value.
type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) exprNode() {}

// ParamExpr represents the parameter a member chain is rooted at: the
// implicit current instance at the outer level, or the range variable bound
// by an enclosing AnyExpr.
type ParamExpr struct {
	Name string
}

func (e *ParamExpr) exprNode() {}

// AnyExpr represents the collection quantifier Collection/any(v: predicate).
// The predicate may reference the range variable through member chains
// rooted at a ParamExpr carrying Var.
type AnyExpr struct {
	Collection *MemberExpr
	Var        string
	Predicate  Node
}

func (e *AnyExpr) exprNode() {}

// Validate walks a predicate tree and checks its structural invariants:
// every member chain terminates in a parameter, every quantifier names a
// range variable and carries a collection path and a predicate, and every
// binary operator is one of the supported eight.
func Validate(root Node) error {
	if root == nil {
		return fmt.Errorf("%w: nil predicate", ErrMalformedPredicate)
	}
	return validateNode(root)
}

func validateNode(node Node) error {
	switch n := node.(type) {
	case *BinaryExpr:
		if !n.Operator.valid() {
			return fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(n.Operator))
		}
		if n.Left == nil || n.Right == nil {
			return fmt.Errorf("%w: binary expression is missing an operand", ErrMalformedPredicate)
		}
		if err := validateNode(n.Left); err != nil {
			return err
		}
		return validateNode(n.Right)
	case *MemberExpr:
		if _, _, err := pathSegments(n); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPredicate, err)
		}
		return nil
	case *LiteralExpr, *ParamExpr:
		return nil
	case *AnyExpr:
		if n.Collection == nil {
			return fmt.Errorf("%w: quantifier has no collection path", ErrMalformedPredicate)
		}
		if _, _, err := pathSegments(n.Collection); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPredicate, err)
		}
		if n.Var == "" {
			return fmt.Errorf("%w: quantifier has no range variable", ErrMalformedPredicate)
		}
		if n.Predicate == nil {
			return fmt.Errorf("%w: quantifier has no predicate", ErrMalformedPredicate)
		}
		return validateNode(n.Predicate)
	case nil:
		return fmt.Errorf("%w: nil node", ErrMalformedPredicate)
	default:
		return fmt.Errorf("%w: unexpected node type %T", ErrMalformedPredicate, node)
	}
}
