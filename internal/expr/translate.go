package expr

import (
	"fmt"
	"strings"
)

// translator holds the output buffer and the range variable currently in
// scope while walking a predicate tree. One translator serves exactly one
// TranslateFilter call; nothing is shared across calls.
type translator struct {
	buf   strings.Builder
	scope string // range variable bound by the enclosing any(), empty at the outer level
}

// TranslateFilter renders a predicate tree as OData $filter text. Translation
// either produces the complete expression or fails with no partial output.
func TranslateFilter(root Node) (string, error) {
	if root == nil {
		return "", fmt.Errorf("%w: nil predicate", ErrMalformedPredicate)
	}
	t := &translator{}
	if err := t.walk(root); err != nil {
		return "", err
	}
	return t.buf.String(), nil
}

func (t *translator) walk(node Node) error {
	switch n := node.(type) {
	case *BinaryExpr:
		return t.walkBinary(n)
	case *MemberExpr:
		return t.walkMember(n)
	case *LiteralExpr:
		literal, err := formatLiteral(n.Value)
		if err != nil {
			return err
		}
		t.buf.WriteString(literal)
		return nil
	case *ParamExpr:
		// A bare parameter emits no text; the enclosing member access or
		// quantifier renders it.
		return nil
	case *AnyExpr:
		return t.walkAny(n)
	case nil:
		return fmt.Errorf("%w: nil node", ErrMalformedPredicate)
	default:
		return fmt.Errorf("%w: unexpected node type %T", ErrMalformedPredicate, node)
	}
}

func (t *translator) walkBinary(n *BinaryExpr) error {
	if !n.Operator.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(n.Operator))
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%w: binary expression is missing an operand", ErrMalformedPredicate)
	}
	if err := t.walkOperand(n.Left); err != nil {
		return err
	}
	t.buf.WriteByte(' ')
	t.buf.WriteString(string(n.Operator))
	t.buf.WriteByte(' ')
	return t.walkOperand(n.Right)
}

// walkOperand renders one side of a binary expression. Nested boolean
// groupings are parenthesized so the output never relies on OData operator
// precedence. Chains of the same associative operator still pick up
// parentheses on the nested side; the grouping is redundant but harmless.
func (t *translator) walkOperand(node Node) error {
	if nested, ok := node.(*BinaryExpr); ok && nested.Operator.logical() {
		t.buf.WriteByte('(')
		if err := t.walkBinary(nested); err != nil {
			return err
		}
		t.buf.WriteByte(')')
		return nil
	}
	return t.walk(node)
}

// walkMember renders a member chain as a navigation path. Chains rooted at
// the range variable bound by the enclosing any() are prefixed with that
// variable; the outer parameter contributes no prefix.
func (t *translator) walkMember(n *MemberExpr) error {
	names, param, err := pathSegments(n)
	if err != nil {
		return err
	}
	if t.scope != "" && param == t.scope {
		t.buf.WriteString(t.scope)
		t.buf.WriteByte('/')
	}
	t.buf.WriteString(strings.Join(names, "/"))
	return nil
}

func (t *translator) walkAny(n *AnyExpr) error {
	if n.Collection == nil || n.Var == "" || n.Predicate == nil {
		return fmt.Errorf("%w: incomplete any quantifier", ErrMalformedPredicate)
	}
	if err := t.walkMember(n.Collection); err != nil {
		return err
	}
	t.buf.WriteString("/any(")
	t.buf.WriteString(n.Var)
	t.buf.WriteString(": ")

	prev := t.scope
	t.scope = n.Var
	err := t.walk(n.Predicate)
	t.scope = prev
	if err != nil {
		return err
	}

	t.buf.WriteByte(')')
	return nil
}
