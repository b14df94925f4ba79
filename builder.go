package odataquery

import "github.com/nlstn/go-odata-query/internal/expr"

// implicitParam names the parameter rooting member chains created by
// Property. The name never appears in output; OData navigation paths are
// relative to the current instance.
const implicitParam = "$it"

// Property starts a member access chain on the entity being queried.
// Property("Address", "City") addresses the nested City property and
// resolves to the navigation path Address/City.
func Property(name string, nested ...string) *MemberExpr {
	member := &MemberExpr{Name: name, Base: &ParamExpr{Name: implicitParam}}
	for _, n := range nested {
		member = &MemberExpr{Name: n, Base: member}
	}
	return member
}

// Var references the range variable bound by an enclosing Any quantifier.
// Var("o").Member("Total").Gt(100) inside Property("Orders").Any("o", ...)
// renders as o/Total gt 100.
func Var(name string) *ParamExpr {
	return &ParamExpr{Name: name}
}

// Literal wraps a constant value as an expression node.
func Literal(value interface{}) *LiteralExpr {
	return &LiteralExpr{Value: value}
}

// And combines two boolean subexpressions conjunctively.
func And(left, right Node) *BinaryExpr {
	return expr.And(left, right)
}

// Or combines two boolean subexpressions disjunctively.
func Or(left, right Node) *BinaryExpr {
	return expr.Or(left, right)
}
