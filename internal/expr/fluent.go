package expr

// Fluent construction helpers. They only assemble nodes; structural
// validation happens in Validate and during translation.

// Member extends the chain with access to a named property.
func (e *MemberExpr) Member(name string) *MemberExpr {
	return &MemberExpr{Name: name, Base: e}
}

// Member starts a member chain rooted at the parameter.
func (e *ParamExpr) Member(name string) *MemberExpr {
	return &MemberExpr{Name: name, Base: e}
}

// Eq builds an equality comparison against a constant.
func (e *MemberExpr) Eq(value interface{}) *BinaryExpr { return compare(e, OpEq, value) }

// Ne builds an inequality comparison against a constant.
func (e *MemberExpr) Ne(value interface{}) *BinaryExpr { return compare(e, OpNe, value) }

// Gt builds a greater-than comparison against a constant.
func (e *MemberExpr) Gt(value interface{}) *BinaryExpr { return compare(e, OpGt, value) }

// Ge builds a greater-or-equal comparison against a constant.
func (e *MemberExpr) Ge(value interface{}) *BinaryExpr { return compare(e, OpGe, value) }

// Lt builds a less-than comparison against a constant.
func (e *MemberExpr) Lt(value interface{}) *BinaryExpr { return compare(e, OpLt, value) }

// Le builds a less-or-equal comparison against a constant.
func (e *MemberExpr) Le(value interface{}) *BinaryExpr { return compare(e, OpLe, value) }

// Any builds a quantifier asserting that at least one element of the
// collection satisfies pred. Member chains inside pred reference the element
// through a parameter named v.
func (e *MemberExpr) Any(v string, pred Node) *AnyExpr {
	return &AnyExpr{Collection: e, Var: v, Predicate: pred}
}

func compare(left Node, op Operator, value interface{}) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: op, Right: &LiteralExpr{Value: value}}
}

// And combines two boolean subexpressions conjunctively.
func And(left, right Node) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: OpAnd, Right: right}
}

// Or combines two boolean subexpressions disjunctively.
func Or(left, right Node) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: OpOr, Right: right}
}
