package expr

import (
	"fmt"
	"strings"
)

// ResolvePath flattens a member access chain into a slash-separated
// navigation path, e.g. Address/City. The parameter at the root of the chain
// contributes no text: OData navigation paths are relative to the implicit
// current instance.
func ResolvePath(member *MemberExpr) (string, error) {
	names, _, err := pathSegments(member)
	if err != nil {
		return "", err
	}
	return strings.Join(names, "/"), nil
}

// pathSegments walks from the leaf member through its Base chain to the
// rooting parameter and returns the member names in root-to-leaf order
// together with the parameter name.
func pathSegments(member *MemberExpr) ([]string, string, error) {
	if member == nil {
		return nil, "", fmt.Errorf("%w: nil member access", ErrUnsupportedPathExpression)
	}

	var names []string
	node := Node(member)
	for {
		switch n := node.(type) {
		case *MemberExpr:
			if n.Name == "" {
				return nil, "", fmt.Errorf("%w: empty member name", ErrUnsupportedPathExpression)
			}
			names = append(names, n.Name)
			node = n.Base
		case *ParamExpr:
			// Collected leaf-first; reverse into emission order.
			for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
				names[i], names[j] = names[j], names[i]
			}
			return names, n.Name, nil
		case nil:
			return nil, "", fmt.Errorf("%w: member chain does not terminate in a parameter", ErrUnsupportedPathExpression)
		default:
			return nil, "", fmt.Errorf("%w: %T in member chain", ErrUnsupportedPathExpression, node)
		}
	}
}
