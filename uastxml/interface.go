package uastxml

import (
	"strconv"

	"github.com/uastcore/uastquery"
)

// RoleResolver recognizes an attribute name as a role marker and
// resolves it to a role id, the inverse of uast.RoleLookup used when
// projecting. An attribute only counts as a role if its value is empty
// and RoleResolver accepts its name; everything else not recognized as
// the token or a position field becomes a property.
type RoleResolver func(name string) (uast.RoleID, bool)

// NoRoleResolver recognizes no attribute as a role; every non-token,
// non-position attribute becomes a property instead.
func NoRoleResolver(string) (uast.RoleID, bool) { return 0, false }

// Interface adapts a Node tree built by Load to uast.NodeInterface.
type Interface struct {
	roleOf RoleResolver
}

// NewInterface returns an Interface using roleOf to recognize role
// attributes. A nil roleOf is treated as NoRoleResolver.
func NewInterface(roleOf RoleResolver) *Interface {
	if roleOf == nil {
		roleOf = NoRoleResolver
	}

	return &Interface{roleOf: roleOf}
}

func asNode(n uast.Node) *Node {
	node, ok := n.(*Node)
	if !ok {
		panic("uastxml: node is not a *uastxml.Node")
	}

	return node
}

func (in *Interface) InternalType(n uast.Node) string {
	return asNode(n).Tag
}

func (in *Interface) Token(n uast.Node) (string, bool) {
	return asNode(n).attr("token")
}

func (in *Interface) ChildrenSize(n uast.Node) int {
	return len(asNode(n).Children)
}

func (in *Interface) ChildAt(n uast.Node, index int) uast.Node {
	return asNode(n).Children[index]
}

func (in *Interface) RolesSize(n uast.Node) int {
	return len(in.roleAttrs(asNode(n)))
}

func (in *Interface) RoleAt(n uast.Node, index int) uast.RoleID {
	return in.roleAttrs(asNode(n))[index]
}

func (in *Interface) roleAttrs(node *Node) []uast.RoleID {
	var out []uast.RoleID

	for _, a := range node.Attrs {
		if a.Value != "" {
			continue
		}

		if id, ok := in.roleOf(a.Name); ok {
			out = append(out, id)
		}
	}

	return out
}

func (in *Interface) PropertiesSize(n uast.Node) int {
	return len(in.properties(asNode(n)))
}

func (in *Interface) PropertyKeyAt(n uast.Node, index int) string {
	return in.properties(asNode(n))[index].Name
}

func (in *Interface) PropertyValueAt(n uast.Node, index int) string {
	return in.properties(asNode(n))[index].Value
}

func (in *Interface) properties(node *Node) []Attr {
	var out []Attr

	for _, a := range node.Attrs {
		if a.Name == "token" || isPositionField(a.Name) {
			continue
		}

		if a.Value == "" {
			if _, ok := in.roleOf(a.Name); ok {
				continue
			}
		}

		out = append(out, a)
	}

	return out
}

func isPositionField(name string) bool {
	switch name {
	case "startOffset", "startLine", "startCol", "endOffset", "endLine", "endCol":
		return true
	default:
		return false
	}
}

func (in *Interface) HasStartOffset(n uast.Node) bool { _, ok := posField(asNode(n), "startOffset"); return ok }
func (in *Interface) StartOffset(n uast.Node) uint32   { v, _ := posField(asNode(n), "startOffset"); return v }
func (in *Interface) HasStartLine(n uast.Node) bool    { _, ok := posField(asNode(n), "startLine"); return ok }
func (in *Interface) StartLine(n uast.Node) uint32     { v, _ := posField(asNode(n), "startLine"); return v }
func (in *Interface) HasStartCol(n uast.Node) bool     { _, ok := posField(asNode(n), "startCol"); return ok }
func (in *Interface) StartCol(n uast.Node) uint32      { v, _ := posField(asNode(n), "startCol"); return v }
func (in *Interface) HasEndOffset(n uast.Node) bool    { _, ok := posField(asNode(n), "endOffset"); return ok }
func (in *Interface) EndOffset(n uast.Node) uint32      { v, _ := posField(asNode(n), "endOffset"); return v }
func (in *Interface) HasEndLine(n uast.Node) bool      { _, ok := posField(asNode(n), "endLine"); return ok }
func (in *Interface) EndLine(n uast.Node) uint32        { v, _ := posField(asNode(n), "endLine"); return v }
func (in *Interface) HasEndCol(n uast.Node) bool       { _, ok := posField(asNode(n), "endCol"); return ok }
func (in *Interface) EndCol(n uast.Node) uint32         { v, _ := posField(asNode(n), "endCol"); return v }

func posField(node *Node, name string) (uint32, bool) {
	v, ok := node.attr(name)
	if !ok {
		return 0, false
	}

	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(u), true
}
