package demotree

import "github.com/uastcore/uastquery"

// Interface adapts a *Node tree to uast.NodeInterface.
type Interface struct{}

func asNode(n uast.Node) *Node {
	node, ok := n.(*Node)
	if !ok {
		panic("demotree: node is not a *demotree.Node")
	}

	return node
}

func (Interface) InternalType(n uast.Node) string {
	return asNode(n).Type
}

func (Interface) Token(n uast.Node) (string, bool) {
	tok := asNode(n).Token
	if tok == nil {
		return "", false
	}

	return *tok, true
}

func (Interface) ChildrenSize(n uast.Node) int {
	return len(asNode(n).Children)
}

func (Interface) ChildAt(n uast.Node, index int) uast.Node {
	return asNode(n).Children[index]
}

func (Interface) RolesSize(n uast.Node) int {
	return len(asNode(n).Roles)
}

func (Interface) RoleAt(n uast.Node, index int) uast.RoleID {
	return uast.RoleID(asNode(n).Roles[index])
}

func (Interface) PropertiesSize(n uast.Node) int {
	return len(asNode(n).Props)
}

func (Interface) PropertyKeyAt(n uast.Node, index int) string {
	return asNode(n).Props[index].Key
}

func (Interface) PropertyValueAt(n uast.Node, index int) string {
	return asNode(n).Props[index].Value
}

func (Interface) HasStartOffset(n uast.Node) bool { return asNode(n).Pos != nil && asNode(n).Pos.StartOffset != nil }
func (Interface) StartOffset(n uast.Node) uint32   { return *asNode(n).Pos.StartOffset }
func (Interface) HasStartLine(n uast.Node) bool    { return asNode(n).Pos != nil && asNode(n).Pos.StartLine != nil }
func (Interface) StartLine(n uast.Node) uint32     { return *asNode(n).Pos.StartLine }
func (Interface) HasStartCol(n uast.Node) bool     { return asNode(n).Pos != nil && asNode(n).Pos.StartCol != nil }
func (Interface) StartCol(n uast.Node) uint32      { return *asNode(n).Pos.StartCol }
func (Interface) HasEndOffset(n uast.Node) bool    { return asNode(n).Pos != nil && asNode(n).Pos.EndOffset != nil }
func (Interface) EndOffset(n uast.Node) uint32      { return *asNode(n).Pos.EndOffset }
func (Interface) HasEndLine(n uast.Node) bool      { return asNode(n).Pos != nil && asNode(n).Pos.EndLine != nil }
func (Interface) EndLine(n uast.Node) uint32        { return *asNode(n).Pos.EndLine }
func (Interface) HasEndCol(n uast.Node) bool       { return asNode(n).Pos != nil && asNode(n).Pos.EndCol != nil }
func (Interface) EndCol(n uast.Node) uint32         { return *asNode(n).Pos.EndCol }
