// Package uast evaluates XPath 1.0 queries and performs ordered
// traversals over a host-supplied abstract syntax tree, without owning
// or mutating that tree. A host implements NodeInterface once; the
// engine projects a virtual XML view of the tree on demand, evaluates
// an XPath 1.0 expression against that view using
// github.com/wilkmaciej/xpath, and hands back the original host nodes
// that matched.
package uast

// Node is a host-owned tree node handle. The engine never interprets it;
// it reads one only through a NodeInterface implementation and hands it
// back unchanged in filter and iterator results. Node values are compared
// with ==, so the concrete type a host plugs in must be comparable (a
// pointer or an integer id works; a slice, map, or func does not).
type Node any

// RoleID is a numeric role tag, resolved to an attribute name by a
// RoleLookup. It mirrors the uint16 role ids the originating UAST core
// uses (see SPEC_FULL.md, NodeInterface).
type RoleID uint16

// RoleLookup resolves a role id to the attribute name it should project
// as. It returns ("", false) for an id with no known name, in which case
// the role is silently omitted — roles are optional hints, not
// invariants.
type RoleLookup func(RoleID) (name string, ok bool)

// NoRoles is a RoleLookup that resolves nothing; every role id is
// silently dropped from the projection. Useful for hosts with no role
// vocabulary, or in tests that don't exercise role-based queries.
func NoRoles(RoleID) (string, bool) { return "", false }

// NodeInterface is the contract a host tree implements so the engine can
// read it. Every method is a pure function of a node handle (and an index
// where applicable); implementations must be safe to call concurrently
// from multiple goroutines for read-only access, since a single Context
// may back concurrent filter calls over the same or different roots.
type NodeInterface interface {
	// InternalType is the host language's native name for n's kind. It
	// must be non-empty; it becomes the projected element's tag.
	InternalType(n Node) string

	// Token returns n's token and whether it has one. An absent token
	// projects no "token" attribute; a present-but-empty token projects
	// token="", distinct from absent (see SPEC_FULL.md open questions).
	Token(n Node) (token string, ok bool)

	// ChildrenSize returns the number of ordered children of n.
	ChildrenSize(n Node) int

	// ChildAt returns n's child at index, 0 <= index < ChildrenSize(n).
	ChildAt(n Node, index int) Node

	// RolesSize returns the number of roles attached to n.
	RolesSize(n Node) int

	// RoleAt returns the role id at index, 0 <= index < RolesSize(n).
	RoleAt(n Node, index int) RoleID

	// PropertiesSize returns the number of named properties on n.
	PropertiesSize(n Node) int

	// PropertyKeyAt and PropertyValueAt return the key and value of the
	// property at index, 0 <= index < PropertiesSize(n). Key uniqueness
	// is the host's responsibility; the engine tolerates duplicates.
	PropertyKeyAt(n Node, index int) string
	PropertyValueAt(n Node, index int) string

	// HasStartOffset/StartOffset, HasStartLine/StartLine, and
	// HasStartCol/StartCol report n's source start position. Each Has*
	// paired with its accessor; the accessor is only called when Has*
	// returns true.
	HasStartOffset(n Node) bool
	StartOffset(n Node) uint32
	HasStartLine(n Node) bool
	StartLine(n Node) uint32
	HasStartCol(n Node) bool
	StartCol(n Node) uint32

	// HasEndOffset/EndOffset, HasEndLine/EndLine, and HasEndCol/EndCol
	// report n's source end position, with the same presence contract
	// as the start fields.
	HasEndOffset(n Node) bool
	EndOffset(n Node) uint32
	HasEndLine(n Node) bool
	EndLine(n Node) uint32
	HasEndCol(n Node) bool
	EndCol(n Node) uint32
}
