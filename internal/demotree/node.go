// Package demotree is a reference NodeInterface implementation used by
// the CLI for JSON input. It is not the spec's node type —
// NodeInterface deliberately has no canonical concrete node — but
// exercising the engine end to end needs one, the same way codefang's
// own query engine is exercised against its pkg/uast/pkg/node.Node.
package demotree

// Property is one key/value pair attached to a Node.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Position is a Node's optional source span. A nil field is absent;
// HasStartOffset and friends on Interface report presence per field,
// independently, matching NodeInterface's per-field Has contract.
type Position struct {
	StartOffset *uint32 `json:"start_offset,omitempty"`
	StartLine   *uint32 `json:"start_line,omitempty"`
	StartCol    *uint32 `json:"start_col,omitempty"`
	EndOffset   *uint32 `json:"end_offset,omitempty"`
	EndLine     *uint32 `json:"end_line,omitempty"`
	EndCol      *uint32 `json:"end_col,omitempty"`
}

// Node is a JSON-shaped UAST tree node, modeled on codefang's
// node.Node: a type tag, an optional token, numeric role ids, ordered
// properties, an optional position, and ordered children.
type Node struct {
	Type     string     `json:"type"`
	Token    *string    `json:"token,omitempty"`
	Roles    []uint16   `json:"roles,omitempty"`
	Props    []Property `json:"props,omitempty"`
	Pos      *Position  `json:"pos,omitempty"`
	Children []*Node    `json:"children,omitempty"`
}
