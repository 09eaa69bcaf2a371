package uast

import "math"

// Nodes is an indexed view over a filter result, kept alongside the
// idiomatic []Node slice FilterNodes already returns. It exists for
// binding authors who need NodesSize/NodeAt-style positional access
// instead of ranging a slice directly (the original C surface exposes
// Nodes as a len/cap pair for exactly this reason).
type Nodes struct {
	nodes []Node
}

// Size returns the number of nodes in n.
func (n Nodes) Size() int { return len(n.nodes) }

// At returns the node at index, 0 <= index < n.Size().
func (n Nodes) At(index int) Node { return n.nodes[index] }

// FilterNodes evaluates query against root and returns every matching
// host node, in document order, with attribute-only matches (e.g. a
// "@*" query) excluded since they have no corresponding host node. On
// failure it records the error on ctx and returns nil.
func (ctx *Context) FilterNodes(root Node, query string) []Node {
	v, err := evaluate(ctx.iface, ctx.roles, root, query, KindNodeSet)
	if err != nil {
		ctx.recordError(err)
		return nil
	}

	nodes, _ := v.([]Node)

	return nodes
}

// FilterNodesIndexed is FilterNodes wrapped in the Nodes indexed view.
func (ctx *Context) FilterNodesIndexed(root Node, query string) Nodes {
	return Nodes{nodes: ctx.FilterNodes(root, query)}
}

// FilterBool evaluates query against root as an XPath boolean
// expression. On failure it records the error on ctx and returns false.
func (ctx *Context) FilterBool(root Node, query string) bool {
	v, err := evaluate(ctx.iface, ctx.roles, root, query, KindBoolean)
	if err != nil {
		ctx.recordError(err)
		return false
	}

	b, _ := v.(bool)

	return b
}

// FilterNumber evaluates query against root as an XPath number
// expression. On failure it records the error on ctx and returns NaN,
// matching XPath's own convention for an undefined numeric result.
func (ctx *Context) FilterNumber(root Node, query string) float64 {
	v, err := evaluate(ctx.iface, ctx.roles, root, query, KindNumber)
	if err != nil {
		ctx.recordError(err)
		return math.NaN()
	}

	f, _ := v.(float64)

	return f
}

// FilterString evaluates query against root as an XPath string
// expression. On failure it records the error on ctx and returns "".
func (ctx *Context) FilterString(root Node, query string) string {
	v, err := evaluate(ctx.iface, ctx.roles, root, query, KindString)
	if err != nil {
		ctx.recordError(err)
		return ""
	}

	s, _ := v.(string)

	return s
}
