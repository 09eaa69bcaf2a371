package uast

import "github.com/wilkmaciej/xpath"

// virtualNavigator walks a projected virtualElement tree for the xpath
// package, the same role the teacher's elementNavigator plays over a
// parsed XMLElement tree. There are no text or comment nodes in a UAST
// projection (tokens and positions are attributes, not text children),
// so this navigator only ever positions on an element or one of its
// attributes.
type virtualNavigator struct {
	root    *virtualElement
	curr    *virtualElement
	attrIdx int // -1 when not positioned on an attribute
}

func newVirtualNavigator(root *virtualElement) *virtualNavigator {
	return &virtualNavigator{root: root, curr: root, attrIdx: -1}
}

func (nav *virtualNavigator) NodeType() xpath.NodeType {
	if nav.attrIdx != -1 {
		return xpath.AttributeNode
	}

	if nav.curr == nav.root && nav.curr.parent == nil {
		return xpath.RootNode
	}

	return xpath.ElementNode
}

func (nav *virtualNavigator) LocalName() string {
	if nav.attrIdx != -1 {
		return nav.curr.attrs[nav.attrIdx].Name
	}

	return nav.curr.tag
}

func (nav *virtualNavigator) Prefix() string { return "" }

func (nav *virtualNavigator) NamespaceURL() string { return "" }

// Value returns the string value of the current position. Attributes
// return their value verbatim; elements return "" since a UAST
// projection has no text nodes to concatenate.
func (nav *virtualNavigator) Value() string {
	if nav.attrIdx != -1 {
		return nav.curr.attrs[nav.attrIdx].Value
	}

	return ""
}

func (nav *virtualNavigator) Copy() xpath.NodeNavigator {
	navCopy := *nav

	return &navCopy
}

func (nav *virtualNavigator) MoveToRoot() {
	nav.curr = nav.root
	nav.attrIdx = -1
}

func (nav *virtualNavigator) MoveToParent() bool {
	if nav.attrIdx != -1 {
		nav.attrIdx = -1

		return true
	}

	if nav.curr.parent == nil {
		return false
	}

	nav.curr = nav.curr.parent
	nav.attrIdx = -1

	return true
}

func (nav *virtualNavigator) MoveToNextAttribute() bool {
	if nav.attrIdx >= len(nav.curr.attrs)-1 {
		return false
	}

	nav.attrIdx++

	return true
}

func (nav *virtualNavigator) MoveToChild() bool {
	if nav.attrIdx != -1 || len(nav.curr.children) == 0 {
		return false
	}

	nav.curr = nav.curr.children[0]

	return true
}

func (nav *virtualNavigator) MoveToFirst() bool {
	if nav.attrIdx != -1 || nav.curr.parent == nil || nav.curr.siblingIdx == 0 {
		return false
	}

	nav.curr = nav.curr.parent.children[0]

	return true
}

func (nav *virtualNavigator) MoveToNext() bool {
	if nav.attrIdx != -1 || nav.curr.parent == nil {
		return false
	}

	idx := nav.curr.siblingIdx + 1
	if idx >= len(nav.curr.parent.children) {
		return false
	}

	nav.curr = nav.curr.parent.children[idx]

	return true
}

func (nav *virtualNavigator) MoveToPrevious() bool {
	if nav.attrIdx != -1 || nav.curr.parent == nil || nav.curr.siblingIdx == 0 {
		return false
	}

	nav.curr = nav.curr.parent.children[nav.curr.siblingIdx-1]

	return true
}

func (nav *virtualNavigator) MoveTo(other xpath.NodeNavigator) bool {
	otherNav, ok := other.(*virtualNavigator)
	if !ok || otherNav.root != nav.root {
		return false
	}

	nav.curr = otherNav.curr
	nav.attrIdx = otherNav.attrIdx

	return true
}

func (nav *virtualNavigator) String() string {
	return nav.Value()
}
