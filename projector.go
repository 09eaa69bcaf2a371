package uast

import "strconv"

// buildDocument recursively projects root and its descendants into a
// virtual XML tree, grounded on the original's CreateXmlNode recursion
// (_examples/original_source/tools/uast.cc): one virtual element per host
// node, attributes assigned in token/roles/properties/position order,
// children appended in index order, depth-first.
func buildDocument(iface NodeInterface, roles RoleLookup, root Node) (*virtualElement, error) {
	if root == nil {
		panic("uast: root must not be nil")
	}

	return projectNode(iface, roles, root, nil, 0)
}

func projectNode(iface NodeInterface, roles RoleLookup, n Node, parent *virtualElement, index int) (*virtualElement, error) {
	tag := iface.InternalType(n)
	if tag == "" {
		return nil, errEmptyInternalType
	}

	el := getVirtualElement()
	el.tag = tag
	el.backRef = n
	el.parent = parent
	el.siblingIdx = index

	if tok, ok := iface.Token(n); ok {
		el.attrs = append(el.attrs, virtualAttribute{Name: "token", Value: tok})
	}

	for i := 0; i < iface.RolesSize(n); i++ {
		if name, ok := roles(iface.RoleAt(n, i)); ok {
			el.attrs = append(el.attrs, virtualAttribute{Name: name, Value: ""})
		}
	}

	for i := 0; i < iface.PropertiesSize(n); i++ {
		el.attrs = append(el.attrs, virtualAttribute{
			Name:  iface.PropertyKeyAt(n, i),
			Value: iface.PropertyValueAt(n, i),
		})
	}

	appendPositionAttrs(iface, n, el)

	childCount := iface.ChildrenSize(n)
	el.children = make([]*virtualElement, 0, childCount)

	for i := 0; i < childCount; i++ {
		child, err := projectNode(iface, roles, iface.ChildAt(n, i), el, i)
		if err != nil {
			releaseVirtualElement(el)
			return nil, err
		}

		el.children = append(el.children, child)
	}

	return el, nil
}

// appendPositionAttrs attaches startOffset/startLine/startCol/endOffset/
// endLine/endCol, each present iff its Has flag is set, as a plain decimal
// string. Unlike the C original's fixed-size snprintf buffer, strconv can
// never overflow formatting a uint32, so there is no overflow error path
// to reproduce here (see DESIGN.md).
func appendPositionAttrs(iface NodeInterface, n Node, el *virtualElement) {
	type field struct {
		name    string
		has     bool
		valueFn func() uint32
	}

	fields := [6]field{
		{"startOffset", iface.HasStartOffset(n), func() uint32 { return iface.StartOffset(n) }},
		{"startLine", iface.HasStartLine(n), func() uint32 { return iface.StartLine(n) }},
		{"startCol", iface.HasStartCol(n), func() uint32 { return iface.StartCol(n) }},
		{"endOffset", iface.HasEndOffset(n), func() uint32 { return iface.EndOffset(n) }},
		{"endLine", iface.HasEndLine(n), func() uint32 { return iface.EndLine(n) }},
		{"endCol", iface.HasEndCol(n), func() uint32 { return iface.EndCol(n) }},
	}

	for _, f := range fields {
		if !f.has {
			continue
		}

		el.attrs = append(el.attrs, virtualAttribute{
			Name:  f.name,
			Value: strconv.FormatUint(uint64(f.valueFn()), 10),
		})
	}
}
