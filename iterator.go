package uast

import "sort"

// TreeOrder selects the traversal algorithm an Iterator uses.
type TreeOrder int

const (
	PreOrder TreeOrder = iota
	PostOrder
	LevelOrder
	PositionOrder
)

// Transform maps a host node to another host node as it is enqueued by
// an Iterator. Children of a transformed node are still fetched from
// the original, untransformed node (see pendingItem below); only the
// value handed back by Next, and projected for any later query, is the
// transformed one.
type Transform func(Node) Node

// pendingItem carries a node handle through the iterator's internal
// queue/stack as two values: orig, the handle children and position
// attributes are read from, and out, the handle Next returns (and, for
// post-order and position-order, the handle cycle detection and sort
// comparisons key on coming from orig — see Iterator.visited and
// positionLess).
type pendingItem struct {
	orig Node
	out  Node
}

// Iterator walks a host tree in one of four orders without recursion,
// grounded on the original's PreOrderNext/LevelOrderNext/PostOrderNext/
// PositionOrderNext. It holds no reference to a Context; it only needs
// a NodeInterface to read children and positions.
type Iterator struct {
	iface     NodeInterface
	order     TreeOrder
	transform Transform

	pending []pendingItem
	visited map[Node]bool // post-order only: orig node -> seen once already

	// positionOrder is pre-order-filled on first Next and then drained
	// in sorted order.
	positionOrder     []pendingItem
	positionDrained   int
	positionPreloaded bool
}

// NewIterator returns an Iterator over root in the given order, with no
// per-node transform.
func NewIterator(iface NodeInterface, root Node, order TreeOrder) *Iterator {
	return NewIteratorWithTransform(iface, root, order, nil)
}

// NewIteratorWithTransform is NewIterator with a per-node Transform
// applied at enqueue time. iface and root must not be nil.
func NewIteratorWithTransform(iface NodeInterface, root Node, order TreeOrder, transform Transform) *Iterator {
	if iface == nil {
		panic("uast: iface must not be nil")
	}

	if root == nil {
		panic("uast: root must not be nil")
	}

	it := &Iterator{
		iface:     iface,
		order:     order,
		transform: transform,
	}

	item := it.wrap(root)

	switch order {
	case PreOrder, PositionOrder:
		it.pending = append(it.pending, item)
	case LevelOrder:
		it.pending = append(it.pending, item)
	case PostOrder:
		it.pending = append(it.pending, item)
		it.visited = make(map[Node]bool)
	}

	return it
}

func (it *Iterator) wrap(n Node) pendingItem {
	if it.transform == nil {
		return pendingItem{orig: n, out: n}
	}

	return pendingItem{orig: n, out: it.transform(n)}
}

func (it *Iterator) childItems(orig Node) []pendingItem {
	count := it.iface.ChildrenSize(orig)
	if count == 0 {
		return nil
	}

	items := make([]pendingItem, count)
	for i := 0; i < count; i++ {
		items[i] = it.wrap(it.iface.ChildAt(orig, i))
	}

	return items
}

// Next returns the next node in the configured order, or (nil, false)
// once the traversal is exhausted.
func (it *Iterator) Next() (Node, bool) {
	switch it.order {
	case PreOrder:
		return it.nextPreOrder()
	case LevelOrder:
		return it.nextLevelOrder()
	case PostOrder:
		return it.nextPostOrder()
	case PositionOrder:
		return it.nextPositionOrder()
	default:
		return nil, false
	}
}

// nextPreOrder pops the front of the pending queue, emits it, and
// pushes its children onto the front in reverse order so the first
// child is popped next.
func (it *Iterator) nextPreOrder() (Node, bool) {
	if len(it.pending) == 0 {
		return nil, false
	}

	item := it.pending[0]
	it.pending = it.pending[1:]

	children := it.childItems(item.orig)
	if len(children) > 0 {
		reversed := make([]pendingItem, len(children))
		for i, c := range children {
			reversed[len(children)-1-i] = c
		}

		it.pending = append(reversed, it.pending...)
	}

	return item.out, true
}

// nextLevelOrder pops the front of the pending queue, emits it, and
// pushes its children onto the back in order, producing a breadth-first
// walk.
func (it *Iterator) nextLevelOrder() (Node, bool) {
	if len(it.pending) == 0 {
		return nil, false
	}

	item := it.pending[0]
	it.pending = it.pending[1:]

	it.pending = append(it.pending, it.childItems(item.orig)...)

	return item.out, true
}

// nextPostOrder implements the iterative "visited set + re-peek front"
// algorithm: a node at the front of the queue is, on its first
// encounter, marked visited and has its children pushed to the front
// (without being popped); on its second encounter (now that its
// children have all been emitted and popped ahead of it) it is popped
// and emitted. Cycle detection and the visited marker both key on the
// original (pre-transform) node, since a transform's output need not be
// a stable or comparable identity.
func (it *Iterator) nextPostOrder() (Node, bool) {
	for len(it.pending) > 0 {
		item := it.pending[0]

		if it.visited[item.orig] {
			it.pending = it.pending[1:]

			return item.out, true
		}

		it.visited[item.orig] = true

		children := it.childItems(item.orig)
		if len(children) > 0 {
			it.pending = append(children, it.pending...)
		}
	}

	return nil, false
}

// nextPositionOrder drains a full pre-order traversal on first call,
// then stable-sorts it by source position: nodes with a start offset
// compare by offset; nodes without one compare by (start line, start
// column), treating an absent line or column as 0. The comparison keys
// on each item's original (pre-transform) node, consistent with how
// children are fetched elsewhere in this iterator.
func (it *Iterator) nextPositionOrder() (Node, bool) {
	if !it.positionPreloaded {
		it.positionPreloaded = true
		it.positionOrder = drainPreOrder(it)
		sort.SliceStable(it.positionOrder, func(i, j int) bool {
			return positionLess(it.iface, it.positionOrder[i].orig, it.positionOrder[j].orig)
		})
	}

	if it.positionDrained >= len(it.positionOrder) {
		return nil, false
	}

	item := it.positionOrder[it.positionDrained]
	it.positionDrained++

	return item.out, true
}

// drainPreOrder exhausts a temporary pre-order Iterator sharing its
// iface/transform and returns every visited item, preserving both the
// original and transformed handles for the later sort and the final
// Next return.
func drainPreOrder(it *Iterator) []pendingItem {
	sub := &Iterator{iface: it.iface, order: PreOrder, transform: it.transform, pending: it.pending}

	var out []pendingItem

	for len(sub.pending) > 0 {
		item := sub.pending[0]
		sub.pending = sub.pending[1:]

		children := sub.childItems(item.orig)
		if len(children) > 0 {
			reversed := make([]pendingItem, len(children))
			for i, c := range children {
				reversed[len(children)-1-i] = c
			}

			sub.pending = append(reversed, sub.pending...)
		}

		out = append(out, item)
	}

	return out
}

func positionLess(iface NodeInterface, a, b Node) bool {
	aOff, aHas := offsetOf(iface, a)
	bOff, bHas := offsetOf(iface, b)

	if aHas && bHas {
		return aOff < bOff
	}

	aLine, aCol := lineCol(iface, a)
	bLine, bCol := lineCol(iface, b)

	if aLine != bLine {
		return aLine < bLine
	}

	return aCol < bCol
}

func offsetOf(iface NodeInterface, n Node) (uint32, bool) {
	if !iface.HasStartOffset(n) {
		return 0, false
	}

	return iface.StartOffset(n), true
}

func lineCol(iface NodeInterface, n Node) (uint32, uint32) {
	var line, col uint32

	if iface.HasStartLine(n) {
		line = iface.StartLine(n)
	}

	if iface.HasStartCol(n) {
		col = iface.StartCol(n)
	}

	return line, col
}
