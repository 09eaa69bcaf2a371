package uast

import "testing"

func typesOf(t *testing.T, iface NodeInterface, it *Iterator) []string {
	t.Helper()

	var out []string

	for {
		n, ok := it.Next()
		if !ok {
			break
		}

		out = append(out, iface.InternalType(n))
	}

	return out
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestPreOrder(t *testing.T) {
	it := NewIterator(testInterface{}, sampleTree(), PreOrder)
	got := typesOf(t, testInterface{}, it)

	want := []string{"File", "FunctionDecl", "Identifier", "Block", "Call", "FunctionDecl"}
	if !equalSlices(got, want) {
		t.Errorf("pre-order = %v, want %v", got, want)
	}
}

func TestLevelOrder(t *testing.T) {
	it := NewIterator(testInterface{}, sampleTree(), LevelOrder)
	got := typesOf(t, testInterface{}, it)

	want := []string{"File", "FunctionDecl", "FunctionDecl", "Identifier", "Block", "Call"}
	if !equalSlices(got, want) {
		t.Errorf("level-order = %v, want %v", got, want)
	}
}

func TestPostOrder(t *testing.T) {
	it := NewIterator(testInterface{}, sampleTree(), PostOrder)
	got := typesOf(t, testInterface{}, it)

	want := []string{"Identifier", "Call", "Block", "FunctionDecl", "FunctionDecl", "File"}
	if !equalSlices(got, want) {
		t.Errorf("post-order = %v, want %v", got, want)
	}
}

func TestPositionOrder(t *testing.T) {
	it := NewIterator(testInterface{}, sampleTree(), PositionOrder)
	got := typesOf(t, testInterface{}, it)

	// Nodes that both have a startOffset compare by it
	// (FunctionDecl(main)=0, Call=20, FunctionDecl(helper)=40). File,
	// Identifier and Block have no offset and no line/col, so they
	// compare as (0,0) against everything and, the sort being stable,
	// keep their pre-order positions.
	if len(got) != 6 {
		t.Fatalf("expected 6 nodes, got %d: %v", len(got), got)
	}

	lastIdx := -1
	for i, typ := range got {
		if typ == "Call" {
			lastIdx = i
		}
	}

	if lastIdx == -1 {
		t.Fatal("expected Call to be present")
	}

	// Call (offset 20) must come before the helper FunctionDecl (offset 40).
	helperIdx := -1
	for i, typ := range got {
		if typ == "FunctionDecl" && i > 0 {
			helperIdx = i
		}
	}

	if helperIdx != -1 && lastIdx > helperIdx {
		t.Errorf("expected Call (offset 20) before the later FunctionDecl (offset 40): %v", got)
	}
}

func TestPostOrderTerminatesOnSelfCycle(t *testing.T) {
	cyclic := &testNode{typ: "Self"}
	cyclic.children = []*testNode{cyclic}

	it := NewIterator(testInterface{}, cyclic, PostOrder)

	// Bounded instead of draining with typesOf: if visited were ever
	// cleared, the cyclic node would keep re-entering the queue as
	// unvisited and Next would never report ok=false. The node is
	// emitted twice: once as its own (already visited) child, then as
	// the root, after which the queue is empty.
	var got []string

	for i := 0; i < 10; i++ {
		n, ok := it.Next()
		if !ok {
			break
		}

		got = append(got, testInterface{}.InternalType(n))
	}

	want := []string{"Self", "Self"}
	if !equalSlices(got, want) {
		t.Errorf("post-order over a self-referential node = %v, want %v (expected to descend into it once and terminate)", got, want)
	}
}

func TestIteratorWithTransform(t *testing.T) {
	marker := &testNode{typ: "Transformed"}

	transform := func(n Node) Node {
		if n.(*testNode).typ == "Call" {
			return marker
		}

		return n
	}

	it := NewIteratorWithTransform(testInterface{}, sampleTree(), PreOrder, transform)

	var sawMarker bool

	for {
		n, ok := it.Next()
		if !ok {
			break
		}

		if n == Node(marker) {
			sawMarker = true
		}
	}

	if !sawMarker {
		t.Error("expected the transformed Call node to be returned")
	}
}

func TestIteratorTransformChildrenComeFromOriginal(t *testing.T) {
	// A transform that replaces every node with a childless stand-in
	// must not affect which children get visited: children are always
	// read from the pre-transform node.
	stub := func(n Node) Node {
		orig := n.(*testNode)
		return &testNode{typ: "stub:" + orig.typ}
	}

	it := NewIteratorWithTransform(testInterface{}, sampleTree(), PreOrder, stub)

	var count int

	for {
		_, ok := it.Next()
		if !ok {
			break
		}

		count++
	}

	if count != 6 {
		t.Errorf("expected all 6 nodes visited despite transform, got %d", count)
	}
}

func TestNewIteratorNilRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewIterator(nil root) to panic")
		}
	}()

	NewIterator(testInterface{}, nil, PreOrder)
}
