package uast

import "testing"

func TestBuildDocumentSchema(t *testing.T) {
	doc, err := buildDocument(testInterface{}, testRoles, sampleTree())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	defer releaseVirtualElement(doc)

	if doc.tag != "File" {
		t.Errorf("expected root tag File, got %q", doc.tag)
	}

	if len(doc.children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(doc.children))
	}

	fn := doc.children[0]
	if fn.tag != "FunctionDecl" {
		t.Errorf("expected FunctionDecl, got %q", fn.tag)
	}

	wantAttrs := map[string]string{"token": "main", "Declaration": "", "Function": ""}
	if len(fn.attrs) < len(wantAttrs) {
		t.Fatalf("expected at least %d attrs, got %d", len(wantAttrs), len(fn.attrs))
	}

	seen := make(map[string]string, len(fn.attrs))
	for _, a := range fn.attrs {
		seen[a.Name] = a.Value
	}

	for name, want := range wantAttrs {
		got, ok := seen[name]
		if !ok {
			t.Errorf("missing attribute %q", name)
			continue
		}

		if got != want {
			t.Errorf("attribute %q = %q, want %q", name, got, want)
		}
	}

	if got := seen["startOffset"]; got != "0" {
		t.Errorf("startOffset = %q, want %q", got, "0")
	}
}

func TestBuildDocumentEmptyInternalTypeFails(t *testing.T) {
	root := &testNode{typ: "", children: nil}

	_, err := buildDocument(testInterface{}, testRoles, root)
	if err == nil {
		t.Fatal("expected an error for an empty internal type")
	}
}

func TestBuildDocumentNilRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected buildDocument(nil root) to panic")
		}
	}()

	_, _ = buildDocument(testInterface{}, testRoles, nil)
}

func TestBuildDocumentBackRefPreserved(t *testing.T) {
	root := sampleTree()

	doc, err := buildDocument(testInterface{}, testRoles, root)
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	defer releaseVirtualElement(doc)

	if doc.backRef != Node(root) {
		t.Errorf("root backRef not preserved")
	}

	if doc.children[0].backRef != Node(root.children[0]) {
		t.Errorf("child backRef not preserved")
	}
}
