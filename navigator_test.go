package uast

import (
	"testing"

	"github.com/wilkmaciej/xpath"
)

func TestVirtualNavigatorRootNodeType(t *testing.T) {
	doc, err := buildDocument(testInterface{}, testRoles, sampleTree())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	defer releaseVirtualElement(doc)

	nav := newVirtualNavigator(doc)
	if nav.NodeType() != xpath.RootNode {
		t.Errorf("expected RootNode at the projection root, got %v", nav.NodeType())
	}
}

func TestVirtualNavigatorChildIsElementNode(t *testing.T) {
	doc, err := buildDocument(testInterface{}, testRoles, sampleTree())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	defer releaseVirtualElement(doc)

	nav := newVirtualNavigator(doc)
	if !nav.MoveToChild() {
		t.Fatal("expected a child")
	}

	if nav.NodeType() != xpath.ElementNode {
		t.Errorf("expected ElementNode, got %v", nav.NodeType())
	}

	if nav.LocalName() != "FunctionDecl" {
		t.Errorf("expected FunctionDecl, got %q", nav.LocalName())
	}
}

func TestVirtualNavigatorAttributeWalk(t *testing.T) {
	doc, err := buildDocument(testInterface{}, testRoles, sampleTree())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	defer releaseVirtualElement(doc)

	nav := newVirtualNavigator(doc)
	nav.MoveToChild() // FunctionDecl(main)

	if !nav.MoveToNextAttribute() {
		t.Fatal("expected at least one attribute")
	}

	if nav.NodeType() != xpath.AttributeNode {
		t.Errorf("expected AttributeNode, got %v", nav.NodeType())
	}

	if nav.LocalName() != "token" || nav.Value() != "main" {
		t.Errorf("expected token=main, got %s=%s", nav.LocalName(), nav.Value())
	}

	if !nav.MoveToParent() {
		t.Fatal("expected MoveToParent to succeed from an attribute")
	}

	if nav.NodeType() != xpath.ElementNode {
		t.Errorf("expected to be back on the element after MoveToParent")
	}
}

func TestVirtualNavigatorSiblingNavigation(t *testing.T) {
	doc, err := buildDocument(testInterface{}, testRoles, sampleTree())
	if err != nil {
		t.Fatalf("buildDocument: %v", err)
	}
	defer releaseVirtualElement(doc)

	nav := newVirtualNavigator(doc)
	nav.MoveToChild() // first FunctionDecl

	if !nav.MoveToNext() {
		t.Fatal("expected a next sibling")
	}

	if got := tokenAttr(nav); got != "helper" {
		t.Errorf("expected helper, got %q", got)
	}

	if nav.MoveToNext() {
		t.Error("expected no further sibling")
	}

	if !nav.MoveToPrevious() {
		t.Fatal("expected to move back to the first sibling")
	}

	if got := tokenAttr(nav); got != "main" {
		t.Errorf("expected main, got %q", got)
	}
}

func tokenAttr(nav *virtualNavigator) string {
	for _, a := range nav.curr.attrs {
		if a.Name == "token" {
			return a.Value
		}
	}

	return ""
}
