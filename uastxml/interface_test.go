package uastxml

import (
	"strings"
	"testing"

	"github.com/uastcore/uastquery"
)

func roleResolver(name string) (uast.RoleID, bool) {
	switch name {
	case "Declaration":
		return 1, true
	case "Function":
		return 2, true
	default:
		return 0, false
	}
}

func TestInterfaceClassifiesAttributes(t *testing.T) {
	doc := `<FunctionDecl token="main" Declaration="" Function="" lang="go">` +
		`<Identifier token="main"></Identifier>` +
		`</FunctionDecl>`

	root, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	in := NewInterface(roleResolver)

	if tok, ok := in.Token(root); !ok || tok != "main" {
		t.Errorf("expected token main, got %q (ok=%v)", tok, ok)
	}

	if in.RolesSize(root) != 2 {
		t.Fatalf("expected 2 roles, got %d", in.RolesSize(root))
	}

	if in.PropertiesSize(root) != 1 {
		t.Fatalf("expected 1 property (lang), got %d", in.PropertiesSize(root))
	}

	if in.PropertyKeyAt(root, 0) != "lang" || in.PropertyValueAt(root, 0) != "go" {
		t.Errorf("expected lang=go, got %s=%s", in.PropertyKeyAt(root, 0), in.PropertyValueAt(root, 0))
	}

	if in.ChildrenSize(root) != 1 {
		t.Fatalf("expected 1 child, got %d", in.ChildrenSize(root))
	}
}

func TestInterfacePositionFields(t *testing.T) {
	root, err := Load(strings.NewReader(`<File startOffset="10" startLine="2"></File>`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	in := NewInterface(nil)

	if !in.HasStartOffset(root) || in.StartOffset(root) != 10 {
		t.Errorf("expected startOffset 10")
	}

	if !in.HasStartLine(root) || in.StartLine(root) != 2 {
		t.Errorf("expected startLine 2")
	}

	if in.HasEndOffset(root) {
		t.Errorf("expected no endOffset")
	}
}

func TestInterfaceNoRoleResolverTreatsMarkersAsProperties(t *testing.T) {
	root, err := Load(strings.NewReader(`<Node Declaration=""></Node>`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	in := NewInterface(nil)

	if in.RolesSize(root) != 0 {
		t.Fatalf("expected no roles without a resolver, got %d", in.RolesSize(root))
	}

	if in.PropertiesSize(root) != 1 {
		t.Fatalf("expected Declaration to fall back to a property, got %d", in.PropertiesSize(root))
	}
}
