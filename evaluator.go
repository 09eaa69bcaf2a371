package uast

import (
	"errors"
	"fmt"

	"github.com/wilkmaciej/xpath"
)

// Sentinel errors returned by Context methods, grounded on the four
// UastError kinds the original QueryResult/UastFilter* surface raises
// (tools/uast.cc): an empty query, a query the xpath engine can't parse,
// a host tree that can't be projected, and an evaluation that produced
// the wrong result kind or panicked partway through.
var (
	ErrEmptyQuery   = errors.New("uast: query must not be empty")
	ErrMalformed    = errors.New("uast: malformed query")
	ErrProjection   = errors.New("uast: failed to project host tree")
	ErrKindMismatch = errors.New("uast: result kind mismatch")
	ErrEvaluation   = errors.New("uast: evaluation failed")
)

var errEmptyInternalType = fmt.Errorf("%w: host node has empty internal type", ErrProjection)

// ResultKind names the four shapes an XPath 1.0 expression can evaluate
// to, mirroring libuast's UAST_NODE/UAST_BOOLEAN/UAST_NUMBER/UAST_STRING.
type ResultKind int

const (
	KindNodeSet ResultKind = iota
	KindBoolean
	KindNumber
	KindString
)

func (k ResultKind) String() string {
	switch k {
	case KindNodeSet:
		return "NODESET"
	case KindBoolean:
		return "BOOLEAN"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

func resultKindOf(v any) ResultKind {
	switch v.(type) {
	case *xpath.NodeIterator:
		return KindNodeSet
	case bool:
		return KindBoolean
	case float64:
		return KindNumber
	default:
		return KindString
	}
}

// evaluate projects root, compiles and runs query against the
// projection, checks the result kind against expected, and returns the
// typed result: a []Node for a node-set (collected before the deferred
// release of the projection fires, so it stays valid afterwards), or a
// bool, float64 or string.
func evaluate(iface NodeInterface, roles RoleLookup, root Node, query string, expected ResultKind) (any, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	doc, err := buildDocument(iface, roles, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjection, err)
	}
	defer releaseVirtualElement(doc)

	raw, err := safeEvaluate(expr, doc)
	if err != nil {
		return nil, err
	}

	gotKind := resultKindOf(raw)
	if gotKind != expected {
		return nil, fmt.Errorf("%w: Result of expression is not %s (is: %s)", ErrKindMismatch, expected, gotKind)
	}

	switch expected {
	case KindNodeSet:
		iter, _ := raw.(*xpath.NodeIterator)
		return collectNodes(iter), nil
	case KindBoolean:
		b, _ := raw.(bool)
		return b, nil
	case KindNumber:
		f, _ := raw.(float64)
		return f, nil
	default:
		s, _ := raw.(string)
		return s, nil
	}
}

// safeEvaluate runs expr.Evaluate, converting any panic from the xpath
// engine (malformed internal state, division edge cases the library
// doesn't guard) into ErrEvaluation instead of crashing the caller.
func safeEvaluate(expr *xpath.Expr, doc *virtualElement) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrEvaluation, r)
		}
	}()

	nav := newVirtualNavigator(doc)
	result = expr.Evaluate(nav)

	return result, nil
}

// collectNodes walks a node-set result and extracts the host Node
// back-reference for every element entry, in result order, skipping
// attribute-node entries (which have no corresponding host node). It
// runs synchronously inside evaluate, before the deferred pool release
// of the backing virtualElement tree fires.
func collectNodes(iter *xpath.NodeIterator) []Node {
	if iter == nil {
		return nil
	}

	var out []Node

	for iter.MoveNext() {
		nav, ok := iter.Current().(*virtualNavigator)
		if !ok || nav.attrIdx != -1 {
			continue
		}

		out = append(out, nav.curr.backRef)
	}

	return out
}
