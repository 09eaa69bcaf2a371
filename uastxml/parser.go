package uastxml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/orisano/gosax"
)

// Load parses r as a well-formed XML document and returns its root
// Node. Parsing is adapted from the streaming event loop this package's
// teacher used for channel-based element streaming, restructured here
// to build one whole tree instead of emitting elements as they close:
// a re-import has no reason to stream, since the caller needs the whole
// tree to satisfy NodeInterface's random-access ChildAt/ChildrenSize
// contract anyway.
//
// Load is not namespace-aware: a prefixed tag or attribute name is kept
// verbatim as its Tag/Attr.Name, matching this package's Non-goal of
// namespace-aware XML.
func Load(r io.Reader) (*Node, error) {
	reader := gosax.NewReaderSize(r, 1024*1024*64)

	var stack []*Node

	var root *Node

	for {
		e, err := reader.Event()
		if err != nil {
			return nil, fmt.Errorf("uastxml: %w", err)
		}

		switch e.Type() {
		case gosax.EventEOF:
			if root == nil {
				return nil, fmt.Errorf("uastxml: empty document")
			}

			return root, nil

		case gosax.EventStart:
			name, attrBytes := gosax.Name(e.Bytes)

			node := &Node{Tag: string(name)}
			if len(attrBytes) > 0 {
				node.Attrs = parseAttributes(attrBytes)
			}

			switch {
			case len(stack) > 0:
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			case root == nil:
				root = node
			default:
				return nil, fmt.Errorf("uastxml: multiple root elements")
			}

			selfClosing := len(e.Bytes) >= 2 && e.Bytes[len(e.Bytes)-2] == '/' && e.Bytes[len(e.Bytes)-1] == '>'
			if !selfClosing {
				stack = append(stack, node)
			}

		case gosax.EventEnd:
			if len(stack) == 0 {
				return nil, fmt.Errorf("uastxml: unbalanced end tag")
			}

			stack = stack[:len(stack)-1]
		}
	}
}

// parseAttributes parses attribute bytes into an Attr slice, adapted
// from the teacher's byte-level attribute scanner (unquoted-name,
// quoted-value, no entity decoding).
func parseAttributes(attrs []byte) []Attr {
	attrCount := 0

	for i := 0; i < len(attrs); i++ {
		if attrs[i] == '=' {
			attrCount++
		}
	}

	if attrCount == 0 {
		return nil
	}

	out := make([]Attr, 0, attrCount)
	i := 0

	for i < len(attrs) {
		for i < len(attrs) && (attrs[i] == ' ' || attrs[i] == '\t' || attrs[i] == '\n' || attrs[i] == '\r') {
			i++
		}

		if i >= len(attrs) {
			break
		}

		nameStart := i
		for i < len(attrs) && attrs[i] != '=' {
			i++
		}

		if i >= len(attrs) {
			break
		}

		name := string(bytes.TrimSpace(attrs[nameStart:i]))
		i++

		for i < len(attrs) && (attrs[i] == ' ' || attrs[i] == '\t') {
			i++
		}

		if i >= len(attrs) {
			break
		}

		quote := attrs[i]
		if quote != '"' && quote != '\'' {
			break
		}

		i++
		valueStart := i

		for i < len(attrs) && attrs[i] != quote {
			i++
		}

		value := string(attrs[valueStart:i])
		i++ // skip closing quote

		out = append(out, Attr{Name: name, Value: value})
	}

	return out
}
