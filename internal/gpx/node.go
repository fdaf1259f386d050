package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a parsed markup tree: its local name, attributes,
// accumulated character content and ordered children. Track assembly reads
// only this shape, which keeps the underlying decoder confined to this
// file.
type Node struct {
	Name       string
	Attributes map[string]string
	Content    string
	Children   []*Node
}

// parseTree reads tokens from r into a node tree. It returns ErrMalformed
// when no element could be decoded at all, and a ParseError carrying the
// line number when the document breaks after decoding has begun. Bytes
// after the closing root element are ignored.
func parseTree(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				if root == nil {
					return nil, ErrMalformed
				}
				return nil, &ParseError{Line: syntaxErr.Line, Err: err}
			}
			return nil, fmt.Errorf("read document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				node.Attributes = make(map[string]string, len(t.Attr))
				for _, attr := range t.Attr {
					node.Attributes[attr.Name.Local] = attr.Value
				}
			}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root, nil
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Content += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrMalformed
	}
	return root, nil
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildContent returns the trimmed text content of the named direct child,
// or the empty string when the child is absent.
func (n *Node) ChildContent(name string) string {
	if c := n.Child(name); c != nil {
		return strings.TrimSpace(c.Content)
	}
	return ""
}

// Find returns the first node with the given name in document order,
// starting with n itself.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll collects every node with the given name at or beneath n, in
// document order.
func (n *Node) FindAll(name string) []*Node {
	var nodes []*Node
	if n.Name == name {
		nodes = append(nodes, n)
	}
	for _, c := range n.Children {
		nodes = append(nodes, c.FindAll(name)...)
	}
	return nodes
}
