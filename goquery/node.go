// Package goquery implements content-tree extraction over parsed HTML.
// It provides the chronoclip.Node tree adapter, the context scanner, the
// site-specific and generic extraction strategies, the strategy
// registry, and the unified extraction facade.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Ensure Node implements chronoclip.Node at compile time.
var _ chronoclip.Node = (*Node)(nil)

// Node adapts a goquery selection to the read-only content-tree
// contract. The engine never mutates the underlying document.
type Node struct {
	sel *goquery.Selection
}

// NewDocument parses HTML and returns the document root node.
func NewDocument(html string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Wrap adapts an existing selection.
func Wrap(sel *goquery.Selection) *Node {
	return &Node{sel: sel}
}

// Text returns the node's text content.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Parent returns the parent node, or false at the document root.
func (n *Node) Parent() (chronoclip.Node, bool) {
	p := n.sel.Parent()
	if p.Length() == 0 {
		return nil, false
	}
	return &Node{sel: p}, true
}

// PrevSiblings returns preceding siblings, nearest first.
func (n *Node) PrevSiblings() []chronoclip.Node {
	var out []chronoclip.Node
	for s := n.sel.Prev(); s.Length() > 0; s = s.Prev() {
		out = append(out, &Node{sel: s})
	}
	return out
}

// NextSiblings returns following siblings, nearest first.
func (n *Node) NextSiblings() []chronoclip.Node {
	var out []chronoclip.Node
	for s := n.sel.Next(); s.Length() > 0; s = s.Next() {
		out = append(out, &Node{sel: s})
	}
	return out
}

// Find returns descendants matching the selector, in document order.
func (n *Node) Find(selector string) []chronoclip.Node {
	var out []chronoclip.Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Node{sel: s})
	})
	return out
}

// Is reports whether the node itself matches the selector.
func (n *Node) Is(selector string) bool {
	return n.sel.Is(selector)
}

// Attr returns a declared attribute value.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}
