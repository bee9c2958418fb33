// Package template parses component markup into element trees and caches
// the result per markup string.
package template

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jmylchreest/uikit/internal/dom"
)

// ErrEmptyTemplate is returned when the markup contains nothing to parse.
var ErrEmptyTemplate = errors.New("empty template")

// Parse parses markup into a fragment with the HTML parsing rules of a
// <body> context: implied end tags close siblings, void elements never take
// children and entities are decoded. Any tag name is accepted, so custom
// elements such as <ui-button> parse like built-in ones. Whitespace-only
// text is dropped; other text becomes text nodes in document order.
func Parse(markup string) (*dom.Element, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ErrEmptyTemplate
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	root := dom.NewFragment()
	for _, n := range nodes {
		appendNode(root, n)
	}
	return root, nil
}

// appendNode converts n and its descendants and appends them to parent.
// Comments and doctypes are skipped.
func appendNode(parent *dom.Element, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		parent.AppendChild(dom.NewText(n.Data))

	case html.ElementNode:
		el := dom.NewElement(n.Data)
		for _, attr := range n.Attr {
			name := attrName(attr)
			el.SetAttribute(name, attr.Val)
			if name == "style" {
				applyInlineStyle(el.Style, attr.Val)
			}
		}
		parent.AppendChild(el)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendNode(el, c)
		}
	}
}

// attrName restores prefixed names such as xlink:href that the parser
// splits into namespace and key.
func attrName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}

func applyInlineStyle(s *dom.Style, decl string) {
	for _, part := range strings.Split(decl, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		s.Set(strings.TrimSpace(prop), strings.TrimSpace(value))
	}
}
