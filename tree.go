package markright

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tree parses the generated markup into a normalized node tree rooted at a
// synthetic body element, for structural equality comparisons. Whitespace
// introduced by the newline separators between tags is not significant, so
// whitespace-only text nodes are dropped and the remaining text nodes are
// trimmed.
func (d *Document) Tree() (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(d.html), ctx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	normalize(root)
	return root, nil
}

func normalize(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.TextNode {
			trimmed := strings.TrimSpace(c.Data)
			if trimmed == "" {
				n.RemoveChild(c)
				continue
			}
			c.Data = trimmed
			continue
		}
		normalize(c)
	}
}
