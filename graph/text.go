package graph

/**
 * text.go - html to flat visible text
 */

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

/**
 * Flatten reduces an html document to the text of its body, in document
 * order, with markup, scripts and styles dropped and carriage returns removed
 */
func Flatten(document string) string {

	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		// only reader errors end up here, a string reader never fails
		return strings.ReplaceAll(document, "\r", "")
	}

	node := findBody(root)
	if node == nil {
		node = root
	}

	b := &strings.Builder{}
	collectText(b, node)

	return strings.ReplaceAll(b.String(), "\r", "")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func collectText(b *strings.Builder, n *html.Node) {

	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
