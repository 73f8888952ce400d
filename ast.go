package main

import (
	"bytes"
	"io"

	"github.com/laher/markdownfmt/markdown"
	"github.com/russross/blackfriday/v2"
)

var templateSections = []string{"Tasks", "TODO"}

func headingNode(parent *blackfriday.Node, level int, text string) *blackfriday.Node {
	h := blackfriday.NewNode(blackfriday.Heading)
	h.Level = level
	parent.AppendChild(h)
	textNode := blackfriday.NewNode(blackfriday.Text)
	textNode.Literal = []byte(text)
	h.AppendChild(textNode)
	return h
}

// markdownTemplate builds the default template for markdown reports: one
// level-two heading per section, rendered in setext style.
func markdownTemplate() []byte {
	doc := blackfriday.NewNode(blackfriday.Document)
	for _, s := range templateSections {
		headingNode(doc, 2, s)
	}
	var buf bytes.Buffer
	r := markdown.NewRenderer(&markdown.Options{Terminal: false})
	render(r, &buf, doc)
	return buf.Bytes()
}

func render(r blackfriday.Renderer, w io.Writer, ast *blackfriday.Node) {
	r.RenderHeader(w, ast)
	ast.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return r.RenderNode(w, node, entering)
	})
	r.RenderFooter(w, ast)
}
