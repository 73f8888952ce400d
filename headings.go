package main

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
)

type heading struct {
	Level int
	Text  string
}

func (h heading) String() string {
	return strings.Repeat("#", h.Level) + " " + h.Text
}

// headings lists the headings of a markdown document in order.
func headings(doc ast.Node) []heading {
	var out []heading
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		h, ok := node.(*ast.Heading)
		if !ok || !entering {
			return ast.GoToNext
		}
		out = append(out, heading{Level: h.Level, Text: headingText(h)})
		return ast.SkipChildren
	})
	return out
}

func headingText(h *ast.Heading) string {
	var b strings.Builder
	ast.WalkFunc(h, func(node ast.Node, entering bool) ast.WalkStatus {
		if t, ok := node.(*ast.Text); ok && entering {
			b.Write(t.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
