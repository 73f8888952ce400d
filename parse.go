package main

import (
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

func parseFile(file string) (ast.Node, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parse(b), nil
}

func parse(b []byte) ast.Node {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	return markdown.Parse(b, p)
}
