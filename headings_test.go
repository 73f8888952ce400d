package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadings(t *testing.T) {
	doc := parse([]byte("# 2020-08-28\n\nintro\n\n## Tasks\n\n- write *docs*\n\n## TODO **later**\n\ntext\n"))

	got := headings(doc)
	var lines []string
	for _, h := range got {
		lines = append(lines, h.String())
	}
	assert.Equal(t, []string{"# 2020-08-28", "## Tasks", "## TODO later"}, lines)
}

func TestHeadingsPlainText(t *testing.T) {
	assert.Empty(t, headings(parse([]byte("just some notes\n\nand more\n"))))
}
