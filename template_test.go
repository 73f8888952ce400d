package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTemplateCreatesOnce(t *testing.T) {
	l := newLayout(t.TempDir())

	res, err := ensureTemplate(l)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, l.templatePath(), res.Path)
	assert.Equal(t, textTemplate, readFile(t, res.Path))

	writeFile(t, res.Path, "custom\n")
	res, err = ensureTemplate(l)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "custom\n", readFile(t, res.Path))
}

func TestEnsureTemplateMarkdown(t *testing.T) {
	l := newLayout(t.TempDir())
	l.Extension = ".md"

	res, err := ensureTemplate(l)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(l.Dir, "Template.md"), res.Path)

	content := readFile(t, res.Path)
	assert.Equal(t, "Tasks\n-----\n\nTODO\n----\n", content)

	got := headings(parse([]byte(content)))
	require.Len(t, got, len(templateSections))
	for i, s := range templateSections {
		assert.Equal(t, s, got[i].Text)
	}
}

func TestEnsureTemplateUnwritable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err := ensureTemplate(newLayout(dir))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryUnwritable))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.True(t, strings.Contains(err.Error(), "Template.txt"))
}
