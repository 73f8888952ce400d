package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReports(t *testing.T) {
	dir := t.TempDir()
	l := newLayout(dir)
	writeFile(t, filepath.Join(dir, "20200828.txt"), "")
	writeFile(t, filepath.Join(dir, "Template.txt"), "")
	writeFile(t, filepath.Join(dir, "Archive", "2020", "08", "20200827.txt"), "")
	writeFile(t, filepath.Join(dir, "Archive", "2019", "12", "20191231.txt"), "")
	writeFile(t, filepath.Join(dir, "Archive", "2019", "12", "readme.md"), "")

	got, err := listReports(l, time.Local)
	require.NoError(t, err)
	var paths []string
	for _, r := range got {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{
		filepath.Join(dir, "20200828.txt"),
		filepath.Join(dir, "Archive", "2020", "08", "20200827.txt"),
		filepath.Join(dir, "Archive", "2019", "12", "20191231.txt"),
	}, paths)
}

func TestListReportsWithoutArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "20200828.txt"), "")

	got, err := listReports(newLayout(dir), time.Local)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
