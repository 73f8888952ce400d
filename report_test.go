package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReportCopiesTemplate(t *testing.T) {
	g, rec := testGenerator(t)
	content := "line one\r\n\x00binary\n"
	writeFile(t, g.layout.templatePath(), content)

	res, err := g.createReport(day(t, "20200828"), day(t, "20200828"))
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, filepath.Join(g.layout.Dir, "20200828.txt"), res.Path)
	assert.Equal(t, content, readFile(t, res.Path))
	assert.Equal(t, []string{"created 20200828.txt"}, rec.events)
}

func TestCreateReportExisting(t *testing.T) {
	g, rec := testGenerator(t)
	writeFile(t, g.layout.templatePath(), "template")
	writeFile(t, filepath.Join(g.layout.Dir, "20200828.txt"), "my notes")
	writeFile(t, filepath.Join(g.layout.Dir, "20200901.txt"), "planned")

	res, err := g.createReport(day(t, "20200828"), day(t, "20200828"))
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "my notes", readFile(t, res.Path))

	_, err = g.createReport(day(t, "20200901"), day(t, "20200828"))
	require.NoError(t, err)
	assert.Equal(t, []string{"exists today", "exists 20200901.txt"}, rec.events)
}

func TestCreateReportProvisionsMissingTemplate(t *testing.T) {
	g, rec := testGenerator(t)

	res, err := g.createReport(day(t, "20200101"), day(t, "20200828"))
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, textTemplate, readFile(t, res.Path))
	assert.Equal(t, []string{"template Template.txt", "created 20200101.txt"}, rec.events)
}

func TestCreateReportTemplateUnreadable(t *testing.T) {
	g, _ := testGenerator(t)
	// A directory in place of the template exists but cannot be read.
	require.NoError(t, os.Mkdir(g.layout.templatePath(), 0o755))

	_, err := g.createReport(day(t, "20200828"), day(t, "20200828"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateUnreadable))
	assert.NoFileExists(t, filepath.Join(g.layout.Dir, "20200828.txt"))
}
