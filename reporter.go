package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// reporter prints one line per state transition of a run.
type reporter interface {
	templateCreated(path string)
	reportCreated(path string)
	reportExists(name string, today bool)
	archived(name, dst string)
	conflict(c *ConflictError)
	failed(path string, err error)
	nothingToArchive()
}

type theme struct {
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
	label lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	return theme{
		ok:    r.NewStyle().Foreground(lipgloss.Color("#00AF00")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		label: r.NewStyle().Bold(true),
	}
}

// consoleReporter writes human readable progress lines. Colors are dropped
// when w is not a terminal.
type consoleReporter struct {
	w     io.Writer
	theme theme
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	return &consoleReporter{w: w, theme: newTheme(lipgloss.NewRenderer(w))}
}

func (c *consoleReporter) line(style lipgloss.Style, label, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if label != "" {
		msg = c.theme.label.Inherit(style).Render(label) + " " + msg
	} else {
		msg = style.Render(msg)
	}
	fmt.Fprintln(c.w, msg)
}

func (c *consoleReporter) templateCreated(path string) {
	c.line(c.theme.ok, "", "Template %s was not found, so it was generated.", path)
}

func (c *consoleReporter) reportCreated(path string) {
	c.line(c.theme.ok, "Created:", "%s", path)
}

func (c *consoleReporter) reportExists(name string, today bool) {
	if today {
		c.line(c.theme.dim, "", "Today's work report already exists.")
		return
	}
	c.line(c.theme.dim, "", "Work report %s already exists.", name)
}

func (c *consoleReporter) archived(name, dst string) {
	c.line(c.theme.ok, "Archived:", "%s -> %s", name, dst)
}

func (c *consoleReporter) conflict(e *ConflictError) {
	c.line(c.theme.warn, "Conflict:", "%v", e)
}

func (c *consoleReporter) failed(path string, err error) {
	c.line(c.theme.fail, "Failed:", "%s: %v", path, err)
}

func (c *consoleReporter) nothingToArchive() {
	c.line(c.theme.dim, "", "Nothing to archive.")
}
