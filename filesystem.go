package main

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	dateLayout = "20060102"

	defaultExtension    = ".txt"
	defaultTemplateName = "Template"
	defaultArchiveDir   = "Archive"
)

// layout resolves every path inside a working directory.
type layout struct {
	Dir          string `json:"dir"`
	Extension    string `json:"extension"`
	TemplateName string `json:"template"`
	ArchiveDir   string `json:"archive_dir"`
}

func newLayout(dir string) layout {
	return layout{
		Dir:          filepath.Clean(dir),
		Extension:    defaultExtension,
		TemplateName: defaultTemplateName,
		ArchiveDir:   defaultArchiveDir,
	}
}

func (l layout) templatePath() string {
	return filepath.Join(l.Dir, l.TemplateName+l.Extension)
}

func (l layout) reportName(day time.Time) string {
	return day.Format(dateLayout) + l.Extension
}

func (l layout) reportPath(day time.Time) string {
	return filepath.Join(l.Dir, l.reportName(day))
}

func (l layout) archiveRoot() string {
	return filepath.Join(l.Dir, l.ArchiveDir)
}

// archiveDirFor is <dir>/Archive/YYYY/MM for the given day.
func (l layout) archiveDirFor(day time.Time) string {
	return filepath.Join(l.archiveRoot(), day.Format("2006"), day.Format("01"))
}

func (l layout) archivePathFor(name string, day time.Time) string {
	return filepath.Join(l.archiveDirFor(day), name)
}

// parseReportName reports the date embedded in a report file name. Names that
// are not eight digits plus the extension, or that are not a real calendar
// date, do not match.
func (l layout) parseReportName(name string, loc *time.Location) (time.Time, bool) {
	if !strings.HasSuffix(name, l.Extension) {
		return time.Time{}, false
	}
	base := strings.TrimSuffix(name, l.Extension)
	if !isDateStamp(base) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(dateLayout, base, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func isDateStamp(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// before reports whether a falls on an earlier calendar day than b.
func before(a, b time.Time) bool {
	return a.Format(dateLayout) < b.In(a.Location()).Format(dateLayout)
}

func isMarkdown(ext string) bool {
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return true
	}
	return false
}
