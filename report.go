package main

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

type reportResult struct {
	Path    string
	Created bool
}

// createReport creates the report for day from the template. An existing
// report is left alone. The template is provisioned first when missing.
func (g *generator) createReport(day, today time.Time) (reportResult, error) {
	l := g.layout
	path := l.reportPath(day)
	isToday := !before(day, today) && !before(today, day)

	if _, err := os.Lstat(path); err == nil {
		g.out.reportExists(l.reportName(day), isToday)
		return reportResult{Path: path}, nil
	}

	if _, err := g.ensureTemplate(); err != nil {
		return reportResult{}, err
	}
	content, err := os.ReadFile(l.templatePath())
	if err != nil {
		return reportResult{}, &PathError{Op: "read template", Path: l.templatePath(), Kind: ErrTemplateUnreadable, Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		g.out.reportExists(l.reportName(day), isToday)
		return reportResult{Path: path}, nil
	}
	if err != nil {
		return reportResult{}, &PathError{Op: "create report", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return reportResult{}, &PathError{Op: "write report", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	if err := f.Close(); err != nil {
		return reportResult{}, &PathError{Op: "close report", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	g.out.reportCreated(path)
	return reportResult{Path: path, Created: true}, nil
}
