package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type reportEntry struct {
	Day  time.Time
	Path string
}

// listReports finds report files in the working directory and anywhere under
// the archive root, newest first. Both copies are listed when a date exists in
// both places.
func listReports(l layout, loc *time.Location) ([]reportEntry, error) {
	var out []reportEntry

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if day, ok := l.parseReportName(e.Name(), loc); ok {
			out = append(out, reportEntry{Day: day, Path: filepath.Join(l.Dir, e.Name())})
		}
	}

	err = filepath.WalkDir(l.archiveRoot(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if day, ok := l.parseReportName(d.Name(), loc); ok {
			out = append(out, reportEntry{Day: day, Path: path})
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day.Equal(out[j].Day) {
			return out[i].Path < out[j].Path
		}
		return out[i].Day.After(out[j].Day)
	})
	return out, nil
}
