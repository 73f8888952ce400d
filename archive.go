package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
)

var removeFile = os.Remove

type sweepResult struct {
	Archived  []string
	Conflicts []*ConflictError
	Failed    []error
}

// archiveAll moves every report in the working directory dated before today
// into the archive tree. A conflict or failure on one file does not stop the
// others; only failing to list the directory is returned.
func (g *generator) archiveAll(today time.Time) (sweepResult, error) {
	var res sweepResult
	entries, err := os.ReadDir(g.layout.Dir)
	if err != nil {
		return res, fmt.Errorf("list %s: %w", g.layout.Dir, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		day, ok := g.layout.parseReportName(name, today.Location())
		if !ok || !before(day, today) {
			continue
		}
		src := filepath.Join(g.layout.Dir, name)
		dst, err := g.moveToArchive(src, day)
		var conflict *ConflictError
		switch {
		case errors.As(err, &conflict):
			res.Conflicts = append(res.Conflicts, conflict)
			g.out.conflict(conflict)
		case err != nil:
			res.Failed = append(res.Failed, err)
			g.out.failed(src, err)
		default:
			res.Archived = append(res.Archived, dst)
			g.out.archived(name, dst)
		}
	}

	if len(res.Archived)+len(res.Conflicts)+len(res.Failed) == 0 {
		g.out.nothingToArchive()
	}
	g.log.Debug("archive sweep done", "archived", len(res.Archived), "conflicts", len(res.Conflicts), "failed", len(res.Failed))
	return res, nil
}

// archiveFile archives a single report file. Its name must carry a date
// earlier than today.
func (g *generator) archiveFile(path string, today time.Time) (string, error) {
	name := filepath.Base(path)
	day, ok := g.layout.parseReportName(name, today.Location())
	if !ok || !before(day, today) {
		return "", &PathError{Op: "archive", Path: path, Kind: ErrNotArchivable}
	}
	info, err := os.Lstat(path)
	if err != nil {
		return "", &PathError{Op: "archive", Path: path, Kind: ErrNotArchivable, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &PathError{Op: "archive", Path: path, Kind: ErrNotArchivable}
	}

	dst, err := g.moveToArchive(path, day)
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		g.out.conflict(conflict)
		return "", err
	case err != nil:
		g.out.failed(path, err)
		return "", err
	}
	g.out.archived(name, dst)
	return dst, nil
}

func (g *generator) moveToArchive(src string, day time.Time) (string, error) {
	dir := g.layout.archiveDirFor(day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &PathError{Op: "create archive dir", Path: dir, Kind: ErrDirectoryUnwritable, Err: err}
	}
	dst := g.layout.archivePathFor(filepath.Base(src), day)

	err := moveNoReplace(src, dst)
	if errors.Is(err, fs.ErrExist) {
		return "", &ConflictError{Src: src, Dst: dst, Identical: sameContent(src, dst)}
	}
	if err != nil {
		return "", &PathError{Op: "archive", Path: src, Kind: ErrDirectoryUnwritable, Err: err}
	}
	g.log.Debug("moved report", "src", src, "dst", dst)
	return dst, nil
}

// moveNoReplace renames src to dst and fails with fs.ErrExist instead of
// replacing an existing dst. A hard link claims dst atomically; filesystems
// without hard links fall back to a checked rename.
func moveNoReplace(src, dst string) error {
	err := os.Link(src, dst)
	if err == nil {
		if err := removeFile(src); err != nil {
			_ = os.Remove(dst)
			return err
		}
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return err
	}
	if _, serr := os.Lstat(dst); serr == nil {
		return &fs.PathError{Op: "move", Path: dst, Err: fs.ErrExist}
	} else if !errors.Is(serr, fs.ErrNotExist) {
		return serr
	}
	return os.Rename(src, dst)
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func sameContent(a, b string) bool {
	da, err := fileDigest(a)
	if err != nil {
		return false
	}
	db, err := fileDigest(b)
	if err != nil {
		return false
	}
	return da == db
}
