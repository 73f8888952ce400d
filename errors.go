package main

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryUnwritable = errors.New("directory unwritable")
	ErrTemplateUnreadable  = errors.New("template unreadable")
	ErrArchiveConflict     = errors.New("archive destination conflict")
	ErrNotArchivable       = errors.New("not an archivable report")
)

// PathError records the failed operation, the path it touched and the kind of
// failure. Both the kind and the cause match errors.Is.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ConflictError means an archive destination is already taken. The source file
// is left where it was.
type ConflictError struct {
	Src       string
	Dst       string
	Identical bool
}

func (e *ConflictError) Error() string {
	state := "differs"
	if e.Identical {
		state = "identical"
	}
	return fmt.Sprintf("%s already exists (%s), kept %s", e.Dst, state, e.Src)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrArchiveConflict
}

// exitError carries the process exit code up to main.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usageError(err error) error {
	return &exitError{code: 2, err: err}
}
