package main

import (
	"errors"
	"io/fs"
	"os"
)

const textTemplate = "<Today's task>\n-\n-\n\n<TODO>\n-\n-\n\n"

type templateResult struct {
	Path    string
	Created bool
}

func defaultTemplate(ext string) []byte {
	if isMarkdown(ext) {
		return markdownTemplate()
	}
	return []byte(textTemplate)
}

// ensureTemplate creates the template with default content when it is
// missing. An existing template is never written to.
func ensureTemplate(l layout) (templateResult, error) {
	path := l.templatePath()
	if _, err := os.Stat(path); err == nil {
		return templateResult{Path: path}, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return templateResult{Path: path}, nil
	}
	if err != nil {
		return templateResult{}, &PathError{Op: "create template", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	if _, err := f.Write(defaultTemplate(l.Extension)); err != nil {
		_ = f.Close()
		return templateResult{}, &PathError{Op: "write template", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return templateResult{}, &PathError{Op: "sync template", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	if err := f.Close(); err != nil {
		return templateResult{}, &PathError{Op: "close template", Path: path, Kind: ErrDirectoryUnwritable, Err: err}
	}
	return templateResult{Path: path, Created: true}, nil
}
