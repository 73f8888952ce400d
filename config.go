package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFile = ".workreport.yaml"

// fileConfig is the optional .workreport.yaml in the working directory.
type fileConfig struct {
	Extension  string `yaml:"extension"`
	Template   string `yaml:"template"`
	ArchiveDir string `yaml:"archive_dir"`
	LogLevel   string `yaml:"log_level"`
}

// loadConfig reads the config file in dir. A missing file yields the zero
// config.
func loadConfig(dir string) (fileConfig, error) {
	var cfg fileConfig
	path := filepath.Join(dir, configFile)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays the non-empty fields of cfg on l.
func (cfg fileConfig) apply(l layout) layout {
	if cfg.Extension != "" {
		l.Extension = cfg.Extension
	}
	if cfg.Template != "" {
		l.TemplateName = cfg.Template
	}
	if cfg.ArchiveDir != "" {
		l.ArchiveDir = cfg.ArchiveDir
	}
	return l
}

func (l layout) validate() error {
	if !strings.HasPrefix(l.Extension, ".") || len(l.Extension) < 2 || strings.ContainsAny(l.Extension, `/\`) {
		return fmt.Errorf("invalid extension %q: must start with a dot", l.Extension)
	}
	if !isPathElement(l.TemplateName) {
		return fmt.Errorf("invalid template name %q", l.TemplateName)
	}
	if isDateStamp(l.TemplateName) {
		return fmt.Errorf("invalid template name %q: looks like a report date", l.TemplateName)
	}
	if !isPathElement(l.ArchiveDir) {
		return fmt.Errorf("invalid archive dir %q: must be a single directory name", l.ArchiveDir)
	}
	return nil
}

func isPathElement(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
