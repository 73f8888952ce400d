package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recorder captures reporter events as short strings.
type recorder struct {
	events []string
}

func (r *recorder) templateCreated(path string) { r.events = append(r.events, "template "+filepath.Base(path)) }
func (r *recorder) reportCreated(path string) { r.events = append(r.events, "created "+filepath.Base(path)) }
func (r *recorder) reportExists(name string, today bool) {
	if today {
		r.events = append(r.events, "exists today")
		return
	}
	r.events = append(r.events, "exists "+name)
}
func (r *recorder) archived(name, dst string) { r.events = append(r.events, "archived "+name) }
func (r *recorder) conflict(c *ConflictError) { r.events = append(r.events, "conflict "+filepath.Base(c.Src)) }
func (r *recorder) failed(path string, err error) { r.events = append(r.events, "failed "+filepath.Base(path)) }
func (r *recorder) nothingToArchive() { r.events = append(r.events, "nothing") }

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	require.NoError(t, err)
	return d
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func testGenerator(t *testing.T) (*generator, *recorder) {
	t.Helper()
	rec := &recorder{}
	return newGenerator(newLayout(t.TempDir()), rec), rec
}
