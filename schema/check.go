package schema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/grovetools/agentschema/errors"
)

// Drift lists the schema files in a directory that no longer match what the
// registry derives.
type Drift struct {
	Dir     string
	Missing []string
	Stale   []string
	// Diff is a unified diff of every stale file against its regenerated form.
	Diff string
}

// Clean reports whether every file is present and current.
func (d *Drift) Clean() bool {
	return len(d.Missing) == 0 && len(d.Stale) == 0
}

// Err returns a SCHEMA_DRIFT error, or nil when clean.
func (d *Drift) Err() error {
	if d.Clean() {
		return nil
	}
	files := make([]string, 0, len(d.Missing)+len(d.Stale))
	for _, name := range d.Missing {
		files = append(files, name+" (missing)")
	}
	files = append(files, d.Stale...)
	return errors.SchemaDrift(d.Dir, files)
}

// Check regenerates every schema in memory and compares it with the file on
// disk. It only returns an error when a file exists but cannot be read.
func (e *Exporter) Check(dir string) (*Drift, error) {
	drift := &Drift{Dir: dir}
	var diff strings.Builder

	for _, job := range e.registry.Jobs() {
		want, err := e.Render(job)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, job.FileName())
		got, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			drift.Missing = append(drift.Missing, job.FileName())
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read schema file").
				WithDetail("path", path)
		}
		if bytes.Equal(got, want) {
			continue
		}

		drift.Stale = append(drift.Stale, job.FileName())
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(got)),
			B:        difflib.SplitLines(string(want)),
			FromFile: path,
			ToFile:   path + " (generated)",
			Context:  3,
		})
		if err != nil {
			e.logger.WithError(err).WithField("file", job.FileName()).Debug("Failed to diff schema")
			fmt.Fprintf(&diff, "--- %s\n(diff unavailable: %v)\n", path, err)
			continue
		}
		diff.WriteString(text)
	}

	drift.Diff = diff.String()
	e.logger.WithField("dir", dir).
		WithField("missing", len(drift.Missing)).
		WithField("stale", len(drift.Stale)).
		Debug("Checked schemas")
	return drift, nil
}
