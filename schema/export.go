package schema

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/logging"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644

	// DefaultIndent is the indentation used for pretty-printed output.
	DefaultIndent = "  "
)

// Exporter derives and writes the schemas in a Registry.
type Exporter struct {
	registry *Registry
	indent   string
	logger   *logrus.Entry
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithIndent sets the indentation used when rendering. Empty means DefaultIndent.
func WithIndent(indent string) Option {
	return func(e *Exporter) {
		if indent != "" {
			e.indent = indent
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *logrus.Entry) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// NewExporter creates an exporter over reg.
func NewExporter(reg *Registry, opts ...Option) *Exporter {
	e := &Exporter{
		registry: reg,
		indent:   DefaultIndent,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewLogger("agentschema.schema")
	}
	return e
}

// Registry returns the registry the exporter works from.
func (e *Exporter) Registry() *Registry {
	return e.registry
}

// Report summarises a successful export.
type Report struct {
	Dir   string
	Files []string
	Bytes int64
}

// EnsureDir creates dir and any missing parents. An existing directory is
// fine; an existing non-directory is an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return errors.OutputDir(dir, err)
	}
	return nil
}

// Marshal pretty-prints a schema followed by a trailing newline.
func (e *Exporter) Marshal(s *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", e.indent)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeMarshalFailed, "failed to marshal schema").
			WithDetail("title", s.Title)
	}
	return append(data, '\n'), nil
}

// Render returns the exact bytes Export writes for job.
func (e *Exporter) Render(job Job) ([]byte, error) {
	return e.Marshal(Derive(job))
}

// Write serializes s to <dir>/<name>.json, replacing any existing file.
// It returns the number of bytes written.
func (e *Exporter) Write(dir, name string, s *jsonschema.Schema) (int, error) {
	data, err := e.Marshal(s)
	if err != nil {
		return 0, err
	}
	path := filepath.Join(dir, name+".json")
	if err := writeFileAtomic(path, data, filePerms); err != nil {
		return 0, errors.WriteFailed(path, err)
	}
	return len(data), nil
}

// Export ensures dir exists and writes every registered schema into it, in
// registry order. The first failure aborts the run; files already written stay.
func (e *Exporter) Export(dir string) (*Report, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	report := &Report{Dir: dir}
	for _, job := range e.registry.Jobs() {
		n, err := e.Write(dir, job.Name, Derive(job))
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, job.FileName())
		report.Bytes += int64(n)

		e.logger.WithFields(logrus.Fields{
			"schema": job.Title,
			"file":   job.FileName(),
			"bytes":  n,
		}).Debug("Wrote schema")
	}

	e.logger.WithField("dir", dir).
		Infof("Wrote %d schemas (%s)", len(report.Files), humanize.Bytes(uint64(report.Bytes)))
	return report, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""
	return nil
}
