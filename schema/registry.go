package schema

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/pkg/models"
)

// Job is one entry in the export registry: a schema file and how to derive it.
type Job struct {
	// Name is the snake-case file stem, e.g. "action_log".
	Name string
	// Title is the declared type name, e.g. "ActionLog".
	Title string
	// Derive builds the root schema. It must be pure.
	Derive func(r *jsonschema.Reflector) *jsonschema.Schema
}

// FileName returns the output file name for the job.
func (j Job) FileName() string {
	return j.Name + ".json"
}

// Provider is implemented by types that hand-write their schema.
type Provider interface {
	JSONSchema() *jsonschema.Schema
}

// Record returns a job for a struct type, reflecting its fields.
func Record(v any) Job {
	title := typeName(v)
	return Job{
		Name:  snakeCase(title),
		Title: title,
		Derive: func(r *jsonschema.Reflector) *jsonschema.Schema {
			s := r.Reflect(v)
			s.Version = Draft
			s.Title = title
			return s
		},
	}
}

// ResultOf returns a job for a success-or-error result whose error type is errType.
func ResultOf(title string, errType Provider) Job {
	errName := typeName(errType)
	return Job{
		Name:  snakeCase(title),
		Title: title,
		Derive: func(_ *jsonschema.Reflector) *jsonschema.Schema {
			return resultSchema(title, errName, errType.JSONSchema())
		},
	}
}

// Registry is the fixed, ordered list of export jobs.
type Registry struct {
	jobs   []Job
	byName map[string]int
}

// NewRegistry builds a registry. Duplicate or empty names are programmer
// errors and panic.
func NewRegistry(jobs ...Job) *Registry {
	r := &Registry{byName: make(map[string]int, len(jobs))}
	for _, job := range jobs {
		if job.Name == "" || job.Derive == nil {
			panic(fmt.Sprintf("schema: incomplete job %q", job.Title))
		}
		if _, dup := r.byName[job.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate job name %q", job.Name))
		}
		r.byName[job.Name] = len(r.jobs)
		r.jobs = append(r.jobs, job)
	}
	return r
}

// Default returns the registry of every type agentschema exports, in output order.
func Default() *Registry {
	return NewRegistry(
		Record(&models.ActionLog{}),
		Record(&models.InputLog{}),
		ResultOf("LaunchResult", models.LaunchResultError{}),
		ResultOf("LaunchLocalResult", models.LaunchLocalResultError{}),
		Record(&models.LocalMessage{}),
	)
}

// Jobs returns the jobs in registration order.
func (r *Registry) Jobs() []Job {
	return append([]Job(nil), r.jobs...)
}

// Names returns the job names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.jobs))
	for i, job := range r.jobs {
		names[i] = job.Name
	}
	return names
}

// Lookup finds a job by name.
func (r *Registry) Lookup(name string) (Job, error) {
	i, ok := r.byName[name]
	if !ok {
		return Job{}, errors.SchemaNotFound(name, r.Names())
	}
	return r.jobs[i], nil
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// snakeCase turns a Go type name into its file stem: "LaunchLocalResult"
// becomes "launch_local_result". Acronym runs stay together ("HTTPLog" is
// "http_log").
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
