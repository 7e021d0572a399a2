// Package manifest loads YAML batch files describing convert jobs.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SAI-Aghylas/libppm/internal/color"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// Error wraps a manifest failure with the operation, kind and file path.
type Error struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidConfig:
		return e.Kind == KindInvalidConfig
	}
	return false
}

// Manifest is a validated batch of jobs.
type Manifest struct {
	Path    string
	Workers int
	Jobs    []Job
}

// Job converts one file. Input and Output are absolute or relative to the
// working directory once loaded.
type Job struct {
	Name   string
	Input  string
	Output string
	Ops    []color.Op
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "manifest.load", Kind: KindNotFound, Path: path, Err: err}
	}
	return Parse(path, b)
}

// Parse decodes manifest YAML. Relative job paths are resolved against the
// directory of path.
func Parse(path string, data []byte) (*Manifest, error) {
	const op = "manifest.parse"

	var dto YAMLManifest
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &Error{Op: op, Kind: KindInvalidConfig, Path: path, Err: err}
	}

	m, err := mapManifest(path, dto)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return m, nil
}

func mapManifest(path string, dto YAMLManifest) (*Manifest, error) {
	if dto.Workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", dto.Workers)
	}
	if len(dto.Jobs) == 0 {
		return nil, errors.New("no jobs defined")
	}

	base := filepath.Dir(path)
	m := &Manifest{Path: path, Workers: dto.Workers, Jobs: make([]Job, 0, len(dto.Jobs))}
	for i, j := range dto.Jobs {
		name := j.Name
		if name == "" {
			name = fmt.Sprintf("job-%d", i+1)
		}
		if j.Input == "" {
			return nil, fmt.Errorf("%s: input is required", name)
		}
		if j.Output == "" {
			return nil, fmt.Errorf("%s: output is required", name)
		}
		if len(j.Ops) == 0 {
			return nil, fmt.Errorf("%s: at least one op is required", name)
		}
		ops, err := color.ParseOps(j.Ops)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		m.Jobs = append(m.Jobs, Job{
			Name:   name,
			Input:  resolve(base, j.Input),
			Output: resolve(base, j.Output),
			Ops:    ops,
		})
	}
	return m, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
