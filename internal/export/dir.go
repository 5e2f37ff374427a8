package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("invalid document name")

// Dir writes one JSON document per resource into a directory.
type Dir struct {
	path   string
	indent bool
}

// NewDir creates path when it does not exist yet.
func NewDir(path string, indent bool) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %q: %w", path, err)
	}
	return &Dir{path: path, indent: indent}, nil
}

func (d *Dir) Path() string {
	return d.path
}

// Write stores v as <dir>/<name>.json, replacing any previous document atomically.
func (d *Dir) Write(name string, v any) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	var (
		b   []byte
		err error
	)
	if d.indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", name, err)
	}

	target := filepath.Join(d.path, name+".json")
	tmp, err := os.CreateTemp(d.path, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", err
	}
	slog.Debug("document written", slog.String("path", target), slog.Int("bytes", len(b)))
	return target, nil
}
