package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pmplan/internal/model"
)

// Writer writes the backlog to a YAML file.
type Writer struct {
	path string
}

// NewWriter creates a Writer for the given resolved file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write persists backlog, replacing the file contents.
//
// The file is written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated backlog behind. Missing parent
// directories are created.
func (w *Writer) Write(backlog *model.Backlog) error {
	if backlog == nil {
		return fmt.Errorf("failed to write backlog: nil backlog")
	}

	data, err := yaml.Marshal(backlog)
	if err != nil {
		return fmt.Errorf("failed to marshal backlog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("failed to write backlog: %w", err)
	}

	tmpPath := w.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backlog: %w", err)
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write backlog: %w", err)
	}

	return nil
}
