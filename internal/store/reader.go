// Package store reads and writes the backlog YAML file.
//
// The backlog file holds every planning collection (stories, sprints, needs,
// goals, contacts) for one product. It stands in for the key-value store the
// planning surfaces persist to; the engines themselves never touch it.
//
// Key types:
//   - [Reader] loads a [model.Backlog] from disk
//   - [Writer] persists a [model.Backlog] atomically
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pmplan/internal/model"
)

// PathEnv overrides every other way of locating the backlog file.
const PathEnv = "PMPLAN_BACKLOG_PATH"

// DefaultPath is the canonical backlog location relative to the project root.
const DefaultPath = ".pmplan/backlog.yaml"

// LegacyPath is the root-level backlog location.
const LegacyPath = "backlog.yaml"

// Paths lists the paths to search (in priority order) when auto-discovering
// the backlog file.
var Paths = []string{
	DefaultPath,
	LegacyPath,
}

// ResolvePath discovers the backlog file location.
//
// Resolution order:
//  1. PMPLAN_BACKLOG_PATH environment variable (used as-is if set)
//  2. Explicit path parameter (if non-empty)
//  3. Auto-discovery: tries [DefaultPath], then [LegacyPath] under basePath
//  4. Falls back to [DefaultPath] under basePath
//
// The basePath is the project root directory. Pass empty string for cwd.
func ResolvePath(basePath, path string) string {
	if envPath := os.Getenv(PathEnv); envPath != "" {
		return envPath
	}

	if path != "" {
		return path
	}

	for _, p := range Paths {
		fullPath := filepath.Join(basePath, p)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath
		}
	}

	return filepath.Join(basePath, DefaultPath)
}

// Reader reads the backlog from a YAML file.
//
// Use [NewReader] for auto-discovery or [NewReaderWithPath] for an explicit path.
type Reader struct {
	path string
}

// NewReader creates a [Reader] that auto-discovers the backlog file under basePath.
func NewReader(basePath string) *Reader {
	return &Reader{path: ResolvePath(basePath, "")}
}

// NewReaderWithPath creates a [Reader] for an explicit backlog file path.
// The PMPLAN_BACKLOG_PATH environment variable still takes priority if set.
func NewReaderWithPath(basePath, path string) *Reader {
	return &Reader{path: ResolvePath(basePath, path)}
}

// Path returns the resolved backlog file path.
func (r *Reader) Path() string {
	return r.path
}

// Read reads and parses the backlog file.
//
// A missing file is an error. A file with no stories parses to an empty
// backlog.
func (r *Reader) Read() (*model.Backlog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backlog: %w", err)
	}

	var backlog model.Backlog
	if err := yaml.Unmarshal(data, &backlog); err != nil {
		return nil, fmt.Errorf("failed to parse backlog: %w", err)
	}

	return &backlog, nil
}
