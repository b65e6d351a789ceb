// Package adapter contains filesystem and persistence adapters for the checkcodedoc CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

const recursiveSuffix = "/..."

// FileFilter selects files found while walking directory roots. Patterns are
// doublestar globs matched against the path relative to the root.
type FileFilter struct {
	Include []string
	Exclude []string
}

// SourceFSAdapter abstracts filesystem-specific operations the domain layer
// relies on when collecting and reading source files, so the workflow logic
// can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get expands roots into source files. Roots that do not exist are
	// returned in missing instead of failing the call.
	Get(roots []m.Path, filter FileFilter) (files []m.SourceFile, missing []m.Path, err error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects files for the provided roots. A root naming a file is taken
// as is; a directory root is walked (recursively for `dir/...`) and filtered.
// Files are returned once, in walk order.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter FileFilter) ([]m.SourceFile, []m.Path, error) {
	seen := make(map[string]struct{})

	var (
		files   []m.SourceFile
		missing []m.Path
	)

	add := func(root m.Path, display string) {
		key := filepath.Clean(display)
		if _, exists := seen[key]; exists {
			return
		}

		seen[key] = struct{}{}
		files = append(files, m.SourceFile{Path: m.Path(display), Root: root})
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, root)
				continue
			}

			return nil, nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(root, rootPath)
			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(rootPath, path)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)

			if info.IsDir() {
				if path != rootPath && matchesAny(filter.Exclude, rel+"/") {
					return filepath.SkipDir
				}

				return nil
			}

			if !matchesAny(filter.Include, rel) || matchesAny(filter.Exclude, rel) {
				return nil
			}

			add(root, path)

			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return files, missing, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			return true
		}
	}

	return false
}

// normalizeRootPath expands a leading ~ and strips the recursive suffix. The
// result stays relative when the root was given relative so reports show the
// paths the user typed.
func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, recursiveSuffix) {
		return strings.TrimSuffix(rootStr, recursiveSuffix), true
	}

	return rootStr, false
}
