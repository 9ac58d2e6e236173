// Package adapter contains the infrastructure the mapping engine talks to:
// filesystem access, the LaTeX renderer, the visual detector, embedding providers
// and artifact stores.
package adapter

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minio/highwayhash"

	m "github.com/mouse-blink/vifmap/internal/model"
)

const texExt = ".tex"

var fileHashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading documents, so the workflow can be tested without
// touching the disk.
type SourceFSAdapter interface {
	Get(roots []m.Path) ([]m.Source, error)

	// Walk visits root and, when recursive, the directories below it.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	FileInfo(path m.Path) (os.FileInfo, error)
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// FilepathWalkFunc is the callback Walk invokes for each visited entry. It keeps
// io/fs types out of the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter reads documents from the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects the .tex documents named by roots. A root is a file, a directory
// (its own documents only) or a directory followed by "/..." (every document below
// it, hidden directories excepted). Documents are deduplicated by absolute path and
// returned sorted.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	found := make(map[m.Path]m.Source)

	for _, root := range roots {
		dir, recursive, err := splitRoot(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(dir))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := a.collect(dir, found); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(dir), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}

			return a.collect(path, found)
		})
		if err != nil {
			return nil, err
		}
	}

	sources := make([]m.Source, 0, len(found))
	for _, source := range found {
		sources = append(sources, source)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })

	return sources, nil
}

// collect hashes path into found when it is a document not seen yet.
func (a *LocalSourceFSAdapter) collect(path string, found map[m.Path]m.Source) error {
	if !strings.EqualFold(filepath.Ext(path), texExt) {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, ok := found[m.Path(abs)]; ok {
		return nil
	}

	hash, err := a.HashFile(m.Path(abs))
	if err != nil {
		return fmt.Errorf("hash error for %s: %w", abs, err)
	}

	found[m.Path(abs)] = m.Source{Path: m.Path(abs), Hash: hash}

	return nil
}

// Walk calls fn for root and the entries below it. Without recursive only the
// entries of root itself are visited; with it, hidden directories such as .git or
// the artifact store are skipped.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	top := string(root)

	return filepath.WalkDir(top, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}

		if d.IsDir() && path != top {
			if !recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
		}

		info, err := d.Info()
		if err != nil {
			return fn(path, nil, err)
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the hex HighwayHash-256 of the file at path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	sum := highwayhash.Sum(content, fileHashKey)

	return hex.EncodeToString(sum[:]), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// splitRoot strips a "/..." suffix, expands a leading "~" and makes the path absolute.
func splitRoot(root string) (string, bool, error) {
	dir, recursive := strings.CutSuffix(root, "/...")

	if rest, ok := strings.CutPrefix(dir, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		dir = filepath.Join(home, strings.TrimLeft(rest, `/\`))
	}

	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}
