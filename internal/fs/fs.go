// Package fs provides filesystem adapters that implement audit service interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/eykd/fentarxiu-go/internal/audit"
	"github.com/eykd/fentarxiu-go/internal/normalize"
)

// ErrNotDirectory is returned when an archive root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// OSLister implements audit.Lister using os.ReadDir.
type OSLister struct {
	// SkipHidden drops entries whose name starts with a dot.
	SkipHidden bool
}

// Files lists the regular files under root sorted by path. Paths are
// relative to root and joined with forward slashes.
func (l *OSLister) Files(ctx context.Context, root string, recursive bool) ([]audit.Entry, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}
	var out []audit.Entry
	if err := l.walk(ctx, root, "", recursive, &out); err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b audit.Entry) int { return strings.Compare(a.Path, b.Path) })
	return out, nil
}

func (l *OSLister) walk(ctx context.Context, dir, rel string, recursive bool, out *[]audit.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := l.readDir(dir)
	if err != nil {
		return err
	}

	var subdirs []os.DirEntry
	for _, e := range entries {
		name := normalize.Name(e.Name())
		if e.IsDir() {
			subdirs = append(subdirs, e)
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		*out = append(*out, audit.Entry{Name: name, Path: path.Join(rel, name)})
	}
	if !recursive {
		return nil
	}
	for _, d := range subdirs {
		name := normalize.Name(d.Name())
		if err := l.walk(ctx, filepath.Join(dir, d.Name()), path.Join(rel, name), true, out); err != nil {
			return err
		}
	}
	return nil
}

// Subfolders lists the direct child directories of root. The path of each
// entry is the folder name itself.
func (l *OSLister) Subfolders(ctx context.Context, root string) ([]audit.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkDir(root); err != nil {
		return nil, err
	}
	entries, err := l.readDir(root)
	if err != nil {
		return nil, err
	}
	var out []audit.Entry
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := normalize.Name(e.Name())
		out = append(out, audit.Entry{Name: name, Path: name})
	}
	return out, nil
}

// readDir returns the visible entries of dir sorted by normalized name.
func (l *OSLister) readDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	if l.SkipHidden {
		entries = slices.DeleteFunc(entries, func(e os.DirEntry) bool {
			return strings.HasPrefix(e.Name(), ".")
		})
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(normalize.Name(a.Name()), normalize.Name(b.Name()))
	})
	return entries, nil
}

func checkDir(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("opening %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return nil
}

// OSWriter writes report logs using os.WriteFile.
type OSWriter struct{}

// WriteFile writes content to target, creating parent directories as needed.
func (OSWriter) WriteFile(ctx context.Context, target, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// FindUpward walks up from start looking for a file called name and returns
// its path. It reports os.ErrNotExist when no ancestor holds the file.
func FindUpward(start, name string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found above %s: %w", name, start, os.ErrNotExist)
		}
		dir = parent
	}
}
