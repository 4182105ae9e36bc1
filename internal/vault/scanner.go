package vault

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScannedFile represents a markdown file found during a folder scan.
type ScannedFile struct {
	RelPath string // Relative path from the scanned root (e.g., "geometry/triangle.md")
	Folder  string // Folder path (path components except filename, e.g., "geometry")
	AbsPath string // Absolute file path
}

// Scan walks root and returns every markdown file found, sorted by RelPath.
// Hidden directories such as .obsidian or .git are skipped, as are files and
// directories whose slash-separated path relative to root matches one of the
// exclude patterns (doublestar syntax, e.g. "drafts/**" or "**/*.tmp.md").
func Scan(ctx context.Context, root string, exclude ...string) ([]ScannedFile, error) {
	if err := validatePatterns(exclude); err != nil {
		return nil, err
	}

	var scannedFiles []ScannedFile

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		// Check for context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			if rel, err := filepath.Rel(root, path); err == nil && excluded(exclude, filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		// Filter for markdown files
		if filepath.Ext(path) != ".md" {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		relPath = filepath.ToSlash(relPath)
		if excluded(exclude, relPath) {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}

		scannedFiles = append(scannedFiles, ScannedFile{
			RelPath: relPath,
			Folder:  folderOf(relPath),
			AbsPath: absPath,
		})
		return nil
	})
	if err != nil {
		return scannedFiles, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Slice(scannedFiles, func(i, j int) bool {
		return scannedFiles[i].RelPath < scannedFiles[j].RelPath
	})

	return scannedFiles, nil
}

// folderOf returns the slash-separated directory of relPath, or "" at the root.
func folderOf(relPath string) string {
	folder := path.Dir(relPath)
	if folder == "." {
		return ""
	}
	return folder
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}

// excluded reports whether relPath matches any of the validated patterns.
func excluded(patterns []string, relPath string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
	}
	return false
}

// hidden reports whether any directory of relPath starts with a dot.
func hidden(relPath string) bool {
	dirs := strings.Split(relPath, "/")
	for _, d := range dirs[:len(dirs)-1] {
		if strings.HasPrefix(d, ".") {
			return true
		}
	}
	return false
}
