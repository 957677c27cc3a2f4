// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension recursively searches the given root path for all files
// ending with one of the given extensions. It returns a slice of their full
// paths in walk order.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ResolveFiles expands every input into the files it names. An input can be
// a file, a directory (searched recursively for the given extensions) or a
// doublestar glob such as `palettes/**/*.hcl`. Files named explicitly are
// kept whatever their extension; files found by a directory walk or a glob
// are filtered by extension. The result is sorted and free of duplicates.
func ResolveFiles(inputs []string, extensions ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, input := range inputs {
		if isGlob(input) {
			matches, err := doublestar.FilepathGlob(input, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", input, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("pattern %q matches no files", input)
			}
			for _, m := range matches {
				if hasExtension(m, extensions) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", input, err)
		}
		if !info.IsDir() {
			add(input)
			continue
		}
		found, err := FindFilesByExtension(input, extensions...)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
