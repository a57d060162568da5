// Package fileset expands a path, directory, or glob pattern into the
// concrete list of files a batch will process.
package fileset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wilsonhou/img-cli/internal/utils"
)

// Resolve expands input into a deduplicated, sorted list of files.
//
// An existing regular file is returned as-is without extension filtering
// (filtering happens again downstream). An existing directory is walked
// recursively. Anything else is treated as a glob pattern, matched
// case-insensitively. A glob matching nothing yields an empty list, not
// an error.
func Resolve(input string, exts []string) ([]string, error) {
	if utils.FileExists(input) {
		return []string{input}, nil
	}
	if utils.DirExists(input) {
		return utils.ListFilesWithExt(input, exts)
	}
	return glob(input, exts)
}

// Filter drops entries whose extension is not in exts. Unrecognized
// files are silently removed from the batch, not an error; this runs
// again downstream of Resolve because a single-file input bypasses the
// extension filter there.
func Filter(files []string, exts []string) []string {
	kept := files[:0]
	for _, f := range files {
		if utils.HasAnyExt(f, exts) {
			kept = append(kept, f)
		}
	}
	return kept
}

// glob matches the pattern against the filesystem. doublestar splits the
// pattern into its fixed base and the variable remainder; the base is
// walked once and each relative path is matched with both sides folded
// to lower case, so *.jpg also picks up photo.JPG.
func glob(pattern string, exts []string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !utils.DirExists(base) {
		return nil, nil
	}
	rest = strings.ToLower(rest)

	seen := make(map[string]struct{})
	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(rest, strings.ToLower(filepath.ToSlash(rel)))
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if !ok || !utils.HasAnyExt(path, exts) {
			return nil
		}
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
