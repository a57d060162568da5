package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext returns the file extension without the dot, lower-cased.
func Ext(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// HasAnyExt reports whether filename carries one of the given extensions,
// compared case-insensitively and without dots.
func HasAnyExt(filename string, exts []string) bool {
	ext := Ext(filename)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// FileExists checks if a path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListFilesWithExt recursively lists all files under dir whose extension
// is in exts, sorted for a stable processing order.
func ListFilesWithExt(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && HasAnyExt(path, exts) {
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

// OutputPath computes where the converted copy of input is written.
// WebP inputs keep their name under an "optimized-" prefix so the source
// is not clobbered; every other format maps to "<basename>.webp" next to
// the original. An existing file at the computed path is overwritten.
func OutputPath(input string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	if Ext(input) == "webp" {
		return filepath.Join(dir, "optimized-"+base)
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+".webp")
}
