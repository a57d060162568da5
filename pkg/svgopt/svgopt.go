// Package svgopt optimizes SVG files in place, keeping a one-time backup
// of the original next to each file.
package svgopt

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/wilsonhou/img-cli/internal/utils"
)

// BackupSuffix is appended to the original path for the backup copy.
const BackupSuffix = ".backup"

// Attributes stripped from the root <svg> element. Sizing is left to the
// embedding document.
var rootAttrs = []string{"width", "height", "viewBox"}

// Attributes stripped from every element so styling can be supplied via CSS.
var presentationAttrs = []string{"stroke", "fill"}

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m
}()

// Optimize rewrites the SVG at path with its optimized form.
//
// Before the first rewrite a backup is written at path + BackupSuffix.
// The backup is create-if-absent: once it exists it is never overwritten,
// so repeated runs keep the true pre-optimization original rather than a
// once-optimized copy.
func Optimize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	backup := path + BackupSuffix
	if !utils.FileExists(backup) {
		if err := os.WriteFile(backup, data, 0o644); err != nil {
			return fmt.Errorf("write backup %s: %w", backup, err)
		}
	}

	out, err := optimizeMarkup(data)
	if err != nil {
		return fmt.Errorf("optimize %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// optimizeMarkup strips the fixed attribute set and minifies the result.
// The profile is deliberately not configurable.
func optimizeMarkup(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse svg: no root element")
	}
	for _, attr := range rootAttrs {
		root.RemoveAttr(attr)
	}
	stripPresentation(root)

	stripped, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return minifier.Bytes("image/svg+xml", stripped)
}

func stripPresentation(el *etree.Element) {
	for _, attr := range presentationAttrs {
		el.RemoveAttr(attr)
	}
	for _, child := range el.ChildElements() {
		stripPresentation(child)
	}
}
