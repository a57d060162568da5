// Package pipeline applies the per-file transform sequence: crop, then
// resize, then scale. Encoding and disk I/O live in the batch driver, so
// the pipeline itself is a pure image-to-image function.
package pipeline

import (
	"fmt"
	"image"

	"github.com/wilsonhou/img-cli/pkg/codec"
	"github.com/wilsonhou/img-cli/pkg/geometry"
)

// Options is the immutable per-invocation configuration, built once from
// flags and applied identically to every file in the batch.
type Options struct {
	Crop     string // "WxH" or "WxH+L+T", empty = no crop
	Resize   string // "WxH", empty = no resize
	Scale    float64
	Fit      codec.Fit
	Position geometry.Anchor
	Encode   codec.EncodeOptions

	// IncludeWebP adds .webp files to the batch instead of skipping them.
	IncludeWebP bool
}

// Default returns the option values the CLI flags default to.
func Default() Options {
	return Options{
		Scale:    1,
		Fit:      codec.FitCover,
		Position: geometry.Center,
		Encode:   codec.DefaultEncodeOptions(),
	}
}

// Validate rejects option combinations before any file is touched.
func (o Options) Validate() error {
	if o.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", o.Scale)
	}
	if o.Crop != "" {
		if _, err := geometry.ParseCrop(o.Crop); err != nil {
			return err
		}
	}
	return o.Encode.Validate()
}

// Apply runs the fixed crop -> resize -> scale sequence against img,
// each step reading the dimensions the previous step produced.
//
// A crop that fails to parse or exceeds the image bounds aborts the
// remaining transforms for this file; the batch driver logs it and moves
// on to the next file. A resize string that does not parse as WxH is
// skipped silently, and scale 1 is a no-op rather than a redundant
// resize call.
func Apply(img image.Image, o Options) (image.Image, error) {
	if o.Crop != "" {
		spec, err := geometry.ParseCrop(o.Crop)
		if err != nil {
			return nil, err
		}
		rect, err := geometry.ResolveCrop(codec.Bounds(img), spec, o.Position)
		if err != nil {
			return nil, err
		}
		img = codec.Crop(img, rect)
	}

	if o.Resize != "" {
		if w, h, ok := geometry.ParseResize(o.Resize); ok {
			img = codec.Resize(img, w, h, o.Fit, o.Position)
		}
	}

	if o.Scale != 1 {
		target, err := geometry.ScaledSize(codec.Bounds(img), o.Scale)
		if err != nil {
			return nil, err
		}
		img = codec.Resize(img, target.Width, target.Height, codec.FitFill, o.Position)
	}

	return img, nil
}
