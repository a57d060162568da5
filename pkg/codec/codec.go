// Package codec is the boundary to the raster image libraries: decoding
// PNG/JPEG/HEIC/WebP inputs, geometric operations, and WebP encoding.
package codec

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "github.com/gen2brain/heic" // registers HEIC/HEIF decoding
	_ "golang.org/x/image/webp"   // registers WebP decoding for image.Decode

	"github.com/wilsonhou/img-cli/pkg/geometry"
)

// Fit controls how the source aspect ratio maps onto target dimensions.
type Fit int

const (
	FitCover Fit = iota
	FitContain
	FitFill
	FitInside
	FitOutside
)

var fitNames = map[string]Fit{
	"cover":   FitCover,
	"contain": FitContain,
	"fill":    FitFill,
	"inside":  FitInside,
	"outside": FitOutside,
}

// ParseFit parses one of cover, contain, fill, inside, outside.
func ParseFit(s string) (Fit, error) {
	if f, ok := fitNames[s]; ok {
		return f, nil
	}
	return FitCover, fmt.Errorf("unknown fit %q", s)
}

func (f Fit) String() string {
	for name, v := range fitNames {
		if v == f {
			return name
		}
	}
	return "cover"
}

// Load decodes an image from a file path. imaging.Open covers everything
// registered with image.Decode (PNG, JPEG, and the blank-imported WebP
// and HEIC decoders); WebP files that slip past it get an explicit
// chai2010 decode as a fallback.
func Load(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err == nil {
			if img, _, err := image.Decode(f); err == nil {
				return img, nil
			}
		}
	} else {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Bounds returns the image's current dimensions.
func Bounds(img image.Image) geometry.Dimensions {
	b := img.Bounds()
	return geometry.Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Crop extracts a resolved rectangle from the image.
func Crop(img image.Image, r geometry.Rect) image.Image {
	return imaging.Crop(img, image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height))
}

// Resize maps the image onto w x h according to fit. The anchor applies
// to cover, which crops; the other modes preserve the full frame.
func Resize(img image.Image, w, h int, fit Fit, anchor geometry.Anchor) image.Image {
	switch fit {
	case FitCover:
		return imaging.Fill(img, w, h, anchor.Imaging(), imaging.Lanczos)
	case FitFill:
		return imaging.Resize(img, w, h, imaging.Lanczos)
	case FitInside:
		return imaging.Fit(img, w, h, imaging.Lanczos)
	case FitContain, FitOutside:
		tw, th := fitDims(Bounds(img), w, h, fit)
		return imaging.Resize(img, tw, th, imaging.Lanczos)
	default:
		return imaging.Fill(img, w, h, anchor.Imaging(), imaging.Lanczos)
	}
}

// fitDims computes aspect-preserving target dimensions: contain scales so
// both sides fit within the box, outside so both sides cover it.
func fitDims(src geometry.Dimensions, w, h int, fit Fit) (int, int) {
	sx := float64(w) / float64(src.Width)
	sy := float64(h) / float64(src.Height)
	s := sx
	if fit == FitContain {
		if sy < s {
			s = sy
		}
	} else {
		if sy > s {
			s = sy
		}
	}
	d, err := geometry.ScaledSize(src, s)
	if err != nil {
		return w, h
	}
	return d.Width, d.Height
}
