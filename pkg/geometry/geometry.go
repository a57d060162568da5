// Package geometry computes crop rectangles and scaled target sizes.
//
// Everything in this package is pure arithmetic over declared image
// dimensions; no file or image handle is ever touched, which keeps the
// crop/scale math unit-testable with nothing but numbers.
package geometry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/disintegration/imaging"
)

// Sentinel errors returned by the resolvers. Callers use errors.Is to
// distinguish a malformed spec string from a crop that does not fit.
var (
	ErrMalformedSpec     = errors.New("malformed spec")
	ErrCropExceedsBounds = errors.New("crop exceeds image bounds")
	ErrDegenerateScale   = errors.New("scale produces empty dimension")
)

// Dimensions is a snapshot of an image's pixel size at the moment a
// transform is evaluated.
type Dimensions struct {
	Width  int
	Height int
}

// Rect is a fully resolved crop rectangle in pixel coordinates.
type Rect struct {
	Width  int
	Height int
	Left   int
	Top    int
}

// Anchor names one of the nine reference points used to place a crop or
// resize origin without explicit coordinates.
type Anchor int

const (
	Center Anchor = iota
	North
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var anchorNames = map[string]Anchor{
	"center":    Center,
	"north":     North,
	"east":      East,
	"south":     South,
	"west":      West,
	"northeast": NorthEast,
	"northwest": NorthWest,
	"southeast": SouthEast,
	"southwest": SouthWest,
}

// ParseAnchor parses one of the nine anchor names.
func ParseAnchor(s string) (Anchor, error) {
	if a, ok := anchorNames[s]; ok {
		return a, nil
	}
	return Center, fmt.Errorf("%w: unknown position %q", ErrMalformedSpec, s)
}

func (a Anchor) String() string {
	for name, v := range anchorNames {
		if v == a {
			return name
		}
	}
	return "center"
}

// Imaging maps an Anchor onto the equivalent imaging.Anchor value.
func (a Anchor) Imaging() imaging.Anchor {
	switch a {
	case North:
		return imaging.Top
	case East:
		return imaging.Right
	case South:
		return imaging.Bottom
	case West:
		return imaging.Left
	case NorthEast:
		return imaging.TopRight
	case NorthWest:
		return imaging.TopLeft
	case SouthEast:
		return imaging.BottomRight
	case SouthWest:
		return imaging.BottomLeft
	case Center:
		return imaging.Center
	default:
		return imaging.Center
	}
}

// CropSpec is a parsed --crop argument. Explicit specs carry their own
// left/top offsets; anchored specs are resolved against the image's
// dimensions at apply time.
type CropSpec struct {
	Width    int
	Height   int
	Left     int
	Top      int
	Explicit bool
}

var cropRe = regexp.MustCompile(`^(\d+)x(\d+)(?:\+(\d+)\+(\d+))?$`)

// ParseCrop parses "WxH" (anchored) or "WxH+L+T" (explicit). "100x100"
// is anchored, never an explicit rectangle at the origin.
func ParseCrop(s string) (CropSpec, error) {
	m := cropRe.FindStringSubmatch(s)
	if m == nil {
		return CropSpec{}, fmt.Errorf("%w: crop %q (want WxH or WxH+L+T)", ErrMalformedSpec, s)
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return CropSpec{}, fmt.Errorf("%w: crop width %q", ErrMalformedSpec, m[1])
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return CropSpec{}, fmt.Errorf("%w: crop height %q", ErrMalformedSpec, m[2])
	}
	if w <= 0 || h <= 0 {
		return CropSpec{}, fmt.Errorf("%w: crop %q must be positive", ErrMalformedSpec, s)
	}
	spec := CropSpec{Width: w, Height: h}
	if m[3] != "" {
		left, err := strconv.Atoi(m[3])
		if err != nil {
			return CropSpec{}, fmt.Errorf("%w: crop left %q", ErrMalformedSpec, m[3])
		}
		top, err := strconv.Atoi(m[4])
		if err != nil {
			return CropSpec{}, fmt.Errorf("%w: crop top %q", ErrMalformedSpec, m[4])
		}
		spec.Left, spec.Top, spec.Explicit = left, top, true
	}
	return spec, nil
}

var resizeRe = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ParseResize parses "WxH". ok is false for any other shape or for
// non-positive dimensions; callers skip the resize step in that case.
func ParseResize(s string) (w, h int, ok bool) {
	m := resizeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	w, _ = strconv.Atoi(m[1])
	h, _ = strconv.Atoi(m[2])
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// ResolveCrop turns a spec into a concrete rectangle inside dims.
//
// Anchored specs resolve each axis independently: the horizontal offset
// comes from the anchor's west/center/east class and the vertical offset
// from its north/center/south class, so the four diagonal anchors fall
// out of the cross product rather than being special cases.
func ResolveCrop(dims Dimensions, spec CropSpec, anchor Anchor) (Rect, error) {
	if spec.Width > dims.Width || spec.Height > dims.Height {
		return Rect{}, fmt.Errorf("%w: %dx%d on %dx%d image",
			ErrCropExceedsBounds, spec.Width, spec.Height, dims.Width, dims.Height)
	}
	if spec.Explicit {
		if spec.Left < 0 || spec.Top < 0 {
			return Rect{}, fmt.Errorf("%w: negative crop offset +%d+%d", ErrMalformedSpec, spec.Left, spec.Top)
		}
		return Rect{Width: spec.Width, Height: spec.Height, Left: spec.Left, Top: spec.Top}, nil
	}

	var left int
	switch anchor {
	case West, NorthWest, SouthWest:
		left = 0
	case East, NorthEast, SouthEast:
		left = dims.Width - spec.Width
	case Center, North, South:
		left = (dims.Width - spec.Width) / 2
	default:
		return Rect{}, fmt.Errorf("%w: unknown anchor %d", ErrMalformedSpec, anchor)
	}

	var top int
	switch anchor {
	case North, NorthWest, NorthEast:
		top = 0
	case South, SouthWest, SouthEast:
		top = dims.Height - spec.Height
	case Center, East, West:
		top = (dims.Height - spec.Height) / 2
	default:
		return Rect{}, fmt.Errorf("%w: unknown anchor %d", ErrMalformedSpec, anchor)
	}

	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	return Rect{Width: spec.Width, Height: spec.Height, Left: left, Top: top}, nil
}
