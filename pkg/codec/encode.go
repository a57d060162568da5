package codec

import (
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
)

// EncodeOptions are the WebP output parameters shared by every file in a
// batch.
type EncodeOptions struct {
	Quality      int // 0-100
	Lossless     bool
	Effort       int // 0-6
	NearLossless bool
}

// DefaultEncodeOptions returns the encoder defaults used by both tools.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Quality: 80, Lossless: false, Effort: 6, NearLossless: false}
}

// Validate checks the option ranges before a batch starts.
func (o EncodeOptions) Validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return fmt.Errorf("quality must be between 0 and 100, got %d", o.Quality)
	}
	if o.Effort < 0 || o.Effort > 6 {
		return fmt.Errorf("effort must be between 0 and 6, got %d", o.Effort)
	}
	return nil
}

// EncodeWebP writes img to path as WebP. Near-lossless requests encode
// through the lossless path with quality steering the preprocessing
// level, which is the closest mode this encoder exposes.
func EncodeWebP(img image.Image, path string, o EncodeOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	opts := &webp.Options{
		Lossless: o.Lossless || o.NearLossless,
		Quality:  float32(o.Quality),
		Exact:    o.Lossless && !o.NearLossless,
	}
	if err := webp.Encode(f, img, opts); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
