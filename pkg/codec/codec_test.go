package codec

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/wilsonhou/img-cli/pkg/geometry"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 64, 255})
		}
	}
	return img
}

func TestCrop(t *testing.T) {
	img := createTestImage(100, 50)
	out := Crop(img, geometry.Rect{Width: 30, Height: 20, Left: 10, Top: 5})

	b := out.Bounds()
	if b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("cropped to %dx%d, want 30x20", b.Dx(), b.Dy())
	}
}

func TestResizeFitModes(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		w, h         int
		fit          Fit
		wantW, wantH int
	}{
		{name: "cover crops to exact box", srcW: 200, srcH: 100, w: 50, h: 50, fit: FitCover, wantW: 50, wantH: 50},
		{name: "fill ignores aspect", srcW: 200, srcH: 100, w: 50, h: 50, fit: FitFill, wantW: 50, wantH: 50},
		{name: "contain fits within box", srcW: 200, srcH: 100, w: 50, h: 50, fit: FitContain, wantW: 50, wantH: 25},
		{name: "contain upscales", srcW: 20, srcH: 10, w: 50, h: 50, fit: FitContain, wantW: 50, wantH: 25},
		{name: "inside fits within box", srcW: 200, srcH: 100, w: 50, h: 50, fit: FitInside, wantW: 50, wantH: 25},
		{name: "inside never upscales", srcW: 20, srcH: 10, w: 50, h: 50, fit: FitInside, wantW: 20, wantH: 10},
		{name: "outside covers box", srcW: 200, srcH: 100, w: 50, h: 50, fit: FitOutside, wantW: 100, wantH: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resize(createTestImage(tt.srcW, tt.srcH), tt.w, tt.h, tt.fit, geometry.Center)
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("resized to %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEncodeWebPRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.webp")

	err := EncodeWebP(createTestImage(40, 30), path, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("EncodeWebP failed: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("round trip got %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}

func TestEncodeWebPLossless(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lossless.webp")

	opts := DefaultEncodeOptions()
	opts.Lossless = true
	if err := EncodeWebP(createTestImage(16, 16), path, opts); err != nil {
		t.Fatalf("EncodeWebP lossless failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected decode error for garbage input")
	}
}

func TestEncodeOptionsValidate(t *testing.T) {
	opts := DefaultEncodeOptions()
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	opts.Quality = -1
	if err := opts.Validate(); err == nil {
		t.Error("expected error for negative quality")
	}

	opts = DefaultEncodeOptions()
	opts.Effort = 9
	if err := opts.Validate(); err == nil {
		t.Error("expected error for effort out of range")
	}
}
