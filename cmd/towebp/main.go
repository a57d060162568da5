// Command towebp batch-converts raster images (PNG, JPEG, HEIC and
// optionally WebP) to WebP, with optional crop, resize and scale
// transforms applied to every file.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/wilsonhou/img-cli/pkg/batch"
	"github.com/wilsonhou/img-cli/pkg/codec"
	"github.com/wilsonhou/img-cli/pkg/fileset"
	"github.com/wilsonhou/img-cli/pkg/geometry"
	"github.com/wilsonhou/img-cli/pkg/pipeline"
)

var rasterExts = []string{"png", "jpg", "jpeg", "heic", "heif"}

func main() {
	var (
		input    string
		fit      string
		position string
	)
	opts := pipeline.Default()

	flag.StringVar(&input, "input", "", "input file, directory, or glob")
	flag.StringVar(&input, "i", "", "input file, directory, or glob (shorthand)")
	flag.IntVar(&opts.Encode.Quality, "quality", 80, "WebP quality (0-100)")
	flag.IntVar(&opts.Encode.Quality, "q", 80, "WebP quality (shorthand)")
	flag.BoolVar(&opts.Encode.Lossless, "lossless", false, "lossless WebP output")
	flag.BoolVar(&opts.Encode.Lossless, "l", false, "lossless WebP output (shorthand)")
	flag.IntVar(&opts.Encode.Effort, "effort", 6, "compression effort (0-6)")
	flag.IntVar(&opts.Encode.Effort, "e", 6, "compression effort (shorthand)")
	flag.BoolVar(&opts.Encode.NearLossless, "nearLossless", false, "near-lossless WebP mode")
	flag.BoolVar(&opts.Encode.NearLossless, "n", false, "near-lossless WebP mode (shorthand)")
	flag.BoolVar(&opts.IncludeWebP, "includeWebp", false, "also re-encode WebP inputs")
	flag.BoolVar(&opts.IncludeWebP, "w", false, "also re-encode WebP inputs (shorthand)")
	flag.Float64Var(&opts.Scale, "scale", 1, "uniform scale factor")
	flag.Float64Var(&opts.Scale, "s", 1, "uniform scale factor (shorthand)")
	flag.StringVar(&opts.Crop, "crop", "", "crop spec: WxH or WxH+L+T")
	flag.StringVar(&opts.Crop, "c", "", "crop spec (shorthand)")
	flag.StringVar(&opts.Resize, "resize", "", "resize spec: WxH")
	flag.StringVar(&opts.Resize, "r", "", "resize spec (shorthand)")
	flag.StringVar(&fit, "fit", "cover", "resize fit: cover|contain|fill|inside|outside")
	flag.StringVar(&fit, "f", "cover", "resize fit (shorthand)")
	flag.StringVar(&position, "position", "center", "crop/resize anchor position")
	flag.StringVar(&position, "p", "center", "crop/resize anchor position (shorthand)")
	flag.Parse()

	if input == "" {
		log.Fatalf("usage: %s -i input.png|dir|glob [-q 80] [-l] [-e 6] [-n] [-w] [-s 0.5] [-c WxH[+L+T]] [-r WxH] [-f cover] [-p center]",
			filepath.Base(os.Args[0]))
	}

	var err error
	if opts.Fit, err = codec.ParseFit(fit); err != nil {
		log.Fatal(err)
	}
	if opts.Position, err = geometry.ParseAnchor(position); err != nil {
		log.Fatal(err)
	}
	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	exts := rasterExts
	if opts.IncludeWebP {
		exts = append(append([]string{}, rasterExts...), "webp")
	}
	files, err := fileset.Resolve(input, exts)
	if err != nil {
		log.Fatalf("resolve %s: %v", input, err)
	}

	report := batch.Run(fileset.Filter(files, exts), opts)
	log.Printf("converted %d file(s), %d failed", report.Succeeded, report.Failed)
	if report.Failed > 0 {
		os.Exit(1)
	}
}
