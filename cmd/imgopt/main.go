// Command imgopt batch-converts raster images (PNG, JPEG, HEIC) to WebP
// and optimizes SVG files in place, writing a one-time .backup copy of
// each SVG before its first rewrite.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/wilsonhou/img-cli/pkg/batch"
	"github.com/wilsonhou/img-cli/pkg/fileset"
	"github.com/wilsonhou/img-cli/pkg/pipeline"
	"github.com/wilsonhou/img-cli/pkg/svgopt"
)

var rasterExts = []string{"png", "jpg", "jpeg", "heic", "heif"}

func main() {
	var input string
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
	flag.Parse()

	if input == "" {
		log.Fatalf("usage: %s -i input|dir|glob [-q 80] [-l] [-e 6] [-n]",
			filepath.Base(os.Args[0]))
	}
	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	rasters, err := fileset.Resolve(input, rasterExts)
	if err != nil {
		log.Fatalf("resolve %s: %v", input, err)
	}
	report := batch.Run(fileset.Filter(rasters, rasterExts), opts)

	svgs, err := fileset.Resolve(input, []string{"svg"})
	if err != nil {
		log.Fatalf("resolve %s: %v", input, err)
	}
	svgs = fileset.Filter(svgs, []string{"svg"})
	svgFailed := 0
	for _, path := range svgs {
		if err := svgopt.Optimize(path); err != nil {
			log.Printf("%v", err)
			svgFailed++
			continue
		}
		log.Printf("optimized %s", path)
	}

	log.Printf("converted %d file(s), optimized %d svg(s), %d failed",
		report.Succeeded, len(svgs)-svgFailed, report.Failed+svgFailed)
	if report.Failed > 0 || svgFailed > 0 {
		os.Exit(1)
	}
}
