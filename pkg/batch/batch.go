// Package batch drives the per-file convert loop and collects results.
package batch

import (
	"fmt"
	"log"

	"github.com/wilsonhou/img-cli/internal/utils"
	"github.com/wilsonhou/img-cli/pkg/codec"
	"github.com/wilsonhou/img-cli/pkg/pipeline"
)

// Result records the outcome for a single file.
type Result struct {
	Input  string
	Output string
	Err    error
}

// Report aggregates a whole batch. One file failing never stops the
// files after it; failures are collected here instead.
type Report struct {
	Results   []Result
	Succeeded int
	Failed    int
}

// Run processes files sequentially: load, transform, encode, write. Each
// file completes fully before the next begins. Per-file errors are
// logged with the path and recorded; only the caller's file-set
// resolution can abort a run.
func Run(files []string, opts pipeline.Options) Report {
	report := Report{Results: make([]Result, 0, len(files))}
	for _, file := range files {
		out, err := convertOne(file, opts)
		if err != nil {
			log.Printf("%s: %v", file, err)
			report.Failed++
		} else {
			log.Printf("wrote %s", out)
			report.Succeeded++
		}
		report.Results = append(report.Results, Result{Input: file, Output: out, Err: err})
	}
	return report
}

func convertOne(path string, opts pipeline.Options) (string, error) {
	img, err := codec.Load(path)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	img, err = pipeline.Apply(img, opts)
	if err != nil {
		return "", err
	}
	out := utils.OutputPath(path)
	if err := codec.EncodeWebP(img, out, opts.Encode); err != nil {
		return "", err
	}
	return out, nil
}
