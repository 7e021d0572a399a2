package pipeline

import (
	"bytes"
	"fmt"

	"github.com/SAI-Aghylas/libppm/internal/color"
	"github.com/SAI-Aghylas/libppm/internal/ppm"
)

// Options controls a decode → transform → encode run.
type Options struct {
	Ops     []color.Op // applied in order; at least one required
	Workers int        // concurrency for the transform, 0 = NumCPU
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded P3 text
	Width  int
	Height int
	Pixels int // pixels written by the encoder
}

// Run executes the full pipeline on P3 data held in memory.
func Run(data []byte, opts Options) (*Result, error) {
	// 1. Decode
	img, err := ppm.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Transform
	xform, err := color.NewTransform(opts.Ops, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("transform setup: %w", err)
	}
	out := xform.Apply(img)

	// 3. Encode
	var buf bytes.Buffer
	buf.Grow(len(data))
	n, err := ppm.Encode(&buf, out)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   buf.Bytes(),
		Width:  out.Width,
		Height: out.Height,
		Pixels: n,
	}, nil
}

// RunFile reads inputPath, runs the pipeline and writes outputPath.
func RunFile(inputPath, outputPath string, opts Options) (*Result, error) {
	img, err := ppm.DecodeFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	xform, err := color.NewTransform(opts.Ops, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("transform setup: %w", err)
	}
	xform.ApplyInPlace(img)

	n, err := ppm.EncodeFile(outputPath, img)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{Width: img.Width, Height: img.Height, Pixels: n}, nil
}
