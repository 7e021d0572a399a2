// Package color applies chains of pointwise pixel operations to images.
package color

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/SAI-Aghylas/libppm/internal/ir"
)

// minBandPixels keeps small images on a single goroutine.
const minBandPixels = 64 * 1024

// Transform applies a fixed sequence of operations to every pixel.
// Pixels are independent, so the grid is cut into contiguous bands that
// are processed concurrently; the result does not depend on Workers.
type Transform struct {
	ops     []Op
	fn      func(ir.Pixel) ir.Pixel
	workers int
}

// NewTransform composes ops in order. workers <= 0 means runtime.NumCPU().
func NewTransform(ops []Op, workers int) (*Transform, error) {
	if len(ops) == 0 {
		return nil, errors.New("no operations given")
	}
	fns := make([]func(ir.Pixel) ir.Pixel, len(ops))
	for i, op := range ops {
		fn := op.Func()
		if fn == nil {
			return nil, fmt.Errorf("unknown operation: %q", op)
		}
		fns[i] = fn
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fn := fns[0]
	if len(fns) > 1 {
		fn = func(p ir.Pixel) ir.Pixel {
			for _, f := range fns {
				p = f(p)
			}
			return p
		}
	}

	return &Transform{ops: ops, fn: fn, workers: workers}, nil
}

// Ops returns the operations in application order.
func (t *Transform) Ops() []Op { return t.ops }

// Apply returns a new image with the transform applied; img is not modified.
func (t *Transform) Apply(img *ir.Image) *ir.Image {
	out := ir.New(make([]ir.Pixel, len(img.Pix)), img.Width, img.Height)
	t.run(img.Pix, out.Pix)
	return out
}

// ApplyInPlace overwrites img's pixels with the transformed values.
func (t *Transform) ApplyInPlace(img *ir.Image) {
	t.run(img.Pix, img.Pix)
}

func (t *Transform) run(src, dst []ir.Pixel) {
	n := len(src)
	bands := min(t.workers, n/minBandPixels)
	if bands <= 1 {
		mapPixels(t.fn, src, dst)
		return
	}

	size := (n + bands - 1) / bands
	var g errgroup.Group
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		g.Go(func() error {
			mapPixels(t.fn, src[start:end], dst[start:end])
			return nil
		})
	}
	g.Wait()
}

func mapPixels(fn func(ir.Pixel) ir.Pixel, src, dst []ir.Pixel) {
	for i, p := range src {
		dst[i] = fn(p)
	}
}
