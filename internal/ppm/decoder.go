package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/SAI-Aghylas/libppm/internal/ir"
)

// maxPixels bounds width*height so a hostile header cannot force a huge
// allocation or overflow int.
const maxPixels = 400_000_000

// preallocPixels caps the up-front allocation; larger images grow as
// tokens arrive.
const preallocPixels = 1 << 20

// Decode parses a P3 stream into an Image.
//
// Everything after the three header lines is read as one flat
// whitespace-separated token stream grouped in triples, so line breaks
// inside or between records carry no meaning. The number of triples must
// match width*height.
func Decode(r io.Reader) (*ir.Image, error) {
	const op = "ppm.decode"

	br := bufio.NewReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	if h.Width > 0 && h.Height > maxPixels/h.Width {
		return nil, formatErrorf(op, "image too large: %dx%d", h.Width, h.Height)
	}
	numPixels := h.NumPixels()

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)

	pix := make([]ir.Pixel, 0, min(numPixels, preallocPixels))
	var ch [3]uint8
	tokens := 0
	for sc.Scan() {
		tok := sc.Text()
		v, err := ir.ParseChannel(tok)
		if err != nil {
			return nil, formatErrorf(op, "pixel token %d: %v", tokens, err)
		}
		ch[tokens%3] = v
		tokens++
		if tokens%3 == 0 {
			if len(pix) == numPixels {
				return nil, formatErrorf(op, "more than %d pixels for a %dx%d image", numPixels, h.Width, h.Height)
			}
			pix = append(pix, ir.NewPixel(ch[0], ch[1], ch[2]))
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, formatErrorf(op, "pixel token %d: %v", tokens, err)
		}
		return nil, &Error{Op: op, Kind: KindRead, Err: err}
	}

	if tokens%3 != 0 {
		return nil, formatErrorf(op, "pixel token count %d is not a multiple of 3", tokens)
	}
	if len(pix) != numPixels {
		return nil, formatErrorf(op, "got %d pixels, header declares %dx%d = %d", len(pix), h.Width, h.Height, numPixels)
	}

	return ir.New(pix, h.Width, h.Height), nil
}

// DecodeBytes parses P3 text held in memory.
func DecodeBytes(data []byte) (*ir.Image, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (*ir.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "ppm.decode_file", Kind: KindRead, Path: path, Err: err}
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return img, nil
}
