package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Magic is the format tag of plain-text PPM files.
const Magic = "P3"

// maxHeaderValue is the largest max-value the netpbm formats allow.
const maxHeaderValue = 65535

// Header holds the three header lines of a P3 file.
type Header struct {
	Magic    string
	Width    int
	Height   int
	MaxValue int
}

// NumPixels returns Width*Height.
func (h Header) NumPixels() int {
	return h.Width * h.Height
}

// ReadHeader parses the tag, dimension and max-value lines from r without
// touching the pixel stream. The reader is left positioned at the first
// pixel token.
func ReadHeader(r *bufio.Reader) (Header, error) {
	const op = "ppm.read_header"

	var h Header

	tag, err := readHeaderLine(r, "format tag")
	if err != nil {
		return h, err
	}
	if tag != Magic {
		return h, formatErrorf(op, "unsupported format tag %q (want %q)", tag, Magic)
	}
	h.Magic = tag

	dims, err := readHeaderLine(r, "dimensions")
	if err != nil {
		return h, err
	}
	fields := strings.Fields(dims)
	if len(fields) != 2 {
		return h, formatErrorf(op, "dimensions line %q: expected width and height", dims)
	}
	if h.Width, err = parseDimension("width", fields[0]); err != nil {
		return h, err
	}
	if h.Height, err = parseDimension("height", fields[1]); err != nil {
		return h, err
	}

	maxLine, err := readHeaderLine(r, "max value")
	if err != nil {
		return h, err
	}
	maxVal, err := strconv.Atoi(maxLine)
	if err != nil || maxVal <= 0 || maxVal > maxHeaderValue {
		return h, formatErrorf(op, "invalid max value %q", maxLine)
	}
	// Channels are always treated as 8-bit; the declared max is informational.
	h.MaxValue = maxVal

	return h, nil
}

// DecodeConfig reports the dimensions of a P3 stream without decoding pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := ReadHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: h.Width, Height: h.Height}, nil
}

func readHeaderLine(r *bufio.Reader, what string) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", &Error{Op: "ppm.read_header", Kind: KindRead, Err: err}
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", formatErrorf("ppm.read_header", "missing %s line", what)
	}
	return line, nil
}

func parseDimension(name, tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, formatErrorf("ppm.read_header", "invalid %s %q", name, tok)
	}
	return v, nil
}

// String summarizes the header, e.g. "P3 3x2 max=255".
func (h Header) String() string {
	return fmt.Sprintf("%s %dx%d max=%d", h.Magic, h.Width, h.Height, h.MaxValue)
}
