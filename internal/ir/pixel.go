package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxChannel is the largest value an 8-bit channel can hold.
const MaxChannel = 255

// Pixel is a single RGB sample with 8 bits per channel.
// It is a plain value: every transform returns a new Pixel.
type Pixel struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// NewPixel builds a Pixel from its three channels.
func NewPixel(red, green, blue uint8) Pixel {
	return Pixel{Red: red, Green: green, Blue: blue}
}

func (p Pixel) R() uint8 { return p.Red }
func (p Pixel) G() uint8 { return p.Green }
func (p Pixel) B() uint8 { return p.Blue }

// String renders the pixel as "(r:8, g:12, b:16)".
func (p Pixel) String() string {
	return fmt.Sprintf("(r:%d, g:%d, b:%d)", p.Red, p.Green, p.Blue)
}

// Equal reports whether all three channels match.
func (p Pixel) Equal(other Pixel) bool {
	return p.Red == other.Red && p.Green == other.Green && p.Blue == other.Blue
}

// PartialEqual reports whether at least one channel matches.
func (p Pixel) PartialEqual(other Pixel) bool {
	return p.Red == other.Red || p.Green == other.Green || p.Blue == other.Blue
}

// Invert returns the negative of p: every channel c becomes 255-c.
func (p Pixel) Invert() Pixel {
	return Pixel{
		Red:   MaxChannel - p.Red,
		Green: MaxChannel - p.Green,
		Blue:  MaxChannel - p.Blue,
	}
}

// Grayscale returns a gray pixel whose channels all equal r/3 + g/3 + b/3.
// Each channel is divided before summing, so the result never exceeds 255.
func (p Pixel) Grayscale() Pixel {
	mean := p.Red/3 + p.Green/3 + p.Blue/3
	return Pixel{Red: mean, Green: mean, Blue: mean}
}

// ParseChannel parses a decimal channel value in [0,255].
func ParseChannel(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid channel value %q: %w", s, err)
	}
	return uint8(v), nil
}

// ParsePixel parses three whitespace-separated decimal channels, e.g. "8 12 16".
func ParsePixel(s string) (Pixel, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Pixel{}, fmt.Errorf("expected 3 channels, got %d in %q", len(fields), s)
	}

	var ch [3]uint8
	for i, f := range fields {
		v, err := ParseChannel(f)
		if err != nil {
			return Pixel{}, err
		}
		ch[i] = v
	}
	return NewPixel(ch[0], ch[1], ch[2]), nil
}
