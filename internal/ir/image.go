// Package ir holds the in-memory raster model shared by the codec and the
// color operations: a Pixel value type and an Image made of row-major pixels.
package ir

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a width×height grid of pixels stored row-major.
//
// New does not check that len(pixels) == width*height. Decoded images always
// satisfy it, and the encoder trusts Width for line wrapping.
//
// Invert and Grayscale are pure and return a new Image. The InPlace variants
// mutate the receiver and exist for callers holding large grids.
type Image struct {
	Pix    []Pixel
	Width  int
	Height int
}

// New builds an Image that takes ownership of pixels.
func New(pixels []Pixel, width, height int) *Image {
	return &Image{Pix: pixels, Width: width, Height: height}
}

// Blank returns a width×height image filled with the zero pixel.
func Blank(width, height int) *Image {
	return New(make([]Pixel, width*height), width, height)
}

// Pixels returns the underlying pixel slice.
func (img *Image) Pixels() []Pixel { return img.Pix }

// Len returns the number of stored pixels.
func (img *Image) Len() int { return len(img.Pix) }

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	pix := make([]Pixel, len(img.Pix))
	copy(pix, img.Pix)
	return New(pix, img.Width, img.Height)
}

// Equal reports whether both images have the same dimensions and pixel
// count and every pixel is fully equal. It stops at the first mismatch.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.Width != other.Width || img.Height != other.Height || len(img.Pix) != len(other.Pix) {
		return false
	}
	for i := range img.Pix {
		if !img.Pix[i].Equal(other.Pix[i]) {
			return false
		}
	}
	return true
}

// Map returns a new image with fn applied to every pixel.
func (img *Image) Map(fn func(Pixel) Pixel) *Image {
	out := make([]Pixel, len(img.Pix))
	for i, p := range img.Pix {
		out[i] = fn(p)
	}
	return New(out, img.Width, img.Height)
}

// MapInPlace applies fn to every pixel of img.
func (img *Image) MapInPlace(fn func(Pixel) Pixel) {
	for i, p := range img.Pix {
		img.Pix[i] = fn(p)
	}
}

func (img *Image) Invert() *Image    { return img.Map(Pixel.Invert) }
func (img *Image) Grayscale() *Image { return img.Map(Pixel.Grayscale) }

func (img *Image) InvertInPlace()    { img.MapInPlace(Pixel.Invert) }
func (img *Image) GrayscaleInPlace() { img.MapInPlace(Pixel.Grayscale) }

// ColorModel, Bounds and At make *Image usable as an image.Image.

func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	i := y*img.Width + x
	if x < 0 || y < 0 || x >= img.Width || i >= len(img.Pix) {
		return color.RGBA{}
	}
	p := img.Pix[i]
	return color.RGBA{R: p.Red, G: p.Green, B: p.Blue, A: 0xff}
}

// FromImage copies any image.Image into an Image, dropping alpha.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	out := Blank(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[i] = NewPixel(c.R, c.G, c.B)
			i++
		}
	}
	return out
}

// FromRGB builds an Image from interleaved 8-bit R,G,B bytes.
// rgb must hold exactly width*height*3 bytes.
func FromRGB(rgb []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	expected := width * height * 3
	if len(rgb) != expected {
		return nil, fmt.Errorf("expected %d bytes for %dx%d RGB, got %d", expected, width, height, len(rgb))
	}
	img := Blank(width, height)
	for i := range img.Pix {
		img.Pix[i] = NewPixel(rgb[i*3], rgb[i*3+1], rgb[i*3+2])
	}
	return img, nil
}

// RGB returns the pixels as interleaved R,G,B bytes.
func (img *Image) RGB() []byte {
	out := make([]byte, 0, len(img.Pix)*3)
	for _, p := range img.Pix {
		out = append(out, p.Red, p.Green, p.Blue)
	}
	return out
}
