package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-Aghylas/libppm/internal/ir"
)

func gradientImage(w, h int) *ir.Image {
	img := ir.Blank(w, h)
	for i := range img.Pix {
		img.Pix[i] = ir.NewPixel(uint8(i), uint8(i>>8), uint8(i*5))
	}
	return img
}

func TestParseOp(t *testing.T) {
	cases := []struct {
		in   string
		want Op
	}{
		{"invert", OpInvert},
		{" Invert ", OpInvert},
		{"grayscale", OpGrayscale},
		{"greyscale", OpGrayscale},
		{"GRAY", OpGrayscale},
	}
	for _, c := range cases {
		got, err := ParseOp(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParseOp("blur")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invert, grayscale")
}

func TestParseOps(t *testing.T) {
	ops, err := ParseOps([]string{"invert", "grayscale"})
	require.NoError(t, err)
	assert.Equal(t, []Op{OpInvert, OpGrayscale}, ops)

	_, err = ParseOps([]string{"invert", "sharpen"})
	assert.Error(t, err)
}

func TestNewTransformErrors(t *testing.T) {
	_, err := NewTransform(nil, 1)
	assert.Error(t, err)

	_, err = NewTransform([]Op{"sepia"}, 1)
	assert.Error(t, err)
}

func TestTransformSingleOp(t *testing.T) {
	img := gradientImage(7, 5)

	inv, err := NewTransform([]Op{OpInvert}, 1)
	require.NoError(t, err)
	assert.True(t, inv.Apply(img).Equal(img.Invert()))

	gray, err := NewTransform([]Op{OpGrayscale}, 1)
	require.NoError(t, err)
	assert.True(t, gray.Apply(img).Equal(img.Grayscale()))

	assert.True(t, img.Equal(gradientImage(7, 5)), "Apply must not modify its input")
}

func TestTransformChainOrder(t *testing.T) {
	img := gradientImage(9, 4)

	xf, err := NewTransform([]Op{OpInvert, OpGrayscale}, 2)
	require.NoError(t, err)
	assert.Equal(t, []Op{OpInvert, OpGrayscale}, xf.Ops())
	assert.True(t, xf.Apply(img).Equal(img.Invert().Grayscale()))

	twice, err := NewTransform([]Op{OpInvert, OpInvert}, 2)
	require.NoError(t, err)
	assert.True(t, twice.Apply(img).Equal(img))
}

func TestTransformParallelMatchesSerial(t *testing.T) {
	// Large enough to be split into several bands.
	img := gradientImage(1000, 300)

	serial, err := NewTransform([]Op{OpGrayscale, OpInvert}, 1)
	require.NoError(t, err)
	parallel, err := NewTransform([]Op{OpGrayscale, OpInvert}, 8)
	require.NoError(t, err)

	want := serial.Apply(img)
	got := parallel.Apply(img)
	assert.True(t, got.Equal(want))

	inPlace := img.Clone()
	parallel.ApplyInPlace(inPlace)
	assert.True(t, inPlace.Equal(want))
}

func BenchmarkTransformParallel(b *testing.B) {
	img := gradientImage(1920, 1080)
	xf, err := NewTransform([]Op{OpInvert, OpGrayscale}, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = xf.Apply(img)
	}
}
