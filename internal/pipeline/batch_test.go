package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	testdataloader "github.com/peteole/testdata-loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-Aghylas/libppm/internal/color"
	"github.com/SAI-Aghylas/libppm/internal/manifest"
	"github.com/SAI-Aghylas/libppm/internal/ppm"
)

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "superman.ppm")
	require.NoError(t, os.WriteFile(in, testdataloader.GetTestFile("testdata/mixed.ppm"), 0o644))

	m := &manifest.Manifest{
		Workers: 2,
		Jobs: []manifest.Job{
			{Name: "inverted", Input: in, Output: filepath.Join(dir, "out", "inverted_superman.ppm"), Ops: []color.Op{color.OpInvert}},
			{Name: "grayscaled", Input: in, Output: filepath.Join(dir, "out", "grayscaled_superman.ppm"), Ops: []color.Op{color.OpGrayscale}},
		},
	}

	results, err := RunBatch(context.Background(), m)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "inverted", results[0].Job.Name)
	assert.Equal(t, "grayscaled", results[1].Job.Name)

	src, err := ppm.DecodeFile(in)
	require.NoError(t, err)

	inv, err := ppm.DecodeFile(m.Jobs[0].Output)
	require.NoError(t, err)
	assert.True(t, inv.Equal(src.Invert()))
	assert.Equal(t, src.Len(), results[0].Result.Pixels)

	gray, err := ppm.DecodeFile(m.Jobs[1].Output)
	require.NoError(t, err)
	assert.True(t, gray.Equal(src.Grayscale()))
}

func TestRunBatchFailure(t *testing.T) {
	dir := t.TempDir()
	m := &manifest.Manifest{
		Workers: 1,
		Jobs: []manifest.Job{
			{Name: "broken", Input: filepath.Join(dir, "missing.ppm"), Output: filepath.Join(dir, "out.ppm"), Ops: []color.Op{color.OpInvert}},
		},
	}

	_, err := RunBatch(context.Background(), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken:")
	assert.ErrorIs(t, err, ppm.ErrRead)
}

func TestRunBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &manifest.Manifest{Jobs: []manifest.Job{{Name: "a", Input: "a.ppm", Output: "b.ppm", Ops: []color.Op{color.OpInvert}}}}
	_, err := RunBatch(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}
