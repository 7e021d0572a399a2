package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI-Aghylas/libppm/internal/color"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadValid(t *testing.T) {
	p := writeManifest(t, `
workers: 3
jobs:
  - name: negative
    input: superman.ppm
    output: out/inverted_superman.ppm
    ops: [invert]
  - input: /abs/in.ppm
    output: gray.ppm
    ops: [grayscale, invert]
`)

	m, err := Load(p)
	require.NoError(t, err)

	dir := filepath.Dir(p)
	assert.Equal(t, p, m.Path)
	assert.Equal(t, 3, m.Workers)
	require.Len(t, m.Jobs, 2)

	assert.Equal(t, Job{
		Name:   "negative",
		Input:  filepath.Join(dir, "superman.ppm"),
		Output: filepath.Join(dir, "out", "inverted_superman.ppm"),
		Ops:    []color.Op{color.OpInvert},
	}, m.Jobs[0])

	assert.Equal(t, "job-2", m.Jobs[1].Name)
	assert.Equal(t, "/abs/in.ppm", m.Jobs[1].Input)
	assert.Equal(t, []color.Op{color.OpGrayscale, color.OpInvert}, m.Jobs[1].Ops)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":         "jobs: [",
		"no jobs":          "workers: 2\n",
		"negative workers": "workers: -1\njobs:\n  - {input: a, output: b, ops: [invert]}\n",
		"missing input":    "jobs:\n  - {output: b, ops: [invert]}\n",
		"missing output":   "jobs:\n  - {input: a, ops: [invert]}\n",
		"missing ops":      "jobs:\n  - {input: a, output: b}\n",
		"unknown op":       "jobs:\n  - {input: a, output: b, ops: [blur]}\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("batch.yaml", []byte(in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var me *Error
			require.ErrorAs(t, err, &me)
			assert.Equal(t, "batch.yaml", me.Path)
		})
	}
}
