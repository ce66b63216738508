package cmd

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-graph/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	color.NoColor = true

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSnapshotToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	out, err := execute(t, "snapshot", "--width", "300", "--height", "200", "--ticks", "30",
		"--seed", "7", "--theme", "light", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	assert.Contains(t, out, "20 particles")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, `<svg width="300" height="200"`)
	assert.Contains(t, doc, "particle-graph light seed 7")
	assert.Contains(t, doc, "fill:rgb(245,251,255)")
}

func TestSnapshotIsDeterministic(t *testing.T) {
	args := []string{"snapshot", "--width", "450", "--height", "300", "--ticks", "10", "--seed", "99", "-o", "-"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "<?xml"))

	c, err := execute(t, "snapshot", "--width", "450", "--height", "300", "--ticks", "10", "--seed", "100", "-o", "-")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSnapshotZeroWidth(t *testing.T) {
	out, err := execute(t, "snapshot", "--width", "0", "--height", "100", "--seed", "1", "-o", "-")
	require.NoError(t, err)
	assert.NotContains(t, out, "<path")
}

func TestSnapshotPNGByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	out, err := execute(t, "snapshot", "--width", "150", "--height", "90", "--ticks", "5", "--seed", "4", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 150, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestSnapshotFormatFlag(t *testing.T) {
	out, err := execute(t, "snapshot", "--width", "60", "--height", "40", "--seed", "2", "--format", "png", "-o", "-")
	require.NoError(t, err)
	_, err = png.Decode(strings.NewReader(out))
	require.NoError(t, err)

	_, err = execute(t, "snapshot", "--format", "gif", "-o", "-")
	assert.ErrorContains(t, err, "unknown format")
}

func TestSnapshotFormatResolution(t *testing.T) {
	for _, tc := range []struct {
		output, flag, want string
	}{
		{"-", "", formatSVG},
		{"a.svg", "", formatSVG},
		{"A.PNG", "", formatPNG},
		{"a.out", "", formatSVG},
		{"a.svg", "PNG", formatPNG},
	} {
		got, err := snapshotFormat(tc.output, tc.flag)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.output+" "+tc.flag)
	}
}

type failingClose struct {
	bytes.Buffer
	err error
}

func (f *failingClose) Close() error { return f.err }

func TestSnapshotReportsCloseError(t *testing.T) {
	diskFull := errors.New("disk full")
	out := &failingClose{err: diskFull}
	orig := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return out, nil }
	t.Cleanup(func() { createOutput = orig })

	stdout, err := execute(t, "snapshot", "--width", "90", "--height", "60", "--seed", "8", "-o", "scene.svg")
	require.ErrorIs(t, err, diskFull)
	assert.NotContains(t, stdout, "wrote")
	assert.Contains(t, out.String(), "<svg")
}

func TestSnapshotRejectsBadFPS(t *testing.T) {
	_, err := execute(t, "snapshot", "--fps", "0", "-o", "-")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", "--width", "1500", "--height", "800", "--samples", "20", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "graph statistics")
	assert.Contains(t, out, "Particles:       100 per graph")
	assert.Contains(t, out, "out-degree")
	for _, d := range []string{"\n  0 ", "\n  1 ", "\n  2 ", "\n  3 "} {
		assert.Contains(t, out, d)
	}
}

func TestStatsRejectsZeroSamples(t *testing.T) {
	_, err := execute(t, "stats", "--samples", "0")
	assert.Error(t, err)
}

func TestInvalidTheme(t *testing.T) {
	_, err := execute(t, "stats", "--theme", "sepia")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigFileIsUsed(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pg.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
theme = "light"
seed = 5

[snapshot]
width = 150
height = 90
ticks = 2
output = "-"
`), 0o644))

	out, err := execute(t, "snapshot", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `<svg width="150" height="90"`)
	assert.Contains(t, out, "particle-graph light seed 5")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "stats", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrintErrorColorsPrefix(t *testing.T) {
	var buf bytes.Buffer
	color.NoColor = true
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "particle-graph: boom\n", buf.String())

	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })
	buf.Reset()
	printError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "\x1b[31mparticle-graph:\x1b[0m boom")
}
