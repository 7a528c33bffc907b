package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Window)
	assert.Equal(t, "Set1", cfg.Colormap)
	assert.Equal(t, "lightgray", cfg.Background)
	assert.Equal(t, 6.4, cfg.Width)
	assert.Equal(t, 4.8, cfg.Height)
	assert.False(t, cfg.Average)
	assert.Empty(t, cfg.Output)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "xvgplot.yaml")
	content := "window: 25\ncolormap: Dark2\nbackground-color: ivory\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	t.Setenv("XVGPLOT_COLORMAP", "Paired")
	cfg, err := Load(file, nil)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Window)
	assert.Equal(t, "Paired", cfg.Colormap)
	assert.Equal(t, "ivory", cfg.Background)

	_, err = Load(filepath.Join(dir, "nothere.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XVGPLOT_WINDOW", "7")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("window", "w", 10, "")
	fs.StringP("colormap", "c", "Set1", "")
	fs.StringP("output", "o", "", "")
	require.NoError(t, fs.Parse([]string{"-o", "out.png", "-c", "Dark2"}))
	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "out.png", cfg.Output)
	assert.Equal(t, "Dark2", cfg.Colormap)
	//not given as a flag, so the environment wins.
	assert.Equal(t, 7, cfg.Window)
}

func TestOutputModeFromFlagsOnly(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "xvgplot.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output: file.png\nwindow: 3\n"), 0644))
	t.Setenv("XVGPLOT_INTERACTIVE", "true")
	cfg, err := Load(file, nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.Interactive)
	assert.Equal(t, 3, cfg.Window)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "")
	fs.BoolP("interactive", "i", false, "")
	require.NoError(t, fs.Parse([]string{"-o", "a.png"}))
	cfg, err = Load(file, fs)
	require.NoError(t, err)
	assert.Equal(t, "a.png", cfg.Output)
	assert.False(t, cfg.Interactive)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	good := Config{Output: "a.png", Window: 10, Width: 6.4, Height: 4.8}
	assert.NoError(t, good.Validate())
	cases := map[string]Config{
		"both":    {Output: "a.png", Interactive: true, Window: 10, Width: 1, Height: 1},
		"neither": {Window: 10, Width: 1, Height: 1},
		"window":  {Output: "a.png", Window: 0, Width: 1, Height: 1},
		"size":    {Output: "a.png", Window: 1, Width: 0, Height: 1},
	}
	for name, c := range cases {
		assert.Error(t, c.Validate(), name)
	}
}
