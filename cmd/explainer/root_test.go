package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explainer/config"
	"explainer/log"
)

func TestBaseName(t *testing.T) {
	assert.Equal(t, "vits", baseName("examples/vits.toml"))
	assert.Equal(t, "plain", baseName("plain"))
}

func TestLoadDiagramAppliesConfig(t *testing.T) {
	logger = log.Discard()
	cfg = config.Default()
	cfg.Width = 800
	cfg.Background = "black"

	d := loadDiagram("../../examples/signal.toml")
	// the file sets its own size but not the background
	assert.Equal(t, 1280.0, d.Width)
	assert.Equal(t, 720.0, d.Height)
	assert.Equal(t, "black", d.Background)
}

func TestPointsCommand(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc")
	require.NoError(t, os.WriteFile(rc, []byte("font_size = 20\n"), 0644))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"--config", rc, "--env", "test", "points", "../../examples/vits.toml"})
	require.NoError(t, RootCmd.Execute())

	assert.Equal(t, 20.0, cfg.FontSize)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "spectrogram -> encoder: "))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "rc")
	require.NoError(t, os.WriteFile(rc, []byte("# defaults\n"), 0644))

	out := filepath.Join(dir, "signal.png")
	RootCmd.SetArgs([]string{"--config", rc, "render", "../../examples/signal.toml", "-o", out, "--t", "0.5"})
	require.NoError(t, RootCmd.Execute())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestFramesCommand(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "rc")
	require.NoError(t, os.WriteFile(rc, []byte("step = 5\n"), 0644))

	out := filepath.Join(dir, "frames")
	RootCmd.SetArgs([]string{"--config", rc, "frames", "../../examples/vits.toml", "-n", "3", "-o", out})
	require.NoError(t, RootCmd.Execute())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, name := range []string{"frame_0000.png", "frame_0001.png", "frame_0002.png"} {
		assert.Equal(t, name, entries[i].Name())
	}
}

func TestPreviewLogger(t *testing.T) {
	env = "dev"
	l, closeLog, err := previewLogger("", "a.toml")
	require.NoError(t, err)
	assert.NotNil(t, l)
	closeLog()

	path := filepath.Join(t.TempDir(), "preview.log")
	l, closeLog, err = previewLogger(path, "a.toml")
	require.NoError(t, err)
	l.Printf("saved %s", "a.toml")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "saved a.toml")
	assert.Contains(t, string(data), "file=a.toml")

	_, _, err = previewLogger(filepath.Join(t.TempDir(), "missing", "preview.log"), "a.toml")
	assert.Error(t, err)
}
