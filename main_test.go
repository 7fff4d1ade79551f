package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"rotanika/pkg/engine/input"
	"rotanika/pkg/engine/logger"
	"rotanika/pkg/engine/style"
	"rotanika/pkg/game/config"
	"rotanika/pkg/game/console"
	"rotanika/pkg/game/renderer/tui"
)

func TestRun_EchoesUntilInputEnds(t *testing.T) {
	var out bytes.Buffer
	r := tui.New(tui.Options{
		Out:   &out,
		Clear: func(io.Writer) error { return nil },
		Size:  func() (int, int) { return 40, 16 },
		Title: "Rotanika v0.1.0",
	})
	in := input.NewLineReader(strings.NewReader("\nhello\n"), &out)
	in.Notify = func(chan<- os.Signal) {}
	in.Stop = func(chan<- os.Signal) {}
	con := console.New(console.Options{
		Renderer: r,
		Input:    in,
		Exit:     func(int) { t.Error("exit called") },
		Sleep:    func(time.Duration) {},
	})

	err := run(context.Background(), con, 0)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("run() error = %v, want io.EOF", err)
	}

	var got []string
	for _, e := range con.History() {
		got = append(got, e.Kind.String()+":"+e.Text)
	}
	want := []string{
		"normal:",
		"normal:Loading complete!",
		"input:",
		"dinkus:",
		"input:hello",
		"normal:You entered: hello",
		"normal:",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(style.Strip(out.String()), "Press Enter to continue...") {
		t.Error("continue prompt was not shown")
	}
}

func TestBuildConsole(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "rotanika.toml")
	require.NoError(t, os.WriteFile(manifest, []byte("[project]\nversion = \"2.3.4\"\n"), 0o644))

	con, err := buildConsole(config.Default(), manifest, nopCloser{})
	require.NoError(t, err)
	require.NotNil(t, con)

	bad := config.Default()
	bad.BorderColor = "chartreuse"
	_, err = buildConsole(bad, manifest, nopCloser{})
	require.Error(t, err)
}

func TestRendererOptions_TitleFromManifestVersion(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "rotanika.toml")
	require.NoError(t, os.WriteFile(manifest, []byte("[project]\nversion = \"2.3.4\"\n"), 0o644))

	opts, err := rendererOptions(config.Default(), manifest)
	require.NoError(t, err)
	require.Equal(t, "Rotanika v2.3.4", opts.Title)

	var out bytes.Buffer
	opts.Out = &out
	opts.Clear = func(io.Writer) error { return nil }
	opts.Size = func() (int, int) { return 30, 8 }
	require.NoError(t, tui.New(opts).Render(nil))

	rows := strings.Split(style.Strip(out.String()), "\n")
	require.Equal(t, "#      Rotanika v2.3.4       #", rows[1])

	missing, err := rendererOptions(config.Default(), filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "Rotanika vdev", missing.Title)

	custom := config.Default()
	custom.Title = "Station"
	opts, err = rendererOptions(custom, manifest)
	require.NoError(t, err)
	require.Equal(t, "Station", opts.Title)
}

func TestOpenLog(t *testing.T) {
	t.Cleanup(func() { logger.SetOutput(io.Discard) })

	t.Run("unwritable path keeps running", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		var stderr bytes.Buffer
		closer := openLog(filepath.Join(blocker, "rotanika.log"), logrus.InfoLevel, &stderr)

		require.NotNil(t, closer)
		require.NoError(t, closer.Close())
		require.Contains(t, stderr.String(), "logging disabled")
		require.Equal(t, 1, strings.Count(stderr.String(), "\n"))
	})

	t.Run("writes to the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "rotanika.log")

		var stderr bytes.Buffer
		closer := openLog(path, logrus.InfoLevel, &stderr)
		logger.Named("main").Info("hello")
		logger.SetOutput(io.Discard)
		require.NoError(t, closer.Close())

		require.Empty(t, stderr.String())
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(content), "hello")
	})
}
