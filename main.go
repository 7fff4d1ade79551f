package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"rotanika/pkg/engine/input"
	"rotanika/pkg/engine/logger"
	"rotanika/pkg/engine/terminal"
	"rotanika/pkg/game/config"
	"rotanika/pkg/game/console"
	"rotanika/pkg/game/gamestrings"
	"rotanika/pkg/game/renderer/tui"
	"rotanika/pkg/game/version"
)

func main() {
	manifestPath := flag.String("manifest", config.DefaultPath, "path to the rotanika.toml manifest")
	logPath := flag.String("log", logger.DefaultLogPath, "log file path")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	width := flag.Int("width", -1, "frame width when stdout is not a terminal")
	height := flag.Int("height", -1, "frame height when stdout is not a terminal")
	work := flag.Duration("work", 3*time.Second, "how long the startup loading animation runs")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logFile := openLog(*logPath, level, os.Stderr)
	log := logger.Named("main")

	settings, err := config.Load(*manifestPath)
	if err != nil {
		log.WithError(err).Warn("using default settings")
	}
	if *width >= 0 {
		settings.Width = *width
	}
	if *height >= 0 {
		settings.Height = *height
	}

	con, err := buildConsole(settings, *manifestPath, logFile)
	if err != nil {
		log.WithError(err).Error("invalid console settings")
		fmt.Fprintln(os.Stderr, err)
		logFile.Close()
		os.Exit(1)
	}

	if err := run(context.Background(), con, *work); err != nil && !errors.Is(err, console.ErrExited) {
		log.WithError(err).Error("console stopped")
		logFile.Close()
		os.Exit(1)
	}
	logFile.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLog sends logging to the file at path. If the file cannot be opened
// logging stays discarded, the failure is reported once on stderr and the
// returned closer does nothing.
func openLog(path string, level logger.Level, stderr io.Writer) io.Closer {
	f, _, err := logger.SetupFile(path, level)
	if err != nil {
		fmt.Fprintf(stderr, "logging disabled: %v\n", err)
		return nopCloser{}
	}
	return f
}

// buildConsole wires the terminal renderer and stdin reader from settings
func buildConsole(settings config.Settings, manifestPath string, logFile io.Closer) (*console.Console, error) {
	opts, err := rendererOptions(settings, manifestPath)
	if err != nil {
		return nil, err
	}
	opts.Out = os.Stdout
	opts.Size = terminal.SizeFunc(settings.Width, settings.Height)

	// zero asks the console for its default delay
	exitDelay := settings.ExitDelay()
	if exitDelay == 0 {
		exitDelay = -1
	}

	return console.New(console.Options{
		Renderer:        tui.New(opts),
		Input:           input.NewLineReader(os.Stdin, os.Stdout),
		InputPrefix:     settings.InputPrefix,
		ExitKeywords:    settings.ExitKeywords,
		LoadingInterval: settings.LoadingInterval(),
		ExitDelay:       exitDelay,
		Exit: func(code int) {
			logFile.Close()
			os.Exit(code)
		},
	}), nil
}

// rendererOptions resolves the frame styling from settings. Without a
// configured title the manifest version is used.
func rendererOptions(settings config.Settings, manifestPath string) (tui.Options, error) {
	palette, err := settings.Palette()
	if err != nil {
		return tui.Options{}, err
	}

	title := settings.Title
	if title == "" {
		ver, err := version.LookupOr(manifestPath)
		if err != nil {
			logger.Named("main").WithError(err).Warn("version lookup failed")
		}
		title = gamestrings.Getf(gamestrings.Title, ver)
	}

	return tui.Options{
		Title:       title,
		BorderChar:  settings.BorderChar,
		BorderColor: palette.Border,
		DinkusChar:  settings.DinkusChar,
		DinkusColor: palette.Dinkus,
		InputPrefix: settings.InputPrefix,
		InputColor:  palette.Input,
	}, nil
}

// run plays the startup sequence, then echoes every line until the player
// exits or input ends.
func run(ctx context.Context, con *console.Console, work time.Duration) error {
	con.LoadStart(gamestrings.Get(gamestrings.Loading), 0)
	select {
	case <-time.After(work):
	case <-ctx.Done():
	}
	con.Write(gamestrings.Get(gamestrings.LoadingComplete))

	if _, err := con.Prompt(ctx, gamestrings.Get(gamestrings.PressEnter)); err != nil {
		return err
	}
	con.WriteDinkus()

	for {
		line, err := con.Input(ctx)
		if err != nil {
			return err
		}
		con.Write(gamestrings.Getf(gamestrings.YouEntered, line))
		con.WriteEmpty()
	}
}
