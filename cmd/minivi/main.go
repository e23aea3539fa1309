package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	adapter "github.com/ionut-t/minivi/adapter-bubbletea"
	"github.com/ionut-t/minivi/config"
	"github.com/ionut-t/minivi/core"
)

var version = "dev"

const (
	logEnv = "MINIVI_LOG"

	// used until the first tea.WindowSizeMsg arrives
	initialWidth  = 80
	initialHeight = 24
)

func main() {
	var (
		logPath     string
		showVersion bool
		writeConfig bool
	)

	flag.StringVar(&logPath, "log", "", "Write debug logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show minivi version")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the current settings file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: minivi [flags] [file]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("minivi %s\n", version)
		os.Exit(0)
	}

	settings, handle, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using default settings\n", err)
	}

	if writeConfig {
		if err := config.SaveSettings(settings, handle); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("settings written to %s\n", settingsPath(handle))
		os.Exit(0)
	}

	closeLog, err := setupLogging(resolveLogPath(logPath, os.Getenv(logEnv), settings))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var filePath string
	if flag.NArg() > 0 {
		filePath = filepath.Clean(flag.Arg(0))
	}

	session := core.Open(filePath, adapter.SystemClipboard())
	log.Printf("minivi %s started, file %q", version, filePath)

	model := newModel(session, settings)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("program.Run() failed: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func newModel(editor core.Editor, settings config.Settings) adapter.Model {
	model := adapter.New(editor, initialWidth, initialHeight)
	model.WithTheme(adapter.NewTheme(settings.Theme))
	model.HideLineNumbers(!settings.ShowLineNumbers)
	model.HideStatusLine(!settings.ShowStatusLine)
	model.SetCursorMarker(settings.CursorMarker)
	return model
}

// resolveLogPath picks the log file: the -log flag, then $MINIVI_LOG, then settings.
func resolveLogPath(flagValue, envValue string, settings config.Settings) string {
	switch {
	case flagValue != "":
		return flagValue
	case envValue != "":
		return envValue
	default:
		return settings.LogFile
	}
}

// setupLogging routes the standard logger to path. The terminal belongs to
// the UI, so without a path logs are discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "minivi")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return func() {
		_ = f.Close()
	}, nil
}

func settingsPath(handle config.SettingsHandle) string {
	if handle.Path != "" {
		return handle.Path
	}
	return filepath.Join(config.Dir(), "settings.toml")
}
