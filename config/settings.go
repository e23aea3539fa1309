package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"

	configDirEnv = "MINIVI_CONFIG_DIR"
)

type Settings struct {
	ShowLineNumbers bool          `json:"show_line_numbers" toml:"show_line_numbers"`
	ShowStatusLine  bool          `json:"show_status_line"  toml:"show_status_line"`
	CursorMarker    string        `json:"cursor_marker"     toml:"cursor_marker"`
	LogFile         string        `json:"log_file"          toml:"log_file"`
	Theme           ThemeSettings `json:"theme"             toml:"theme"`
}

// ThemeSettings holds lipgloss colour strings: ANSI codes ("62") or hex ("#5f5fd7").
type ThemeSettings struct {
	Idle       string `json:"idle"        toml:"idle"`
	Edit       string `json:"edit"        toml:"edit"`
	Command    string `json:"command"     toml:"command"`
	Title      string `json:"title"       toml:"title"`
	LineNumber string `json:"line_number" toml:"line_number"`
	Error      string `json:"error"       toml:"error"`
}

type SettingsFormat string
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

func DefaultSettings() Settings {
	return Settings{
		ShowLineNumbers: true,
		ShowStatusLine:  true,
		CursorMarker:    "|",
		Theme:           DefaultThemeSettings(),
	}
}

func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		Idle:       "62",
		Edit:       "26",
		Command:    "208",
		Title:      "205",
		LineNumber: "240",
		Error:      "196",
	}
}

// NormaliseTheme fills colours left empty with their defaults.
func NormaliseTheme(theme ThemeSettings) ThemeSettings {
	def := DefaultThemeSettings()
	fill := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	fill(&theme.Idle, def.Idle)
	fill(&theme.Edit, def.Edit)
	fill(&theme.Command, def.Command)
	fill(&theme.Title, def.Title)
	fill(&theme.LineNumber, def.LineNumber)
	fill(&theme.Error, def.Error)
	return theme
}

// Dir returns the settings directory: $MINIVI_CONFIG_DIR when set,
// otherwise minivi under the user config directory.
func Dir() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "minivi")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".minivi")
	}
	return ".minivi"
}

// tries loading TOML first, then JSON, then returns default settings if neither exists.
// parse errors fail immediately but missing files just skip to the next format.
func LoadSettings() (Settings, SettingsHandle, error) {
	dir := Dir()
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return DefaultSettings(), SettingsHandle{}, fmt.Errorf(
				"parse settings %q: %w",
				candidate.Path,
				err,
			)
		}
		if settings.CursorMarker == "" {
			settings.CursorMarker = DefaultSettings().CursorMarker
		}
		settings.Theme = NormaliseTheme(settings.Theme)
		return settings, candidate, nil
	}

	if accumulated != nil {
		return DefaultSettings(), SettingsHandle{}, accumulated
	}

	return DefaultSettings(), SettingsHandle{
		Path:   candidates[0].Path,
		Format: SettingsFormatTOML,
	}, nil
}

// decodeSettings starts from the defaults so keys missing from the file keep them.
func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	settings := DefaultSettings()
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

func SaveSettings(settings Settings, handle SettingsHandle) error {
	settings.Theme = NormaliseTheme(settings.Theme)
	path := handle.Path
	format := handle.Format
	if path == "" {
		path = filepath.Join(Dir(), "settings.toml")
	}
	if format == "" {
		format = SettingsFormatTOML
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case SettingsFormatTOML:
		data, err = toml.Marshal(settings)
	case SettingsFormatJSON:
		buffer := &bytes.Buffer{}
		encoder := json.NewEncoder(buffer)
		encoder.SetIndent("", "  ")
		if err = encoder.Encode(settings); err == nil {
			data = buffer.Bytes()
		}
	default:
		return fmt.Errorf("unsupported settings format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}

// write to a temp file in the same directory, then rename over the target
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".minivi-settings-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(err, tmp.Close())
	}

	if err := tmp.Chmod(perm); err != nil {
		return errors.Join(err, tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
