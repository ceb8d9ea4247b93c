// Package config loads the demo host's browsefield.toml.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/ui/browsefield"
)

// DefaultPath is the file LoadConfig reads when no path is given.
const DefaultPath = "browsefield.toml"

// Config represents the browsefield.toml file.
type Config struct {
	Window WindowConfig  `toml:"window"`
	Fields []FieldConfig `toml:"field"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// FieldConfig describes one browse field and its dialog.
type FieldConfig struct {
	Label string `toml:"label"`
	Hint  string `toml:"hint"`
	// Initial editor text
	Text string `toml:"text"`
	// One of any-file, existing-file, directory, existing-files
	Mode      string         `toml:"mode"`
	Title     string         `toml:"title"`
	Directory string         `toml:"directory"`
	Filters   []FilterConfig `toml:"filter"`
}

type FilterConfig struct {
	Description string   `toml:"description"`
	Extensions  []string `toml:"extensions"`
}

// DefaultConfig returns one field per commonly used mode.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Browse field demo",
			Width:  600,
			Height: 300,
		},
		Fields: []FieldConfig{
			{Label: "File", Hint: "Any file...", Mode: browsefield.AnyFile.String()},
			{Label: "Folder", Hint: "Directory...", Mode: browsefield.Directory.String()},
		},
	}
}

// LoadConfig reads the configuration at path, or DefaultPath if path is
// empty. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Array tables append, so parse fields into an empty slice.
	config.Fields = nil
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(config.Fields) == 0 {
		config.Fields = DefaultConfig().Fields
	}

	if config.Window.Width <= 0 {
		config.Window.Width = DefaultConfig().Window.Width
	}
	if config.Window.Height <= 0 {
		config.Window.Height = DefaultConfig().Window.Height
	}
	for i := range config.Fields {
		if _, err := config.Fields[i].FileMode(); err != nil {
			return config, fmt.Errorf("field %d (%s): %w", i, config.Fields[i].Label, err)
		}
	}
	return config, nil
}

// FileMode parses the field's mode; an empty mode means any-file.
func (f FieldConfig) FileMode() (browsefield.FileMode, error) {
	if f.Mode == "" {
		return browsefield.AnyFile, nil
	}
	return browsefield.ParseFileMode(f.Mode)
}

// DialogOptions converts the field's dialog settings.
func (f FieldConfig) DialogOptions() ([]browsefield.DialogOption, error) {
	mode, err := f.FileMode()
	if err != nil {
		return nil, err
	}

	opts := []browsefield.DialogOption{
		browsefield.WithFileMode(mode),
		browsefield.WithTitle(f.Title),
		browsefield.WithDirectory(f.Directory),
	}
	for _, filter := range f.Filters {
		opts = append(opts, browsefield.WithFilter(filter.Description, filter.Extensions...))
	}
	return opts, nil
}
