package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output selects the STL profile written by conversions.
type Output struct {
	// DiskFormat is "STL25.01" or "STL30.01".
	DiskFormat string `toml:"disk_format"`
	// CharacterCodeTable is the two-digit table selector, "00".."04".
	CharacterCodeTable string `toml:"character_code_table"`
	// CodePage is the GSI metadata code page: 437, 850, 860, 863 or 865.
	CodePage int `toml:"code_page"`
	// MaxRowChars and MaxRows feed the GSI display limits.
	MaxRowChars int `toml:"max_row_chars"`
	MaxRows     int `toml:"max_rows"`
}

// Format holds the presentation defaults applied to every subtitle.
type Format struct {
	// Justification: 0 unchanged, 1 left, 2 centered, 3 right.
	Justification    int  `toml:"justification"`
	VerticalPosition int  `toml:"vertical_position"`
	DoubleHeight     bool `toml:"double_height"`
}

// Metadata stamps GSI free-text fields on converted files.
type Metadata struct {
	ProgramTitle string `toml:"program_title"`
	LanguageCode string `toml:"language_code"`
	Publisher    string `toml:"publisher"`
	EditorName   string `toml:"editor_name"`
}

// Catalog configures the conversion history store.
type Catalog struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for stlkit.
type Config struct {
	Output   Output   `toml:"output"`
	Format   Format   `toml:"format"`
	Metadata Metadata `toml:"metadata"`
	Catalog  Catalog  `toml:"catalog"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/stlkit/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has its path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("stlkit.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Catalog.Dir) == "" {
		c.Catalog.Dir = defaultCatalogDir
	}
	if c.Catalog.Dir, err = expandPath(c.Catalog.Dir); err != nil {
		return fmt.Errorf("catalog.dir: %w", err)
	}
	c.Output.DiskFormat = strings.ToUpper(strings.TrimSpace(c.Output.DiskFormat))
	c.Output.CharacterCodeTable = strings.TrimSpace(c.Output.CharacterCodeTable)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// ExpandPath resolves a user-supplied path, expanding a leading ~ to
// the home directory and making the result absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified
// location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
