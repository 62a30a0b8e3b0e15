package pack

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	packerrors "github.com/provide-io/imagepack/pkg/pack/errors"
)

// Config represents the settings for one compression run.
//
// The on-disk format is TOML with two tables, mirroring the tool's original
// settings layout:
//
//	[files]
//	source_dir = "/photos"
//	output_dir = "/out"
//
//	[settings]
//	max_dir_size_gb = 1.5
//	quality = 16
//
// Required fields:
// - Files.SourceDir: root of the tree to scan for images
// - Files.OutputDir: directory receiving the "compressed" subdirectory
// - Settings.MaxDirSizeGB: aggregate output budget in GiB
// - Settings.Quality: JPEG quality 1-100 (the codec clamps internally)
//
// Optional fields:
// - Settings.Extensions: extension allow-list override
// - Settings.Workers: encode worker count (1 = sequential, 0 = NumCPU)
type Config struct {
	Files    FilesConfig    `toml:"files"`
	Settings SettingsConfig `toml:"settings"`
}

// FilesConfig contains the input and output locations
type FilesConfig struct {
	SourceDir string `toml:"source_dir"`
	OutputDir string `toml:"output_dir"`
}

// SettingsConfig contains the packing parameters
type SettingsConfig struct {
	MaxDirSizeGB float64  `toml:"max_dir_size_gb"`
	Quality      int      `toml:"quality"`
	Extensions   []string `toml:"extensions,omitempty"`
	Workers      int      `toml:"workers,omitempty"`
}

// LoadConfig reads and parses a TOML settings file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings from %s: %w", path, err)
	}

	cfg := &Config{
		Settings: SettingsConfig{Workers: DefaultWorkers},
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings from %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is complete and coherent.
// Any error here is fatal at startup; nothing runs on a broken config.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Files.SourceDir) == "" {
		return packerrors.ErrMissingSourceDir
	}
	if strings.TrimSpace(c.Files.OutputDir) == "" {
		return packerrors.ErrMissingOutputDir
	}
	if c.Settings.MaxDirSizeGB < 0 {
		return packerrors.ErrNegativeBudget
	}
	if c.Settings.Quality < 1 || c.Settings.Quality > 100 {
		return packerrors.ErrInvalidQuality
	}
	if c.Settings.Workers < 0 {
		return packerrors.ErrInvalidWorkers
	}
	return nil
}

// BudgetBytes converts the GiB budget into the byte cap for the run
func (c *Config) BudgetBytes() int64 {
	return int64(c.Settings.MaxDirSizeGB * float64(int64(1)<<30))
}

// ExtensionList returns the configured allow-list, or the default one
func (c *Config) ExtensionList() []string {
	if len(c.Settings.Extensions) > 0 {
		return c.Settings.Extensions
	}
	return DefaultExtensions
}
