package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packerrors "github.com/provide-io/imagepack/pkg/pack/errors"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeSettings(t, `
[files]
source_dir = "/photos"
output_dir = "/out"

[settings]
max_dir_size_gb = 1.5
quality = 16
extensions = ["jpg", "png"]
workers = 4
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/photos", cfg.Files.SourceDir)
	assert.Equal(t, "/out", cfg.Files.OutputDir)
	assert.Equal(t, 1.5, cfg.Settings.MaxDirSizeGB)
	assert.Equal(t, 16, cfg.Settings.Quality)
	assert.Equal(t, []string{"jpg", "png"}, cfg.Settings.Extensions)
	assert.Equal(t, 4, cfg.Settings.Workers)
}

func TestLoadConfigDefaultsWorkers(t *testing.T) {
	path := writeSettings(t, `
[files]
source_dir = "/photos"
output_dir = "/out"

[settings]
max_dir_size_gb = 1.0
quality = 75
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkers, cfg.Settings.Workers)
	assert.Empty(t, cfg.Settings.Extensions)
	assert.Equal(t, DefaultExtensions, cfg.ExtensionList())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeSettings(t, `[files`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Files:    FilesConfig{SourceDir: "/photos", OutputDir: "/out"},
			Settings: SettingsConfig{MaxDirSizeGB: 1.0, Quality: 50, Workers: 1},
		}
	}

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{name: "valid", mutate: func(c *Config) {}, expected: nil},
		{name: "zero budget is allowed", mutate: func(c *Config) { c.Settings.MaxDirSizeGB = 0 }, expected: nil},
		{name: "missing source", mutate: func(c *Config) { c.Files.SourceDir = " " }, expected: packerrors.ErrMissingSourceDir},
		{name: "missing output", mutate: func(c *Config) { c.Files.OutputDir = "" }, expected: packerrors.ErrMissingOutputDir},
		{name: "negative budget", mutate: func(c *Config) { c.Settings.MaxDirSizeGB = -0.1 }, expected: packerrors.ErrNegativeBudget},
		{name: "quality too low", mutate: func(c *Config) { c.Settings.Quality = 0 }, expected: packerrors.ErrInvalidQuality},
		{name: "quality too high", mutate: func(c *Config) { c.Settings.Quality = 101 }, expected: packerrors.ErrInvalidQuality},
		{name: "negative workers", mutate: func(c *Config) { c.Settings.Workers = -1 }, expected: packerrors.ErrInvalidWorkers},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestBudgetBytes(t *testing.T) {
	gib := float64(int64(1) << 30)
	testCases := []struct {
		name     string
		gb       float64
		expected int64
	}{
		{name: "one GiB", gb: 1.0, expected: 1 << 30},
		{name: "fractional floors", gb: 1.5, expected: 1610612736},
		{name: "zero", gb: 0, expected: 0},
		{name: "small fraction", gb: 0.0117, expected: int64(0.0117 * gib)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Settings: SettingsConfig{MaxDirSizeGB: tc.gb}}
			assert.Equal(t, tc.expected, cfg.BudgetBytes())
		})
	}
}
