package pack

import (
	"os"

	"github.com/provide-io/imagepack/pkg/logging"
)

// Options carries the CLI surface for one run. Zero values mean "not set";
// set fields override whatever the settings file says.
type Options struct {
	ConfigPath string
	SourceDir  string
	OutputDir  string
	MaxSizeGB  float64 // overrides when >= 0; pass -1 for unset
	Quality    int     // overrides when > 0
	Workers    int     // overrides when >= 0; pass -1 for unset
	LogLevel   string
}

// RunWithLogLevel loads the settings file, applies CLI overrides, and runs
// the pipeline. Configuration problems are fatal: logged and exited, before
// any image is touched.
func RunWithLogLevel(opts Options) {
	logger := logging.NewRunLogger("imagepack", opts.LogLevel)

	logger.Info("📸📸📸 Hello from imagepack 📸📸📸")
	logger.Debug("Settings file", "path", opts.ConfigPath)

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		logger.Error("❌ Failed to load settings", "error", err)
		os.Exit(1)
	}

	if opts.SourceDir != "" {
		cfg.Files.SourceDir = opts.SourceDir
	}
	if opts.OutputDir != "" {
		cfg.Files.OutputDir = opts.OutputDir
	}
	if opts.MaxSizeGB >= 0 {
		cfg.Settings.MaxDirSizeGB = opts.MaxSizeGB
	}
	if opts.Quality > 0 {
		cfg.Settings.Quality = opts.Quality
	}
	if opts.Workers >= 0 {
		cfg.Settings.Workers = opts.Workers
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("❌ Invalid settings", "error", err)
		os.Exit(1)
	}

	logger.Debug("🔧 Effective settings",
		"source", cfg.Files.SourceDir,
		"output", cfg.Files.OutputDir,
		"max_dir_size_gb", cfg.Settings.MaxDirSizeGB,
		"quality", cfg.Settings.Quality,
		"workers", cfg.Settings.Workers)

	proc := NewProcessor(cfg, logger)
	if _, err := proc.Run(); err != nil {
		logger.Error("❌ Run failed", "error", err)
		os.Exit(1)
	}
}
