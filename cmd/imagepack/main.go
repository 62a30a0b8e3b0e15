package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/imagepack/pkg"
	"github.com/provide-io/imagepack/pkg/pack"
)

const version = "0.2.0"

var (
	configPath  string
	sourceDir   string
	outputDir   string
	maxSizeGB   float64
	quality     int
	workers     int
	logLevel    string
	rootCmd     *cobra.Command
	versionFlag bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "imagepack",
		Short: "Pack a random subset of images into a size-budgeted directory",
		Long: `imagepack selects a random subset of images from a nested directory tree,
re-encodes them as JPEG at a configured quality, and writes them into a flat
"compressed" directory whose total size stays under a hard byte budget.`,
		Run: runCompress,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "settings.toml", "Path to settings file (TOML)")
	rootCmd.Flags().StringVar(&sourceDir, "source", "", "Source directory (overrides settings file)")
	rootCmd.Flags().StringVar(&outputDir, "output", "", "Output directory (overrides settings file)")
	rootCmd.Flags().Float64Var(&maxSizeGB, "max-size-gb", -1, "Output size budget in GiB (overrides settings file)")
	rootCmd.Flags().IntVarP(&quality, "quality", "q", 0, "JPEG quality 1-100 (overrides settings file)")
	rootCmd.Flags().IntVar(&workers, "workers", -1, "Encode workers, 0 = all CPUs (overrides settings file)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("imagepack %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompress(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("imagepack %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}

	pkg.CompressWithOptions(pack.Options{
		ConfigPath: configPath,
		SourceDir:  sourceDir,
		OutputDir:  outputDir,
		MaxSizeGB:  maxSizeGB,
		Quality:    quality,
		Workers:    workers,
		LogLevel:   logLevel,
	})
}
