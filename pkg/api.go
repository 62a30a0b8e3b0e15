package pkg

import (
	"github.com/provide-io/imagepack/pkg/pack"
)

// Compress runs a full compression pass from a settings file.
func Compress(configPath string) {
	pack.RunWithLogLevel(pack.Options{ConfigPath: configPath, MaxSizeGB: -1, Workers: -1})
}

// CompressWithOptions runs a full compression pass with CLI overrides applied
// on top of the settings file.
func CompressWithOptions(opts pack.Options) {
	pack.RunWithLogLevel(opts)
}
