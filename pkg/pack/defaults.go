package pack

// =================================
// Size estimation defaults
// =================================
const (
	// Calibration for the pre-encode size heuristic: the projected
	// compressed size of a file is original_size * (quality / FactorDivisor),
	// floored at FactorFloor. Calibrated against the stdlib JPEG encoder:
	// quality 75 projects ~0.25x, quality 15 projects 0.05x.
	FactorDivisor = 300.0
	FactorFloor   = 0.01
)

// =================================
// JPEG codec defaults
// =================================
const (
	MinJPEGQuality = 1
	MaxJPEGQuality = 95
)

// =================================
// File permissions defaults
// =================================
const (
	FilePerms = 0o644 // Output images are world-readable
	DirPerms  = 0o755
)

// =================================
// Output naming defaults
// =================================
const (
	// CompressedDirName is the subdirectory of output_dir that receives results
	CompressedDirName = "compressed"
	// RootFolderToken names the folder segment for files at the source root
	RootFolderToken = "root"
	// NameJoiner separates sequence, folder and basename in output filenames
	NameJoiner = "_"
)

// =================================
// Selection defaults
// =================================
const (
	// DefaultWorkers runs encode verification sequentially; 0 means NumCPU
	DefaultWorkers = 1
)

// DefaultExtensions is the case-insensitive extension allow-list used when
// the settings file does not override it.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "webp", "bmp"}
