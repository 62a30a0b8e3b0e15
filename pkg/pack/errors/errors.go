package errors

import "errors"

var (
	// Configuration errors ⚙️
	ErrMissingSourceDir = errors.New("❌ source_dir is not set")
	ErrMissingOutputDir = errors.New("❌ output_dir is not set")
	ErrNegativeBudget   = errors.New("❌ max_dir_size_gb must not be negative")
	ErrInvalidQuality   = errors.New("❌ quality must be between 1 and 100")
	ErrInvalidWorkers   = errors.New("❌ workers must not be negative")

	// Codec errors 🖼️
	ErrDecodeFailed = errors.New("❌ image decode failed")

	// Packing errors 📦
	ErrNilEncoder = errors.New("❌ encoder function is nil")
)
