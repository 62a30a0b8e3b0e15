package pack

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
)

// Summary reports what one run did.
type Summary struct {
	Scanned    int   // images discovered under the source root
	Selected   int   // images admitted by the estimate-based selector
	Encoded    int   // images whose actual encoded size fit the budget
	Written    int   // files that landed in the output directory
	TotalBytes int64 // actual bytes written
}

// Processor runs the whole pipeline: scan, estimate, select, verify, write.
//
// Stages run strictly in sequence; nothing streams between them. The only
// randomness is the two shuffles inside Select and Reconcile, which share
// the injected rng (nil outside tests).
type Processor struct {
	cfg    *Config
	logger hclog.Logger
	rng    *rand.Rand
}

// NewProcessor creates a processor for a validated configuration
func NewProcessor(cfg *Config, logger hclog.Logger) *Processor {
	return NewProcessorWithRNG(cfg, logger, nil)
}

// NewProcessorWithRNG creates a processor with an injected randomness source
// feeding both shuffles. A nil rng falls back to the shared seeded source;
// passing one makes a whole run reproducible.
func NewProcessorWithRNG(cfg *Config, logger hclog.Logger, rng *rand.Rand) *Processor {
	return &Processor{cfg: cfg, logger: logger, rng: rng}
}

// Run executes one compression run. Setup failures (bad config, unwritable
// output directory) return an error; per-image failures inside the stages
// are logged and skipped.
func (p *Processor) Run() (*Summary, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	compressedDir := filepath.Join(p.cfg.Files.OutputDir, CompressedDirName)
	if err := os.MkdirAll(compressedDir, DirPerms); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", compressedDir, err)
	}

	budget := p.cfg.BudgetBytes()
	quality := p.cfg.Settings.Quality
	summary := &Summary{}

	// 🔍 Discover candidates
	scanner := NewScanner(p.cfg.Files.SourceDir, p.cfg.ExtensionList(), p.logger)
	entries := scanner.Scan()
	summary.Scanned = len(entries)

	// 🎲 Estimate and select
	items := Estimate(entries, quality)
	sel := Select(items, budget, p.rng)
	summary.Selected = len(sel.Chosen)
	p.logger.Info("🎲 Random subset selected",
		"chosen", len(sel.Chosen), "remaining", len(sel.Remaining),
		"estimated", humanize.IBytes(uint64(estimatedTotal(sel.Chosen))),
		"budget", humanize.IBytes(uint64(budget)))

	if len(sel.Chosen) == 0 {
		p.logger.Info("✅ No images were selected (none found or none fit the size limit)")
		return summary, nil
	}

	// 📦 Verify actual sizes, backfill slack
	encode := func(path string) ([]byte, error) {
		return EncodeJPEG(path, quality)
	}
	encoded, err := Reconcile(sel, budget, encode, p.cfg.Settings.Workers, p.rng, p.logger)
	if err != nil {
		return nil, err
	}
	summary.Encoded = len(encoded)
	for _, item := range encoded {
		summary.TotalBytes += int64(len(item.Data))
	}
	p.logger.Info("📦 Verified against budget",
		"images", len(encoded),
		"actual", humanize.IBytes(uint64(summary.TotalBytes)),
		"budget", humanize.IBytes(uint64(budget)))

	// ✍️ Persist in browsable order
	writer := NewWriter(p.cfg.Files.SourceDir, compressedDir, p.logger)
	summary.Written = writer.Write(encoded)

	p.logger.Info("✅ Finished",
		"written", summary.Written,
		"output", compressedDir,
		"size", humanize.IBytes(uint64(summary.TotalBytes)))

	return summary, nil
}

// estimatedTotal sums estimated sizes over a chosen set
func estimatedTotal(items []EstimatedItem) int64 {
	var total int64
	for _, item := range items {
		total += item.EstimatedSize
	}
	return total
}
