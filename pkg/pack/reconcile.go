package pack

import (
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	packerrors "github.com/provide-io/imagepack/pkg/pack/errors"
)

// EncodeFunc produces the encoded bytes for one source file. The returned
// length is the ground truth the budget is measured against.
type EncodeFunc func(path string) ([]byte, error)

// EncodedItem is a catalog entry together with its actual encoded bytes.
type EncodedItem struct {
	Entry CatalogEntry
	Data  []byte
}

// packState is the single serialization point for the verify stage: the
// running actual-byte total and the committed output list live behind one
// mutex so the budget invariant holds at any worker count.
type packState struct {
	mu    sync.Mutex
	total int64
	items []EncodedItem
}

// Reconcile replaces the selector's estimates with actual encoded sizes,
// producing the final set whose real byte total fits the budget.
//
// Pass A walks Chosen in selector order: stop once the actual total has
// reached the budget, pre-filter by estimated size to avoid pointless codec
// work, encode, and drop any item whose actual size would overshoot (actual
// sizes can land on either side of the estimate). Pass B reshuffles
// Remaining independently and repeats the same admit logic against whatever
// budget Pass A left unused.
//
// A failed encode skips that item only; the batch never aborts. workers
// bounds concurrent encodes (1 = sequential reference behavior, 0 = NumCPU);
// admission stays serialized regardless.
func Reconcile(sel Selection, budgetBytes int64, encode EncodeFunc, workers int, rng *rand.Rand, logger hclog.Logger) ([]EncodedItem, error) {
	if encode == nil {
		return nil, packerrors.ErrNilEncoder
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}

	state := &packState{}

	logger.Info("📦 Verifying selected images against budget",
		"selected", len(sel.Chosen), "workers", workers)
	runPass(state, sel.Chosen, budgetBytes, encode, workers, logger, "pack")

	if state.total < budgetBytes && len(sel.Remaining) > 0 {
		logger.Info("📦 Backfilling from remaining images",
			"remaining", len(sel.Remaining), "slack", budgetBytes-state.total)
		backfill := make([]EstimatedItem, len(sel.Remaining))
		copy(backfill, sel.Remaining)
		shuffleItems(backfill, rng)
		runPass(state, backfill, budgetBytes, encode, workers, logger, "backfill")
	}

	return state.items, nil
}

// runPass runs the admit/skip loop for one pass over the shared budget.
func runPass(state *packState, items []EstimatedItem, budgetBytes int64, encode EncodeFunc, workers int, logger hclog.Logger, pass string) {
	var group errgroup.Group
	group.SetLimit(workers)

	for _, item := range items {
		state.mu.Lock()
		if state.total >= budgetBytes {
			state.mu.Unlock()
			break
		}
		if state.total+item.EstimatedSize > budgetBytes {
			state.mu.Unlock()
			logger.Debug("⏭️ Skipping by estimate", "pass", pass,
				"path", item.Entry.Path, "estimated", item.EstimatedSize)
			continue
		}
		state.mu.Unlock()

		group.Go(func() error {
			data, err := encode(item.Entry.Path)
			if err != nil {
				logger.Warn("⚠️ Encode failed, skipping", "pass", pass,
					"path", item.Entry.Path, "error", err)
				return nil
			}

			state.mu.Lock()
			defer state.mu.Unlock()
			actual := int64(len(data))
			if state.total+actual > budgetBytes {
				logger.Debug("⏭️ Actual size overshoots budget, skipping",
					"pass", pass, "path", item.Entry.Path,
					"actual", actual, "estimated", item.EstimatedSize)
				return nil
			}
			state.items = append(state.items, EncodedItem{Entry: item.Entry, Data: data})
			state.total += actual
			logger.Debug("✅ Committed", "pass", pass, "path", item.Entry.Path,
				"actual", actual, "total", state.total)
			return nil
		})
	}

	// Workers never surface errors; per-item failures are logged and skipped.
	_ = group.Wait()
}
