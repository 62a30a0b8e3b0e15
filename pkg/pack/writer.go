package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Writer persists encoded images into the compressed output directory with
// deterministic, collision-free names.
type Writer struct {
	sourceRoot string
	outputDir  string
	logger     hclog.Logger
}

// NewWriter creates a writer. outputDir is the compressed directory itself,
// already created by the caller; sourceRoot anchors the relative folder part
// of output names.
func NewWriter(sourceRoot, outputDir string, logger hclog.Logger) *Writer {
	return &Writer{sourceRoot: sourceRoot, outputDir: outputDir, logger: logger}
}

// Write sorts the reconciled set into human-browsable order and writes each
// image to disk. The randomized pack order does not leak into the output:
// items are ordered by (relative folder, basename), case-insensitively.
//
// Per-item write failures are logged and skipped; Write reports how many
// files actually landed on disk.
func (w *Writer) Write(items []EncodedItem) int {
	sorted := make([]EncodedItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, bi := w.sortKey(sorted[i].Entry.Path)
		fj, bj := w.sortKey(sorted[j].Entry.Path)
		if fi != fj {
			return fi < fj
		}
		return bi < bj
	})

	pad := len(strconv.Itoa(len(sorted)))
	written := 0

	for _, item := range sorted {
		name := w.outputName(written+1, pad, item.Entry.Path)
		outPath := w.resolveCollision(name)

		if err := os.WriteFile(outPath, item.Data, FilePerms); err != nil {
			w.logger.Warn("⚠️ Failed to write output file, skipping",
				"path", outPath, "error", err)
			continue
		}

		written++
		w.logger.Debug("✍️ Wrote file", "seq", written, "path", outPath)
	}

	return written
}

// sortKey returns the case-folded (relative folder, basename) pair for a
// source path
func (w *Writer) sortKey(path string) (string, string) {
	return strings.ToLower(w.relFolder(path)), strings.ToLower(filepath.Base(path))
}

// relFolder computes the source-relative folder of a path, empty for files
// directly under the source root
func (w *Writer) relFolder(path string) string {
	rel, err := filepath.Rel(w.sourceRoot, filepath.Dir(path))
	if err != nil || rel == "." {
		return ""
	}
	return rel
}

// outputName builds "<seq>_<flattened-folder>_<basename>" with the sequence
// zero-padded to the width of the total count
func (w *Writer) outputName(seq, pad int, path string) string {
	folder := w.relFolder(path)
	if folder == "" {
		folder = RootFolderToken
	} else {
		folder = strings.ReplaceAll(folder, string(filepath.Separator), NameJoiner)
	}
	return fmt.Sprintf("%0*d%s%s%s%s", pad, seq, NameJoiner, folder, NameJoiner, filepath.Base(path))
}

// resolveCollision returns a free path for name inside the output directory,
// appending _1, _2, ... before the extension until no file is in the way.
func (w *Writer) resolveCollision(name string) string {
	candidate := filepath.Join(w.outputDir, name)
	if !pathExists(candidate) {
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for suffix := 1; ; suffix++ {
		candidate = filepath.Join(w.outputDir, fmt.Sprintf("%s%s%d%s", stem, NameJoiner, suffix, ext))
		if !pathExists(candidate) {
			return candidate
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
