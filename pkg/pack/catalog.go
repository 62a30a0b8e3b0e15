package pack

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// CatalogEntry is one discovered candidate image. Immutable once scanned.
type CatalogEntry struct {
	// Path is the absolute (or root-joined) path of the source file
	Path string
	// OriginalSize is the on-disk byte size before re-encoding
	OriginalSize int64
}

// Scanner discovers candidate images under a source root.
type Scanner struct {
	root   string
	allow  map[string]struct{}
	logger hclog.Logger
}

// NewScanner creates a scanner for root, filtering by the extension
// allow-list. Extensions are matched case-insensitively, with or without
// a leading dot.
func NewScanner(root string, extensions []string, logger hclog.Logger) *Scanner {
	allow := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allow[ext] = struct{}{}
		}
	}
	return &Scanner{root: root, allow: allow, logger: logger}
}

// Scan walks the source tree and returns every regular file whose extension
// is on the allow-list, together with its original byte size.
//
// Scan never fails the run: unreadable entries are skipped with a warning,
// and a missing or unreadable root yields an empty catalog.
func (s *Scanner) Scan() []CatalogEntry {
	s.logger.Debug("🔍 Scanning source tree", "root", s.root)

	var entries []CatalogEntry
	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("⚠️ Skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !s.allowed(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.logger.Warn("⚠️ Skipping file without size info", "path", path, "error", err)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		entries = append(entries, CatalogEntry{Path: path, OriginalSize: info.Size()})
		return nil
	})
	if walkErr != nil {
		// WalkDir only returns what the callback returns; the callback
		// swallows everything, so this is unreachable in practice.
		s.logger.Warn("⚠️ Scan aborted early", "error", walkErr)
	}

	s.logger.Info("🔍 Scan complete", "root", s.root, "images", len(entries))
	return entries
}

// allowed reports whether a filename's extension is on the allow-list
func (s *Scanner) allowed(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	_, ok := s.allow[ext]
	return ok
}
