package pack

// EstimatedItem pairs a catalog entry with its projected compressed size.
// Transient: produced by Estimate, consumed by Select.
type EstimatedItem struct {
	Entry         CatalogEntry
	EstimatedSize int64
}

// CompressionFactor maps the requested quality to the ratio used to project
// post-encode size from original size. It is monotonically non-decreasing in
// quality and never drops below FactorFloor. The factor is computed from the
// raw requested quality, not the clamped value the codec ends up using.
func CompressionFactor(quality int) float64 {
	factor := float64(quality) / FactorDivisor
	if factor < FactorFloor {
		factor = FactorFloor
	}
	return factor
}

// Estimate projects a compressed size for every catalog entry without
// touching the codec. O(entries): a single multiply per file.
func Estimate(entries []CatalogEntry, quality int) []EstimatedItem {
	factor := CompressionFactor(quality)
	items := make([]EstimatedItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, EstimatedItem{
			Entry:         entry,
			EstimatedSize: int64(float64(entry.OriginalSize) * factor),
		})
	}
	return items
}
