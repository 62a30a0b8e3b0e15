package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressionFactorCalibration(t *testing.T) {
	testCases := []struct {
		name     string
		quality  int
		expected float64
	}{
		{name: "quality 75 projects one quarter", quality: 75, expected: 0.25},
		{name: "quality 15 projects one twentieth", quality: 15, expected: 0.05},
		{name: "quality 30 projects one tenth", quality: 30, expected: 0.10},
		{name: "tiny quality hits the floor", quality: 1, expected: FactorFloor},
		{name: "zero quality hits the floor", quality: 0, expected: FactorFloor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CompressionFactor(tc.quality), 1e-9)
		})
	}
}

func TestCompressionFactorMonotonic(t *testing.T) {
	prev := 0.0
	for quality := 0; quality <= 100; quality++ {
		factor := CompressionFactor(quality)
		assert.GreaterOrEqual(t, factor, FactorFloor, "quality %d below floor", quality)
		assert.GreaterOrEqual(t, factor, prev, "factor decreased at quality %d", quality)
		prev = factor
	}
}

func TestEstimateSizes(t *testing.T) {
	entries := []CatalogEntry{
		{Path: "a.jpg", OriginalSize: 10 * 1024 * 1024},
		{Path: "b.png", OriginalSize: 1000},
		{Path: "empty.bmp", OriginalSize: 0},
	}

	items := Estimate(entries, 75) // factor 0.25

	assert.Len(t, items, len(entries))
	assert.Equal(t, int64(2621440), items[0].EstimatedSize)
	assert.Equal(t, int64(250), items[1].EstimatedSize)
	assert.Equal(t, int64(0), items[2].EstimatedSize)
	for i, item := range items {
		assert.Equal(t, entries[i], item.Entry)
	}
}

func TestEstimateEmpty(t *testing.T) {
	assert.Empty(t, Estimate(nil, 50))
}
