package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReceipt_TotalFallsBackToItemSum(t *testing.T) {
	items := []LineItem{
		NewLineItem("Milch 1L 1,09", "Milch 1L", 1.09),
		NewLineItem("Butter 2,49", "Butter", 2.49),
	}

	r := NewReceipt("REWE", time.Now(), items, 0)

	assert.InDelta(t, 3.58, r.Total, 0.001, "total should equal the item sum when extraction failed")
}

func TestNewReceipt_KeepsExtractedTotal(t *testing.T) {
	items := []LineItem{NewLineItem("Brot 1,99", "Brot", 1.99)}

	r := NewReceipt("LIDL", time.Now(), items, 12.34)

	assert.InDelta(t, 12.34, r.Total, 0.001)
}

func TestItemSum_RoundsToCents(t *testing.T) {
	r := &Receipt{Items: []LineItem{
		{Price: 0.1},
		{Price: 0.2},
	}}

	assert.Equal(t, 0.3, r.ItemSum())
}

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		name  string
		want  ConfidenceRating
		score float64
	}{
		{name: "high at boundary", score: 0.8, want: RatingHigh},
		{name: "medium just below high", score: 0.79, want: RatingMedium},
		{name: "medium at boundary", score: 0.5, want: RatingMedium},
		{name: "low just below medium", score: 0.49, want: RatingLow},
		{name: "low at zero", score: 0, want: RatingLow},
		{name: "high at one", score: 1.0, want: RatingHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RatingForScore(tt.score))
		})
	}
}

func TestStorageSection_IsValid(t *testing.T) {
	for _, s := range ValidSections {
		assert.True(t, s.IsValid(), "section %s should be valid", s)
	}
	assert.False(t, StorageSection("garage").IsValid())
}
