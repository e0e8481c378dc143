package model

// ConfidenceRating buckets an overall confidence score for callers that only
// need a coarse judgment.
type ConfidenceRating string

const (
	// RatingHigh means the receipt can be trusted as-is.
	RatingHigh ConfidenceRating = "high"
	// RatingMedium means the receipt should be reviewed.
	RatingMedium ConfidenceRating = "medium"
	// RatingLow means the receipt is probably wrong somewhere.
	RatingLow ConfidenceRating = "low"
)

// Confidence factor names. Keys of ReceiptConfidence.Factors.
const (
	FactorProductCount     = "product_count"
	FactorPriceValidity    = "price_validity"
	FactorTotalConsistency = "total_consistency"
	FactorStoreDetection   = "store_detection"
	FactorOCRNoise         = "ocr_noise"
	FactorNameQuality      = "name_quality"
	FactorDateValidity     = "date_validity"
)

// ReceiptConfidence is the calibrated quality estimate of a parse result.
// Computed fresh per parse, never cached across re-parses.
type ReceiptConfidence struct {
	Factors map[string]float64
	Rating  ConfidenceRating
	Issues  []string
	Score   float64
}

// RatingForScore derives the coarse rating from an overall score.
func RatingForScore(score float64) ConfidenceRating {
	switch {
	case score >= 0.8:
		return RatingHigh
	case score >= 0.5:
		return RatingMedium
	default:
		return RatingLow
	}
}
