// Package confidence scores how trustworthy a parsed receipt is. The scorer
// is pure: the same receipt, text, and detection confidence always produce the
// same result, so scores are reproducible and never cached across re-parses.
package confidence

import (
	"fmt"
	"math"
	"regexp"
	"time"
	"unicode"

	"github.com/Veraticus/kassenbon/internal/model"
)

// factorWeights combines the seven factor scores into the overall score. The
// weights sum to 1.0.
var factorWeights = map[string]float64{
	model.FactorProductCount:     0.12,
	model.FactorPriceValidity:    0.18,
	model.FactorTotalConsistency: 0.25,
	model.FactorStoreDetection:   0.15,
	model.FactorOCRNoise:         0.12,
	model.FactorNameQuality:      0.10,
	model.FactorDateValidity:     0.08,
}

// maxPlausiblePrice bounds a single grocery line item.
const maxPlausiblePrice = 1000.0

// maxPlausibleItems bounds a single grocery trip.
const maxPlausibleItems = 100

// noiseRunRe finds runs of repeated noise characters, the signature of a
// badly scanned region.
var noiseRunRe = regexp.MustCompile(`[^\p{L}\p{N}\s€$£]{2,}`)

// Scorer computes ReceiptConfidence values.
type Scorer struct {
	now func() time.Time
}

// Option customizes a Scorer.
type Option func(*Scorer)

// WithClock overrides the time source used to judge date plausibility.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		s.now = now
	}
}

// New creates a Scorer.
func New(opts ...Option) *Scorer {
	s := &Scorer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score rates a parsed receipt. ocrText is the original text the receipt was
// parsed from; storeConfidence is the detection confidence of the profile that
// parsed it, or zero when the generic fallback did.
func (s *Scorer) Score(receipt *model.Receipt, ocrText string, storeConfidence float64) *model.ReceiptConfidence {
	factors := make(map[string]float64, len(factorWeights))
	var issues []string

	factors[model.FactorProductCount], issues = scoreProductCount(receipt, issues)
	factors[model.FactorPriceValidity], issues = scorePriceValidity(receipt, issues)
	factors[model.FactorTotalConsistency], issues = scoreTotalConsistency(receipt, issues)
	factors[model.FactorStoreDetection], issues = scoreStoreDetection(receipt, storeConfidence, issues)
	factors[model.FactorOCRNoise], issues = scoreOCRNoise(ocrText, issues)
	factors[model.FactorNameQuality], issues = scoreNameQuality(receipt, issues)
	factors[model.FactorDateValidity], issues = scoreDateValidity(receipt, s.now(), issues)

	var score float64
	for name, weight := range factorWeights {
		score += weight * factors[name]
	}

	return &model.ReceiptConfidence{
		Factors: factors,
		Rating:  model.RatingForScore(score),
		Issues:  issues,
		Score:   score,
	}
}

// scoreProductCount rewards the 2-100 range a real grocery receipt falls in.
func scoreProductCount(receipt *model.Receipt, issues []string) (float64, []string) {
	count := len(receipt.Items)
	switch {
	case count == 0:
		return 0.0, append(issues, "No products found.")
	case count == 1:
		return 0.6, append(issues, "Only 1 product found.")
	case count > maxPlausibleItems:
		return 0.4, append(issues, fmt.Sprintf("Unusually many products found (%d).", count))
	default:
		return 1.0, issues
	}
}

// scorePriceValidity is the fraction of items with a plausible price.
func scorePriceValidity(receipt *model.Receipt, issues []string) (float64, []string) {
	if len(receipt.Items) == 0 {
		return 0.0, issues
	}

	valid := 0
	for _, item := range receipt.Items {
		if item.Price > 0 && item.Price < maxPlausiblePrice {
			valid++
		}
	}

	score := float64(valid) / float64(len(receipt.Items))
	if invalid := len(receipt.Items) - valid; invalid > 0 {
		issues = append(issues, fmt.Sprintf("%d items have implausible prices.", invalid))
	}
	return score, issues
}

// scoreTotalConsistency compares the extracted total against the item sum.
// The tolerance scales with the total but never drops below 50 cents, so
// small receipts are not punished for a single misread digit.
func scoreTotalConsistency(receipt *model.Receipt, issues []string) (float64, []string) {
	if receipt.Total == 0 {
		return 0.3, append(issues, "Total is €0.00")
	}

	diff := math.Abs(receipt.ItemSum() - receipt.Total)
	tolerance := math.Max(0.15*receipt.Total, 0.5)

	switch {
	case diff < tolerance:
		return 1.0, issues
	case diff < 2*tolerance:
		return 0.6, append(issues, fmt.Sprintf("Total differs from item sum by €%.2f.", diff))
	default:
		return 0.2, append(issues, fmt.Sprintf("Total differs from item sum by €%.2f.", diff))
	}
}

// scoreStoreDetection passes the detector's confidence through, with a floor
// value for receipts parsed by the generic fallback.
func scoreStoreDetection(receipt *model.Receipt, storeConfidence float64, issues []string) (float64, []string) {
	if receipt.StoreName == "" || storeConfidence <= 0 {
		return 0.3, append(issues, "Store could not be identified.")
	}
	return clamp01(storeConfidence), issues
}

// scoreOCRNoise measures the garbled-character ratio of the source text.
// Runs of repeated noise characters count double: they are scan artifacts,
// not legitimate punctuation.
func scoreOCRNoise(ocrText string, issues []string) (float64, []string) {
	if ocrText == "" {
		return 0.0, issues
	}

	total := 0
	garbled := 0
	for _, r := range ocrText {
		total++
		if isGarbled(r) {
			garbled++
		}
	}
	for _, run := range noiseRunRe.FindAllString(ocrText, -1) {
		garbled += len([]rune(run))
	}

	score := clamp01(1.0 - float64(garbled)/float64(total))
	if score < 0.8 {
		issues = append(issues, "Text contains a high amount of OCR noise.")
	}
	return score, issues
}

// isGarbled reports whether a scalar is neither word material, whitespace,
// currency, nor the punctuation receipts legitimately contain.
func isGarbled(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
		return false
	}
	switch r {
	case '€', '$', '£', '.', ',', ':', ';', '%', '/', '*', '-', '+', '(', ')', '\'', '"', '&', '=', '×', '!', '?':
		return false
	}
	return true
}

// scoreNameQuality checks that the average cleaned name length is plausible
// for real products.
func scoreNameQuality(receipt *model.Receipt, issues []string) (float64, []string) {
	if len(receipt.Items) == 0 {
		return 0.0, issues
	}

	totalLen := 0
	for _, item := range receipt.Items {
		totalLen += len([]rune(item.Name))
	}
	avg := float64(totalLen) / float64(len(receipt.Items))

	if avg > 3 && avg < 50 {
		return 1.0, issues
	}
	return 0.4, append(issues, "Product names look truncated or garbled.")
}

// scoreDateValidity checks that the purchase date is recent and not in the
// future.
func scoreDateValidity(receipt *model.Receipt, now time.Time, issues []string) (float64, []string) {
	switch {
	case receipt.Date.IsZero():
		return 0.0, append(issues, "Purchase date is missing.")
	// Receipts carry no timezone, so a date can appear up to a day ahead of
	// our clock; only beyond that is it treated as future.
	case receipt.Date.After(now.Add(24 * time.Hour)):
		return 0.2, append(issues, "Purchase date is in the future.")
	case receipt.Date.Before(now.AddDate(-1, 0, 0)):
		return 0.5, append(issues, "Purchase date is more than a year old.")
	default:
		return 1.0, issues
	}
}

func clamp01(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}
