package store

import (
	"log/slog"
	"strings"

	"github.com/Veraticus/kassenbon/internal/model"
)

// Factor weights and the detection threshold. A profile below the threshold
// is treated as no match; the engine then tries the generic fallback.
const (
	nameWeight      = 0.5
	structureWeight = 0.3
	footerWeight    = 0.2

	// DetectionThreshold is the minimum combined score for a match.
	DetectionThreshold = 0.3

	// footerWindow is how many trailing lines are searched for footer
	// keywords.
	footerWindow = 15
)

// Detector scores every registered profile against normalized receipt text.
type Detector struct {
	registry *Registry
}

// NewDetector creates a detector over the given profile registry.
func NewDetector(registry *Registry) *Detector {
	return &Detector{registry: registry}
}

// Detect returns the best-scoring profile as a StoreMatch, or nil when no
// profile reaches the detection threshold. Ties are broken by profile
// declaration order: the first profile wins.
func (d *Detector) Detect(text string) *model.StoreMatch {
	upper := strings.ToUpper(text)
	lines := splitTrimmedUpper(text)

	var best *model.StoreMatch
	for _, profile := range d.registry.Profiles() {
		name := nameFactor(upper, profile.Tokens)
		structure := structureFactor(lines, profile)
		footer := footerFactor(lines, profile.FooterKeywords)

		total := nameWeight*name + structureWeight*structure + footerWeight*footer

		slog.Debug("scored store profile",
			"profile", profile.ID,
			"name", name,
			"structure", structure,
			"footer", footer,
			"total", total)

		// Strict greater-than keeps the first profile on ties.
		if total >= DetectionThreshold && (best == nil || total > best.Confidence) {
			best = &model.StoreMatch{
				ProfileID:   profile.ID,
				DisplayName: profile.DisplayName,
				Confidence:  total,
				Factors: map[string]float64{
					model.FactorName:      name,
					model.FactorStructure: structure,
					model.FactorFooter:    footer,
				},
			}
		}
	}

	return best
}

// nameFactor counts how many distinct identification tokens appear in the
// text: two or more is certain, one is a strong hint, none is nothing.
func nameFactor(upperText string, tokens []string) float64 {
	matched := 0
	for _, token := range tokens {
		if strings.Contains(upperText, strings.ToUpper(token)) {
			matched++
		}
	}

	switch {
	case matched >= 2:
		return 1.0
	case matched == 1:
		return 0.7
	default:
		return 0.0
	}
}

// structureFactor is the fraction of the profile's structural signatures
// whose line-count threshold is met.
func structureFactor(lines []string, profile *CompiledProfile) float64 {
	if len(profile.Signatures) == 0 {
		return 0.0
	}

	satisfied := 0
	for i, sig := range profile.Signatures {
		re := profile.SignatureRegexps()[i]
		count := 0
		for _, line := range lines {
			if re.MatchString(line) {
				count++
			}
		}
		if count >= sig.MinCount {
			satisfied++
		}
	}

	return float64(satisfied) / float64(len(profile.Signatures))
}

// footerFactor checks for the profile's total/footer keywords within the last
// lines of the receipt.
func footerFactor(lines []string, keywords []string) float64 {
	start := len(lines) - footerWindow
	if start < 0 {
		start = 0
	}

	for _, line := range lines[start:] {
		for _, keyword := range keywords {
			if strings.Contains(line, strings.ToUpper(keyword)) {
				return 1.0
			}
		}
	}
	return 0.0
}

func splitTrimmedUpper(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.ToUpper(strings.TrimSpace(line))
	}
	return lines
}
