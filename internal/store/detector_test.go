package store

import (
	"strings"
	"testing"

	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	registry, err := NewRegistry(DefaultProfiles())
	require.NoError(t, err)
	return NewDetector(registry)
}

func TestDetect_AldiSued(t *testing.T) {
	d := newTestDetector(t)

	text := strings.Join([]string{
		"ALDI SÜD",
		"Hauptstr. 12",
		"605084",
		"Bio Apfelmus 360g",
		"0,69 A",
		"738291",
		"Vollmilch 3,5%",
		"1,09 A",
		"BETRAG 1,78 EUR",
	}, "\n")

	match := d.Detect(text)

	require.NotNil(t, match)
	assert.Equal(t, "aldi-sued", match.ProfileID)
	assert.Equal(t, "ALDI Süd", match.DisplayName)
	assert.InDelta(t, 1.0, match.Factors[model.FactorName], 0.001, "two distinct tokens should max the name factor")
	assert.InDelta(t, 1.0, match.Factors[model.FactorFooter], 0.001)
	assert.GreaterOrEqual(t, match.Confidence, DetectionThreshold)
}

func TestDetect_SingleTokenScoresLower(t *testing.T) {
	d := newTestDetector(t)

	oneToken := d.Detect("PENNY\nsomething unrelated\n")
	require.NotNil(t, oneToken)
	assert.InDelta(t, 0.7, oneToken.Factors[model.FactorName], 0.001)
}

func TestDetect_NoMatchBelowThreshold(t *testing.T) {
	d := newTestDetector(t)

	match := d.Detect("just a note\nnothing to see here\n")

	assert.Nil(t, match)
}

func TestDetect_EmptyText(t *testing.T) {
	d := newTestDetector(t)

	assert.Nil(t, d.Detect(""))
}

func TestDetect_ConfidenceAlwaysInUnitInterval(t *testing.T) {
	d := newTestDetector(t)

	samples := []string{
		"",
		"ALDI SÜD\nBETRAG 1,00",
		"LIDL LIDL LIDL LIDL",
		strings.Repeat("CARREFOUR MARKET TOTAL 1,00\n", 50),
		"REWE\nEDEKA\nPENNY\nNETTO\nAUCHAN",
	}

	for _, sample := range samples {
		if match := d.Detect(sample); match != nil {
			assert.GreaterOrEqual(t, match.Confidence, 0.0)
			assert.LessOrEqual(t, match.Confidence, 1.0)
			for factor, score := range match.Factors {
				assert.GreaterOrEqual(t, score, 0.0, "factor %s", factor)
				assert.LessOrEqual(t, score, 1.0, "factor %s", factor)
			}
		}
	}
}

func TestDetect_NameFactorMonotonicity(t *testing.T) {
	d := newTestDetector(t)

	// Adding more matching identification tokens never decreases the name
	// factor for that profile.
	texts := []string{
		"LIDL\nMilch 1,09 A\nButter 2,49 A\nBrot 1,99 A\nZU ZAHLEN 5,57",
		"LIDL DANKT\nLIDL\nMilch 1,09 A\nButter 2,49 A\nBrot 1,99 A\nZU ZAHLEN 5,57",
		"LIDL DANKT\nLIDL VERTRIEBS GMBH\nLIDL\nMilch 1,09 A\nButter 2,49 A\nBrot 1,99 A\nZU ZAHLEN 5,57",
	}

	var previous float64
	for i, text := range texts {
		match := d.Detect(text)
		require.NotNil(t, match, "text %d should match", i)
		require.Equal(t, "lidl", match.ProfileID)
		assert.GreaterOrEqual(t, match.Factors[model.FactorName], previous)
		previous = match.Factors[model.FactorName]
	}
}

func TestDetect_TieBreakByDeclarationOrder(t *testing.T) {
	profiles := []Profile{
		{
			ID:             "first",
			DisplayName:    "First",
			Tokens:         []string{"SHARED", "TOKEN"},
			FooterKeywords: []string{"TOTAL"},
			PriceLocation:  PriceSameLine,
		},
		{
			ID:             "second",
			DisplayName:    "Second",
			Tokens:         []string{"SHARED", "TOKEN"},
			FooterKeywords: []string{"TOTAL"},
			PriceLocation:  PriceSameLine,
		},
	}
	registry, err := NewRegistry(profiles)
	require.NoError(t, err)
	d := NewDetector(registry)

	match := d.Detect("SHARED TOKEN\nTOTAL 1,00")

	require.NotNil(t, match)
	assert.Equal(t, "first", match.ProfileID, "ties must resolve to the first declared profile")
}

func TestDetect_StructureFactorCountsSignatures(t *testing.T) {
	d := newTestDetector(t)

	// Six-digit article lines and tax-class price lines satisfy both ALDI
	// signatures.
	text := strings.Join([]string{
		"ALDI SÜD",
		"605084",
		"Bio Apfelmus 360g",
		"0,69 A",
		"738291",
		"Vollmilch 3,5%",
		"1,09 A",
		"BETRAG 1,78 EUR",
	}, "\n")

	match := d.Detect(text)
	require.NotNil(t, match)
	assert.InDelta(t, 1.0, match.Factors[model.FactorStructure], 0.001)
}
