package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StoreNameCorrections(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "aldi with lowercase l", input: "ALDl SÜD", want: "ALDI SÜD"},
		{name: "aldi with digit one", input: "ALD1 SÜD", want: "ALDI SÜD"},
		{name: "lidl with digit one", input: "L1DL Dankt", want: "LIDL Dankt"},
		{name: "carrefour with zero", input: "CARREF0UR MARKET", want: "CARREFOUR MARKET"},
		{name: "untouched real word", input: "WALDIDYLLE", want: "WALDIDYLLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalize_PriceShapedDigitRepair(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "letter O as zero", input: "Bio Apfelmus 1O,99", want: "Bio Apfelmus 10,99"},
		{name: "leading letter O", input: "Joghurt O,69", want: "Joghurt 0,69"},
		{name: "letter S as five", input: "Käse S,49", want: "Käse 5,49"},
		{name: "letter B as eight", input: "Wein B,99 A", want: "Wein 8,99 A"},
		{name: "lowercase l as one", input: "Milch l,09", want: "Milch 1,09"},
		{name: "dot separator", input: "Eau 2O.35", want: "Eau 20.35"},
		{name: "letters outside price shape untouched", input: "SOLO Nudeln 0,99", want: "SOLO Nudeln 0,99"},
		{name: "word before comma untouched", input: "Mehl, Zucker", want: "Mehl, Zucker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalize_KeywordCorrections(t *testing.T) {
	n := New()

	assert.Equal(t, "TOTAL 12,34", n.Normalize("T0TAL 12,34"))
	assert.Equal(t, "SUMME EUR 8,97", n.Normalize("SUMNE EUR 8,97"))
	assert.Equal(t, "MONTANT DU 23,10", n.Normalize("M0NTANT DU 23,10"))
}

func TestNormalize_StripsIsolatedNoise(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lone tilde", input: "Milch ~ 1,09", want: "Milch 1,09"},
		{name: "lone symbol at line start", input: "* Brot 1,99", want: "Brot 1,99"},
		{name: "consecutive artifacts", input: "Brot ~ # 1,99", want: "Brot 1,99"},
		{name: "currency kept", input: "Brot 1,99 €", want: "Brot 1,99 €"},
		{name: "attached symbol kept", input: "Brot* 1,99", want: "Brot* 1,99"},
		{name: "quantity x kept", input: "0,99 x 3", want: "0,99 x 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalize_PreservesLineStructure(t *testing.T) {
	n := New()
	input := "ALDl SÜD\n605084\nBio Apfelmus 360g\nO,69 A"

	got := n.Normalize(input)

	assert.Equal(t, "ALDI SÜD\n605084\nBio Apfelmus 360g\n0,69 A", got)
}

func TestNormalize_EmptyAndNoOpInputs(t *testing.T) {
	n := New()

	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "REWE Markt GmbH", n.Normalize("REWE Markt GmbH"))
}

func TestNormalize_Idempotent(t *testing.T) {
	n := New()

	samples := []string{
		"",
		"ALDl SÜD\n605084\nBio Apfelmus 360g\nO,69 A\nBETRRG 12,34 EUR",
		"L1DL\nMilch l,09 A\nButter 2,49 A\nZU ZAHLEN 3,58",
		"~ # CARREF0UR ~\nEau 2O.35\nT0TAL 23,10",
		"completely ordinary text with no receipt content at all",
		"* ~ @ #\n\n\n",
		"SUMNE 5UMME SUMMF",
	}

	for _, sample := range samples {
		once := n.Normalize(sample)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", sample)
	}
}

func TestNormalize_CustomCorrections(t *testing.T) {
	n := New(
		WithStoreCorrections(map[string]string{"K4UFLAND": "KAUFLAND"}),
		WithKeywordCorrections(map[string]string{"5UMMA": "SUMMA"}),
	)

	assert.Equal(t, "KAUFLAND", n.Normalize("K4UFLAND"))
	assert.Equal(t, "SUMMA", n.Normalize("5UMMA"))
	// Defaults still apply.
	assert.Equal(t, "ALDI", n.Normalize("ALDl"))
}
