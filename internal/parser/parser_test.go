package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/kassenbon/internal/common"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *store.Registry {
	t.Helper()
	registry, err := store.NewRegistry(store.DefaultProfiles())
	require.NoError(t, err)
	return registry
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestParseWithProfile_AldiNextLine(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"ALDI SÜD",
		"Hauptstr. 12",
		"605084",
		"Bio Apfelmus 360g",
		"0,69 A",
		"738291",
		"Vollmilch 3,5%",
		"1,09 A",
		"BETRAG 12,34 EUR",
	}, "\n")

	receipt, err := p.ParseWithProfile(text, registry.Get("aldi-sued"))

	require.NoError(t, err)
	assert.Equal(t, "ALDI Süd", receipt.StoreName)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Bio Apfelmus 360g", receipt.Items[0].Name)
	assert.InDelta(t, 0.69, receipt.Items[0].Price, 0.001)
	assert.Equal(t, "Vollmilch 3,5%", receipt.Items[1].Name)
	assert.InDelta(t, 12.34, receipt.Total, 0.001)
}

func TestParseWithProfile_LidlSameLine(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"LIDL",
		"Filiale 4711",
		"Milch 1,09 A",
		"Butter 2,49 A",
		"PFAND 0,25 A",
		"Brot 1,99 A",
		"ZU ZAHLEN 5,82",
		"12.03.2024 14:23",
	}, "\n")

	receipt, err := p.ParseWithProfile(text, registry.Get("lidl"))

	require.NoError(t, err)
	require.Len(t, receipt.Items, 3, "deposit line must be skipped")
	assert.Equal(t, "Milch", receipt.Items[0].Name)
	assert.Equal(t, "Butter", receipt.Items[1].Name)
	assert.Equal(t, "Brot", receipt.Items[2].Name)
	assert.InDelta(t, 5.82, receipt.Total, 0.001)
	assert.Equal(t, 2024, receipt.Date.Year())
	assert.Equal(t, time.March, receipt.Date.Month())
	assert.Equal(t, 12, receipt.Date.Day())
}

func TestParseWithProfile_CarrefourColumns(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"CARREFOUR MARKET",
		"12 Avenue des Champs",
		"Eau de source      1,20 €",
		"Lait demi-écrémé   0,98",
		"TVA 5,5%           0,12",
		"Camembert          2,35 €",
		"TOTAL              4,53",
	}, "\n")

	receipt, err := p.ParseWithProfile(text, registry.Get("carrefour"))

	require.NoError(t, err)
	require.Len(t, receipt.Items, 3, "tax line must be skipped")
	assert.Equal(t, "Eau de source", receipt.Items[0].Name)
	assert.Equal(t, "Lait demi-écrémé", receipt.Items[1].Name)
	assert.Equal(t, "Camembert", receipt.Items[2].Name)
	assert.InDelta(t, 4.53, receipt.Total, 0.001)
}

func TestParseWithProfile_NoSectionFails(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	_, err := p.ParseWithProfile("ALDI SÜD\nnothing that looks like products\n", registry.Get("aldi-sued"))

	assert.ErrorIs(t, err, common.ErrNoProductSection)
}

func TestParseWithProfile_EmptySectionFails(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	// A section boundary exists but every candidate is rejected.
	text := strings.Join([]string{
		"ALDI SÜD",
		"605084",
		"PFAND",
		"0,00 A",
		"BETRAG 0,00 EUR",
	}, "\n")

	_, err := p.ParseWithProfile(text, registry.Get("aldi-sued"))

	assert.ErrorIs(t, err, common.ErrNoLineItems)
}

func TestParseWithProfile_TotalFallsBackToItemSum(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"LIDL",
		"Milch 1,09 A",
		"Butter 2,49 A",
	}, "\n")

	receipt, err := p.ParseWithProfile(text, registry.Get("lidl"))

	require.NoError(t, err)
	assert.InDelta(t, 3.58, receipt.Total, 0.001, "missing total keyword falls back to the item sum")
}

func TestParseWithProfile_RejectsNonPositivePrices(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"LIDL",
		"Milch 1,09 A",
		"Gutschein -1,00 A",
		"ZU ZAHLEN 0,09",
	}, "\n")

	receipt, err := p.ParseWithProfile(text, registry.Get("lidl"))

	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Milch", receipt.Items[0].Name)
}

func TestParseGeneric_PlainLines(t *testing.T) {
	p := New(WithClock(fixedClock()))

	var lines []string
	var wantSum float64
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("Produkt %d %d,%02d", i, i, i))
		wantSum += float64(i) + float64(i)/100
	}

	receipt, err := p.ParseGeneric(strings.Join(lines, "\n"))

	require.NoError(t, err)
	assert.Len(t, receipt.Items, 10)
	assert.Empty(t, receipt.StoreName)
	assert.InDelta(t, wantSum, receipt.Total, 0.001, "total equals the sum of all line prices")
}

func TestParseGeneric_QuantityExpression(t *testing.T) {
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"Cola Dose",
		"0,99 x 3 = 2,97",
		"Chips Paprika 1,49",
	}, "\n")

	receipt, err := p.ParseGeneric(text)

	require.NoError(t, err)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Cola Dose", receipt.Items[0].Name)
	assert.InDelta(t, 2.97, receipt.Items[0].Price, 0.001)
	assert.Equal(t, "Chips Paprika", receipt.Items[1].Name)
}

func TestParseGeneric_QuantityWithoutLineTotal(t *testing.T) {
	p := New(WithClock(fixedClock()))

	text := "Joghurt Natur\n0,59 x 4\n"

	receipt, err := p.ParseGeneric(text)

	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)
	assert.InDelta(t, 2.36, receipt.Items[0].Price, 0.001)
}

func TestParseGeneric_IgnoresSubtotalAndPaymentLines(t *testing.T) {
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"Milch 1,09",
		"ZWISCHENSUMME 1,09",
		"MWST 7% 0,07",
		"RÜCKGELD 3,91",
	}, "\n")

	receipt, err := p.ParseGeneric(text)

	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Milch", receipt.Items[0].Name)
}

func TestParseGeneric_KeepsNamesContainingKeywordSubstrings(t *testing.T) {
	// "Barilla" contains BAR and "Rhabarber" contains BAR too; ignore
	// keywords must match whole words only, never inside product names.
	p := New(WithClock(fixedClock()))

	text := strings.Join([]string{
		"Barilla Spaghetti 1,29",
		"Rhabarber 2,49",
		"Milch 1,09",
	}, "\n")

	receipt, err := p.ParseGeneric(text)

	require.NoError(t, err)
	require.Len(t, receipt.Items, 3)
	assert.Equal(t, "Barilla Spaghetti", receipt.Items[0].Name)
	assert.Equal(t, "Rhabarber", receipt.Items[1].Name)
	assert.Equal(t, "Milch", receipt.Items[2].Name)
	assert.InDelta(t, 4.87, receipt.Total, 0.001)
}

func TestParseGeneric_EmptyFails(t *testing.T) {
	p := New(WithClock(fixedClock()))

	_, err := p.ParseGeneric("")

	assert.ErrorIs(t, err, common.ErrNoLineItems)
}

func TestParse_UniformNonFoodFilter(t *testing.T) {
	// The food-only filter applies at the acceptance point for every
	// strategy, the generic fallback included.
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	storeText := strings.Join([]string{
		"LIDL",
		"Milch 1,09 A",
		"Shampoo 3,99 A",
		"ZU ZAHLEN 5,08",
	}, "\n")
	genericText := "Milch 1,09\nShampoo 3,99\n"

	storeReceipt, err := p.ParseWithProfile(storeText, registry.Get("lidl"))
	require.NoError(t, err)
	genericReceipt, err := p.ParseGeneric(genericText)
	require.NoError(t, err)

	for _, receipt := range []*model.Receipt{storeReceipt, genericReceipt} {
		require.Len(t, receipt.Items, 1)
		assert.Equal(t, "Milch", receipt.Items[0].Name)
	}
}

func TestParse_RoundTripGeneratedReceipt(t *testing.T) {
	registry := testRegistry(t)
	p := New(WithClock(fixedClock()))

	items := []struct {
		name  string
		price float64
	}{
		{"Vollkornbrot 750g", 2.29},
		{"Gouda jung", 3.49},
		{"Bananen", 1.79},
		{"Apfelsaft 1L", 0.99},
	}
	total := 8.56

	var b strings.Builder
	b.WriteString("LIDL\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s A\n", item.name, germanPrice(item.price))
	}
	fmt.Fprintf(&b, "ZU ZAHLEN %s\n", germanPrice(total))

	receipt, err := p.ParseWithProfile(b.String(), registry.Get("lidl"))

	require.NoError(t, err)
	require.Len(t, receipt.Items, len(items))
	for i, item := range items {
		assert.Equal(t, item.name, receipt.Items[i].Name)
		assert.InDelta(t, item.price, receipt.Items[i].Price, 0.001)
	}
	assert.InDelta(t, total, receipt.Total, 0.001)
}

func germanPrice(v float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}

func TestExtractDate_FormatsAndDefault(t *testing.T) {
	now := fixedClock()

	tests := []struct {
		name  string
		line  string
		want  time.Time
		isNow bool
	}{
		{name: "german dotted", line: "Datum: 12.03.2024", want: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{name: "dotted with time", line: "12.03.2024 14:23", want: time.Date(2024, 3, 12, 14, 23, 0, 0, time.UTC)},
		{name: "french slashes", line: "Le 05/07/2023", want: time.Date(2023, 7, 5, 0, 0, 0, 0, time.UTC)},
		{name: "iso", line: "2024-03-12", want: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{name: "no date defaults to now", line: "no dates here", isNow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDate([]string{tt.line}, now)
			if tt.isNow {
				assert.Equal(t, now(), got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractDate_OnlyScansLeadingLines(t *testing.T) {
	now := fixedClock()

	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "filler"
	}
	lines[25] = "12.03.2024"

	assert.Equal(t, now(), extractDate(lines, now), "dates past the scan window are ignored")
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{token: "1,09", want: 1.09, ok: true},
		{token: "12.34", want: 12.34, ok: true},
		{token: "-1,00", want: -1.0, ok: true},
		{token: "abc", ok: false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 0.001, tt.token)
		}
	}
}

func TestExtractTotal_PriceOnFollowingLine(t *testing.T) {
	lines := []string{
		"Milch 1,09 A",
		"SUMME",
		"3,58 EUR",
	}

	got := extractTotal(lines, 1, []string{"SUMME"})

	assert.InDelta(t, 3.58, got, 0.001)
}
