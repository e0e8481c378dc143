// Package parser extracts structured receipts from normalized OCR text. One
// parsing strategy exists per price-location mode, plus a tolerant generic
// fallback used when no store profile is confident or a confident profile
// still fails.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/kassenbon/internal/common"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/store"
)

// strategy extracts line items from the lines of a product section.
type strategy interface {
	extract(lines []string, profile *store.CompiledProfile) []model.LineItem
}

// strategies is the strategy table keyed by price-location mode. A profile
// with a genuinely novel layout needs a new entry here and nothing else.
var strategies = map[store.PriceLocation]strategy{
	store.PriceSameLine: sameLineStrategy{},
	store.PriceNextLine: nextLineStrategy{},
	store.PriceColumn:   columnStrategy{},
}

// Parser turns receipt text into a model.Receipt.
type Parser struct {
	now func() time.Time
}

// Option customizes a Parser.
type Option func(*Parser)

// WithClock overrides the time source used when no purchase date can be
// extracted.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseWithProfile parses text according to one store profile's grammar. It
// returns a complete receipt or a typed failure; it never returns a partially
// populated receipt.
func (p *Parser) ParseWithProfile(text string, profile *store.CompiledProfile) (*model.Receipt, error) {
	lines := splitLines(text)

	start, end, ok := findSection(lines, profile)
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", common.ErrNoProductSection, profile.ID)
	}

	items := strategies[profile.PriceLocation].extract(lines[start:end], profile)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: profile %s", common.ErrNoLineItems, profile.ID)
	}

	total := extractTotal(lines, end, profile.TotalKeywords)
	date := extractDate(lines, p.now)

	return model.NewReceipt(profile.DisplayName, date, items, total), nil
}

// ParseGeneric parses text with the loose fallback heuristics: no section
// boundaries, every non-ignored line is a candidate.
func (p *Parser) ParseGeneric(text string) (*model.Receipt, error) {
	lines := splitLines(text)

	items := extractGeneric(lines)
	if len(items) == 0 {
		return nil, common.ErrNoLineItems
	}

	total := extractTotal(lines, len(lines), genericTotalKeywords)
	date := extractDate(lines, p.now)

	return model.NewReceipt("", date, items, total), nil
}

// acceptItem is the single acceptance funnel every strategy goes through: it
// enforces the positive-price rule and the uniform non-food filter.
func acceptItem(name string, price float64) (string, bool) {
	if price <= 0 {
		return "", false
	}

	cleaned := cleanName(name)
	if len([]rune(cleaned)) < 2 {
		return "", false
	}
	if isNonFoodName(cleaned) {
		return "", false
	}

	return cleaned, true
}

// cleanName collapses whitespace runs and strips trailing separators left
// over from column layouts.
func cleanName(name string) string {
	cleaned := strings.Join(strings.Fields(name), " ")
	return strings.Trim(cleaned, " .,:;*")
}

// isNonFoodName reports whether a cleaned name is a deposit, bag, tax,
// payment, or household keyword line rather than a food product.
func isNonFoodName(name string) bool {
	return containsWholeWord(name, nonFoodKeywords)
}

// containsWholeWord reports whether any keyword appears in line as a whole
// word. Keywords never match inside longer words, so product names like
// "Barilla" survive a "BAR" keyword.
func containsWholeWord(line string, keywords []string) bool {
	padded := " " + strings.ToUpper(line) + " "
	for _, keyword := range keywords {
		if strings.Contains(padded, " "+keyword+" ") {
			return true
		}
	}
	return false
}

// nonFoodKeywords rejects deposit/bag/tax/payment lines and the household
// and hygiene products that are out of scope for storage sectioning. The
// filter applies at the acceptance point regardless of which parser produced
// the candidate.
var nonFoodKeywords = []string{
	// Deposit, bags, receipts plumbing (German)
	"PFAND", "LEERGUT", "TRAGETASCHE", "TÜTE", "TUETE", "MWST", "UST",
	"ZWISCHENSUMME", "SUMME", "GESAMT", "BETRAG", "RABATT", "COUPON",
	"RÜCKGELD", "BAR", "KARTENZAHLUNG", "EC-KARTE",
	// Deposit, bags, receipt plumbing (French)
	"CONSIGNE", "SAC", "TVA", "SOUS-TOTAL", "TOTAL", "MONTANT", "REMISE",
	"RENDU", "ESPECES", "CB",
	// Household and hygiene (German)
	"SPÜLMITTEL", "WASCHMITTEL", "WEICHSPÜLER", "PUTZMITTEL", "SHAMPOO",
	"DUSCHGEL", "ZAHNPASTA", "TOILETTENPAPIER", "KÜCHENROLLE",
	// Household and hygiene (French)
	"LESSIVE", "VAISSELLE", "SAVON", "DENTIFRICE", "ÉPONGE",
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}

func containsAnyKeyword(line string, keywords []string) bool {
	upper := strings.ToUpper(line)
	for _, keyword := range keywords {
		if strings.Contains(upper, strings.ToUpper(keyword)) {
			return true
		}
	}
	return false
}
