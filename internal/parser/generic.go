package parser

import (
	"regexp"
	"strings"

	"github.com/Veraticus/kassenbon/internal/model"
)

// quantityLineRe matches quantity expressions like "0,99 x 3" or
// "1,49 * 2 = 2,98": unit price, multiplier, optional line total. The item
// name sits on the immediately preceding descriptive line.
var quantityLineRe = regexp.MustCompile(`^\s*(?P<unit>\d{1,4}[.,]\d{2})\s*[xX×*]\s*(?P<count>\d{1,3})(\s*=?\s*(?P<total>\d{1,4}[.,]\d{2}))?\s*€?$`)

// genericLineRe matches plain "description price" lines.
var genericLineRe = regexp.MustCompile(`^\s*(?P<name>\p{L}.{1,}?)\s+(?P<price>-?\d{1,4}[.,]\d{2})\s*(?P<tax>[AB12])?\s*€?$`)

// genericIgnoreKeywords skips subtotal, tax, payment, and change lines in
// the fallback, which has no section boundaries to exclude them. Matched as
// whole words only: "BAR" must not swallow "Barilla" or "Rhabarber".
var genericIgnoreKeywords = []string{
	"SUMME", "ZWISCHENSUMME", "GESAMT", "BETRAG", "ZU ZAHLEN", "MWST", "UST",
	"RÜCKGELD", "BAR", "KARTE", "EC-KARTE", "TOTAL", "SOUS-TOTAL", "MONTANT",
	"TVA", "A PAYER", "RENDU", "ESPECES", "PFAND", "LEERGUT", "CONSIGNE",
}

// extractGeneric scans every line for quantity expressions paired with their
// preceding descriptive line, and for plain name+price lines.
func extractGeneric(lines []string) []model.LineItem {
	var items []model.LineItem

	for i, line := range lines {
		if strings.TrimSpace(line) == "" || containsWholeWord(line, genericIgnoreKeywords) {
			continue
		}

		if groups := namedGroups(quantityLineRe, line); groups != nil {
			item, ok := quantityItem(lines, i, groups)
			if ok {
				items = append(items, item)
			}
			continue
		}

		groups := namedGroups(genericLineRe, line)
		if groups == nil {
			continue
		}

		price, ok := parsePrice(groups["price"])
		if !ok {
			continue
		}

		name, ok := acceptItem(groups["name"], price)
		if !ok {
			continue
		}

		items = append(items, model.NewLineItem(line, name, price))
	}

	return items
}

// quantityItem builds an item from a quantity line and its preceding
// descriptive line.
func quantityItem(lines []string, i int, groups map[string]string) (model.LineItem, bool) {
	if i == 0 {
		return model.LineItem{}, false
	}
	nameLine := strings.TrimSpace(lines[i-1])
	if nameLine == "" || !isNameCandidate(nameLine) || containsWholeWord(nameLine, genericIgnoreKeywords) {
		return model.LineItem{}, false
	}
	if _, hasPrice := firstPrice(nameLine); hasPrice {
		// The preceding line is itself a priced line, not a description.
		return model.LineItem{}, false
	}

	unit, ok := parsePrice(groups["unit"])
	if !ok {
		return model.LineItem{}, false
	}

	price := 0.0
	if groups["total"] != "" {
		if total, ok := parsePrice(groups["total"]); ok {
			price = total
		}
	}
	if price == 0 {
		count, ok := parseCount(groups["count"])
		if !ok {
			return model.LineItem{}, false
		}
		price = model.RoundCents(unit * float64(count))
	}

	name, ok := acceptItem(nameLine, price)
	if !ok {
		return model.LineItem{}, false
	}

	raw := nameLine + " " + strings.TrimSpace(lines[i])
	return model.NewLineItem(raw, name, price), true
}

func parseCount(token string) (int, bool) {
	count := 0
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
		count = count*10 + int(r-'0')
	}
	if count <= 0 {
		return 0, false
	}
	return count, true
}
