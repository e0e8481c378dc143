package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/store"
)

// nextLineScanDepth is how many lines after a candidate name line are
// scanned for the matching price line.
const nextLineScanDepth = 3

// articleNumberLineRe matches a line that is nothing but an article number or
// barcode.
var articleNumberLineRe = regexp.MustCompile(`^\s*\d{4,13}\s*$`)

type nextLineStrategy struct{}

// extract pairs candidate name lines with the first price-shaped line among
// the following lines. The matched span, name line through price line, is
// consumed atomically; parsing resumes after it.
func (nextLineStrategy) extract(lines []string, profile *store.CompiledProfile) []model.LineItem {
	var items []model.LineItem

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" || containsAnyKeyword(line, profile.IgnoreKeywords) {
			continue
		}
		if articleNumberLineRe.MatchString(line) {
			continue
		}
		if priceOnlyLineRe.MatchString(line) {
			// A price with no preceding name line; nothing to pair.
			continue
		}
		if !isNameCandidate(line) {
			continue
		}

		for j := i + 1; j < len(lines) && j <= i+nextLineScanDepth; j++ {
			groups := namedGroups(priceOnlyLineRe, lines[j])
			if groups == nil {
				continue
			}

			price, ok := parsePrice(groups["price"])
			if !ok {
				break
			}

			name, ok := acceptItem(line, price)
			if ok {
				raw := strings.TrimSpace(line) + " " + strings.TrimSpace(lines[j])
				items = append(items, model.NewLineItem(raw, name, price))
			}

			i = j // Consume the whole span
			break
		}
	}

	return items
}

// isNameCandidate requires enough letters for a plausible product name.
func isNameCandidate(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 3
}
