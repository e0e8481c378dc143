package parser

import (
	"regexp"

	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/store"
)

// columnRe is the same-line expression made column-aware: the run of two or
// more spaces between name and price is a column separator, not ignorable
// whitespace.
var columnRe = regexp.MustCompile(`^\s*(?:(?P<article>\d{4,13})\s+)?(?P<name>\p{L}.*?)\s{2,}(?P<price>-?\d{1,4}[.,]\d{2})\s*(?P<tax>[AB12])?\s*€?$`)

type columnStrategy struct{}

func (columnStrategy) extract(lines []string, profile *store.CompiledProfile) []model.LineItem {
	var items []model.LineItem

	for _, line := range lines {
		if line == "" || containsAnyKeyword(line, profile.IgnoreKeywords) {
			continue
		}

		groups := namedGroups(columnRe, line)
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
