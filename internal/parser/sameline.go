package parser

import (
	"regexp"

	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/store"
)

// sameLineRe extracts name and price from a single line. The article number
// group is optional so the one expression covers profiles with and without
// leading article numbers.
var sameLineRe = regexp.MustCompile(`^\s*(?:(?P<article>\d{4,13})\s+)?(?P<name>\p{L}.*?)\s+(?P<price>-?\d{1,4}[.,]\d{2})\s*(?P<tax>[AB12])?\s*\*?\s*(€|EUR)?$`)

type sameLineStrategy struct{}

func (sameLineStrategy) extract(lines []string, profile *store.CompiledProfile) []model.LineItem {
	var items []model.LineItem

	for _, line := range lines {
		if line == "" || containsAnyKeyword(line, profile.IgnoreKeywords) {
			continue
		}

		groups := namedGroups(sameLineRe, line)
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

// namedGroups runs re against line and returns a map of named capture groups,
// or nil when the line does not match.
func namedGroups(re *regexp.Regexp, line string) map[string]string {
	match := re.FindStringSubmatch(line)
	if match == nil {
		return nil
	}

	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			groups[name] = match[i]
		}
	}
	return groups
}
