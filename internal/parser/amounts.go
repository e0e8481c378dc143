package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// priceTokenRe matches a price-shaped token anywhere in a line: one to four
// digits, a decimal separator, two digits.
var priceTokenRe = regexp.MustCompile(`(?P<price>-?\d{1,4}[.,]\d{2})\b`)

// priceOnlyLineRe matches a line that carries nothing but a price, an
// optional tax class letter, and an optional currency marker. Used by the
// next-line strategy.
var priceOnlyLineRe = regexp.MustCompile(`^\s*(?P<price>-?\d{1,4}[.,]\d{2})\s*(?P<tax>[AB12])?\s*(€|EUR)?\s*$`)

// totalScanBefore and totalScanAfter bound the window around the section end
// that is searched for the total keyword.
const (
	totalScanBefore = 3
	totalScanAfter  = 15
	totalPriceLines = 3 // Lines after the keyword line checked for the amount
)

// genericTotalKeywords is the keyword list the fallback parser searches when
// no profile supplied one.
var genericTotalKeywords = []string{"TOTAL", "SUMME", "BETRAG", "ZU ZAHLEN", "GESAMT", "MONTANT", "A PAYER"}

// parsePrice converts a price token to a float. German receipts use a comma
// separator.
func parsePrice(token string) (float64, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(token), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// firstPrice returns the first price-shaped token on a line.
func firstPrice(line string) (float64, bool) {
	match := priceTokenRe.FindString(line)
	if match == "" {
		return 0, false
	}
	return parsePrice(match)
}

// extractTotal searches a window around the section end for a total keyword
// and returns the first price on that line or on the next few lines. A zero
// return means extraction failed; the caller falls back to the item sum.
func extractTotal(lines []string, sectionEnd int, keywords []string) float64 {
	lo := sectionEnd - totalScanBefore
	if lo < 0 {
		lo = 0
	}
	hi := sectionEnd + totalScanAfter
	if hi > len(lines) {
		hi = len(lines)
	}

	for i := lo; i < hi; i++ {
		if !containsAnyKeyword(lines[i], keywords) {
			continue
		}
		if price, ok := firstPrice(lines[i]); ok {
			return price
		}
		for j := i + 1; j < len(lines) && j <= i+totalPriceLines; j++ {
			if price, ok := firstPrice(lines[j]); ok {
				return price
			}
		}
	}

	return 0
}
