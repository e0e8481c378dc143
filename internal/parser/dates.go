package parser

import (
	"regexp"
	"strings"
	"time"
)

// dateScanLines is how many leading lines are searched for a purchase date.
const dateScanLines = 20

// dateCandidateRe finds date-shaped substrings; the layouts below decide
// whether a candidate actually parses.
var dateCandidateRe = regexp.MustCompile(`\b(\d{1,2}[./]\d{1,2}[./]\d{2,4}|\d{4}-\d{2}-\d{2})(\s\d{1,2}:\d{2})?`)

// dateLayouts are tried in order; the first successful parse wins. Longer
// layouts come first so "02.01.2006" is not truncated by "02.01.06".
var dateLayouts = []string{
	"02.01.2006 15:04",
	"02.01.2006",
	"2.1.2006",
	"02.01.06",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
}

// extractDate scans the first lines of the receipt for a parsable date. A
// receipt without a readable date is still usable, so the deliberate
// soft-failure default is the current time.
func extractDate(lines []string, now func() time.Time) time.Time {
	limit := dateScanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		for _, candidate := range dateCandidateRe.FindAllString(line, -1) {
			candidate = strings.TrimSpace(candidate)
			for _, layout := range dateLayouts {
				if parsed, err := time.Parse(layout, candidate); err == nil {
					return parsed
				}
			}
		}
	}

	return now()
}
