package parser

import (
	"regexp"
	"strings"

	"github.com/Veraticus/kassenbon/internal/store"
)

// findSection locates the product section: the start is the first line that
// is neither empty nor a header/store-identity line and matches one of the
// profile's start patterns; the end is the first later line containing an end
// keyword. Without an end keyword the section runs to the end of the text.
func findSection(lines []string, profile *store.CompiledProfile) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if containsAnyKeyword(trimmed, profile.HeaderKeywords) {
			continue
		}
		if matchesAny(strings.ToUpper(trimmed), profile.StartRegexps()) {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, 0, false
	}

	end = len(lines)
	for j := start + 1; j < len(lines); j++ {
		if containsAnyKeyword(lines[j], profile.EndKeywords) {
			end = j
			break
		}
	}

	return start, end, true
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
