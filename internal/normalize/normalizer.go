// Package normalize repairs known OCR confusions in raw receipt text before
// detection and parsing. Every transform is a pure string operation that
// preserves the line structure of its input; the whole normalizer is
// idempotent.
package normalize

import (
	"regexp"
	"sort"
	"strings"
)

// priceShapedRe matches a price-shaped token that contains one ambiguous
// letter: digits, letter, digits, decimal separator, two digits. Digit/letter
// confusion repair is scoped to exactly these substrings so real words are
// never corrupted.
var priceShapedRe = regexp.MustCompile(`\b\d*[OoIlSB]\d*[,.]\d{2}\b`)

// The noise regexes match a single non-word, non-currency symbol that is not
// adjacent to any other non-space character. Such symbols are OCR artifacts.
// Split by position so stripping never leaves stray or doubled spaces behind.
var (
	noiseAtStartRe = regexp.MustCompile(`(?m)^[^\p{L}\p{N}_ \t\n€$£][ \t]`)
	noiseAtEndRe   = regexp.MustCompile(`(?m)[ \t][^\p{L}\p{N}_ \t\n€$£]$`)
	noiseMiddleRe  = regexp.MustCompile(`[ \t][^\p{L}\p{N}_ \t\n€$£][ \t]`)
	noiseAloneRe   = regexp.MustCompile(`(?m)^[^\p{L}\p{N}_ \t\n€$£]$`)
)

type replacement struct {
	re *regexp.Regexp
	to string
}

// Normalizer applies ordered OCR corrections to receipt text.
type Normalizer struct {
	storeCorrections   []replacement
	keywordCorrections []replacement
}

// Option customizes a Normalizer at construction.
type Option func(*options)

type options struct {
	extraStores   map[string]string
	extraKeywords map[string]string
}

// WithStoreCorrections adds or overrides whole-token store name corrections.
func WithStoreCorrections(corrections map[string]string) Option {
	return func(o *options) {
		for k, v := range corrections {
			o.extraStores[k] = v
		}
	}
}

// WithKeywordCorrections adds or overrides whole-word keyword corrections.
func WithKeywordCorrections(corrections map[string]string) Option {
	return func(o *options) {
		for k, v := range corrections {
			o.extraKeywords[k] = v
		}
	}
}

// New creates a Normalizer from the default correction tables plus any
// caller-supplied additions.
func New(opts ...Option) *Normalizer {
	o := &options{
		extraStores:   make(map[string]string),
		extraKeywords: make(map[string]string),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Normalizer{
		storeCorrections:   compileTable(merge(defaultStoreCorrections, o.extraStores)),
		keywordCorrections: compileTable(merge(defaultKeywordCorrections, o.extraKeywords)),
	}
}

// Normalize applies all corrections in order. It never fails; an input with
// nothing to correct passes through unchanged.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return text
	}

	text = applyTable(text, n.storeCorrections)
	text = repairPriceShapedTokens(text)
	text = applyTable(text, n.keywordCorrections)
	text = stripIsolatedNoise(text)

	return text
}

func merge(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// compileTable turns a correction map into ordered whole-token replacements.
// Keys are sorted so the applied order is stable regardless of map iteration.
func compileTable(table map[string]string) []replacement {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	compiled := make([]replacement, 0, len(keys))
	for _, k := range keys {
		compiled = append(compiled, replacement{
			re: regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			to: table[k],
		})
	}
	return compiled
}

func applyTable(text string, table []replacement) string {
	for _, r := range table {
		text = r.re.ReplaceAllString(text, r.to)
	}
	return text
}

// repairPriceShapedTokens rewrites digit/letter confusions inside
// price-shaped substrings only.
func repairPriceShapedTokens(text string) string {
	return priceShapedRe.ReplaceAllStringFunc(text, func(token string) string {
		var b strings.Builder
		b.Grow(len(token))
		for _, r := range token {
			if digit, ok := digitConfusions[r]; ok {
				b.WriteRune(digit)
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	})
}

// stripIsolatedNoise removes lone symbol artifacts. It runs to a fixpoint so
// consecutive artifacts separated by single spaces are fully removed and the
// normalizer stays idempotent.
func stripIsolatedNoise(text string) string {
	for {
		stripped := noiseAtStartRe.ReplaceAllString(text, "")
		stripped = noiseAtEndRe.ReplaceAllString(stripped, "")
		stripped = noiseMiddleRe.ReplaceAllString(stripped, " ")
		stripped = noiseAloneRe.ReplaceAllString(stripped, "")
		if stripped == text {
			return stripped
		}
		text = stripped
	}
}
