package normalize

// Default correction tables. These are data, not logic: callers can extend or
// override them through Options (and the CLI loads additions from the config
// file) without touching the normalizer itself.

// defaultStoreCorrections maps whole-token OCR misreads of chain names to
// their canonical spelling.
var defaultStoreCorrections = map[string]string{
	"ALDl":        "ALDI",
	"ALD1":        "ALDI",
	"4LDI":        "ALDI",
	"AIDI":        "ALDI",
	"L1DL":        "LIDL",
	"LlDL":        "LIDL",
	"LIDI":        "LIDL",
	"RFWE":        "REWE",
	"R EWE":       "REWE",
	"REVVE":       "REWE",
	"EDEKR":       "EDEKA",
	"FDEKA":       "EDEKA",
	"PENNV":       "PENNY",
	"PFNNY":       "PENNY",
	"NETT0":       "NETTO",
	"CARREF0UR":   "CARREFOUR",
	"CARREFQUR":   "CARREFOUR",
	"LECIERC":     "LECLERC",
	"LECLFRC":     "LECLERC",
	"1NTERMARCHE": "INTERMARCHE",
	"INTERMARCHF": "INTERMARCHE",
	"AUCHRN":      "AUCHAN",
	"AUCH4N":      "AUCHAN",
	"M0NOPRIX":    "MONOPRIX",
	"MONQPRIX":    "MONOPRIX",
}

// defaultKeywordCorrections maps whole-word misreads of common receipt
// keywords (totals, tax lines) to their canonical spelling.
var defaultKeywordCorrections = map[string]string{
	"T0TAL":    "TOTAL",
	"TOTRL":    "TOTAL",
	"TQTAL":    "TOTAL",
	"5UMME":    "SUMME",
	"SUMNE":    "SUMME",
	"SUMMF":    "SUMME",
	"BETRRG":   "BETRAG",
	"BETR4G":   "BETRAG",
	"GESAMI":   "GESAMT",
	"GE5AMT":   "GESAMT",
	"M0NTANT":  "MONTANT",
	"MONTRNT":  "MONTANT",
	"ZWI5CHEN": "ZWISCHEN",
	"PFRND":    "PFAND",
	"MW5T":     "MWST",
}

// digitConfusions maps letters commonly misread for digits inside
// price-shaped substrings.
var digitConfusions = map[rune]rune{
	'O': '0',
	'o': '0',
	'l': '1',
	'I': '1',
	'S': '5',
	'B': '8',
}
