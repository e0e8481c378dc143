package store

// Built-in profiles for the supported German and French chains. Declaration
// order matters: detection ties are broken by it.
//
// Pattern notes: matching happens on normalized, uppercased lines. Price
// tokens are "digits, separator, two digits"; German receipts use a comma,
// French receipts use either.

// DefaultProfiles returns the built-in chain profiles.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			ID:          "aldi-sued",
			DisplayName: "ALDI Süd",
			Tokens:      []string{"ALDI", "SÜD", "SUED", "ALDI SÜD"},
			Signatures: []Signature{
				{Name: "article-number-lines", Pattern: `^\d{6}$`, MinCount: 2},
				{Name: "tax-class-price-lines", Pattern: `^\d{1,4}[.,]\d{2} [AB]$`, MinCount: 2},
			},
			HeaderKeywords:      []string{"ALDI", "GMBH", "STR.", "STRASSE", "TEL", "UID"},
			StartPatterns:       []string{`^\d{6}$`},
			EndKeywords:         []string{"BETRAG", "ZU ZAHLEN", "SUMME"},
			IgnoreKeywords:      []string{"PFAND", "LEERGUT", "MWST", "ZWISCHENSUMME", "RABATT"},
			FooterKeywords:      []string{"BETRAG", "MWST", "USt"},
			TotalKeywords:       []string{"BETRAG", "ZU ZAHLEN"},
			PriceLocation:       PriceNextLine,
			ArticleNumbersFirst: true,
		},
		{
			ID:          "lidl",
			DisplayName: "LIDL",
			Tokens:      []string{"LIDL", "LIDL DANKT", "LIDL VERTRIEBS"},
			Signatures: []Signature{
				{Name: "name-price-tax-lines", Pattern: `^\p{L}.*\s\d{1,4}[.,]\d{2} [AB]$`, MinCount: 3},
			},
			HeaderKeywords: []string{"LIDL", "GMBH", "STR.", "STIFTUNG", "TEL"},
			StartPatterns:  []string{`^\p{L}.*\s\d{1,4}[.,]\d{2}\s?[AB]?$`},
			EndKeywords:    []string{"ZU ZAHLEN", "SUMME", "GESAMT"},
			IgnoreKeywords: []string{"PFAND", "LEERGUT", "MWST", "ZWISCHENSUMME", "RABATT", "COUPON"},
			FooterKeywords: []string{"ZU ZAHLEN", "MWST", "KUNDENBELEG"},
			TotalKeywords:  []string{"ZU ZAHLEN", "SUMME"},
			PriceLocation:  PriceSameLine,
		},
		{
			ID:          "rewe",
			DisplayName: "REWE",
			Tokens:      []string{"REWE", "REWE MARKT", "REWE.DE"},
			Signatures: []Signature{
				{Name: "name-price-tax-lines", Pattern: `^\p{L}.*\s\d{1,4}[.,]\d{2} [AB]\s?\*?$`, MinCount: 3},
			},
			HeaderKeywords: []string{"REWE", "MARKT GMBH", "STR.", "TEL", "UID"},
			StartPatterns:  []string{`^\p{L}.*\s\d{1,4}[.,]\d{2} [AB]\s?\*?$`},
			EndKeywords:    []string{"SUMME", "GESAMTBETRAG", "ZU ZAHLEN"},
			IgnoreKeywords: []string{"PFAND", "LEERGUT", "MWST", "ZWISCHENSUMME", "RABATT", "PAYBACK"},
			FooterKeywords: []string{"SUMME", "GEG.", "MWST"},
			TotalKeywords:  []string{"SUMME", "GESAMTBETRAG"},
			PriceLocation:  PriceSameLine,
		},
		{
			ID:          "edeka",
			DisplayName: "EDEKA",
			Tokens:      []string{"EDEKA", "E CENTER", "EDEKA CENTER"},
			Signatures: []Signature{
				{Name: "name-price-tax-lines", Pattern: `^\p{L}.*\s\d{1,4}[.,]\d{2} [AB]$`, MinCount: 3},
			},
			HeaderKeywords: []string{"EDEKA", "GMBH", "STR.", "TEL", "MARKT"},
			StartPatterns:  []string{`^\p{L}.*\s\d{1,4}[.,]\d{2}\s?[AB]?$`},
			EndKeywords:    []string{"SUMME", "ZU ZAHLEN", "GESAMT"},
			IgnoreKeywords: []string{"PFAND", "LEERGUT", "MWST", "ZWISCHENSUMME", "RABATT", "DEUTSCHLANDCARD"},
			FooterKeywords: []string{"SUMME", "MWST", "VIELEN DANK"},
			TotalKeywords:  []string{"SUMME"},
			PriceLocation:  PriceSameLine,
		},
		{
			ID:          "penny",
			DisplayName: "PENNY",
			Tokens:      []string{"PENNY", "PENNY MARKT", "PENNY.DE"},
			Signatures: []Signature{
				{Name: "name-price-tax-lines", Pattern: `^\p{L}.*\s\d{1,4}[.,]\d{2} [AB]$`, MinCount: 3},
			},
			HeaderKeywords: []string{"PENNY", "GMBH", "STR.", "TEL"},
			StartPatterns:  []string{`^\p{L}.*\s\d{1,4}[.,]\d{2}\s?[AB]?$`},
			EndKeywords:    []string{"ZU ZAHLEN", "SUMME", "GESAMT"},
			IgnoreKeywords: []string{"PFAND", "LEERGUT", "MWST", "ZWISCHENSUMME", "RABATT"},
			FooterKeywords: []string{"ZU ZAHLEN", "MWST"},
			TotalKeywords:  []string{"ZU ZAHLEN", "SUMME"},
			PriceLocation:  PriceSameLine,
		},
		{
			ID:          "netto",
			DisplayName: "Netto Marken-Discount",
			Tokens:      []string{"NETTO", "MARKEN-DISCOUNT", "NETTO-ONLINE"},
			Signatures: []Signature{
				{Name: "barcode-lines", Pattern: `^\d{8}$`, MinCount: 2},
				{Name: "tax-class-price-lines", Pattern: `^\d{1,4}[.,]\d{2} [AB]$`, MinCount: 2},
			},
			HeaderKeywords:      []string{"NETTO", "STAVENHAGEN", "STR.", "TEL"},
			StartPatterns:       []string{`^\d{8}$`},
			EndKeywords:         []string{"SUMME", "ZU ZAHLEN", "GESAMT"},
			IgnoreKeywords:      []string{"PFAND", "LEERGUT", "MWST", "ZWISCHENSUMME", "RABATT"},
			FooterKeywords:      []string{"SUMME", "MWST"},
			TotalKeywords:       []string{"SUMME", "ZU ZAHLEN"},
			PriceLocation:       PriceNextLine,
			ArticleNumbersFirst: true,
		},
		{
			ID:          "carrefour",
			DisplayName: "Carrefour",
			Tokens:      []string{"CARREFOUR", "CARREFOUR MARKET", "CARREFOUR CITY"},
			Signatures: []Signature{
				{Name: "column-price-lines", Pattern: `\S\s{2,}\d{1,4}[.,]\d{2}\s*€?$`, MinCount: 3},
			},
			HeaderKeywords: []string{"CARREFOUR", "TEL", "SIRET", "RCS"},
			StartPatterns:  []string{`^\p{L}.*\s{2,}\d{1,4}[.,]\d{2}\s*€?$`},
			EndKeywords:    []string{"TOTAL", "MONTANT", "A PAYER"},
			IgnoreKeywords: []string{"TVA", "SOUS-TOTAL", "REMISE", "CONSIGNE", "AVANTAGE"},
			FooterKeywords: []string{"TOTAL", "TVA", "MERCI"},
			TotalKeywords:  []string{"TOTAL", "MONTANT"},
			PriceLocation:  PriceColumn,
		},
		{
			ID:          "leclerc",
			DisplayName: "E.Leclerc",
			Tokens:      []string{"LECLERC", "E.LECLERC", "E LECLERC"},
			Signatures: []Signature{
				{Name: "barcode-lines", Pattern: `^\d{13}$`, MinCount: 2},
				{Name: "column-price-lines", Pattern: `\S\s{2,}\d{1,4}[.,]\d{2}\s*€?$`, MinCount: 2},
			},
			HeaderKeywords:      []string{"LECLERC", "TEL", "SIRET", "SARL"},
			StartPatterns:       []string{`^\d{13}$`, `^\p{L}.*\s{2,}\d{1,4}[.,]\d{2}\s*€?$`},
			EndKeywords:         []string{"TOTAL", "MONTANT", "A PAYER"},
			IgnoreKeywords:      []string{"TVA", "SOUS-TOTAL", "REMISE", "CONSIGNE", "TICKET"},
			FooterKeywords:      []string{"TOTAL", "TVA", "MERCI"},
			TotalKeywords:       []string{"TOTAL", "MONTANT"},
			PriceLocation:       PriceColumn,
			ArticleNumbersFirst: true,
		},
		{
			ID:          "intermarche",
			DisplayName: "Intermarché",
			Tokens:      []string{"INTERMARCHE", "INTERMARCHÉ", "ITM"},
			Signatures: []Signature{
				{Name: "name-price-euro-lines", Pattern: `^\p{L}.*\s\d{1,4}[.,]\d{2} ?€$`, MinCount: 3},
			},
			HeaderKeywords: []string{"INTERMARCHE", "INTERMARCHÉ", "TEL", "SIRET"},
			StartPatterns:  []string{`^\p{L}.*\s\d{1,4}[.,]\d{2}\s*€?$`},
			EndKeywords:    []string{"TOTAL", "MONTANT", "A PAYER"},
			IgnoreKeywords: []string{"TVA", "SOUS-TOTAL", "REMISE", "CONSIGNE", "FIDELITE"},
			FooterKeywords: []string{"TOTAL", "TVA", "MERCI"},
			TotalKeywords:  []string{"TOTAL", "MONTANT"},
			PriceLocation:  PriceSameLine,
		},
		{
			ID:          "auchan",
			DisplayName: "Auchan",
			Tokens:      []string{"AUCHAN", "AUCHAN SUPERMARCHE", "AUCHAN.FR"},
			Signatures: []Signature{
				{Name: "column-price-lines", Pattern: `\S\s{2,}\d{1,4}[.,]\d{2}\s*€?$`, MinCount: 3},
			},
			HeaderKeywords: []string{"AUCHAN", "TEL", "SIRET", "RCS"},
			StartPatterns:  []string{`^\p{L}.*\s{2,}\d{1,4}[.,]\d{2}\s*€?$`},
			EndKeywords:    []string{"TOTAL", "MONTANT", "A PAYER"},
			IgnoreKeywords: []string{"TVA", "SOUS-TOTAL", "REMISE", "CONSIGNE", "WAAOH"},
			FooterKeywords: []string{"TOTAL", "TVA", "MERCI"},
			TotalKeywords:  []string{"TOTAL", "MONTANT"},
			PriceLocation:  PriceColumn,
		},
		{
			ID:          "monoprix",
			DisplayName: "Monoprix",
			Tokens:      []string{"MONOPRIX", "MONOP", "MONOPRIX.FR"},
			Signatures: []Signature{
				{Name: "name-price-euro-lines", Pattern: `^\p{L}.*\s\d{1,4}[.,]\d{2} ?€$`, MinCount: 3},
			},
			HeaderKeywords: []string{"MONOPRIX", "TEL", "SIRET"},
			StartPatterns:  []string{`^\p{L}.*\s\d{1,4}[.,]\d{2}\s*€?$`},
			EndKeywords:    []string{"TOTAL", "MONTANT", "A PAYER"},
			IgnoreKeywords: []string{"TVA", "SOUS-TOTAL", "REMISE", "CONSIGNE"},
			FooterKeywords: []string{"TOTAL", "TVA", "MERCI"},
			TotalKeywords:  []string{"TOTAL", "MONTANT"},
			PriceLocation:  PriceSameLine,
		},
	}
}
