package classify

import "github.com/Veraticus/kassenbon/internal/model"

// sectionKeywords binds a storage section to its bilingual keyword list. The
// tables are data: extending coverage means adding entries, never code.
type sectionKeywords struct {
	section  model.StorageSection
	keywords []string
}

// ruleTables are consulted in order; the first section whose list contains a
// case-insensitive substring of the product name wins. Fridge before freezer
// before pantry, so "Milchspeiseeis" lands in the fridge only when a fridge
// keyword genuinely matches first.
var ruleTables = []sectionKeywords{
	{
		section: model.SectionFridge,
		keywords: []string{
			// German
			"MILCH", "JOGHURT", "JOGURT", "QUARK", "BUTTER", "KÄSE", "KAESE",
			"SAHNE", "SCHMAND", "WURST", "SCHINKEN", "SALAMI", "LYONER",
			"FRIKADELLE", "HACKFLEISCH", "GEFLÜGEL", "HÄHNCHEN", "PUTE",
			"LACHS", "FORELLE", "HERING", "MATJES", "EIER", "TOFU", "AUFSCHNITT",
			"FRISCHKÄSE", "MOZZARELLA", "FETA",
			// French
			// "CRÈME" stays accented: the bare form is a substring of
			// "Eiscreme", which belongs to the freezer.
			"LAIT", "YAOURT", "YOGHOURT", "FROMAGE", "BEURRE", "CRÈME",
			"JAMBON", "SAUCISSON", "PÂTÉ", "RILLETTES", "OEUF", "ŒUF",
			"POULET", "SAUMON", "CAMEMBERT", "EMMENTAL", "CHÈVRE", "MOUSSE",
		},
	},
	{
		section: model.SectionFreezer,
		keywords: []string{
			// German
			"TIEFKÜHL", "TIEFKUEHL", "TK ", "TK-", "GEFRIER", "EISCREME",
			"SPEISEEIS", "EIS AM STIEL", "FISCHSTÄBCHEN", "POMMES FRITES",
			"SPINAT TK",
			// French
			"SURGELÉ", "SURGELE", "CONGELÉ", "CONGELE", "GLACE", "SORBET",
			"BÂTONNET", "FRITES SURGEL",
		},
	},
	{
		section: model.SectionPantry,
		keywords: []string{
			// German
			"MEHL", "ZUCKER", "SALZ", "NUDELN", "SPAGHETTI", "REIS", "MÜSLI",
			"HAFERFLOCKEN", "KONSERVE", "DOSE", "ÖL", "OEL", "ESSIG", "HONIG",
			"MARMELADE", "KAFFEE", "TEE", "KAKAO", "KEKSE", "ZWIEBACK",
			"KNÄCKEBROT", "GEWÜRZ", "SENF", "KETCHUP",
			// French
			"FARINE", "SUCRE", "SEL", "PÂTES", "RIZ", "CÉRÉALES", "CONSERVE",
			"HUILE", "VINAIGRE", "MIEL", "CONFITURE", "CAFÉ", "THÉ", "CHOCOLAT",
			"BISCUIT", "MOUTARDE", "ÉPICE",
		},
	},
}

// depositKeywords force a name to the unclassified section: deposits and
// carrier bags are purchases, not food that belongs in a storage section.
var depositKeywords = []string{
	"PFAND", "LEERGUT", "TÜTE", "TUETE", "TRAGETASCHE", "TRAGETÜTE",
	"CONSIGNE", "SAC ",
}
