package refdata

import "github.com/sells-group/resale-intel/internal/model"

// staticAuthenticityMarkers is the built-in marker set. Patterns are
// compiled at registry load, not here. A marker without a pattern is a
// manual-review check; IndicatesAuthentic=false means a pattern hit is
// itself the bad sign (counterfeit tells).
var staticAuthenticityMarkers = []model.AuthenticityMarkerDef{
	{
		ID:                 "am-lv-date-code-format",
		Name:               "Date code format",
		Brands:             []string{"Louis Vuitton"},
		CategoryID:         model.CategoryLuxuryHandbags,
		CheckDescription:   "Date code follows the two-letter factory prefix plus four digits layout",
		Importance:         model.ImportanceCritical,
		Pattern:            `^[A-Za-z]{2}\d{4}$`,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-lv-heat-stamp",
		Name:               "Heat stamp crispness",
		Brands:             []string{"Louis Vuitton"},
		CategoryID:         model.CategoryLuxuryHandbags,
		CheckDescription:   "Heat stamp lettering is crisp with round Os and thin serifs",
		Importance:         model.ImportanceImportant,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-hermes-stamp-shape",
		Name:               "Blindstamp shape",
		Brands:             []string{"Hermès", "Hermes"},
		CategoryID:         model.CategoryLuxuryHandbags,
		CheckDescription:   "Blindstamp shape matches the claimed production era",
		Importance:         model.ImportanceImportant,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-brand-misspelling",
		Name:               "Brand misspelling",
		CategoryID:         model.CategoryLuxuryHandbags,
		CheckDescription:   "Stamp or label misspells the brand name",
		Importance:         model.ImportanceCritical,
		Pattern:            `(?i)(luois|vuiton|vitton|herms|hermees)`,
		IndicatesAuthentic: false,
	},
	{
		ID:                 "am-rolex-serial-format",
		Name:               "Serial format",
		Brands:             []string{"Rolex"},
		CategoryID:         model.CategoryLuxuryWatches,
		CheckDescription:   "Serial is 7 digits with letter prefix or 8-character random format",
		Importance:         model.ImportanceCritical,
		Pattern:            `^([A-Za-z]\d{6,7}|[0-9A-Za-z]{8})$`,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-rolex-rehaut",
		Name:               "Rehaut engraving",
		Brands:             []string{"Rolex"},
		CategoryID:         model.CategoryLuxuryWatches,
		CheckDescription:   "Inner bezel engraving aligns with the dial markers",
		Importance:         model.ImportanceImportant,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-levis-lot-number",
		Name:               "Lot number on care tag",
		Brands:             []string{"Levi's", "Levis"},
		CategoryID:         model.CategoryVintageDenim,
		CheckDescription:   "Care tag or patch shows a classic lot number",
		Importance:         model.ImportanceHelpful,
		Pattern:            `(?i)\b(501|505|517|646)\b`,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-nike-style-tag",
		Name:               "Style code tag format",
		Brands:             []string{"Nike"},
		CategoryID:         model.CategorySneakers,
		CheckDescription:   "Size tag style code matches the LLDDDD-DDD layout",
		Importance:         model.ImportanceImportant,
		Pattern:            `^[A-Za-z]{2}\d{4}-\d{3}$`,
		IndicatesAuthentic: true,
	},
	{
		ID:                 "am-sneaker-glue-seams",
		Name:               "Glue and seam quality",
		CategoryID:         model.CategorySneakers,
		CheckDescription:   "No visible glue overrun along the midsole seam",
		Importance:         model.ImportanceHelpful,
		IndicatesAuthentic: true,
	},
}

// StaticAuthenticityMarkers returns a copy of the built-in marker table.
func StaticAuthenticityMarkers() []model.AuthenticityMarkerDef {
	out := make([]model.AuthenticityMarkerDef, len(staticAuthenticityMarkers))
	copy(out, staticAuthenticityMarkers)
	return out
}
