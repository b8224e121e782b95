package refdata

import "github.com/sells-group/resale-intel/internal/model"

// staticValueDrivers is the built-in value-driver rule set. Externally
// published rule modules may replace entries by ID or append new ones;
// the records here are the defaults shipped with the binary.
var staticValueDrivers = []model.ValueDriver{
	{
		ID:              "vd-exotic-leather",
		Name:            "Exotic leather",
		Attribute:       "material",
		CategoryID:      model.CategoryLuxuryHandbags,
		CheckCondition:  "text contains crocodile, alligator, ostrich, python, lizard",
		PriceMultiplier: 3.5,
		Priority:        90,
	},
	{
		ID:              "vd-limited-edition-bag",
		Name:            "Limited edition release",
		Attribute:       "edition",
		CategoryID:      model.CategoryLuxuryHandbags,
		CheckCondition:  "text contains limited edition, runway, collaboration, artist series",
		PriceMultiplier: 2.0,
		Priority:        70,
	},
	{
		ID:               "vd-hermes-hardware",
		Name:             "Precious-metal hardware",
		Attribute:        "hardware",
		CategoryID:       model.CategoryLuxuryHandbags,
		ApplicableBrands: []string{"Hermès", "Hermes"},
		CheckCondition:   "is palladium or gold or rose gold",
		PriceMultiplier:  1.3,
		Priority:         50,
	},
	{
		ID:              "vd-full-set",
		Name:            "Full set (box and papers)",
		Attribute:       "accessories",
		CategoryID:      model.CategoryLuxuryWatches,
		CheckCondition:  "includes box, papers, warranty card",
		PriceMultiplier: 1.25,
		Priority:        60,
	},
	{
		ID:              "vd-discontinued-reference",
		Name:            "Discontinued reference",
		Attribute:       "production_status",
		CategoryID:      model.CategoryLuxuryWatches,
		CheckCondition:  "is discontinued or vintage",
		PriceMultiplier: 1.4,
		Priority:        75,
	},
	{
		ID:               "vd-big-e-tab",
		Name:             "Big E red tab",
		Attribute:        "label",
		CategoryID:       model.CategoryVintageDenim,
		ApplicableBrands: []string{"Levi's", "Levis"},
		CheckCondition:   "big e capitalization on the red tab",
		PriceMultiplier:  4.0,
		Priority:         100,
	},
	{
		ID:              "vd-selvedge",
		Name:            "Selvedge construction",
		Attribute:       "construction",
		CategoryID:      model.CategoryVintageDenim,
		CheckCondition:  "text contains selvedge, selvage, redline",
		PriceMultiplier: 1.8,
		Priority:        65,
	},
	{
		ID:              "vd-og-colorway",
		Name:            "Original colorway",
		Attribute:       "colorway",
		CategoryID:      model.CategorySneakers,
		CheckCondition:  "text contains bred, chicago, royal, og, original",
		PriceMultiplier: 1.6,
		Priority:        70,
	},
	{
		ID:              "vd-deadstock",
		Name:            "Deadstock condition",
		Attribute:       "condition",
		CategoryID:      model.CategorySneakers,
		CheckCondition:  "is deadstock or new in box",
		PriceMultiplier: 1.5,
		Priority:        80,
	},
	{
		ID:              "vd-runway-apparel",
		Name:            "Runway piece",
		Attribute:       "provenance",
		CategoryID:      model.CategoryDesignerApparel,
		CheckCondition:  "text contains runway, look book, sample",
		PriceMultiplier: 2.2,
		Priority:        85,
	},
}

// StaticValueDrivers returns a copy of the built-in value-driver table.
func StaticValueDrivers() []model.ValueDriver {
	out := make([]model.ValueDriver, len(staticValueDrivers))
	copy(out, staticValueDrivers)
	return out
}
