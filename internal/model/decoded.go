package model

// IdentifierKind tags which decoder produced a DecodedValue.
type IdentifierKind string

const (
	KindLVDateCode      IdentifierKind = "lv_date_code"
	KindBlindstamp      IdentifierKind = "hermes_blindstamp"
	KindStyleCode       IdentifierKind = "nike_style_code"
	KindReferenceNumber IdentifierKind = "watch_reference"
	KindDenimAnalysis   IdentifierKind = "denim_analysis"
)

// DecodedValue is the output of a single decoder invocation. Exactly one
// of the payload pointers is set on success, matching IdentifierType.
// Failed decodes carry Success=false, a low confidence, and no payload.
type DecodedValue struct {
	IdentifierType IdentifierKind `json:"identifier_type"`
	Success        bool           `json:"success"`
	Confidence     float64        `json:"confidence"`
	RawValue       string         `json:"raw_value"`

	DateCode   *DateCodeFacts   `json:"date_code,omitempty"`
	Blindstamp *BlindstampFacts `json:"blindstamp,omitempty"`
	StyleCode  *StyleCodeFacts  `json:"style_code,omitempty"`
	Reference  *ReferenceFacts  `json:"reference,omitempty"`
	Denim      *DenimFacts      `json:"denim,omitempty"`

	// Note carries a human-readable qualifier, e.g. why a decode is
	// only a structural match or which digits were ambiguous.
	Note string `json:"note,omitempty"`
}

// DateCodeFacts is the decoded payload of a factory+date code.
// Year and Week are zero when the digit segment was ambiguous
// (3-digit codes resolve the factory only).
type DateCodeFacts struct {
	FactoryCode     string `json:"factory_code"`
	FactoryLocation string `json:"factory_location"`
	FactoryCountry  string `json:"factory_country"`
	Year            int    `json:"year,omitempty"`
	Week            int    `json:"week,omitempty"`
}

// BlindstampFacts is the decoded payload of a single-letter chronology stamp.
type BlindstampFacts struct {
	Letter string     `json:"letter"`
	Shape  StampShape `json:"shape,omitempty"`
	Cycle  int        `json:"cycle"`
	Year   int        `json:"year"`
}

// StyleCodeFacts is the decoded payload of an alphanumeric style code.
// The code itself is the structured fact; no further decomposition applies.
type StyleCodeFacts struct {
	Code string `json:"code"`
}

// ReferenceFacts is the decoded payload of a watch reference number.
// Catalog fields are empty on a structural-only match.
type ReferenceFacts struct {
	Reference    string `json:"reference"`
	Family       string `json:"family,omitempty"`
	Name         string `json:"name,omitempty"`
	Material     string `json:"material,omitempty"`
	Discontinued bool   `json:"discontinued,omitempty"`
	CatalogMatch bool   `json:"catalog_match"`
}

// DenimFacts is the decoded payload of the free-text denim analyzer.
type DenimFacts struct {
	IsBigE       bool     `json:"is_big_e"`
	Selvedge     bool     `json:"selvedge"`
	MadeInUSA    bool     `json:"made_in_usa"`
	EstimatedEra string   `json:"estimated_era,omitempty"`
	Signals      []string `json:"signals,omitempty"`
}
