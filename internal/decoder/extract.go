package decoder

import (
	"time"

	"github.com/sells-group/resale-intel/internal/model"
)

// vintageAgeYears is the age at which an item with a known manufacture
// year is classified vintage absent a stronger signal.
const vintageAgeYears = 20

// Origin is a manufacture origin extracted from a decoded value.
type Origin struct {
	Location string `json:"location"`
	Country  string `json:"country"`
}

// ExtractYear returns the manufacture year from a decoded value, if the
// payload carries one. Unsuccessful decodes yield no year.
func ExtractYear(dv model.DecodedValue) (int, bool) {
	if !dv.Success {
		return 0, false
	}
	switch {
	case dv.DateCode != nil && dv.DateCode.Year != 0:
		return dv.DateCode.Year, true
	case dv.Blindstamp != nil && dv.Blindstamp.Year != 0:
		return dv.Blindstamp.Year, true
	}
	return 0, false
}

// ExtractOrigin returns the manufacture origin, if the payload carries
// one. Only factory+date codes encode an origin today.
func ExtractOrigin(dv model.DecodedValue) *Origin {
	if !dv.Success || dv.DateCode == nil {
		return nil
	}
	return &Origin{
		Location: dv.DateCode.FactoryLocation,
		Country:  dv.DateCode.FactoryCountry,
	}
}

// IsDiscontinuedOrVintage classifies a decoded value as discontinued or
// vintage, in priority order: an explicit era estimate, the pre-era
// (Big E) flag, a catalog discontinuation flag, then the manufacture
// year being more than vintageAgeYears ago.
func IsDiscontinuedOrVintage(dv model.DecodedValue) bool {
	return isDiscontinuedOrVintageAt(dv, time.Now().Year())
}

func isDiscontinuedOrVintageAt(dv model.DecodedValue, currentYear int) bool {
	if !dv.Success {
		return false
	}
	if dv.Denim != nil {
		if dv.Denim.EstimatedEra != "" {
			return true
		}
		if dv.Denim.IsBigE {
			return true
		}
	}
	if dv.Reference != nil && dv.Reference.Discontinued {
		return true
	}
	if year, ok := ExtractYear(dv); ok {
		return year < currentYear-vintageAgeYears
	}
	return false
}
