package rules

import (
	"context"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/pkg/notion"
)

// NotionSource loads published rule overrides from two Notion databases
// (one for value drivers, one for authenticity markers). Rule authors
// edit rows in Notion; the engine consumes them as plain data.
type NotionSource struct {
	client   notion.Client
	driverDB string
	markerDB string
}

// NewNotionSource creates a NotionSource over the given databases.
func NewNotionSource(client notion.Client, driverDB, markerDB string) *NotionSource {
	return &NotionSource{client: client, driverDB: driverDB, markerDB: markerDB}
}

// FetchDecoderOverrides always returns nil: decoder routing is not
// editable from Notion, only the rule tables are.
func (s *NotionSource) FetchDecoderOverrides(_ context.Context, _ model.CategoryID, _ string) (decoder.Routing, error) {
	return nil, nil
}

// FetchRuleOverrides queries both databases for active rows and parses
// them into rule records. Malformed rows are skipped with a warning
// rather than failing the whole fetch.
func (s *NotionSource) FetchRuleOverrides(ctx context.Context, category model.CategoryID, brand string) (*RuleOverrides, error) {
	filter := &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Status",
			Status: &notionapi.StatusFilterCondition{
				Equals: "Active",
			},
		},
	}

	overrides := &RuleOverrides{}

	if s.driverDB != "" {
		pages, err := notion.QueryAll(ctx, s.client, s.driverDB, filter)
		if err != nil {
			return nil, eris.Wrap(err, "rules: query driver database")
		}
		for _, p := range pages {
			d, err := parseDriverPage(p)
			if err != nil {
				zap.L().Warn("rules: skipping malformed driver page",
					zap.String("page_id", string(p.ID)),
					zap.Error(err),
				)
				continue
			}
			overrides.Drivers = append(overrides.Drivers, d)
		}
	}

	if s.markerDB != "" {
		pages, err := notion.QueryAll(ctx, s.client, s.markerDB, filter)
		if err != nil {
			return nil, eris.Wrap(err, "rules: query marker database")
		}
		for _, p := range pages {
			m, err := parseMarkerPage(p)
			if err != nil {
				zap.L().Warn("rules: skipping malformed marker page",
					zap.String("page_id", string(p.ID)),
					zap.Error(err),
				)
				continue
			}
			overrides.Markers = append(overrides.Markers, m)
		}
	}

	if len(overrides.Drivers) == 0 && len(overrides.Markers) == 0 {
		return nil, nil
	}
	return overrides, nil
}

func parseDriverPage(p notionapi.Page) (model.ValueDriver, error) {
	d := model.ValueDriver{
		ID: string(p.ID),
	}

	if prop, ok := p.Properties["Name"]; ok {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			d.Name = plainText(tp.Title)
		}
	}
	if prop, ok := p.Properties["RuleID"]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			if id := plainText(rtp.RichText); id != "" {
				d.ID = id
			}
		}
	}
	if prop, ok := p.Properties["Attribute"]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			d.Attribute = plainText(rtp.RichText)
		}
	}
	if prop, ok := p.Properties["Category"]; ok {
		if sp, ok := prop.(*notionapi.SelectProperty); ok {
			d.CategoryID = model.CategoryID(sp.Select.Name)
		}
	}
	if prop, ok := p.Properties["Brands"]; ok {
		if msp, ok := prop.(*notionapi.MultiSelectProperty); ok {
			for _, opt := range msp.MultiSelect {
				d.ApplicableBrands = append(d.ApplicableBrands, opt.Name)
			}
		}
	}
	if prop, ok := p.Properties["CheckCondition"]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			d.CheckCondition = plainText(rtp.RichText)
		}
	}
	if prop, ok := p.Properties["PriceMultiplier"]; ok {
		if np, ok := prop.(*notionapi.NumberProperty); ok {
			d.PriceMultiplier = np.Number
		}
	}
	if prop, ok := p.Properties["Priority"]; ok {
		if np, ok := prop.(*notionapi.NumberProperty); ok {
			d.Priority = int(np.Number)
		}
	}

	if d.Name == "" {
		return d, eris.New("missing Name property")
	}
	if d.Attribute == "" {
		return d, eris.New("missing Attribute property")
	}
	if d.PriceMultiplier <= 0 {
		return d, eris.New("missing or non-positive PriceMultiplier")
	}
	return d, nil
}

func parseMarkerPage(p notionapi.Page) (model.AuthenticityMarkerDef, error) {
	m := model.AuthenticityMarkerDef{
		ID: string(p.ID),
	}

	if prop, ok := p.Properties["Name"]; ok {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			m.Name = plainText(tp.Title)
		}
	}
	if prop, ok := p.Properties["RuleID"]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			if id := plainText(rtp.RichText); id != "" {
				m.ID = id
			}
		}
	}
	if prop, ok := p.Properties["Category"]; ok {
		if sp, ok := prop.(*notionapi.SelectProperty); ok {
			m.CategoryID = model.CategoryID(sp.Select.Name)
		}
	}
	if prop, ok := p.Properties["Brands"]; ok {
		if msp, ok := prop.(*notionapi.MultiSelectProperty); ok {
			for _, opt := range msp.MultiSelect {
				m.Brands = append(m.Brands, opt.Name)
			}
		}
	}
	if prop, ok := p.Properties["CheckDescription"]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			m.CheckDescription = plainText(rtp.RichText)
		}
	}
	if prop, ok := p.Properties["Importance"]; ok {
		if sp, ok := prop.(*notionapi.SelectProperty); ok {
			m.Importance = model.MarkerImportance(strings.ToLower(sp.Select.Name))
		}
	}
	if prop, ok := p.Properties["Pattern"]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			m.Pattern = plainText(rtp.RichText)
		}
	}
	if prop, ok := p.Properties["IndicatesAuthentic"]; ok {
		if cp, ok := prop.(*notionapi.CheckboxProperty); ok {
			m.IndicatesAuthentic = cp.Checkbox
		}
	}

	if m.Name == "" {
		return m, eris.New("missing Name property")
	}
	if m.Importance == "" {
		return m, eris.New("missing Importance property")
	}
	return m, nil
}

// plainText concatenates the plain_text values from a slice of RichText.
func plainText(rts []notionapi.RichText) string {
	var s string
	for _, rt := range rts {
		s += rt.PlainText
	}
	return s
}
