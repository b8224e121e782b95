package rules

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
)

// RuleModule is the on-disk form of a published rule module: optional
// decoder routing plus driver and marker overrides.
type RuleModule struct {
	Routing map[model.CategoryID][]model.IdentifierKind `json:"routing,omitempty" yaml:"routing,omitempty"`
	Drivers []model.ValueDriver                         `json:"value_drivers,omitempty" yaml:"value_drivers,omitempty"`
	Markers []model.AuthenticityMarkerDef               `json:"authenticity_markers,omitempty" yaml:"authenticity_markers,omitempty"`
}

// LoadModuleFromFile reads a rule module from a JSON or YAML file,
// selected by extension.
func LoadModuleFromFile(path string) (*RuleModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "rules: read module file")
	}

	var module RuleModule
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &module); err != nil {
			return nil, eris.Wrap(err, "rules: unmarshal yaml module")
		}
	case ".json":
		if err := json.Unmarshal(data, &module); err != nil {
			return nil, eris.Wrap(err, "rules: unmarshal json module")
		}
	default:
		return nil, eris.Errorf("rules: unsupported module file extension %q", filepath.Ext(path))
	}

	return &module, nil
}

// ModuleSource serves a loaded RuleModule as an OverrideSource. All
// fetches are in-memory; category/brand filtering is left to the
// registry merge and the engines' own scoping.
type ModuleSource struct {
	module RuleModule
}

// NewModuleSource wraps a loaded module.
func NewModuleSource(module RuleModule) *ModuleSource {
	return &ModuleSource{module: module}
}

// FetchDecoderOverrides returns the module's routing table, or nil when
// the module does not override routing.
func (s *ModuleSource) FetchDecoderOverrides(_ context.Context, _ model.CategoryID, _ string) (decoder.Routing, error) {
	if len(s.module.Routing) == 0 {
		return nil, nil
	}
	routing := make(decoder.Routing, len(s.module.Routing))
	for category, kinds := range s.module.Routing {
		routing[category] = kinds
	}
	return routing, nil
}

// FetchRuleOverrides returns the module's driver and marker overrides,
// or nil when the module carries none.
func (s *ModuleSource) FetchRuleOverrides(_ context.Context, _ model.CategoryID, _ string) (*RuleOverrides, error) {
	if len(s.module.Drivers) == 0 && len(s.module.Markers) == 0 {
		return nil, nil
	}
	return &RuleOverrides{
		Drivers: s.module.Drivers,
		Markers: s.module.Markers,
	}, nil
}
