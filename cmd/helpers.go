package main

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/rules"
	"github.com/sells-group/resale-intel/internal/store"
	"github.com/sells-group/resale-intel/pkg/notion"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		path := cfg.Store.SQLitePath
		if path == "" {
			path = "resale-intel.db"
		}
		return store.NewSQLite(path)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initRuleSource assembles the override source chain: a local rule
// module file takes precedence, then the Notion tables if configured.
// Remote sources are wrapped in a TTL cache. Returns nil when neither is
// configured, which leaves the built-in rules in effect.
func initRuleSource() (rules.OverrideSource, error) {
	if cfg.Rules.ModuleFile != "" {
		module, err := rules.LoadModuleFromFile(cfg.Rules.ModuleFile)
		if err != nil {
			return nil, eris.Wrap(err, "load rule module")
		}
		return rules.NewModuleSource(*module), nil
	}

	if cfg.Notion.Token != "" && (cfg.Notion.DriverDB != "" || cfg.Notion.MarkerDB != "") {
		client := notion.NewClient(cfg.Notion.Token)
		src := rules.NewNotionSource(client, cfg.Notion.DriverDB, cfg.Notion.MarkerDB)
		ttl := time.Duration(cfg.Rules.CacheTTLSecs) * time.Second
		return rules.NewCachedSource(src, ttl, nil), nil
	}

	return nil, nil
}

func initRegistry(ctx context.Context, category model.CategoryID, brand string) (*rules.Registry, error) {
	src, err := initRuleSource()
	if err != nil {
		return nil, err
	}
	return rules.Build(ctx, src, category, brand)
}

func parseCategory(s string) (model.CategoryID, error) {
	category := model.CategoryID(strings.ToLower(strings.TrimSpace(s)))
	if !category.Valid() {
		return "", eris.Errorf("unknown category %q", s)
	}
	return category, nil
}

// parseFields turns repeated key=value flags into field states with full
// confidence. Listing fields entered by hand are treated as ground truth.
func parseFields(pairs []string) (model.FieldStates, error) {
	fields := make(model.FieldStates, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, eris.Errorf("invalid field %q (want key=value)", pair)
		}
		fields[key] = model.FieldState{Value: value, Confidence: 1.0}
	}
	return fields, nil
}

func parseShape(s string) (model.StampShape, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return model.ShapeNone, nil
	case "circle":
		return model.ShapeCircle, nil
	case "square":
		return model.ShapeSquare, nil
	default:
		return model.ShapeNone, eris.Errorf("unknown stamp shape %q (want circle, square, or none)", s)
	}
}
