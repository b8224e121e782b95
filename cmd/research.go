package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/export"
	"github.com/sells-group/resale-intel/internal/research"
	"github.com/sells-group/resale-intel/internal/rules"
)

var (
	researchInput       string
	researchSave        bool
	researchFormat      string
	researchOutput      string
	researchConcurrency int
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Run the full research flow over one or more items",
	Long:  "Reads items from a JSON file (a single item object or an array), decodes identifiers, detects value drivers, assesses authenticity, and emits snapshots.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		items, err := readItems(researchInput)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return eris.New("no items in input")
		}

		format, err := export.ParseFormat(researchFormat)
		if err != nil {
			return err
		}

		src, err := initRuleSource()
		if err != nil {
			return err
		}

		// One assembler per distinct category and brand, since rule
		// registries are scoped to both.
		assemblers := make(map[string]*research.Assembler)
		assemblerFor := func(item research.Item) (*research.Assembler, error) {
			key := string(item.Category) + "|" + item.Brand
			if a, ok := assemblers[key]; ok {
				return a, nil
			}
			reg, err := rules.Build(ctx, src, item.Category, item.Brand)
			if err != nil {
				return nil, eris.Wrapf(err, "build rule registry for %s", key)
			}
			a := research.NewAssembler(reg)
			assemblers[key] = a
			return a, nil
		}

		concurrency := researchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Engine.BatchConcurrency
		}

		// Batch items per assembler, then reassemble in input order.
		groups := make(map[*research.Assembler][]int)
		for i, item := range items {
			a, err := assemblerFor(item)
			if err != nil {
				return err
			}
			groups[a] = append(groups[a], i)
		}

		snapshots := make([]research.Snapshot, len(items))
		for a, indices := range groups {
			batch := make([]research.Item, len(indices))
			for j, i := range indices {
				batch[j] = items[i]
			}
			results, err := a.ResearchBatch(ctx, batch, concurrency)
			if err != nil {
				return eris.Wrap(err, "research batch")
			}
			for j, i := range indices {
				snapshots[i] = *results[j]
			}
		}

		if researchSave {
			if err := cfg.Validate("research-save"); err != nil {
				return err
			}
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}

			ptrs := make([]*research.Snapshot, len(snapshots))
			for i := range snapshots {
				ptrs[i] = &snapshots[i]
			}
			saved, err := st.SaveSnapshots(ctx, ptrs)
			if err != nil {
				return eris.Wrap(err, "save snapshots")
			}
			zap.L().Info("snapshots saved", zap.Int("count", saved))
		}

		out := os.Stdout
		if researchOutput != "" {
			f, err := os.Create(researchOutput)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		return export.WriteSnapshots(out, format, snapshots)
	},
}

// readItems reads a single item or an array of items from path, "-"
// meaning stdin.
func readItems(path string) ([]research.Item, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "open input")
		}
		defer f.Close() //nolint:errcheck
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "read input")
	}

	var items []research.Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var item research.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, eris.Wrap(err, "parse input as item or item array")
	}
	return []research.Item{item}, nil
}

func init() {
	researchCmd.Flags().StringVar(&researchInput, "input", "-", "path to item JSON, - for stdin")
	researchCmd.Flags().BoolVar(&researchSave, "save", false, "persist snapshots to the configured store")
	researchCmd.Flags().StringVar(&researchFormat, "format", "json", "output format (table, json, csv, xlsx)")
	researchCmd.Flags().StringVar(&researchOutput, "output", "", "write output to file instead of stdout")
	researchCmd.Flags().IntVar(&researchConcurrency, "concurrency", 0, "batch concurrency (default from config)")
	rootCmd.AddCommand(researchCmd)
}
