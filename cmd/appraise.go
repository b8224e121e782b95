package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/valuation"
)

var (
	appraiseCategory string
	appraiseBrand    string
	appraiseFields   []string
)

var appraiseCmd = &cobra.Command{
	Use:   "appraise",
	Short: "Detect value drivers and compute the price multiplier",
	Long:  "Matches listing fields against the value-driver rules for the category and prints the matched drivers plus the aggregated price multiplier.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(appraiseCategory)
		if err != nil {
			return err
		}
		fields, err := parseFields(appraiseFields)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return eris.New("at least one --field key=value is required")
		}

		reg, err := initRegistry(cmd.Context(), category, appraiseBrand)
		if err != nil {
			return eris.Wrap(err, "build rule registry")
		}

		engine := valuation.NewEngine(reg.Drivers())
		matches := engine.DetectValueDrivers(fields, category, appraiseBrand)
		multiplier := valuation.CalculateValueMultiplier(matches)

		out := struct {
			Matches         []model.ValueDriverMatch `json:"matches"`
			PriceMultiplier float64                  `json:"price_multiplier"`
		}{
			Matches:         matches,
			PriceMultiplier: multiplier,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	appraiseCmd.Flags().StringVar(&appraiseCategory, "category", "", "item category (required)")
	appraiseCmd.Flags().StringVar(&appraiseBrand, "brand", "", "item brand")
	appraiseCmd.Flags().StringArrayVar(&appraiseFields, "field", nil, "listing field as key=value (repeatable)")
	_ = appraiseCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(appraiseCmd)
}
