package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/resale-intel/internal/authenticity"
	"github.com/sells-group/resale-intel/internal/model"
)

var (
	verifyCategory    string
	verifyBrand       string
	verifyIdentifiers []string
	verifyText        []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Assess item authenticity from identifiers and extracted text",
	Long:  "Runs the authenticity markers for the category and brand over the supplied evidence and prints the assessment with per-marker results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(verifyCategory)
		if err != nil {
			return err
		}
		if len(verifyIdentifiers) == 0 && len(verifyText) == 0 {
			return eris.New("at least one --identifier or --text is required")
		}

		reg, err := initRegistry(cmd.Context(), category, verifyBrand)
		if err != nil {
			return eris.Wrap(err, "build rule registry")
		}

		ids := make([]model.ExtractedIdentifier, 0, len(verifyIdentifiers))
		for _, value := range verifyIdentifiers {
			ids = append(ids, model.ExtractedIdentifier{
				Type:       model.IdentifierOther,
				Value:      value,
				Confidence: 1.0,
			})
		}

		engine := authenticity.NewEngine(reg.Markers())
		result := engine.CheckAuthenticity(ids, verifyText, category, verifyBrand)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyCategory, "category", "", "item category (required)")
	verifyCmd.Flags().StringVar(&verifyBrand, "brand", "", "item brand")
	verifyCmd.Flags().StringArrayVar(&verifyIdentifiers, "identifier", nil, "identifier value observed on the item (repeatable)")
	verifyCmd.Flags().StringArrayVar(&verifyText, "text", nil, "text fragment extracted from listing photos (repeatable)")
	_ = verifyCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(verifyCmd)
}
