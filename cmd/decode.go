package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
)

var (
	decodeCategory string
	decodeType     string
	decodeShape    string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <identifier>",
	Short: "Decode a single brand identifier",
	Long:  "Runs the decoder chain for the given category over one identifier value and prints the decoded facts as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(decodeCategory)
		if err != nil {
			return err
		}
		shape, err := parseShape(decodeShape)
		if err != nil {
			return err
		}

		reg, err := initRegistry(cmd.Context(), category, "")
		if err != nil {
			return eris.Wrap(err, "build rule registry")
		}

		id := model.ExtractedIdentifier{
			Type:       model.IdentifierType(decodeType),
			Value:      args[0],
			Confidence: 1.0,
			Shape:      shape,
		}

		dv := decoder.NewDispatcher(reg.Routing()).DecodeIdentifier(id, category)
		if dv == nil {
			return eris.Errorf("no decoder matched %q for category %s", args[0], category)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dv)
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeCategory, "category", "", "item category (required)")
	decodeCmd.Flags().StringVar(&decodeType, "type", string(model.IdentifierDateCode), "identifier type hint (date_code, style_number, model_number, other)")
	decodeCmd.Flags().StringVar(&decodeShape, "shape", "", "blindstamp bracket shape if observed (circle, square)")
	_ = decodeCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(decodeCmd)
}
