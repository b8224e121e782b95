package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate decoding and scoring rules",
}

// -- rules list --

var (
	rulesListCategory string
	rulesListBrand    string
)

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective value drivers and authenticity markers",
	Long:  "Shows the rules in effect for a category and brand after built-in defaults are merged with any configured override source.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(rulesListCategory)
		if err != nil {
			return err
		}

		reg, err := initRegistry(cmd.Context(), category, rulesListBrand)
		if err != nil {
			return eris.Wrap(err, "build rule registry")
		}

		formatDrivers(os.Stdout, reg.Drivers())
		fmt.Fprintln(os.Stdout)
		formatMarkers(os.Stdout, reg.Markers())
		return nil
	},
}

// -- rules validate --

var rulesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rule module file",
	Long:  "Parses a YAML or JSON rule module and reports what it contains. Marker patterns that fail to compile are reported but do not fail validation; they degrade to manual checks at load time.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := rules.LoadModuleFromFile(args[0])
		if err != nil {
			return eris.Wrap(err, "rules validate")
		}

		fmt.Fprintf(os.Stdout, "Routing overrides:     %d categories\n", len(module.Routing))
		fmt.Fprintf(os.Stdout, "Value drivers:         %d\n", len(module.Drivers))
		fmt.Fprintf(os.Stdout, "Authenticity markers:  %d\n", len(module.Markers))
		return nil
	},
}

func formatDrivers(out io.Writer, drivers []model.ValueDriver) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DRIVER\tATTRIBUTE\tMULTIPLIER\tPRIORITY\tBRANDS")
	for _, d := range drivers {
		brands := "any"
		if len(d.ApplicableBrands) > 0 {
			brands = fmt.Sprintf("%d listed", len(d.ApplicableBrands))
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%s\n", d.ID, d.Attribute, d.PriceMultiplier, d.Priority, brands)
	}
	_ = w.Flush()
}

func formatMarkers(out io.Writer, markers []model.AuthenticityMarkerDef) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MARKER\tIMPORTANCE\tKIND\tINDICATES")
	for _, m := range markers {
		kind := "manual"
		if m.CompiledPattern != nil {
			kind = "pattern"
		}
		indicates := "authentic"
		if !m.IndicatesAuthentic {
			indicates = "fake"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Importance, kind, indicates)
	}
	_ = w.Flush()
}

func init() {
	rulesListCmd.Flags().StringVar(&rulesListCategory, "category", "", "item category (required)")
	rulesListCmd.Flags().StringVar(&rulesListBrand, "brand", "", "item brand")
	_ = rulesListCmd.MarkFlagRequired("category")

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
	rootCmd.AddCommand(rulesCmd)
}
