package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "resale-intel",
	Short: "Domain-knowledge decoding and scoring for resale listings",
	Long:  "Decodes brand identifiers (date codes, blindstamps, style codes, reference numbers), detects value drivers, aggregates price multipliers, and assesses authenticity for resale inventory.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
