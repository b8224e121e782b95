package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/resale-intel/internal/export"
	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/store"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect stored research snapshots",
}

// -- snapshots list --

var (
	snapshotsListCategory   string
	snapshotsListBrand      string
	snapshotsListAssessment string
	snapshotsListLimit      int
	snapshotsListFormat     string
)

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("snapshots"); err != nil {
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

		format, err := export.ParseFormat(snapshotsListFormat)
		if err != nil {
			return err
		}

		filter := store.SnapshotFilter{
			Category:   model.CategoryID(snapshotsListCategory),
			Brand:      snapshotsListBrand,
			Assessment: model.Assessment(snapshotsListAssessment),
			Limit:      snapshotsListLimit,
		}

		snapshots, err := st.ListSnapshots(ctx, filter)
		if err != nil {
			return eris.Wrap(err, "snapshots list")
		}
		if len(snapshots) == 0 {
			fmt.Fprintln(os.Stderr, "No snapshots found.")
			return nil
		}

		return export.WriteSnapshots(os.Stdout, format, snapshots)
	},
}

// -- snapshots show --

var snapshotsShowCmd = &cobra.Command{
	Use:   "show <snapshot-id>",
	Short: "Show full details of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("snapshots"); err != nil {
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

		snapshot, err := st.GetSnapshot(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "snapshots show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	},
}

func init() {
	snapshotsListCmd.Flags().StringVar(&snapshotsListCategory, "category", "", "filter by category")
	snapshotsListCmd.Flags().StringVar(&snapshotsListBrand, "brand", "", "filter by brand")
	snapshotsListCmd.Flags().StringVar(&snapshotsListAssessment, "assessment", "", "filter by assessment (likely_authentic, uncertain, likely_fake, insufficient_data)")
	snapshotsListCmd.Flags().IntVar(&snapshotsListLimit, "limit", 50, "max number of snapshots to display")
	snapshotsListCmd.Flags().StringVar(&snapshotsListFormat, "format", "table", "output format (table, json, csv, xlsx)")

	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsShowCmd)
	rootCmd.AddCommand(snapshotsCmd)
}
