package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stridelabs/servolink/internal/directory"
)

var scanSave bool

var scanCmd = &cobra.Command{
	Use:   "scan [ids]",
	Short: "Discover actuators on the configured channels",
	Long: `Scans every configured channel for the given comma-separated
device ids, or sweeps the full id range when none are given. Each id
is pinned to the first channel that answers for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "record the scan in the history archive")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	ids, err := scanTargets(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	found, missing, err := app.dir.BulkScan(ctx, ids)
	if err != nil {
		return err
	}

	// Variant resolution is best effort; an unreadable version leaves
	// the device usable with raw parameter display.
	for i := range found {
		if _, err := app.dir.ResolveVariant(ctx, found[i].ID); err != nil {
			app.log.Warn("variant resolution failed", "id", found[i].ID, "error", err)
		}
		if rec, ok := app.dir.Lookup(found[i].ID); ok {
			found[i] = rec
		}
		app.pub.DeviceDiscovered(found[i])
	}

	if scanSave {
		archive, err := app.openArchive()
		if err != nil {
			return err
		}
		if err := archive.RecordScan(ctx, found, missing); err != nil {
			return fmt.Errorf("recording scan: %w", err)
		}
	}

	if err := outputScan(cmd, found, missing); err != nil {
		return err
	}
	return reached(len(found))
}

// scanSweepMax is the highest id the default sweep probes. The top of
// the address space is left to broadcast and host addressing.
const scanSweepMax = 250

// scanTargets resolves the requested id set, defaulting to a sweep of
// ids 1 through scanSweepMax.
func scanTargets(args []string) ([]uint8, error) {
	if len(args) == 1 {
		return parseIDs(args[0])
	}
	ids := make([]uint8, 0, scanSweepMax)
	for id := uint8(1); id <= scanSweepMax; id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

func outputScan(cmd *cobra.Command, found []directory.Record, missing []uint8) error {
	if flagFormat == "json" {
		rows := make([]deviceRow, 0, len(found))
		for _, rec := range found {
			rows = append(rows, toRow(rec))
		}
		return printJSON(cmd, map[string]any{
			"found":   rows,
			"missing": missing,
		})
	}

	if len(found) == 0 {
		cmd.Println("No devices found.")
		return nil
	}
	rows := [][]string{{"ID", "CHANNEL", "VARIANT"}}
	for _, rec := range found {
		variant := rec.Variant.String()
		if variant == "" {
			variant = "unknown"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.Channel,
			variant,
		})
	}
	printTable(cmd, rows)
	if len(missing) > 0 && len(missing) <= 16 {
		cmd.Printf("Missing: %v\n", missing)
	} else if len(missing) > 16 {
		cmd.Printf("Missing: %d ids\n", len(missing))
	}
	return nil
}
