package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyBefore time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect archived scans and parameter dumps",
}

var historyScansCmd = &cobra.Command{
	Use:   "scans",
	Short: "List archived bulk scans",
	Args:  cobra.NoArgs,
	RunE:  runHistoryScans,
}

var historyDumpsCmd = &cobra.Command{
	Use:   "dumps [id]",
	Short: "List archived parameter dumps for a device",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDumps,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [dump-id]",
	Short: "Show one archived parameter dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete archive entries older than a cutoff",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	historyScansCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to list")
	historyPruneCmd.Flags().DurationVar(&historyBefore, "older-than", 30*24*time.Hour, "age cutoff")
	historyCmd.AddCommand(historyScansCmd)
	historyCmd.AddCommand(historyDumpsCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryScans(cmd *cobra.Command, _ []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	archive, err := app.openArchive()
	if err != nil {
		return err
	}
	entries, err := archive.ListScans(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if flagFormat == "json" {
		return printJSON(cmd, entries)
	}
	if len(entries) == 0 {
		cmd.Println("No archived scans.")
		return nil
	}
	table := [][]string{{"SCANNED", "FOUND", "MISSING"}}
	for _, e := range entries {
		table = append(table, []string{
			e.ScannedAt.Format(time.RFC3339),
			fmt.Sprintf("%d", len(e.Found)),
			fmt.Sprintf("%d", len(e.Missing)),
		})
	}
	printTable(cmd, table)
	return nil
}

func runHistoryDumps(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}
	archive, err := app.openArchive()
	if err != nil {
		return err
	}
	metas, err := archive.ListDumps(cmd.Context(), ids[0])
	if err != nil {
		return err
	}

	if flagFormat == "json" {
		return printJSON(cmd, metas)
	}
	if len(metas) == 0 {
		cmd.Println("No archived dumps.")
		return nil
	}
	table := [][]string{{"DUMP", "DEVICE", "CHANNEL", "VARIANT", "CAPTURED"}}
	for _, m := range metas {
		table = append(table, []string{
			m.ID,
			fmt.Sprintf("%d", m.DeviceID),
			m.Channel,
			m.Variant.String(),
			m.CapturedAt.Format(time.RFC3339),
		})
	}
	printTable(cmd, table)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	archive, err := app.openArchive()
	if err != nil {
		return err
	}
	dump, err := archive.GetDump(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if flagFormat == "json" {
		return printJSON(cmd, dump)
	}
	cmd.Printf("Dump %s: device %d on %s, captured %s\n",
		dump.ID, dump.DeviceID, dump.Channel, dump.CapturedAt.Format(time.RFC3339))
	names := make([]string, 0, len(dump.Params))
	for name := range dump.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	table := [][]string{{"NAME", "VALUE"}}
	for _, name := range names {
		table = append(table, []string{name, dump.Params[name]})
	}
	printTable(cmd, table)
	return nil
}

func runHistoryPrune(cmd *cobra.Command, _ []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	archive, err := app.openArchive()
	if err != nil {
		return err
	}
	removed, err := archive.PruneBefore(cmd.Context(), time.Now().Add(-historyBefore))
	if err != nil {
		return err
	}
	cmd.Printf("Pruned %d entries.\n", removed)
	return nil
}
