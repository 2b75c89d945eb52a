package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state [ids]",
	Short: "Read feedback state from actuators",
	Args:  cobra.ExactArgs(1),
	RunE:  runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
}

type stateRow struct {
	deviceRow
	Position    float64 `json:"position"`
	Velocity    float64 `json:"velocity"`
	Torque      float64 `json:"torque"`
	Temperature float64 `json:"temperature"`
	Faults      uint32  `json:"faults"`
}

func runState(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var rows []stateRow
	for _, id := range ids {
		rec, err := app.dir.Discover(ctx, id)
		if err != nil {
			app.log.Warn("device not found", "id", id, "error", err)
			continue
		}
		fb, err := app.driver.ReadState(ctx, rec.Channel, rec.ID)
		if err != nil {
			app.log.Warn("state read failed", "id", id, "error", err)
			continue
		}
		app.pub.ActuatorState(rec, fb)
		rows = append(rows, stateRow{
			deviceRow:   toRow(rec),
			Position:    fb.Position,
			Velocity:    fb.Velocity,
			Torque:      fb.Torque,
			Temperature: fb.Temperature,
			Faults:      fb.Faults,
		})
	}

	if flagFormat == "json" {
		if err := printJSON(cmd, rows); err != nil {
			return err
		}
		return reached(len(rows))
	}

	table := [][]string{{"ID", "CHANNEL", "POS(rad)", "VEL(rad/s)", "TORQUE(Nm)", "TEMP(C)", "FAULTS"}}
	for _, r := range rows {
		table = append(table, []string{
			fmt.Sprintf("%d", r.ID),
			r.Channel,
			fmt.Sprintf("%.4f", r.Position),
			fmt.Sprintf("%.4f", r.Velocity),
			fmt.Sprintf("%.4f", r.Torque),
			fmt.Sprintf("%.1f", r.Temperature),
			fmt.Sprintf("0x%08X", r.Faults),
		})
	}
	printTable(cmd, table)
	return reached(len(rows))
}
