package main

import (
	"context"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable [ids]",
	Short: "Enable actuator control loops",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerDevice(cmd, args[0], "enable", func(app *app, ctx context.Context, channel string, id uint8) error {
			return app.driver.Enable(ctx, channel, id)
		})
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable [ids]",
	Short: "Disable actuator control loops",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerDevice(cmd, args[0], "disable", func(app *app, ctx context.Context, channel string, id uint8) error {
			return app.driver.Disable(ctx, channel, id)
		})
	},
}

var zeroCmd = &cobra.Command{
	Use:   "zero [ids]",
	Short: "Set the current position as the mechanical zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerDevice(cmd, args[0], "zero", func(app *app, ctx context.Context, channel string, id uint8) error {
			return app.driver.SetZero(ctx, channel, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(zeroCmd)
}

// runPerDevice discovers each id and applies op to it, reporting
// per-device outcomes. Unreachable devices are skipped.
func runPerDevice(cmd *cobra.Command, idArg, verb string, op func(*app, context.Context, string, uint8) error) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	ids, err := parseIDs(idArg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ok := 0
	for _, id := range ids {
		rec, err := a.dir.Discover(ctx, id)
		if err != nil {
			a.log.Warn("device not found", "id", id, "error", err)
			continue
		}
		if err := op(a, ctx, rec.Channel, rec.ID); err != nil {
			a.log.Warn("command failed", "op", verb, "id", id, "error", err)
			continue
		}
		cmd.Printf("%s: device %d on %s ok\n", verb, rec.ID, rec.Channel)
		ok++
	}
	return reached(ok)
}
