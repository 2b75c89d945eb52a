package main

import (
	"context"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/stridelabs/servolink/internal/bus"
)

var (
	sineAmplitude float64
	sineFrequency float64
	sineDuration  time.Duration
	sinePeriod    time.Duration
)

var sineTestCmd = &cobra.Command{
	Use:   "sine-test [id]",
	Short: "Drive one actuator through a sinusoidal position sweep",
	Long: `Streams position commands tracing a sine wave, for bench
verification of an actuator's motion. The amplitude is clamped to the
variant's angle envelope. Ctrl+C stops the sweep; a zero-effort safety
stop always follows the last command.`,
	Args: cobra.ExactArgs(1),
	RunE: runSineTest,
}

func init() {
	sineTestCmd.Flags().Float64Var(&sineAmplitude, "amplitude", 1.0, "peak position (rad)")
	sineTestCmd.Flags().Float64Var(&sineFrequency, "frequency", 0.5, "sweep frequency (Hz)")
	sineTestCmd.Flags().DurationVar(&sineDuration, "duration", 5*time.Second, "total sweep time")
	sineTestCmd.Flags().DurationVar(&sinePeriod, "period", 20*time.Millisecond, "command period")
	rootCmd.AddCommand(sineTestCmd)
}

func runSineTest(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}
	id := ids[0]

	ctx := cmd.Context()
	rec, err := app.dir.Discover(ctx, id)
	if err != nil {
		return err
	}

	amplitude := sineAmplitude
	if variant, err := app.dir.ResolveVariant(ctx, id); err == nil {
		limit := variant.Envelope().MaxAngle
		if amplitude > limit {
			app.log.Warn("amplitude clamped to variant envelope",
				"requested", amplitude, "limit", limit, "variant", variant)
			amplitude = limit
		}
		if amplitude < -limit {
			amplitude = -limit
		}
	} else {
		app.log.Warn("variant resolution failed, envelope not enforced", "id", id, "error", err)
	}

	cmd.Printf("Sine sweep on device %d (%s): amplitude %.3f rad, %.2f Hz, %s\n",
		rec.ID, rec.Channel, amplitude, sineFrequency, sineDuration)

	// The last command may have left the actuator away from zero;
	// always hand it back with zero effort. The run context may be
	// cancelled at this point, so the stop gets its own deadline.
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := app.driver.SendCommand(stopCtx, rec.Channel, rec.ID, bus.SafetyStop); err != nil {
			app.log.Error("safety stop failed", "id", rec.ID, "error", err)
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(sinePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Sweep interrupted.")
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if elapsed >= sineDuration {
				cmd.Println("Sweep complete.")
				return nil
			}
			position := amplitude * math.Sin(2*math.Pi*sineFrequency*elapsed.Seconds())
			err := app.driver.SendCommand(ctx, rec.Channel, rec.ID, bus.Command{
				Position: position,
				KpGain:   app.cfg.Replay.PositionGain,
				KdGain:   app.cfg.Replay.VelocityGain,
			})
			if err != nil {
				return err
			}
		}
	}
}
