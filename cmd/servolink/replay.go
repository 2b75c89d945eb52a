package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stridelabs/servolink/internal/replay"
)

var replayJoints string

var replayCmd = &cobra.Command{
	Use:   "replay [trajectory]",
	Short: "Replay a recorded trajectory in real time",
	Long: `Loads a recorded trajectory (NDJSON, or a zip archive with a
joint-order manifest), resolves every joint to a discovered device, and
replays the steps against the original timeline. A zero-effort safety
stop goes to every trajectory device when the run ends, completed or
cancelled.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayJoints, "joints", "", "joint table path (default from config)")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}
	defer app.close()

	jointPath := replayJoints
	if jointPath == "" {
		jointPath = app.cfg.Replay.JointTable
	}
	table, err := replay.LoadJointTable(jointPath)
	if err != nil {
		return fmt.Errorf("loading joint table: %w", err)
	}

	loader := replay.NewLoader(app.cfg.Replay, table, app.log)
	traj, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading trajectory: %w", err)
	}

	sched := replay.NewScheduler(traj, app.driver, app.dir, app.cfg.Replay, app.log)
	sched.OnProgress(app.pub.ReplayProgress)

	cmd.Printf("Replaying %s: %d steps over %s across devices %v (session %s)\n",
		args[0], traj.Len(), traj.Duration().Round(time.Millisecond), traj.Devices(), sched.Session())

	app.pub.ReplayStatus(sched.Session(), "running")

	start := time.Now()
	runErr := sched.Run(cmd.Context())
	elapsed := time.Since(start).Round(time.Millisecond)

	switch {
	case runErr == nil:
		app.pub.ReplayStatus(sched.Session(), "completed")
		cmd.Printf("Replay complete: %d steps in %s\n", traj.Len(), elapsed)
		return nil
	case errors.Is(runErr, context.Canceled):
		app.pub.ReplayStatus(sched.Session(), "cancelled")
		cmd.Printf("Replay cancelled after step %d (%s)\n", sched.StepIndex(), elapsed)
		return nil
	default:
		app.pub.ReplayStatus(sched.Session(), "failed")
		return fmt.Errorf("replay failed: %w", runErr)
	}
}
