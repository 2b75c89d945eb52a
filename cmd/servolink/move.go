package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stridelabs/servolink/internal/bus"
)

var (
	movePosition float64
	moveVelocity float64
	moveTorque   float64
	moveKp       float64
	moveKd       float64
)

var moveCmd = &cobra.Command{
	Use:   "move [ids]",
	Short: "Send one position command to actuators",
	Long: `Sends a single impedance-control command: the actuator tracks
--position with the stiffness and damping gains, with --torque added as
feedforward. Gains default to the configured replay gains.`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().Float64Var(&movePosition, "position", 0, "target position (rad)")
	moveCmd.Flags().Float64Var(&moveVelocity, "velocity", 0, "target velocity (rad/s)")
	moveCmd.Flags().Float64Var(&moveTorque, "torque", 0, "feedforward torque (Nm)")
	moveCmd.Flags().Float64Var(&moveKp, "kp", -1, "position gain (default from config)")
	moveCmd.Flags().Float64Var(&moveKd, "kd", -1, "velocity gain (default from config)")
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	return runPerDevice(cmd, args[0], "move", func(a *app, ctx context.Context, channel string, id uint8) error {
		kp, kd := moveKp, moveKd
		if kp < 0 {
			kp = a.cfg.Replay.PositionGain
		}
		if kd < 0 {
			kd = a.cfg.Replay.VelocityGain
		}
		return a.driver.SendCommand(ctx, channel, id, bus.Command{
			Position: movePosition,
			Velocity: moveVelocity,
			Torque:   moveTorque,
			KpGain:   kp,
			KdGain:   kd,
		})
	})
}
