// servolink - actuator fleet control and trajectory replay
//
// servolink drives a fleet of addressable servo actuators spread over
// several CAN channels: discovery, parameter reads and dumps, direct
// motion commands, and real-time replay of recorded trajectories.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

func main() {
	// Cancel on interrupt so a running replay gets its safety stop
	// before the process exits.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
