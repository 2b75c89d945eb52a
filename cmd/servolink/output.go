package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// parseIDs parses a comma-separated device id list ("1,2,41").
func parseIDs(arg string) ([]uint8, error) {
	parts := strings.Split(arg, ",")
	ids := make([]uint8, 0, len(parts))
	seen := make(map[uint8]bool)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid device id %q", p)
		}
		id := uint8(n)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no device ids in %q", arg)
	}
	return ids, nil
}

// parseParamRef parses a parameter reference: a 0x-prefixed or decimal
// index, or a parameter name. ok reports whether it was numeric.
func parseParamRef(arg string) (uint16, bool) {
	n, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// printJSON renders v as indented JSON on the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printTable renders rows as an aligned table. The first row is the
// header.
func printTable(cmd *cobra.Command, rows [][]string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush() //nolint:errcheck // Terminal output, nothing to recover
}
