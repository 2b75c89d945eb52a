package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/stridelabs/servolink/internal/param"
)

var dumpSave bool

var dumpCmd = &cobra.Command{
	Use:   "dump [ids]",
	Short: "Dump and decode every parameter an actuator reports",
	Long: `Requests a full parameter dump from each device and decodes
the payloads against the variant's registry. Indexes the registry does
not know display as raw hex. With --save the decoded dump is archived.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpSave, "save", false, "archive the decoded dump")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
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
	ok := 0
	for _, id := range ids {
		rec, err := app.dir.Discover(ctx, id)
		if err != nil {
			app.log.Warn("device not found", "id", id, "error", err)
			continue
		}
		if _, err := app.dir.ResolveVariant(ctx, id); err != nil {
			app.log.Warn("variant resolution failed", "id", id, "error", err)
		}
		rec, _ = app.dir.Lookup(id)

		raw, err := app.driver.DumpAllParameters(ctx, rec.Channel, rec.ID)
		if err != nil {
			app.log.Warn("dump failed", "id", id, "error", err)
			continue
		}
		decoded := decodeDump(rec.Variant, raw)

		if err := outputDump(cmd, rec.ID, decoded); err != nil {
			return err
		}

		if dumpSave {
			archive, err := app.openArchive()
			if err != nil {
				return err
			}
			dumpID, err := archive.RecordDump(ctx, rec, decoded)
			if err != nil {
				return fmt.Errorf("archiving dump: %w", err)
			}
			cmd.Printf("Saved dump %s for device %d\n", dumpID, rec.ID)
		}
		ok++
	}
	return reached(ok)
}

// decodeDump renders every raw fragment through the variant registry.
// Keys are parameter names where known, hex indexes otherwise.
func decodeDump(variant param.Variant, raw map[uint16][]byte) map[string]string {
	var reg *param.Map
	if variant.Valid() {
		reg, _ = param.Registry(variant)
	}

	out := make(map[string]string, len(raw))
	for index, payload := range raw {
		if reg != nil {
			if desc, ok := reg.Lookup(index); ok {
				out[desc.Name] = param.Decode(desc, payload).String()
				continue
			}
		}
		out[fmt.Sprintf("0x%04X", index)] = param.RawValue(payload).String()
	}
	return out
}

func outputDump(cmd *cobra.Command, id uint8, decoded map[string]string) error {
	if flagFormat == "json" {
		return printJSON(cmd, map[string]any{
			"id":     id,
			"params": decoded,
		})
	}

	names := make([]string, 0, len(decoded))
	for name := range decoded {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Printf("Device %d (%d parameters)\n", id, len(decoded))
	table := [][]string{{"NAME", "VALUE"}}
	for _, name := range names {
		table = append(table, []string{name, decoded[name]})
	}
	printTable(cmd, table)
	cmd.Println()
	return nil
}
