// ABOUTME: CLI commands for exporting and importing lifelog data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export lifelog data",
	Long: `Export all lifelog data in various formats.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export grouped by domain (human-readable)

EXAMPLES:

  lifelog export json                 # Export all data as JSON
  lifelog export json -o backup.json  # Save to file
  lifelog export yaml                 # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		all, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.EncodeJSON(all)
		case "yaml":
			data, err = storage.EncodeYAML(all)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import lifelog data from a JSON backup",
	Long: `Import lifelog data from a previously exported JSON file.

The YAML export is a human-readable rendering grouped by domain and
cannot be imported back. Duplicate entries (same ID) will cause an
error.

EXAMPLES:

  lifelog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse file: %w", err)
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
