// Export command writes a database to JSON, CSV or XLSX.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridstore/pkg/service"
)

var (
	exportFormat string
	exportOutput string
	exportFields string
)

var exportCmd = &cobra.Command{
	Use:   "export <database-id>",
	Short: "Export a database",
	Long: `Export serializes a database. JSON exports the full aggregate and
can be re-imported; CSV and XLSX export records as rows.

Example:
  gridstore export DB-ID --format csv --output deals.csv
  gridstore export DB-ID --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := service.ExportConfig{Format: exportFormat}
		if exportFields != "" {
			for _, id := range strings.Split(exportFields, ",") {
				if id = strings.TrimSpace(id); id != "" {
					cfg.IncludeFields = append(cfg.IncludeFields, id)
				}
			}
		}

		payload, err := svc.ExportDatabase(args[0], cfg)
		if err != nil {
			return fmt.Errorf("export database: %w", err)
		}

		if exportOutput == "" {
			_, err = os.Stdout.Write(payload)
			return err
		}
		if err := os.WriteFile(exportOutput, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Exported %s to %s\n", args[0], exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", service.FormatJSON, "export format: json, csv or xlsx")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFields, "fields", "", "comma-separated field IDs to include")
}
