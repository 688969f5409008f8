// Import command loads records from JSON or CSV payloads.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridstore/pkg/service"
)

var (
	importFormat  string
	importMapping string
)

var importCmd = &cobra.Command{
	Use:   "import <database-id> <file>",
	Short: "Import records into a database",
	Long: `Import reads rows from a file (or stdin with "-") and appends them
as records. --mapping is a JSON object from source column names to
target field IDs; either all rows import or none do.

Example:
  gridstore import DB-ID rows.csv --format csv --mapping '{"ticker": "FIELD-ID"}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readInput(args[1])
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		mapping := service.ImportMapping{}
		if importMapping != "" {
			if err := parseJSONFlag("--mapping", importMapping, &mapping); err != nil {
				return err
			}
		}

		n, err := svc.ImportData(args[0], payload, importFormat, mapping)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]int{"imported": n})
		}
		fmt.Printf("Imported %d records\n", n)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", service.ImportCSV, "import format: csv or json")
	importCmd.Flags().StringVar(&importMapping, "mapping", "", "JSON object mapping source columns to field IDs")
}
