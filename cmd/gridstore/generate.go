// Generate command fills an AI field value for one record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <database-id> <field-id> <record-id>",
	Short: "Generate an AI field value for a record",
	Long: `Generate asks the configured AI provider to fill the given AI field
on one record. The database must have AI generation enabled in its
settings and a provider must be configured.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := svc.GenerateAIField(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Printf("Generated value for record %s\n", rec.RecordID)
		return nil
	},
}
