// Record commands manage a database's records.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordData string

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage records",
}

var recordAddCmd = &cobra.Command{
	Use:   "add <database-id>",
	Short: "Add a record",
	Long: `Add creates a record from a JSON object keyed by field ID.
Values are coerced to each field's type and auto-valued fields are
filled in.

Example:
  gridstore record add DB-ID --data '{"FIELD-ID": "Buy milk"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := map[string]any{}
		if err := parseJSONFlag("--data", recordData, &data); err != nil {
			return err
		}

		rec, err := svc.AddRecord(args[0], data)
		if err != nil {
			return fmt.Errorf("add record: %w", err)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Printf("Added record: %s\n", rec.RecordID)
		return nil
	},
}

var recordUpdateCmd = &cobra.Command{
	Use:   "update <database-id> <record-id>",
	Short: "Update a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := map[string]any{}
		if err := parseJSONFlag("--data", recordData, &patch); err != nil {
			return err
		}

		rec, err := svc.UpdateRecord(args[0], args[1], patch)
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Printf("Updated record: %s\n", rec.RecordID)
		return nil
	},
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete <database-id> <record-id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.DeleteRecord(args[0], args[1]); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		if flagJSON {
			return printJSON(map[string]string{"deleted": args[1]})
		}
		fmt.Printf("Deleted record: %s\n", args[1])
		return nil
	},
}

func init() {
	recordAddCmd.Flags().StringVar(&recordData, "data", "{}", "record data as a JSON object keyed by field ID")
	recordUpdateCmd.Flags().StringVar(&recordData, "data", "{}", "patch as a JSON object keyed by field ID")

	recordCmd.AddCommand(recordAddCmd)
	recordCmd.AddCommand(recordUpdateCmd)
	recordCmd.AddCommand(recordDeleteCmd)
}
