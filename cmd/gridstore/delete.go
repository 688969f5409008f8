// Delete command removes a database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <database-id>",
	Short: "Delete a database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.DeleteDatabase(args[0]); err != nil {
			return fmt.Errorf("delete database: %w", err)
		}
		if flagJSON {
			return printJSON(map[string]string{"deleted": args[0]})
		}
		fmt.Printf("Deleted database: %s\n", args[0])
		return nil
	},
}
