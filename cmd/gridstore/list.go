// List command lists stored databases.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := svc.ListDatabases()
		if err != nil {
			return fmt.Errorf("list databases: %w", err)
		}

		if flagJSON {
			return printJSON(summaries)
		}
		if len(summaries) == 0 {
			fmt.Println("No databases")
			return nil
		}
		for _, s := range summaries {
			fmt.Printf("%s  %s  (%d fields, %d views, %d records)\n",
				s.DatabaseID, s.Name, s.FieldCount, s.ViewCount, s.RecordCount)
		}
		return nil
	},
}
