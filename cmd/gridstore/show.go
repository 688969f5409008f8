// Show command prints a database's schema and views.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <database-id>",
	Short: "Show a database's fields and views",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := svc.GetDatabase(args[0])
		if err != nil {
			return fmt.Errorf("get database: %w", err)
		}

		if flagJSON {
			return printJSON(db)
		}

		fmt.Printf("%s (%s)\n", db.Name, db.DatabaseID)
		fmt.Printf("Fields:\n")
		for _, f := range db.Fields {
			marker := ""
			if f.IsPrimary {
				marker = " [primary]"
			}
			fmt.Printf("  %-36s  %-20s  %s%s\n", f.FieldID, f.Name, f.Type, marker)
		}
		fmt.Printf("Views:\n")
		for _, v := range db.Views {
			marker := ""
			if v.IsDefault {
				marker = " [default]"
			}
			fmt.Printf("  %-36s  %-20s  %s%s\n", v.ViewID, v.Name, v.Type, marker)
		}
		fmt.Printf("Records: %d\n", len(db.Records))
		return nil
	},
}
