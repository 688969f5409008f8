// Create command creates a new database, optionally from a template.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createName     string
	createTemplate string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new database",
	Long: `Create makes a new database. With --template the database is seeded
from a built-in template; otherwise it starts with a primary Name field
and a default grid view.

Example:
  gridstore create --name "Q3 Deals" --template crm
  gridstore create --name Notes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := svc.CreateDatabase(createName, createTemplate)
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}

		if flagJSON {
			return printJSON(db)
		}
		fmt.Printf("Created database: %s (%s)\n", db.Name, db.DatabaseID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "database name (required)")
	createCmd.Flags().StringVar(&createTemplate, "template", "", "template ID (see gridstore templates)")
	_ = createCmd.MarkFlagRequired("name")
}
