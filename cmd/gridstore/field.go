// Field commands manage a database's field definitions.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

var (
	fieldName     string
	fieldType     string
	fieldRequired bool
	fieldOptions  string
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage fields",
}

var fieldAddCmd = &cobra.Command{
	Use:   "add <database-id>",
	Short: "Add a field to a database",
	Long: `Add appends a new field to the database schema.

Example:
  gridstore field add DB-ID --name Status --type single-select --options "Todo,Doing,Done"
  gridstore field add DB-ID --name Due --type date`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def := types.FieldDefinition{
			Name: fieldName,
			Type: fieldType,
		}
		def.Config.Required = fieldRequired
		for _, name := range strings.Split(fieldOptions, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			def.Config.Options = append(def.Config.Options, types.SelectOption{
				OptionID: types.NewID(),
				Name:     name,
			})
		}

		f, err := svc.AddField(args[0], def)
		if err != nil {
			return fmt.Errorf("add field: %w", err)
		}

		if flagJSON {
			return printJSON(f)
		}
		fmt.Printf("Added field: %s (%s)\n", f.Name, f.FieldID)
		return nil
	},
}

var fieldDeleteCmd = &cobra.Command{
	Use:   "delete <database-id> <field-id>",
	Short: "Delete a field and its record values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.DeleteField(args[0], args[1]); err != nil {
			return fmt.Errorf("delete field: %w", err)
		}
		if flagJSON {
			return printJSON(map[string]string{"deleted": args[1]})
		}
		fmt.Printf("Deleted field: %s\n", args[1])
		return nil
	},
}

func init() {
	fieldAddCmd.Flags().StringVar(&fieldName, "name", "", "field name (required)")
	fieldAddCmd.Flags().StringVar(&fieldType, "type", "text", "field type")
	fieldAddCmd.Flags().BoolVar(&fieldRequired, "required", false, "require a value on record creation")
	fieldAddCmd.Flags().StringVar(&fieldOptions, "options", "", "comma-separated options for select fields")
	_ = fieldAddCmd.MarkFlagRequired("name")

	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldDeleteCmd)
}
