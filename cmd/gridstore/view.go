// View commands manage a database's views.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

var (
	viewName      string
	viewType      string
	viewGroupBy   string
	viewDateField string
	viewDefault   bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage views",
}

var viewAddCmd = &cobra.Command{
	Use:   "add <database-id>",
	Short: "Add a view to a database",
	Long: `Add creates a new view. Kanban views take --group-by with a
single-select field ID; calendar views take --date-field.

Example:
  gridstore view add DB-ID --name Board --type kanban --group-by FIELD-ID`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def := types.ViewDefinition{
			Name:      viewName,
			Type:      viewType,
			IsDefault: viewDefault,
			Config: types.ViewConfig{
				GroupByField: viewGroupBy,
				DateField:    viewDateField,
			},
		}

		v, err := svc.AddView(args[0], def)
		if err != nil {
			return fmt.Errorf("add view: %w", err)
		}

		if flagJSON {
			return printJSON(v)
		}
		fmt.Printf("Added view: %s (%s)\n", v.Name, v.ViewID)
		return nil
	},
}

var viewDeleteCmd = &cobra.Command{
	Use:   "delete <database-id> <view-id>",
	Short: "Delete a view",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.DeleteView(args[0], args[1]); err != nil {
			return fmt.Errorf("delete view: %w", err)
		}
		if flagJSON {
			return printJSON(map[string]string{"deleted": args[1]})
		}
		fmt.Printf("Deleted view: %s\n", args[1])
		return nil
	},
}

func init() {
	viewAddCmd.Flags().StringVar(&viewName, "name", "", "view name (required)")
	viewAddCmd.Flags().StringVar(&viewType, "type", types.ViewTypeGrid, "view type (grid, kanban, calendar, gallery, form, gantt, timeline)")
	viewAddCmd.Flags().StringVar(&viewGroupBy, "group-by", "", "field ID to group kanban columns by")
	viewAddCmd.Flags().StringVar(&viewDateField, "date-field", "", "field ID that places records on a calendar")
	viewAddCmd.Flags().BoolVar(&viewDefault, "default", false, "make this the default view")
	_ = viewAddCmd.MarkFlagRequired("name")

	viewCmd.AddCommand(viewAddCmd)
	viewCmd.AddCommand(viewDeleteCmd)
}
