// Templates command lists the built-in template catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gridstore/pkg/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in database templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := template.List()

		if flagJSON {
			return printJSON(list)
		}
		for _, t := range list {
			fmt.Printf("%-18s  %s\n", t.TemplateID, t.Description)
		}
		return nil
	},
}
