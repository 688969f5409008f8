// Version command for the gridstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			fmt.Printf("{\"version\": %q}\n", version)
			return
		}
		fmt.Println("gridstore v" + version)
	},
}
