// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gridstore configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml
and opens the storage backend once so the data directory exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already created the config file and opened
		// the backend; report where everything landed.
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		backend := flagBackend
		if backend == "" {
			backend = configBackend
		}

		if flagJSON {
			return printJSON(map[string]string{
				"config_dir": configDir,
				"data_dir":   dataDir,
				"backend":    backend,
			})
		}
		fmt.Printf("Initialized gridstore (backend: %s)\n", backend)
		fmt.Printf("  config: %s\n", configDir)
		fmt.Printf("  data:   %s\n", dataDir)
		return nil
	},
}
