// Root command for the gridstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/gridstore/internal/paths"
	"github.com/mesh-intelligence/gridstore/pkg/service"
	"github.com/mesh-intelligence/gridstore/pkg/storage"
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configBackend string
)

// Globals initialized by PersistentPreRunE.
var (
	store types.BlobStore
	svc   *service.Service
)

var rootCmd = &cobra.Command{
	Use:     "gridstore",
	Short:   "Gridstore is a local-first multi-view record store",
	Version: version,
	Long: `Gridstore manages databases of typed records with grid, kanban and
calendar views. Databases are stored in a local backend (sqlite, bbolt
or memory) and can be created from built-in templates, exported and
imported.`,
	PersistentPreRunE: openService,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeService()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.gridstore-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, bbolt or memory (default: config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
}

// openService loads config.yaml, opens the configured blob store and
// builds the database service all subcommands operate through.
func openService(cmd *cobra.Command, args []string) error {
	// Version and templates need no storage.
	switch cmd.Name() {
	case "version", "templates":
		return nil
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)
	configBackend = cfg.GetString(cfgKeyBackend)

	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	backend := flagBackend
	if backend == "" {
		backend = configBackend
	}

	store, err = storage.Open(types.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	svc = service.New(store, nil, newLogger())
	return nil
}

// closeService releases the blob store.
func closeService() error {
	if store != nil {
		return store.Close()
	}
	return nil
}

func newLogger() *zap.SugaredLogger {
	if !flagVerbose {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir > env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
