package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"aporo/pkg/config"
	"aporo/pkg/logging"
	"aporo/pkg/services"
)

// Configuration flags
var (
	portNumber  string
	catalogFile string
	bucketName  string
	logLevel    string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aporo",
		Short: "Aporo serves a landing page for discovering hiking trails",
		Long: `Aporo is a command line application that serves the trail landing page, with a
detail viewer for each trail, and can list, export and chart the trail catalog.`,
		SilenceUsage: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "catalog", "c", "", "Set the CATALOG_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME for trail photos (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newListTrailsCmd())
	rootCmd.AddCommand(newShowTrailCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if catalogFile != "" {
		os.Setenv("CATALOG_FILE", catalogFile)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if logLevel != "" {
		os.Setenv("LOG_LEVEL", logLevel)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// setup loads the configuration, configures logging and initializes the shared service
func setup() (*config.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.LogLevel, nil)
	if err := services.InitService(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
