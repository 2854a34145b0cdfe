package main

import (
	"github.com/spf13/cobra"

	"github.com/floydspeak/floyd/internal/config"
	"github.com/floydspeak/floyd/internal/logging"
)

const binaryVersion = "0.1.0"

var (
	flagConfig    string
	flagLogFormat string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "floyd",
	Short:         "Floyd Speak semantic core driver",
	Long:          `floyd runs a JSON AST produced by the external Floyd Speak parser through the language's tree-walking interpreter.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to a floyd.yaml config file (default log level/format)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "override log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initLogging() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	logging.Init(logging.Config{
		Verbose: cfg.LogLevel == "debug",
		Format:  cfg.LogFormat,
	})
	return nil
}
