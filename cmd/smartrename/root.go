package main

import (
	"github.com/spf13/cobra"

	"smartrename/internal/config"
	"smartrename/internal/log"
)

var (
	cfgFile string
	cfg     *config.Config

	debug   bool
	logJSON bool
	logFile string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfgFile, cfg = "", nil
	debug, logJSON, logFile = false, false, ""

	rootCmd := &cobra.Command{
		Use:     "smartrename",
		Short:   "Batch rename files with a prefix and optional numbering",
		Long:    banner() + "\nsmartrename previews and applies collision-safe batch renames inside one folder.",
		Version: version,
		// Errors are printed in main or by the command in a friendlier form
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/smartrename/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write log entries as JSON")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also append log entries to this file")

	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewClassifyCmd())
	rootCmd.AddCommand(NewPreviewCmd())
	rootCmd.AddCommand(NewRenameCmd())
	rootCmd.AddCommand(NewTUICmd())
	rootCmd.AddCommand(NewGUICmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// setup loads the configuration and configures logging. Flags win over the file.
func setup(cmd *cobra.Command) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	settings := cfg.Settings
	opts := []log.Option{log.WithOutput(cmd.ErrOrStderr()), log.WithLevel(settings.LogLevel)}
	if logJSON || settings.LogJSON {
		opts = append(opts, log.WithJSON())
	}
	if path := firstNonEmpty(logFile, settings.LogFile); path != "" {
		opts = append(opts, log.WithFile(path))
	}
	log.Configure(opts...)
	log.SetDebug(debug || settings.Debug)
	return nil
}

// configPath returns the file config commands read and write
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
