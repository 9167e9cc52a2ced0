package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is the application version, set via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()
	setConfigDefaults(v)

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "togcovr",
		Short: "Convert gcov JSON coverage documents into a gcovr JSON report",
		Long: `togcovr reads paths of gzip-compressed coverage documents (*.gcov.json.gz)
from standard input, one per line, and writes a single gcovr JSON report
to standard output.`,
		Example:       "  find . -name '*.gcov.json.gz' | togcovr > coverage.json",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.File != "" {
				log.Debug("using config file", zap.String("path", cfg.File))
			}

			// Nothing is written to stdout unless every input converted.
			report, err := convert(cmd.Context(), cmd.InOrStdin(), log)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/togcovr/config.yaml)")
	flags.String("log-level", "warn", "Log level written to stderr: debug, info, warn or error")
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	flags.String("log-format", "console", "Log format: console or json")
	v.BindPFlag("log_format", flags.Lookup("log-format"))

	rootCmd.AddCommand(newConfigCmd(v, &cfgFile))
	return rootCmd
}

func newConfigCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, *cfgFile)
			if err != nil {
				return err
			}
			return dumpConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
