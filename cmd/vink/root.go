package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vink/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var jsonOutput bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "vink",
		Short: "Vink shares text, code, and files through self-destructing links",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			warning, err := configureLoggerForCLI(logLevel, cfg.LogLevel)
			if err != nil {
				return err
			}
			if warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), warning)
			}
			return nil
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCreateCmd(cfg, &jsonOutput),
		newShowCmd(cfg, &jsonOutput),
		newOpenCmd(cfg, &jsonOutput),
		newAboutCmd(),
		newHistoryCmd(cfg, &jsonOutput),
		newConfigCmd(cfg),
	)

	return cmd
}
