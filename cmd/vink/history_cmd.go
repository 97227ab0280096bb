package main

import (
	"github.com/spf13/cobra"

	"vink/internal/config"
	"vink/internal/history"
)

func newHistoryCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List links created from this machine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryList(cmd, cfg, jsonOutput)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recorded share links",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runHistoryList(cmd, cfg, jsonOutput)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget every recorded share link",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withHistory(cfg, func(store *history.Store) error {
					return store.Clear(cmd.Context())
				})
			},
		},
	)
	return cmd
}

func runHistoryList(cmd *cobra.Command, cfg *config.Config, jsonOutput *bool) error {
	return withHistory(cfg, func(store *history.Store) error {
		entries, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if *jsonOutput {
			return writeJSON(entries)
		}
		return writeHistoryList(entries)
	})
}

func withHistory(cfg *config.Config, fn func(*history.Store) error) error {
	path, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
