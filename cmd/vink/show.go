package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vink/internal/api"
	"vink/internal/config"
	"vink/internal/render"
)

func newShowCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var copyContent bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "show <id-or-url>",
		Short: "Fetch a vanish and render it",
		Args:  requireExactlyArgs(1, "vanish id or share URL is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := extractLocator(args[0])
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				vanish, err := client.GetVanish(cmd.Context(), id)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(vanish)
				}

				renderer := &render.Renderer{Out: os.Stdout, Err: os.Stderr, Theme: cfg.Render.Theme}
				var copier render.Copier
				if copyContent {
					copier = newCopyChain(cfg)
				}
				if err := renderer.Render(vanish, copier); err != nil {
					return err
				}
				if outputDir != "" {
					return downloadFiles(cmd.Context(), client, vanish, outputDir)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&copyContent, "copy", false, "copy text content to the clipboard")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "download stored files into this directory")
	return cmd
}

// extractLocator accepts either a bare id or a full share URL and returns
// the opaque locator.
func extractLocator(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.New("vanish id or share URL is required")
	}
	if strings.Contains(value, "://") {
		parsed, err := url.Parse(value)
		if err != nil {
			return "", fmt.Errorf("invalid share URL: %w", err)
		}
		value = parsed.Path
	}
	value = strings.Trim(value, "/")
	if value == "" || strings.Contains(value, "/") {
		return "", fmt.Errorf("invalid vanish id %q", raw)
	}
	return value, nil
}

func downloadFiles(ctx context.Context, client *api.Client, vanish api.Vanish, dir string) error {
	plan, err := render.PlanFor(vanish)
	if err != nil {
		return err
	}

	rows := plan.Rows
	if plan.Path == render.PathImage && len(rows) == 0 && plan.ImageURL != "" {
		name := vanish.Title
		if name == "" {
			name = "image"
		}
		rows = []render.FileRow{{Name: name, URL: plan.ImageURL}}
	}
	if len(rows) == 0 {
		return errors.New("this vanish has no stored files")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, row := range rows {
		dest := filepath.Join(dir, filepath.Base(row.Name))
		if err := downloadOne(ctx, client, row.URL, dest); err != nil {
			return err
		}
		if err := writePlain("%s\n", dest); err != nil {
			return err
		}
	}
	return nil
}

func downloadOne(ctx context.Context, client *api.Client, fileURL, dest string) error {
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return client.Download(ctx, fileURL, f)
}
