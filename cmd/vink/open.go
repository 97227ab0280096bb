package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vink/internal/api"
	"vink/internal/config"
	"vink/internal/render"
	"vink/internal/router"
)

// cliNavigator keeps the location in memory; the CLI has no browser history
// to push into.
type cliNavigator struct {
	path string
}

func (n *cliNavigator) CurrentPath() string { return n.path }

func (n *cliNavigator) Navigate(path string) { n.path = path }

func newOpenCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Open an application path: /, /about, or /<id>",
		Args:  requireExactlyArgs(1, "path is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			return withClient(cfg, func(client *api.Client) error {
				rt := router.New(&cliNavigator{path: path}, client)
				view := rt.Start(cmd.Context())

				switch view.Kind {
				case router.KindAbout:
					return writeAbout()
				case router.KindCreate:
					return runInteractiveCreate(cmd, cfg, client, jsonOutput)
				case router.KindVanish:
					if err := rt.Err(); err != nil {
						return err
					}
					vanish := rt.Vanish()
					if vanish == nil {
						return fmt.Errorf("no response for %s", view.ID)
					}
					if *jsonOutput {
						return writeJSON(*vanish)
					}
					renderer := &render.Renderer{Out: os.Stdout, Err: os.Stderr, Theme: cfg.Render.Theme}
					return renderer.Render(*vanish, nil)
				}
				return nil
			})
		},
	}
}
