package main

import (
	"os"

	"vink/internal/api"
	"vink/internal/clipboard"
	"vink/internal/config"
)

func withClient(cfg *config.Config, fn func(*api.Client) error) error {
	return fn(api.NewClient(cfg.APIURL))
}

// newCopyChain builds the clipboard strategy chain. The OSC 52 fallback
// writes its escape to stderr so piped stdout stays clean.
func newCopyChain(cfg *config.Config) *clipboard.Chain {
	if cfg.Clipboard.OSC52 {
		return clipboard.Default(os.Stderr)
	}
	return clipboard.NewChain(clipboard.System())
}
