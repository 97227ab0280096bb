package main

import (
	"github.com/spf13/cobra"
)

const aboutText = `Vink creates short-lived links for text, code, and files.

A share disappears after the duration you choose, or immediately after its
first view when burn-after-reading is on. The server enforces expiry and
deletion; this client only creates and fetches shares. The only thing kept
locally is your own share history.

  create    share text or files and print the link
  show      fetch a share by id or URL
  open      open an application path (/, /about, /<id>)
  history   list links created from this machine
`

func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "What vink is and how shares vanish",
		RunE: func(_ *cobra.Command, _ []string) error {
			return writeAbout()
		},
	}
}

func writeAbout() error {
	return writePlain("%s", aboutText)
}
