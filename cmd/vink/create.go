package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"vink/internal/api"
	"vink/internal/config"
	"vink/internal/history"
	"vink/internal/models"
	"vink/internal/submit"
)

type createCmdOptions struct {
	content     string
	files       []string
	expires     string
	expireValue int
	expireUnit  string
	oneTime     bool
	fromFile    string
	copyURL     bool
	qr          bool
}

func newCreateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	opts := &createCmdOptions{}
	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a vanish and print its share link",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := buildDraft(cmd, opts, args)
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				return submitDraft(cmd, cfg, client, draft, jsonOutput, opts.copyURL, opts.qr)
			})
		},
	}

	bindCreateFlags(cmd, opts)
	return cmd
}

func bindCreateFlags(cmd *cobra.Command, opts *createCmdOptions) {
	cmd.Flags().StringVarP(&opts.content, "content", "c", "", "text or code to share (- reads stdin)")
	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "file to upload (repeatable)")
	cmd.Flags().StringVarP(&opts.expires, "expires", "e", "", "expiry: 1h, 1d, 1w, never, or <value><m|h|d|w>")
	cmd.Flags().IntVar(&opts.expireValue, "expire-value", 1, "custom expiry value")
	cmd.Flags().StringVar(&opts.expireUnit, "expire-unit", "hours", "custom expiry unit (minutes, hours, days, weeks)")
	cmd.Flags().BoolVar(&opts.oneTime, "one-time", false, "burn after reading: destroy after the first view")
	cmd.Flags().StringVar(&opts.fromFile, "from-file", "", "draft file with YAML front matter and body content")
	cmd.Flags().BoolVar(&opts.copyURL, "copy", false, "copy the share link to the clipboard")
	cmd.Flags().BoolVar(&opts.qr, "qr", false, "print a QR code for the share link")
}

func buildDraft(cmd *cobra.Command, opts *createCmdOptions, args []string) (*models.Draft, error) {
	draft := models.NewDraft()

	if opts.fromFile != "" {
		if err := applyDraftFile(draft, opts.fromFile); err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		draft.SetTitle(strings.Join(args, " "))
	}

	if len(opts.files) > 0 {
		batch := make([]models.FileHandle, 0, len(opts.files))
		for _, path := range opts.files {
			handle, err := models.NewFileHandle(path)
			if err != nil {
				return nil, err
			}
			batch = append(batch, handle)
		}
		if err := draft.SelectFiles(batch); err != nil {
			return nil, err
		}
	}

	if opts.content != "" {
		content := opts.content
		if content == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, err
			}
			content = string(data)
		}
		if err := draft.SetContent(content); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("expire-value") || cmd.Flags().Changed("expire-unit") {
		unit, err := models.ParseExpiryUnit(opts.expireUnit)
		if err != nil {
			return nil, err
		}
		draft.SetExpiry(models.CustomDuration{Value: opts.expireValue, Unit: unit})
	} else if opts.expires != "" {
		selection, err := models.ParseExpirySelection(opts.expires)
		if err != nil {
			return nil, err
		}
		draft.SetExpiry(selection)
	}

	if opts.oneTime {
		draft.SetOneTime(true)
	}

	if draft.Content() == "" && len(draft.Files()) == 0 {
		return nil, errors.New("nothing to share: provide --content, --file, or --from-file")
	}

	return draft, nil
}

// submitDraft runs one submission and handles the post-success surface:
// history record, share link output, optional clipboard copy and QR code.
func submitDraft(cmd *cobra.Command, cfg *config.Config, client *api.Client, draft *models.Draft, jsonOutput *bool, copyURL, qr bool) error {
	// The draft resets on success; capture what the history row needs first.
	entry := history.Entry{
		Title:   draft.Title(),
		OneTime: draft.OneTime(),
	}
	if token, err := models.ResolveExpiry(draft.Expiry()); err == nil {
		entry.Expiry = token
	}

	submitter := submit.New(client, cfg.Origin())
	result, err := submitter.Submit(cmd.Context(), draft)
	if err != nil {
		return err
	}

	entry.Locator = result.Locator
	entry.ShareURL = result.ShareURL
	recordHistory(cmd.Context(), cfg, entry)

	if copyURL {
		if err := newCopyChain(cfg).Copy(result.ShareURL); err != nil {
			// A failed copy is surfaced but never fails the share itself.
			fmt.Fprintln(cmd.ErrOrStderr(), strings.Join(formatCLIError(err), "\n"))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
		}
	}

	if *jsonOutput {
		return writeJSON(result)
	}
	if err := writePlain("%s\n", result.ShareURL); err != nil {
		return err
	}
	if qr {
		return writeQR(result.ShareURL)
	}
	return nil
}

// recordHistory is best effort: a broken local database must not fail a
// share that the server already accepted.
func recordHistory(ctx context.Context, cfg *config.Config, entry history.Entry) {
	path, err := cfg.HistoryPath()
	if err != nil {
		slog.Warn("history not recorded", "err", err)
		return
	}
	store, err := history.Open(path)
	if err != nil {
		slog.Warn("history not recorded", "path", path, "err", err)
		return
	}
	defer store.Close()
	if err := store.Record(ctx, entry); err != nil {
		slog.Warn("history not recorded", "path", path, "err", err)
	}
}
