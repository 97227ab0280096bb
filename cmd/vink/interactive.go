package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vink/internal/api"
	"vink/internal/config"
	"vink/internal/models"
)

// runInteractiveCreate is the create view for `vink open /`: a prompt-driven
// version of the create form.
func runInteractiveCreate(cmd *cobra.Command, cfg *config.Config, client *api.Client, jsonOutput *bool) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	draft := models.NewDraft()

	title, err := promptLine(reader, out, "Title")
	if err != nil {
		return err
	}
	draft.SetTitle(title)

	paths, err := promptLine(reader, out, "Files to upload (space-separated paths, empty to share text)")
	if err != nil {
		return err
	}
	if paths != "" {
		batch := make([]models.FileHandle, 0)
		for _, path := range strings.Fields(paths) {
			handle, err := models.NewFileHandle(path)
			if err != nil {
				return err
			}
			batch = append(batch, handle)
		}
		if err := draft.SelectFiles(batch); err != nil {
			return err
		}
	} else {
		content, err := promptMultiline(reader, out, "Content (finish with an empty line)")
		if err != nil {
			return err
		}
		if err := draft.SetContent(content); err != nil {
			return err
		}
	}

	expiry, err := promptLine(reader, out, "Expiry: 1h, 1d, 1w, never, or <value><m|h|d|w> [1h]")
	if err != nil {
		return err
	}
	if expiry != "" {
		selection, err := models.ParseExpirySelection(expiry)
		if err != nil {
			return err
		}
		draft.SetExpiry(selection)
	}

	oneTime, err := promptLine(reader, out, "Burn after reading? [y/N]")
	if err != nil {
		return err
	}
	if strings.HasPrefix(strings.ToLower(oneTime), "y") {
		draft.SetOneTime(true)
	}

	if draft.Content() == "" && len(draft.Files()) == 0 {
		return errors.New("nothing to share")
	}

	return submitDraft(cmd, cfg, client, draft, jsonOutput, false, false)
}

// promptLine prints a prompt and reads one line. A partial line at EOF is
// returned as-is.
func promptLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptMultiline reads until an empty line.
func promptMultiline(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n", prompt); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
