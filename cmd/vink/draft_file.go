package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"vink/internal/models"
)

// draftFrontmatter is the optional YAML header of a draft file.
type draftFrontmatter struct {
	Title   string `yaml:"title"`
	Expires string `yaml:"expires"`
	OneTime bool   `yaml:"one_time"`
}

// applyDraftFile loads a draft from a file with optional YAML
// frontmatter delimited by "---" lines; everything after the
// closing delimiter becomes the content.
func applyDraftFile(draft *models.Draft, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading draft file: %w", err)
	}

	meta, body, err := splitFrontmatter(string(raw))
	if err != nil {
		return fmt.Errorf("parsing draft file %s: %w", path, err)
	}

	if meta.Title != "" {
		draft.SetTitle(meta.Title)
	}
	if meta.Expires != "" {
		sel, err := models.ParseExpirySelection(meta.Expires)
		if err != nil {
			return err
		}
		draft.SetExpiry(sel)
	}
	draft.SetOneTime(meta.OneTime)

	body = strings.TrimSpace(body)
	if body != "" {
		if err := draft.SetContent(body); err != nil {
			return err
		}
	}
	return nil
}

func splitFrontmatter(raw string) (draftFrontmatter, string, error) {
	var meta draftFrontmatter

	trimmed := strings.TrimLeft(raw, "\n")
	if !strings.HasPrefix(trimmed, "---") {
		return meta, raw, nil
	}

	rest := strings.TrimPrefix(trimmed, "---")
	rest = strings.TrimPrefix(rest, "\n")
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return meta, "", fmt.Errorf("unterminated frontmatter")
	}

	header := rest[:idx]
	body := rest[idx+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return meta, "", fmt.Errorf("invalid frontmatter: %w", err)
	}
	return meta, body, nil
}
