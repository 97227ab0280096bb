package main

import (
	"os"
	"path/filepath"
	"testing"

	"vink/internal/models"
)

func writeDraftFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyDraftFile(t *testing.T) {
	t.Run("frontmatter and body", func(t *testing.T) {
		path := writeDraftFile(t, `---
title: release notes
expires: 1w
one_time: true
---
Highlights of this release.
`)
		draft := models.NewDraft()
		if err := applyDraftFile(draft, path); err != nil {
			t.Fatalf("applyDraftFile: %v", err)
		}
		if draft.Title() != "release notes" {
			t.Errorf("title = %q", draft.Title())
		}
		if draft.Expiry() != models.ExpireOneWeek {
			t.Errorf("expiry = %v", draft.Expiry())
		}
		if !draft.OneTime() {
			t.Error("one-time flag not applied")
		}
		if draft.Content() != "Highlights of this release." {
			t.Errorf("content = %q", draft.Content())
		}
	})

	t.Run("custom expiry", func(t *testing.T) {
		path := writeDraftFile(t, `---
expires: 10w
---
body
`)
		draft := models.NewDraft()
		if err := applyDraftFile(draft, path); err != nil {
			t.Fatalf("applyDraftFile: %v", err)
		}
		want := models.CustomDuration{Value: 10, Unit: models.UnitWeeks}
		if draft.Expiry() != want {
			t.Errorf("expiry = %v, want %v", draft.Expiry(), want)
		}
	})

	t.Run("no frontmatter", func(t *testing.T) {
		path := writeDraftFile(t, "just the body\n")
		draft := models.NewDraft()
		if err := applyDraftFile(draft, path); err != nil {
			t.Fatalf("applyDraftFile: %v", err)
		}
		if draft.Content() != "just the body" {
			t.Errorf("content = %q", draft.Content())
		}
		if draft.Expiry() != models.ExpireOneHour {
			t.Errorf("expiry = %v, want default", draft.Expiry())
		}
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		path := writeDraftFile(t, "---\ntitle: broken\n")
		if err := applyDraftFile(models.NewDraft(), path); err == nil {
			t.Fatal("applyDraftFile succeeded with unterminated frontmatter")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeDraftFile(t, "---\ntitle: [unclosed\n---\nbody\n")
		if err := applyDraftFile(models.NewDraft(), path); err == nil {
			t.Fatal("applyDraftFile succeeded with invalid frontmatter")
		}
	})

	t.Run("invalid expiry", func(t *testing.T) {
		path := writeDraftFile(t, "---\nexpires: someday\n---\nbody\n")
		if err := applyDraftFile(models.NewDraft(), path); err == nil {
			t.Fatal("applyDraftFile succeeded with a bad expiry")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := applyDraftFile(models.NewDraft(), filepath.Join(t.TempDir(), "absent.md")); err == nil {
			t.Fatal("applyDraftFile succeeded on a missing file")
		}
	})
}
