package main

import (
	"context"
	"errors"

	"vink/internal/api"
	"vink/internal/clipboard"
	"vink/internal/models"
)

func formatCLIError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{err.Error()}

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		if len(validationErr.OversizedNames) > 0 {
			lines = append(lines, "hint: each file must be 10MB or smaller; compress or split the listed files.")
		}
		return uniqueLines(lines)
	}

	if errors.Is(err, api.ErrNotFound) {
		lines = append(lines, "hint: the vanish may have expired, or it was a one-time link that was already viewed.")
		return uniqueLines(lines)
	}
	if errors.Is(err, api.ErrPayloadTooLarge) {
		lines = append(lines, "hint: the server rejected the upload size; the limit is 10MB per file.")
		return uniqueLines(lines)
	}
	if errors.Is(err, clipboard.ErrCopyFailed) {
		lines = append(lines, "hint: install a clipboard tool (xclip, wl-copy, pbcopy) or enable clipboard.osc52.")
		return uniqueLines(lines)
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 500 {
			lines = append(lines, "hint: the backend returned an internal error; try again shortly.")
		}
		return uniqueLines(lines)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		lines = append(lines, "hint: request timed out; check backend health or increase VINK_HTTP_TIMEOUT.")
		return uniqueLines(lines)
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		lines = append(lines, "hint: is the backend running at VINK_API_URL (or api_url in .vink.toml)?")
		return uniqueLines(lines)
	}

	return uniqueLines(lines)
}

func uniqueLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
