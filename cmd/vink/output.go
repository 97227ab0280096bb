package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"vink/internal/history"
)

func writeJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writePlain(format string, args ...any) error {
	_, err := fmt.Fprintf(os.Stdout, format, args...)
	return err
}

func writeHistoryList(entries []history.Entry) error {
	for _, entry := range entries {
		line := fmt.Sprintf("%s  %s", entry.CreatedAt.Local().Format(time.DateTime), entry.ShareURL)
		if entry.Title != "" {
			line += "  " + entry.Title
		}
		if entry.OneTime {
			line += "  (one-time)"
		}
		if err := writePlain("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
