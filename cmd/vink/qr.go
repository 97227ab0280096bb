package main

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// writeQR prints a terminal QR code for the share URL.
func writeQR(target string) error {
	code, err := qrcode.New(target, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}
	return writePlain("%s", code.ToSmallString(false))
}
