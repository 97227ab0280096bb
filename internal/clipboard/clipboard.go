// Package clipboard copies text to the system clipboard through an ordered
// chain of strategies, so one unavailable mechanism degrades instead of
// failing the copy outright.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrCopyFailed means every strategy in the chain was exhausted. Callers must
// surface it visibly; a dropped copy is worse than a reported one.
var ErrCopyFailed = errors.New("copy to clipboard failed")

// Strategy is one way of placing text on the clipboard.
type Strategy interface {
	Name() string
	Copy(text string) error
}

// Chain tries strategies in order and stops at the first success.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a chain from explicit strategies, primary first.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Default returns the standard chain: the platform clipboard first, then the
// OSC 52 escape written to terminal (which still works over SSH, where no
// clipboard tool is installed).
func Default(terminal io.Writer) *Chain {
	return NewChain(System(), OSC52(terminal))
}

// System returns the platform-clipboard strategy.
func System() Strategy { return systemStrategy{} }

// OSC52 returns the terminal-escape strategy writing to w.
func OSC52(w io.Writer) Strategy { return osc52Strategy{w: w} }

// Copy places text on the clipboard via the first strategy that succeeds.
// When every strategy fails the error wraps ErrCopyFailed and names each
// attempt.
func (c *Chain) Copy(text string) error {
	if len(c.strategies) == 0 {
		return ErrCopyFailed
	}
	var failures []string
	for _, strategy := range c.strategies {
		if err := strategy.Copy(text); err == nil {
			return nil
		} else {
			failures = append(failures, fmt.Sprintf("%s: %v", strategy.Name(), err))
		}
	}
	return fmt.Errorf("%w: %s", ErrCopyFailed, strings.Join(failures, "; "))
}

// systemStrategy uses the platform clipboard (pbcopy/xclip/xsel/wl-copy or
// the native API, depending on the OS).
type systemStrategy struct{}

func (systemStrategy) Name() string { return "system" }

func (systemStrategy) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// osc52Strategy emits the OSC 52 set-clipboard escape sequence; terminals
// that support it update the clipboard of the machine the terminal runs on.
type osc52Strategy struct {
	w io.Writer
}

func (osc52Strategy) Name() string { return "osc52" }

func (s osc52Strategy) Copy(text string) error {
	if s.w == nil {
		return errors.New("no terminal writer")
	}
	payload := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(s.w, "\x1b]52;c;%s\x07", payload)
	return err
}
