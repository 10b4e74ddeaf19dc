// Package system provides host capabilities backed by the desktop rather than
// a browser connection: the OS URL handler for opening tabs, and the
// clipboard or a command-line argument for the initial URL.
package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/atomicstack/polyglot-popup/internal/urlseg"
)

var ErrNoURL = errors.New("no url available")

// Opener opens tabs through the default browser.
type Opener struct {
	open func(string) error
}

func NewOpener() *Opener {
	return &Opener{open: browser.OpenURL}
}

func (o *Opener) OpenTab(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.open(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Clipboard reports the clipboard contents as the active tab URL.
type Clipboard struct {
	read func() (string, error)
}

func NewClipboard() *Clipboard {
	return &Clipboard{read: clipboard.ReadAll}
}

// ClipboardAvailable reports whether a clipboard utility was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

func (c *Clipboard) ActiveTabURL(ctx context.Context) (string, error) {
	text, err := c.read()
	if err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	text = strings.TrimSpace(text)
	if !urlseg.IsValid(text) {
		return "", fmt.Errorf("clipboard: %w", ErrNoURL)
	}
	return text, nil
}

// Fixed reports a URL chosen up front, typically from the command line.
type Fixed string

func (f Fixed) ActiveTabURL(ctx context.Context) (string, error) {
	return strings.TrimSpace(string(f)), nil
}
