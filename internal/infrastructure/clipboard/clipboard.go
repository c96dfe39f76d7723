// Package clipboard copies text to the system clipboard, falling back to the
// OSC 52 terminal escape when no clipboard tool is installed (e.g. over SSH).
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/logging"
)

// ErrUnavailable is returned when neither a clipboard tool nor a terminal
// is available.
var ErrUnavailable = errors.New("no clipboard available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard.
type Adapter struct {
	native bool
	write  func(string) error
	term   io.Writer // receives the OSC 52 sequence; nil disables the fallback
	tmux   bool
}

var _ port.Clipboard = (*Adapter)(nil)

// New creates a clipboard adapter. term is the terminal the OSC 52 fallback
// is written to, usually os.Stderr while a TUI owns stdout.
func New(term io.Writer) *Adapter {
	return &Adapter{
		native: !sysclip.Unsupported,
		write:  sysclip.WriteAll,
		term:   term,
		tmux:   os.Getenv("TMUX") != "",
	}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.native {
		err := a.write(text)
		if err == nil {
			log.Debug().Int("len", len(text)).Msg("clipboard write success")
			return nil
		}
		log.Debug().Err(err).Msg("system clipboard failed, trying OSC 52")
	}

	if a.term == nil {
		log.Error().Err(ErrUnavailable).Msg("clipboard write failed")
		return ErrUnavailable
	}

	seq := osc52.New(text)
	if a.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(a.term); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("write OSC 52 sequence: %w", err)
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write via OSC 52")
	return nil
}
