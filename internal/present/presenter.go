package present

import (
	"io"

	"github.com/mireku/cardik/internal/present/format"
	"github.com/mireku/cardik/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
}

// ParseMode parses a string like "plain", "pretty", "json".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	default:
		return ModePlain, false
	}
}

// RenderCards renders a list of cards according to options.
func RenderCards(w io.Writer, cards []api.Card, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONCards(w, cards, opts.JSONIndent)
	case ModePretty:
		// Pretty list falls back to plain; pretty is per-card.
		return format.WritePlainCards(w, cards, opts.Headers)
	default:
		return format.WritePlainCards(w, cards, opts.Headers)
	}
}

// RenderCard renders a single card according to options.
func RenderCard(w io.Writer, c api.Card, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONCard(w, c, opts.JSONIndent)
	case ModePretty:
		return format.WritePrettyCard(w, c)
	default:
		return format.WritePlainCards(w, []api.Card{c}, opts.Headers)
	}
}
