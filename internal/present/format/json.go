package format

import (
	"encoding/json"
	"io"

	"github.com/mireku/cardik/pkg/api"
)

func WriteJSONCards(w io.Writer, cards []api.Card, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if cards == nil {
		cards = []api.Card{}
	}
	return enc.Encode(cards)
}

func WriteJSONCard(w io.Writer, c api.Card, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(c)
}
