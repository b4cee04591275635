package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mireku/cardik/internal/card"
)

func TestBlockPhoneFailureRendersSingleErrorNode(t *testing.T) {
	out := Block("name: X\nphone: not-a-number\n", Options{})
	doc := parseHTML(t, out)

	assert.Len(t, findAllByClass(doc, "contact-card-error"), 1)
	// no partial card fragments
	assert.Empty(t, findAllByClass(doc, "contact-card"))
	assert.Empty(t, findAllByClass(doc, "contact-card-name"))
	assert.Contains(t, nodeText(findByClass(t, doc, "contact-card-error")), "PhoneError")
}

func TestBlockParseFailure(t *testing.T) {
	out := Block("- not\n- a\n- mapping\n", Options{})
	doc := parseHTML(t, out)
	errNode := findByClass(t, doc, "contact-card-error")
	assert.Contains(t, nodeText(errNode), "ParseError")
}

func TestBlockIdempotent(t *testing.T) {
	src := "name: Ada\nemail: ada@example.com\nphone: 5551234567\nquirk: punch cards\n"
	for _, opts := range []Options{
		{},
		{Strategy: StrategyTemplate},
	} {
		first := Block(src, opts)
		second := Block(src, opts)
		assert.Equal(t, first, second)
	}
}

func TestCardPhoneErrorIsTyped(t *testing.T) {
	_, err := Card("phone: bogus\n", Options{})
	var perr *card.PhoneError
	require.ErrorAs(t, err, &perr)
}

func TestErrorMessagePreference(t *testing.T) {
	t.Run("typed errors carry their kind", func(t *testing.T) {
		msg := errorMessage(&card.ParseError{Err: errors.New("bad indent")})
		assert.Equal(t, "ParseError - bad indent", msg)
	})
	t.Run("plain errors pass through", func(t *testing.T) {
		assert.Equal(t, "boom", errorMessage(errors.New("boom")))
	})
	t.Run("fallback phrase", func(t *testing.T) {
		assert.Equal(t, "Something went wrong", errorMessage(nil))
	})
}

func TestParseStrategy(t *testing.T) {
	s, ok := ParseStrategy("template")
	assert.True(t, ok)
	assert.Equal(t, StrategyTemplate, s)
	_, ok = ParseStrategy("shadow-dom")
	assert.False(t, ok)
}
