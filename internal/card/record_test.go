package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("flat mapping with authored order", func(t *testing.T) {
		r, err := Parse("name: Ada Lovelace\nemail: ada@example.com\nnickname: Ada\n")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, []string{"name", "email", "nickname"}, r.Keys())
		assert.Equal(t, "Ada Lovelace", r.Get("name"))
	})

	t.Run("numeric scalar keeps its spelling", func(t *testing.T) {
		r, err := Parse("phone: 5551234567\n")
		require.NoError(t, err)
		assert.Equal(t, "5551234567", r.Get("phone"))
	})

	t.Run("empty input yields nil record", func(t *testing.T) {
		for _, src := range []string{"", "   \n", "null\n", "~\n"} {
			r, err := Parse(src)
			require.NoError(t, err, "source %q", src)
			assert.Nil(t, r, "source %q", src)
		}
	})

	t.Run("non-mapping input is a parse error", func(t *testing.T) {
		_, err := Parse("- a\n- b\n")
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("invalid yaml is a parse error", func(t *testing.T) {
		_, err := Parse("name: [unterminated\n")
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("null values are dropped", func(t *testing.T) {
		r, err := Parse("name: Ada\nemail:\n")
		require.NoError(t, err)
		assert.False(t, r.Has("email"))
		assert.Equal(t, []string{"name"}, r.Keys())
	})
}

func TestRecordConsume(t *testing.T) {
	r, err := Parse("name: Ada\ntitle: Countess\nnickname: Ada\n")
	require.NoError(t, err)

	assert.Equal(t, "Ada", r.Consume("name"))
	assert.False(t, r.Has("name"))
	assert.Equal(t, []string{"title", "nickname"}, r.Keys())

	// consuming an absent key is a no-op
	assert.Equal(t, "", r.Consume("name"))
	assert.Equal(t, 2, r.Len())
}

func TestRecordLeftovers(t *testing.T) {
	r, err := Parse("nickname: Johnny\nname: John\nfavorite_color: green\nemail: j@x.io\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"nickname", "favorite_color"}, r.Leftovers())
}

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, "John Doe", r.Get("name"))
	assert.Equal(t, "The Everyman", r.Get("title"))
	assert.Equal(t, "Acme Inc.", r.Get("company"))
	assert.Equal(t, "john.doe@example.com", r.Get("email"))
	assert.Equal(t, "5551234567", r.Get("phone"))
	assert.Equal(t, "Nowhere, OK", r.Get("location"))
	assert.Empty(t, r.Leftovers())
}
