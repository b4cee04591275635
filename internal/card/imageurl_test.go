package card

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailDigest(t *testing.T) {
	want := sha256.Sum256([]byte("john.doe@example.com"))
	assert.Equal(t, hex.EncodeToString(want[:]), EmailDigest("John.Doe@Example.com "))
	assert.Equal(t, EmailDigest("a@b.io"), EmailDigest("  A@B.IO\t"))
}

func mustParse(t *testing.T, src string) *Record {
	t.Helper()
	r, err := Parse(src)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func TestResolveImages(t *testing.T) {
	t.Run("explicit photo_url wins", func(t *testing.T) {
		r := mustParse(t, "photo_url: https://example.com/me.png\nemail: a@b.io\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Equal(t, "https://example.com/me.png", img.PhotoURL)
	})

	t.Run("photo falls back to gravatar digest", func(t *testing.T) {
		r := mustParse(t, "email: a@b.io\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Equal(t, DefaultGravatarHost+"/avatar/"+EmailDigest("a@b.io")+".jpg?s=120&d=mp", img.PhotoURL)
	})

	t.Run("gravatar of empty email when absent", func(t *testing.T) {
		r := mustParse(t, "name: X\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Contains(t, img.PhotoURL, EmailDigest(""))
	})

	t.Run("domain derived from email host", func(t *testing.T) {
		r := mustParse(t, "email: Ada@Example.COM\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Equal(t, "example.com", img.Domain)
	})

	t.Run("explicit domain overrides email host", func(t *testing.T) {
		r := mustParse(t, "email: ada@personal.net\ndomain: corp.example\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Equal(t, "corp.example", img.Domain)
	})

	t.Run("brandfetch with credential", func(t *testing.T) {
		r := mustParse(t, "email: a@b.io\n")
		img := ResolveImages(r, ImageProviders{BrandfetchClientID: "cid123"})
		assert.Equal(t, DefaultBrandfetchHost+"/b.io/w/100/h/100?c=cid123", img.LogoURL)
	})

	t.Run("clearbit without credential", func(t *testing.T) {
		r := mustParse(t, "email: a@b.io\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Equal(t, DefaultClearbitHost+"/b.io", img.LogoURL)
	})

	t.Run("explicit logo_url wins", func(t *testing.T) {
		r := mustParse(t, "logo_url: https://example.com/logo.svg\nemail: a@b.io\n")
		img := ResolveImages(r, ImageProviders{BrandfetchClientID: "cid"})
		assert.Equal(t, "https://example.com/logo.svg", img.LogoURL)
	})

	t.Run("no domain means no logo", func(t *testing.T) {
		r := mustParse(t, "name: X\n")
		img := ResolveImages(r, ImageProviders{})
		assert.Empty(t, img.LogoURL)
		assert.Empty(t, img.Domain)
	})
}
