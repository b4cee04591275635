package card

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Default image provider hosts; all overridable through configuration.
const (
	DefaultGravatarHost   = "https://gravatar.com"
	DefaultBrandfetchHost = "https://cdn.brandfetch.io"
	DefaultClearbitHost   = "https://logo.clearbit.com"
)

// ImageProviders selects the hosts and credentials used to derive image URLs.
type ImageProviders struct {
	GravatarHost       string
	BrandfetchHost     string
	ClearbitHost       string
	BrandfetchClientID string
}

func (p ImageProviders) withDefaults() ImageProviders {
	if p.GravatarHost == "" {
		p.GravatarHost = DefaultGravatarHost
	}
	if p.BrandfetchHost == "" {
		p.BrandfetchHost = DefaultBrandfetchHost
	}
	if p.ClearbitHost == "" {
		p.ClearbitHost = DefaultClearbitHost
	}
	return p
}

// Images holds the resolved photo and logo URLs for one card. LogoURL is
// empty when no logo could be derived; Domain is empty when none resolved.
type Images struct {
	PhotoURL string
	LogoURL  string
	Domain   string
}

// EmailDigest is the lowercase-trimmed SHA-256 hex digest gravatar keys
// avatars by. The gravatar protocol mandates SHA-256 here, so this does not
// go through the blake3 identity hashing used elsewhere.
func EmailDigest(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// ResolveImages derives photo and logo URLs from the record's explicit
// fields, falling back to gravatar (photo) and brandfetch/clearbit (logo).
// A logo is attempted whenever a domain is derivable, with or without a
// brandfetch credential.
func ResolveImages(r *Record, p ImageProviders) Images {
	p = p.withDefaults()
	var img Images

	img.PhotoURL = r.Get("photo_url")
	if img.PhotoURL == "" {
		img.PhotoURL = fmt.Sprintf("%s/avatar/%s.jpg?s=120&d=mp", p.GravatarHost, EmailDigest(r.Get("email")))
	}

	img.Domain = r.Get("domain")
	if img.Domain == "" {
		if email := r.Get("email"); strings.Contains(email, "@") {
			img.Domain = strings.ToLower(email[strings.Index(email, "@")+1:])
		}
	}

	img.LogoURL = r.Get("logo_url")
	if img.LogoURL == "" && img.Domain != "" {
		if p.BrandfetchClientID != "" {
			img.LogoURL = fmt.Sprintf("%s/%s/w/100/h/100?c=%s", p.BrandfetchHost, img.Domain, p.BrandfetchClientID)
		} else {
			img.LogoURL = fmt.Sprintf("%s/%s", p.ClearbitHost, img.Domain)
		}
	}

	return img
}
