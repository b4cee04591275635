package api

import (
	"strconv"
	"time"
)

// Card is one contact-card block lifted out of a markdown vault.
// Name/Title/Company/Email are denormalized from the parsed record so
// listings and search don't have to reparse the raw body.
type Card struct {
	ID        string    `json:"id"` // content hash, see Hash()
	Path      string    `json:"path"`
	Line      int       `json:"line"` // 1-based line of the opening fence
	Name      string    `json:"name,omitempty"`
	Title     string    `json:"title,omitempty"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Raw       string    `json:"raw"` // block body as authored
	ScannedAt time.Time `json:"scanned_at"`
}

// NewCard builds a Card with its identity hash and scan time set.
func NewCard(path string, line int, raw string, now time.Time) Card {
	c := Card{
		Path:      path,
		Line:      line,
		Raw:       raw,
		ScannedAt: now.UTC(),
	}
	c.ID = c.Hash()
	return c
}

// Source is the "path:line" provenance shown in listings.
func (c Card) Source() string {
	return c.Path + ":" + strconv.Itoa(c.Line)
}
