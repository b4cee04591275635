package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mireku/cardik/pkg/api"
)

func sampleCards() []api.Card {
	c := api.NewCard("people/ada.md", 5, "name: Ada\ncompany: Engines", time.Now())
	c.Name = "Ada"
	c.Company = "Engines"
	c.Email = "ada@example.com"
	return []api.Card{c}
}

func TestWritePlainCards(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlainCards(&buf, sampleCards(), true); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "id") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Ada") || !strings.Contains(lines[1], "people/ada.md:5") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestWritePlainCardsNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlainCards(&buf, sampleCards(), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), "company\t") {
		t.Errorf("headers should be hidden: %q", buf.String())
	}
}

func TestWriteJSONCards(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONCards(&buf, nil, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("nil slice must encode as [], got %q", buf.String())
	}

	buf.Reset()
	if err := WriteJSONCards(&buf, sampleCards(), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded []api.Card
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "Ada" {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}
