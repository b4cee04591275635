// Package scan finds contact-card fenced blocks in markdown files.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mireku/cardik/internal/card"
	"github.com/mireku/cardik/pkg/api"
)

// DefaultPattern matches every markdown file under the vault root.
const DefaultPattern = "**/*.md"

// blockLang is the fence info string that marks a contact-card block.
const blockLang = "contact-card"

// File extracts every contact-card block from one markdown file. Line is the
// 1-based line of the opening fence. An unclosed fence runs to end of file.
func File(path string) ([]api.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	defer f.Close()

	now := time.Now()
	var cards []api.Card
	var body []string
	inBlock := false
	fenceLine := 0
	lineNo := 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if !inBlock {
			if strings.HasPrefix(trimmed, "```") && strings.TrimSpace(strings.TrimPrefix(trimmed, "```")) == blockLang {
				inBlock = true
				fenceLine = lineNo
				body = body[:0]
			}
			continue
		}
		if trimmed == "```" {
			cards = append(cards, newCard(path, fenceLine, strings.Join(body, "\n"), now))
			inBlock = false
			continue
		}
		body = append(body, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	if inBlock {
		cards = append(cards, newCard(path, fenceLine, strings.Join(body, "\n"), now))
	}
	return cards, nil
}

// newCard denormalizes the headline fields so listings and search can work
// off the index alone. A malformed block is still indexed, just without them.
func newCard(path string, line int, raw string, now time.Time) api.Card {
	c := api.NewCard(path, line, raw, now)
	rec, err := card.Parse(raw)
	if err != nil || rec == nil {
		return c
	}
	c.Name = rec.Get("name")
	c.Title = rec.Get("title")
	c.Company = rec.Get("company")
	c.Email = rec.Get("email")
	return c
}

// Vault walks root with a doublestar glob (DefaultPattern when empty) and
// collects every block found, in path order. Unreadable files abort the scan.
func Vault(root, pattern string) ([]api.Card, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	var cards []api.Card
	for _, rel := range matches {
		found, err := File(filepath.Join(root, rel))
		if err != nil {
			return nil, err
		}
		// store vault-relative paths so the index survives a vault move
		for i := range found {
			found[i].Path = rel
			found[i].ID = found[i].Hash()
		}
		cards = append(cards, found...)
	}
	return cards, nil
}
