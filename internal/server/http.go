// Package server exposes the vault as a browsable HTML preview.
package server

import (
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/spf13/viper"

	"github.com/mireku/cardik/internal/config"
	"github.com/mireku/cardik/internal/present/format"
	"github.com/mireku/cardik/internal/render"
	"github.com/mireku/cardik/internal/scan"
	"github.com/mireku/cardik/pkg/api"
)

// Server renders every contact card in the vault onto one preview page.
type Server struct {
	cfg *viper.Viper
	log *log.Logger

	mu     sync.Mutex
	cached []api.Card // nil means the next request rescans
}

func New(cfg *viper.Viper, logger *log.Logger) *Server {
	return &Server{cfg: cfg, log: logger}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/cards.json", s.handleCardsJSON)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// Invalidate drops the cached scan; the next request rescans the vault.
func (s *Server) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Server) cards() ([]api.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	cards, err := scan.Vault(s.cfg.GetString("vault_dir"), s.cfg.GetString("vault_pattern"))
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []api.Card{}
	}
	s.cached = cards
	return cards, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	cards, err := s.cards()
	if err != nil {
		s.log.Printf("serve: scan failed: %v", err)
		http.Error(w, "vault scan failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	WritePage(w, cards, config.RenderOptions(s.cfg))
}

// WritePage renders every card onto one self-contained HTML page. A failing
// block renders its own error node and never takes its neighbors down with it.
func WritePage(w io.Writer, cards []api.Card, opts render.Options) {
	fmt.Fprint(w, pageHeader)
	if len(cards) == 0 {
		fmt.Fprint(w, `<p class="empty">No contact-card blocks found in the vault.</p>`)
	}
	for _, c := range cards {
		fmt.Fprintf(w, `<section class="card-block"><h2>%s:%d</h2>%s</section>`,
			html.EscapeString(c.Path), c.Line, render.Block(c.Raw, opts))
	}
	fmt.Fprint(w, pageFooter)
}

func (s *Server) handleCardsJSON(w http.ResponseWriter, r *http.Request) {
	cards, err := s.cards()
	if err != nil {
		s.log.Printf("serve: scan failed: %v", err)
		http.Error(w, "vault scan failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = format.WriteJSONCards(w, cards, false)
}

const pageHeader = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>cardik preview</title>
<style>
body { font-family: sans-serif; margin: 2rem; background: #f5f5f5; }
.card-block h2 { font-size: 0.8rem; color: #888; font-weight: normal; }
.contact-card-container { margin-bottom: 1.5rem; }
.contact-card { display: flex; gap: 1rem; background: #fff; border-radius: 8px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.15); max-width: 480px; }
.contact-card-photo img { width: 120px; border-radius: 8px; }
.contact-card-company-logo img, .contact-card-logo img { width: 50px; }
.contact-card-name { font-weight: bold; font-size: 1.1rem; }
.contact-card-title { color: #555; }
.contact-card-error { color: #b00020; background: #fff0f0; padding: .5rem 1rem; border-radius: 4px; }
.contact-card-hidden { display: none; }
a { color: inherit; }
</style></head><body><h1>cardik preview</h1>
`

const pageFooter = "</body></html>\n"
