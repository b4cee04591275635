// Package wire aggregates the services a command needs for easy injection.
package wire

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/mireku/cardik/internal/config"
	"github.com/mireku/cardik/internal/index"
)

// App carries the loaded configuration and lazily opened services.
type App struct {
	Cfg *viper.Viper
	Log *log.Logger

	mu  sync.Mutex
	idx *index.Store
}

// BuildApp wires dependencies with the provided config. The index database is
// not opened here; commands that never touch it should not create it.
func BuildApp(_ context.Context, cfg *viper.Viper) (*App, error) {
	logger := log.New(os.Stderr, "cardik ", log.LstdFlags)
	return &App{Cfg: cfg, Log: logger}, nil
}

// Index opens the card index on first use and reuses it afterwards.
func (a *App) Index(ctx context.Context) (*index.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.idx != nil {
		return a.idx, nil
	}
	store, err := index.Open(ctx, config.ResolveDBPath(a.Cfg))
	if err != nil {
		return nil, err
	}
	a.idx = store
	return store, nil
}

// Close releases any opened services.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.idx == nil {
		return nil
	}
	err := a.idx.Close()
	a.idx = nil
	return err
}
