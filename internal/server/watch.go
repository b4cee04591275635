package server

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the scan cache whenever the vault changes, so the next
// request re-renders fresh content. It blocks until ctx is done.
func (s *Server) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	root := s.cfg.GetString("vault_dir")
	addDirs := func() {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				_ = w.Add(path)
			}
			return nil
		})
	}
	addDirs()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.log.Printf("serve: vault changed (%s), rescanning on next request", ev.Name)
			s.Invalidate()
			// new directories need their own watches
			if ev.Op.Has(fsnotify.Create) {
				addDirs()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Printf("serve: watch error: %v", err)
		}
	}
}
