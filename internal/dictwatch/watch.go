package dictwatch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads the engine whenever the dictionary file is written or
// replaced, until ctx is done. The parent directory is watched rather
// than the file itself so that atomic replacements (write to a temporary
// file, then rename) are seen as well.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch dictionary: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(h.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch dictionary: %w", err)
	}
	log.Info().Str("path", target).Msg("watching dictionary file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}
			if err := h.Reload(); err != nil {
				log.Warn().Err(err).Str("path", target).Msg("failed to reload dictionary, keeping the previous one")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("dictionary watcher error")
		}
	}
}
