package corpus

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce batches bursts of file events (editors often write a file
// several times in quick succession) into a single reload.
const reloadDebounce = 500 * time.Millisecond

// WatchCurated watches the directory of a curated word-list glob and reloads
// the curated corpus when matching files change. Each reload builds a fresh
// Corpus and swaps it atomically, so in-flight requests keep the corpus they
// started with. The watcher stops when ctx is cancelled.
func (p *Provider) WatchCurated(ctx context.Context, pattern string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create word-list watcher: %w", err)
	}
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if err := w.Add(filepath.FromSlash(base)); err != nil {
		w.Close()
		return fmt.Errorf("watch word-list directory %s: %w", base, err)
	}
	go p.watchLoop(ctx, w, pattern)
	return nil
}

func (p *Provider) watchLoop(ctx context.Context, w *fsnotify.Watcher, pattern string) {
	defer w.Close()

	debounce := time.NewTimer(reloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
				continue
			}
			match, err := doublestar.Match(filepath.ToSlash(pattern), filepath.ToSlash(ev.Name))
			if err != nil || !match {
				continue
			}
			debounce.Reset(reloadDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] Word-list watcher error: %v", err)
		case <-debounce.C:
			c, err := LoadFiles(pattern)
			if err != nil {
				log.Printf("[WARN] Curated list reload failed, keeping previous corpus: %v", err)
				continue
			}
			p.SetCurated(c)
			log.Printf("[INFO] Curated list reloaded: %d words", c.Len())
		}
	}
}
