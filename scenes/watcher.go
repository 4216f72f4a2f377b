package scenes

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LevelWatcher reports edits to room files on disk. A burst of events is
// reported once, debounce after its last event.
type LevelWatcher struct {
	watcher  *fsnotify.Watcher
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
	debounce time.Duration
}

func NewLevelWatcher(dirs ...string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &LevelWatcher{
		watcher:  w,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}
	go watcher.run()
	return watcher, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Changed returns the next changed file without blocking.
func (w *LevelWatcher) Changed() (string, bool) {
	select {
	case name, ok := <-w.Events:
		return name, ok
	default:
		return "", false
	}
}

func (w *LevelWatcher) run() {
	w.loop(w.watcher.Events, w.watcher.Errors)
}

// loop collects room file events and reports each changed file once no
// event has arrived for debounce, so a truncate followed by a write yields a
// single report after the write.
func (w *LevelWatcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	// Only loop sends on these, so closing here can't race a send.
	defer close(w.Events)
	defer close(w.Errors)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]struct{})
	var settled <-chan time.Time
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isLevelFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)
			settled = timer.C
		case <-settled:
			settled = nil
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			clear(pending)
			for _, name := range names {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default: // drop while the last one is unread
			}
		case <-w.closeCh:
			return
		}
	}
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".tmx", ".tsx":
		return true
	}
	return false
}
