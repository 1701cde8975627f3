package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DEBOUNCE_SECS = 2

// Watcher monitors the config file for changes and emits events. Editors
// tend to fire several write events per save, so events are debounced.
type Watcher struct {
	watcher       *fsnotify.Watcher
	configPath    string
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	running       bool
	stopChan      chan struct{}
	eventChan     chan<- ConfigEvent
}

// NewWatcher creates a new config file watcher
func NewWatcher(eventChan chan<- ConfigEvent) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:   watcher,
		eventChan: eventChan,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins watching the config file for changes. The parent directory is
// watched because editors replace the file on save, which would drop a watch
// on the file itself.
func (w *Watcher) Start(ctx context.Context, configPath string) error {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}
	w.configPath = absPath
	slog.Info("Starting config watcher", "path", absPath)

	if err := w.watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	w.running = true

	go w.watchLoop(ctx)

	slog.Info("Config watcher started successfully")
	return nil
}

// Stop stops the config watcher and closes the event channel, so consumers
// ranging over it exit.
func (w *Watcher) Stop() {
	if !w.running {
		return
	}

	slog.Info("Stopping config watcher")
	close(w.stopChan)

	w.debounceMutex.Lock()
	w.running = false
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	close(w.eventChan)
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

// watchLoop processes file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent processes a single file system event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	eventPath, err := filepath.Abs(event.Name)
	if err != nil || eventPath != w.configPath {
		return
	}

	slog.Debug("Detected config file change", "file", event.Name, "op", event.Op.String())

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(time.Duration(DEBOUNCE_SECS)*time.Second, func() {
		w.emitDebounceEvent()
	})
}

// emitDebounceEvent emits a config event after the debounce period. A timer
// that fires during shutdown finds running false and sends nothing.
func (w *Watcher) emitDebounceEvent() {
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if !w.running {
		return
	}

	event := ConfigEvent{
		Path:      w.configPath,
		EventType: ConfigChanged,
		Timestamp: time.Now(),
	}

	select {
	case w.eventChan <- event:
		slog.Info("Emitted config event after debounce", "path", event.Path)
	default:
		slog.Warn("Event channel full, dropping config event", "path", event.Path)
	}
}
