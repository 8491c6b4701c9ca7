// Package watch reports changes to a scanned directory so front ends can mark
// their preview stale and scan again.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"smartrename/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the directory must stay quiet before a batch
// of changes is delivered.
const DefaultDebounce = 250 * time.Millisecond

// Change is a debounced batch of events for one directory
type Change struct {
	Directory string
	Names     []string // base names touched, sorted and unique
	Ops       fsnotify.Op
	Timestamp time.Time
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the quiet period before a batch is delivered
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors a single directory for changes using fsnotify.
// Subdirectories are not watched.
type Watcher struct {
	directory string
	debounce  time.Duration

	// Channel delivering batches; closed when the event loop exits
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}
	done     chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
	closed  bool
}

// New creates a watcher for directory
func New(directory string, opts ...Option) (*Watcher, error) {
	info, err := os.Stat(directory)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", directory)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(directory); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to add directory %s to watcher: %w", directory, err)
	}

	w := &Watcher{
		directory: directory,
		debounce:  DefaultDebounce,
		changes:   make(chan Change, 4),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		fsWatcher: fsWatcher,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Directory returns the watched directory
func (w *Watcher) Directory() string {
	return w.directory
}

// Changes returns the channel that delivers batches of changes
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the event loop. A stopped watcher cannot be restarted.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	if w.closed {
		return fmt.Errorf("watcher already stopped")
	}
	w.running = true

	go w.loop()

	log.LogWithFields(log.F("directory", w.directory)).Info("Watching directory")
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = map[string]bool{}
		ops     fsnotify.Op
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Permission changes do not affect names
			if event.Op == fsnotify.Chmod {
				continue
			}
			pending[filepath.Base(event.Name)] = true
			ops |= event.Op
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			change := Change{
				Directory: w.directory,
				Names:     sortedKeys(pending),
				Ops:       ops,
				Timestamp: time.Now(),
			}
			pending = map[string]bool{}
			ops = 0

			select {
			case w.changes <- change:
			case <-w.stopChan:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("directory", w.directory), log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the event loop, releases the fsnotify watch and closes the
// Changes channel. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return
	}
	w.closed = true

	if w.running {
		close(w.stopChan)
		<-w.done
	} else {
		close(w.changes)
	}

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false
	log.LogWithFields(log.F("directory", w.directory)).Debug("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
