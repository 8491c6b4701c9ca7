package watch

import (
	"fmt"
	"sync"
	"time"

	"smartrename/internal/log"
	"smartrename/internal/rename"
	"smartrename/pkg/types"
)

// PreviewStatus represents the current state of a Previewer
type PreviewStatus struct {
	Running      bool      // Whether the previewer is currently active
	Directory    string    // Directory being watched
	LastActivity time.Time // Time of the last change batch
	Previews     int       // Previews computed, including the initial one
}

// PreviewFunc receives every recomputed plan, or the reason none could be made
type PreviewFunc func(plan []types.RenamePair, err error)

// Previewer keeps a rename preview current while a directory changes. It
// owns its renamer; callers must not use the renamer concurrently.
type Previewer struct {
	request  rename.PlanRequest
	renamer  rename.Renamer
	watcher  *Watcher
	callback PreviewFunc

	mutex        sync.RWMutex
	previews     int
	lastActivity time.Time
	running      bool
	done         chan struct{}
}

// NewPreviewer creates a previewer for req.Directory
func NewPreviewer(req rename.PlanRequest, renamer rename.Renamer, callback PreviewFunc, opts ...Option) (*Previewer, error) {
	if renamer == nil {
		renamer = rename.CurrentRenamerFactory()
	}
	watcher, err := New(req.Directory, opts...)
	if err != nil {
		return nil, err
	}
	return &Previewer{
		request:  req,
		renamer:  renamer,
		watcher:  watcher,
		callback: callback,
		done:     make(chan struct{}),
	}, nil
}

// Start computes the first preview and then recomputes it after every batch of changes
func (p *Previewer) Start() error {
	p.mutex.Lock()
	if p.running {
		p.mutex.Unlock()
		return fmt.Errorf("previewer is already running")
	}
	p.running = true
	p.mutex.Unlock()

	if err := p.watcher.Start(); err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	p.refresh()
	go p.processChanges()
	return nil
}

func (p *Previewer) processChanges() {
	defer close(p.done)
	for change := range p.watcher.Changes() {
		log.LogWithFields(log.F("directory", change.Directory), log.F("names", len(change.Names))).
			Debug("Directory changed, refreshing preview")
		p.mutex.Lock()
		p.lastActivity = change.Timestamp
		p.mutex.Unlock()
		p.refresh()
	}
}

func (p *Previewer) refresh() {
	plan, err := p.renamer.Preview(p.request)

	p.mutex.Lock()
	p.previews++
	callback := p.callback
	p.mutex.Unlock()

	if callback != nil {
		callback(plan, err)
	}
}

// Stop halts watching and waits for an in-flight preview to finish
func (p *Previewer) Stop() {
	p.mutex.Lock()
	running := p.running
	p.running = false
	p.mutex.Unlock()

	p.watcher.Stop()
	if running {
		<-p.done
	}
}

// SetCallback replaces the function called with each preview
func (p *Previewer) SetCallback(cb PreviewFunc) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.callback = cb
}

// Status returns the current status of the previewer
func (p *Previewer) Status() PreviewStatus {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return PreviewStatus{
		Running:      p.running,
		Directory:    p.request.Directory,
		LastActivity: p.lastActivity,
		Previews:     p.previews,
	}
}
