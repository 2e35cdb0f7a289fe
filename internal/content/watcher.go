package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // Document edited
	ChangeRemoved                    // Document deleted or renamed away
	ChangeAdded                      // New document appeared
)

// Change represents a detected change under the content root.
type Change struct {
	Kind ChangeKind
	File string // Absolute path
}

// watchDebounce is how long a file must be quiet before its change is emitted.
const watchDebounce = 100 * time.Millisecond

// Watcher monitors a content directory and its blog/about/now
// subdirectories for document changes using fsnotify.
type Watcher struct {
	Dir     string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	quit    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher creates a new watcher for the given content root. Watch errors
// are logged at Warn; a nil logger discards them.
func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
		logger:  logger,
	}, nil
}

// Start begins watching the content root and any existing layout
// subdirectories. Subdirectories created later are picked up as they appear.
// If Start fails the watcher is closed and Stop must not be called.
func (w *Watcher) Start() error {
	if err := w.add(); err != nil {
		w.watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

func (w *Watcher) add() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	for _, sub := range []string{BlogDir, AboutDir, NowDir} {
		p := filepath.Join(w.Dir, sub)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if err := w.watcher.Add(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stop closes the watcher, waits for its loop to exit, and closes Changes.
func (w *Watcher) Stop() {
	close(w.quit)
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event per file.
	type pendingEvent struct {
		at time.Time
		op fsnotify.Op
	}
	pending := make(map[string]pendingEvent)
	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.quit:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && w.isLayoutDir(event.Name) {
				if err := w.watcher.Add(event.Name); err != nil {
					w.logger.Warn("content watch failed", zap.String("dir", event.Name), zap.Error(err))
				}
				continue
			}
			if !isDocument(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				prev := pending[event.Name]
				pending[event.Name] = pendingEvent{at: time.Now(), op: prev.op | event.Op}
			}

		case now := <-ticker.C:
			for file, p := range pending {
				if now.Sub(p.at) < watchDebounce {
					continue
				}
				delete(pending, file)
				if !w.emit(Change{Kind: changeKind(file, p.op), File: file}) {
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watch error", zap.String("dir", w.Dir), zap.Error(err))
		}
	}
}

// emit delivers a change unless the watcher is stopping.
func (w *Watcher) emit(c Change) bool {
	select {
	case w.changes <- c:
		return true
	case <-w.quit:
		return false
	}
}

func (w *Watcher) isLayoutDir(name string) bool {
	if filepath.Dir(name) != filepath.Clean(w.Dir) {
		return false
	}
	switch filepath.Base(name) {
	case BlogDir, AboutDir, NowDir:
		info, err := os.Stat(name)
		return err == nil && info.IsDir()
	}
	return false
}

// changeKind classifies the accumulated operations for a file by its final
// on-disk state.
func changeKind(file string, op fsnotify.Op) ChangeKind {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return ChangeRemoved
	}
	if op.Has(fsnotify.Create) {
		return ChangeAdded
	}
	return ChangeModified
}
