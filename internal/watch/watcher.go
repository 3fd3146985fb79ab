// Package watch triggers a callback when watched files change.
package watch

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a set of files and invokes a callback when any of them is
// written, created, removed, or renamed. Rapid successive changes are
// debounced into a single callback invocation.
//
// The parent directories are watched rather than the files themselves, so
// editors that save by writing a new file and renaming it over the old one
// keep triggering events.
type Watcher struct {
	files    map[string]bool // cleaned absolute paths
	dirs     []string
	onChange func()
	debounce time.Duration
	ready    chan struct{}
	done     chan struct{}
	once     sync.Once
}

// New creates a Watcher for the given file paths. The onChange callback is
// invoked after changes have been debounced for the specified duration.
func New(paths []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]bool, len(paths)),
		onChange: onChange,
		debounce: debounce,
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}
	seenDir := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if !seenDir[dir] {
			seenDir[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// Ready is closed once Start has registered its watches.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Start begins watching. It blocks until Stop is called or the underlying
// watcher fails to start.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			log.Printf("warning: failed to watch %s: %v", dir, err)
		}
	}
	close(w.ready)

	// Event processing loop with debouncing.
	var timer *time.Timer
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}

			// Reset debounce timer.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return fsw.Close()
		}
	}
}

// Stop signals the watcher to stop monitoring files. It is safe to call more
// than once.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.done)
	})
}
