// Package watch re-runs the merge whenever a watched tree changes.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 500 * time.Millisecond

// Watcher watches a directory tree and invokes its callback, debounced,
// after write or create events. Directories created while watching are
// picked up as they appear.
type Watcher struct {
	watcher  *fsnotify.Watcher
	callback func()
	errs     func(error)

	mu    sync.Mutex
	timer *time.Timer
}

// New starts watching every directory under root. errs receives watch
// errors; it may be nil.
func New(root string, callback func(), errs func(error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cannot create file watcher: %w", err)
	}
	if errs == nil {
		errs = func(error) {}
	}

	w := &Watcher{
		watcher:  fsWatcher,
		callback: callback,
		errs:     errs,
	}

	if err := w.addTree(root); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("cannot watch %s: %w", root, err)
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher and cancels any pending callback.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

// addTree registers every directory under root, skipping .git.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		}
		return nil
	})
}

// bump restarts the debounce timer. The timer is shared with Close, which
// runs on the caller's goroutine.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounce, w.callback)
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.errs(err)
					}
				}
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				w.bump()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.errs(err)
		}
	}
}
