package config

import (
	"context"
	"os"
	"time"
)

// FileWatcher polls file modification times and reports changed paths.
// It uses only the standard library: the files are few and polled rarely, so
// an inotify dependency buys nothing.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval and records
// their current modification times.
func NewFileWatcher(paths []string, interval time.Duration) *FileWatcher {
	w := &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		lastMTime: make(map[string]time.Time),
	}
	w.Poll()
	return w
}

// Run polls until ctx is done, calling onChange from the calling goroutine
// for each path that changed since the previous poll.
func (w *FileWatcher) Run(ctx context.Context, onChange func(string)) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			for _, p := range w.Poll() {
				onChange(p)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// SetPaths replaces the watched paths. Paths already watched keep their
// recorded mtime; new ones are primed without being reported.
func (w *FileWatcher) SetPaths(paths []string) {
	seen := make(map[string]time.Time, len(paths))
	for _, p := range paths {
		if mt, ok := w.lastMTime[p]; ok {
			seen[p] = mt
		}
	}
	w.Paths = paths
	w.lastMTime = seen
	w.Poll()
}

// Poll checks mtimes and returns the files that changed since the last poll.
// Files seen for the first time are recorded, not reported.
func (w *FileWatcher) Poll() []string {
	var changed []string
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// if file missing, keep going; it is picked up once it reappears
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if !ok {
			w.lastMTime[p] = mt
			continue
		}
		if mt.After(last) {
			w.lastMTime[p] = mt
			changed = append(changed, p)
		}
	}
	return changed
}
