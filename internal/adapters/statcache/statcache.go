// Package statcache implements a process-wide memoised mtime lookup,
// the concrete ports.Stater consumed by the staleness oracle.
package statcache

import (
	"os"
	"sort"
	"sync"
	"time"

	"github.com/foundryhq/cbe/internal/core/domain"
	"github.com/foundryhq/cbe/internal/core/ports"
)

type entry struct {
	path domain.Path
	time time.Time
	err  error
}

// StatCache memoises os.Stat results in a slice sorted by path,
// binary-searched, and guarded by a reader/writer lock (spec.md §4.2).
// A single instance is meant to live for the duration of one build.
type StatCache struct {
	mu      sync.RWMutex
	entries []entry
}

var _ ports.Stater = (*StatCache)(nil)

// New returns an empty StatCache.
func New() *StatCache {
	return &StatCache{}
}

// ModTime resolves path's last-write time, caching the result (success
// or failure) for subsequent lookups.
func (c *StatCache) ModTime(path domain.Path) (time.Time, error) {
	if e, ok := c.lookup(path); ok {
		return e.time, e.err
	}
	return c.getOrUpdate(path)
}

func (c *StatCache) lookup(path domain.Path) (entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.search(path)
	if i < len(c.entries) && c.entries[i].path == path {
		return c.entries[i], true
	}
	return entry{}, false
}

// getOrUpdate is the exclusive-lock slow path: re-check under the write
// lock in case another goroutine populated the entry between the shared
// lookup and here, then stat and insert.
func (c *StatCache) getOrUpdate(path domain.Path) (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.search(path)
	if i < len(c.entries) && c.entries[i].path == path {
		return c.entries[i].time, c.entries[i].err
	}

	info, err := os.Stat(path.String())
	var mtime time.Time
	if err == nil {
		mtime = info.ModTime()
	}

	c.entries = append(c.entries, entry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = entry{path: path, time: mtime, err: err}

	return mtime, err
}

// search returns the index of path's entry, or the insertion point that
// keeps c.entries sorted by path string.
func (c *StatCache) search(path domain.Path) int {
	target := path.String()
	return sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].path.String() >= target
	})
}
