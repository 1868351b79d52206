package logic

import (
	"log"
	"strings"
	"sync"
)

// MemoryRouter is an in-memory Router with a back stack
type MemoryRouter struct {
	mu      sync.Mutex
	current string
	history []string
}

var _ Router = (*MemoryRouter)(nil)

// NewMemoryRouter creates a router positioned at start
func NewMemoryRouter(start string) *MemoryRouter {
	return &MemoryRouter{current: NormalizePath(start)}
}

func (r *MemoryRouter) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate moves to path. Navigating to the current path is a no-op.
func (r *MemoryRouter) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path = NormalizePath(path)
	if path == r.current {
		return
	}
	r.history = append(r.history, r.current)
	log.Printf("Router: %s -> %s", r.current, path)
	r.current = path
}

// Back returns to the previous path. It reports false when there is no history.
func (r *MemoryRouter) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}

// Depth returns the number of entries on the back stack
func (r *MemoryRouter) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// NormalizePath ensures a leading slash and strips trailing slashes (except for the root)
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
