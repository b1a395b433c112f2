package service

import (
	"log"
	"sync"

	"alcyxob/training-client/internal/domain"
)

// NotificationQueue keeps the most recent notifications until the UI drains them.
type NotificationQueue struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

func NewNotificationQueue(limit int) *NotificationQueue {
	if limit <= 0 {
		limit = 20
	}
	return &NotificationQueue{limit: limit}
}

func (q *NotificationQueue) Notify(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	if len(q.items) > q.limit {
		q.items = q.items[len(q.items)-q.limit:]
	}
	log.Printf("INFO: Notification [%s/%s]: %s", n.Level, n.Kind, n.Message)
}

// Drain returns the queued notifications, oldest first, and empties the queue.
func (q *NotificationQueue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// RouteTracker records the current navigation root.
type RouteTracker struct {
	mu      sync.RWMutex
	current domain.Screen
}

func NewRouteTracker() *RouteTracker {
	return &RouteTracker{current: domain.ScreenSplash}
}

func (t *RouteTracker) Reset(screen domain.Screen) {
	t.mu.Lock()
	t.current = screen
	t.mu.Unlock()
	log.Printf("INFO: Navigation reset to %s", screen)
}

func (t *RouteTracker) Current() domain.Screen {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}
