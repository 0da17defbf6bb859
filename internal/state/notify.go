package state

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zenv-lang/zenvhub/internal/core"
)

// DefaultNotificationTTL is how long a notification stays in the queue
// when no explicit duration is given.
const DefaultNotificationTTL = 3 * time.Second

// Notifier manages the transient notification queue. Entries append in
// arrival order and leave through a single removal path, whether the
// trigger is the expiry timer or an explicit call. IDs come from an
// atomic counter, so two notifications created in the same clock tick
// can never collide.
//
// The notifier's mutex covers the whole read-modify-write of the queue;
// container subscribers run inside that window and must not call back
// into the notifier.
type Notifier struct {
	queue *Container[[]core.Notification]

	seq    atomic.Int64
	mu     sync.Mutex
	timers map[int64]*time.Timer
}

// NewNotifier creates a notifier appending into the given container.
func NewNotifier(queue *Container[[]core.Notification]) *Notifier {
	return &Notifier{
		queue:  queue,
		timers: make(map[int64]*time.Timer),
	}
}

// Add appends a notification and returns its id. A positive duration
// schedules automatic removal once it elapses; zero or negative means the
// entry persists until Remove is called.
func (n *Notifier) Add(message string, typ core.NotificationType, duration time.Duration) int64 {
	id := n.seq.Add(1)

	n.mu.Lock()
	defer n.mu.Unlock()

	n.queue.Set(append(n.queue.Get(), core.Notification{
		ID:      id,
		Message: message,
		Type:    typ,
	}))

	if duration > 0 {
		n.timers[id] = time.AfterFunc(duration, func() {
			n.Remove(id)
		})
	}
	return id
}

// Info adds an info notification with the default TTL.
func (n *Notifier) Info(message string) int64 {
	return n.Add(message, core.NoticeInfo, DefaultNotificationTTL)
}

// Success adds a success notification with the default TTL.
func (n *Notifier) Success(message string) int64 {
	return n.Add(message, core.NoticeSuccess, DefaultNotificationTTL)
}

// Error adds an error notification with the default TTL.
func (n *Notifier) Error(message string) int64 {
	return n.Add(message, core.NoticeError, DefaultNotificationTTL)
}

// Remove deletes the notification with the given id and cancels its
// pending expiry timer, if any. Removing an unknown or already-removed id
// is a no-op, which also makes a late timer fire harmless.
func (n *Notifier) Remove(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}

	current := n.queue.Get()
	for i, entry := range current {
		if entry.ID == id {
			next := make([]core.Notification, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			n.queue.Set(next)
			return
		}
	}
}
