// Package notify implements port.Notification as an in-memory toast queue
// that the terminal UI drains on every frame.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/logging"
)

const (
	defaultDurationMs = 3000
	defaultMaxVisible = 3
)

// Toast is one queued notice.
type Toast struct {
	ID        port.NotificationID
	Message   string
	Type      port.NotificationType
	ExpiresAt time.Time
}

// Options configures a Toaster.
type Options struct {
	DefaultDuration time.Duration
	MaxVisible      int
	Now             func() time.Time
}

// Option mutates Options.
type Option func(*Options)

// WithDefaultDuration sets the lifetime used when Show gets 0.
func WithDefaultDuration(d time.Duration) Option {
	return func(o *Options) {
		o.DefaultDuration = d
	}
}

// WithMaxVisible caps the queue; the oldest toast is dropped first.
func WithMaxVisible(n int) Option {
	return func(o *Options) {
		o.MaxVisible = n
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

func defaultOptions() Options {
	return Options{
		DefaultDuration: defaultDurationMs * time.Millisecond,
		MaxVisible:      defaultMaxVisible,
		Now:             time.Now,
	}
}

// Toaster queues notices until they expire or are dismissed.
type Toaster struct {
	opts   Options
	toasts []Toast
	seq    uint64

	// Called after the queue changes, outside the lock
	onChange func()

	mu sync.Mutex
}

var _ port.Notification = (*Toaster)(nil)

// NewToaster creates an empty toast queue.
func NewToaster(opts ...Option) *Toaster {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxVisible <= 0 {
		options.MaxVisible = defaultMaxVisible
	}
	if options.DefaultDuration <= 0 {
		options.DefaultDuration = defaultDurationMs * time.Millisecond
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Toaster{opts: options}
}

// SetOnChange sets a callback fired whenever a toast is added or removed.
func (t *Toaster) SetOnChange(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// Show implements port.Notification.
func (t *Toaster) Show(ctx context.Context, notice port.Notice) port.NotificationID {
	duration := notice.Duration
	if duration <= 0 {
		duration = t.opts.DefaultDuration
	}

	t.mu.Lock()
	t.seq++
	id := port.NotificationID(fmt.Sprintf("toast-%d", t.seq))
	t.toasts = append(t.toasts, Toast{
		ID:        id,
		Message:   notice.Message,
		Type:      notice.Type,
		ExpiresAt: t.opts.Now().Add(duration),
	})
	if over := len(t.toasts) - t.opts.MaxVisible; over > 0 {
		t.toasts = append(t.toasts[:0], t.toasts[over:]...)
	}
	callback := t.onChange
	t.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("notification_id", string(id)).
		Str("type", notice.Type.String()).
		Str("message", notice.Message).
		Msg("notification shown")

	if callback != nil {
		callback()
	}
	return id
}

// Dismiss implements port.Notification.
func (t *Toaster) Dismiss(_ context.Context, id port.NotificationID) {
	t.mu.Lock()
	removed := false
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			removed = true
			break
		}
	}
	callback := t.onChange
	t.mu.Unlock()

	if removed && callback != nil {
		callback()
	}
}

// Clear implements port.Notification.
func (t *Toaster) Clear(_ context.Context) {
	t.mu.Lock()
	hadToasts := len(t.toasts) > 0
	t.toasts = nil
	callback := t.onChange
	t.mu.Unlock()

	if hadToasts && callback != nil {
		callback()
	}
}

// Active drops expired toasts and returns the rest, oldest first.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.opts.Now()
	live := t.toasts[:0]
	for _, toast := range t.toasts {
		if now.Before(toast.ExpiresAt) {
			live = append(live, toast)
		}
	}
	t.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}
