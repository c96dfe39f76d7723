package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mosaic/internal/application/port"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestToaster_ShowAndExpire(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	toaster := NewToaster(WithClock(clock.Now), WithDefaultDuration(time.Second))
	ctx := context.Background()

	first := toaster.Show(ctx, port.Notice{Message: "Maximum number of windows (5) reached!", Type: port.NotificationWarning})
	second := toaster.Show(ctx, port.Notice{Message: "Refreshed AAPL", Type: port.NotificationInfo, Duration: 5 * time.Second})
	assert.NotEqual(t, first, second)

	active := toaster.Active()
	require.Len(t, active, 2)
	assert.Equal(t, port.NotificationWarning, active[0].Type)

	clock.Advance(1500 * time.Millisecond)
	active = toaster.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second, active[0].ID)

	clock.Advance(5 * time.Second)
	assert.Empty(t, toaster.Active())
}

func TestToaster_MaxVisibleDropsOldest(t *testing.T) {
	toaster := NewToaster(WithMaxVisible(2))
	ctx := context.Background()

	toaster.Show(ctx, port.Notice{Message: "one", Type: port.NotificationInfo})
	toaster.Show(ctx, port.Notice{Message: "two", Type: port.NotificationInfo})
	toaster.Show(ctx, port.Notice{Message: "three", Type: port.NotificationInfo})

	active := toaster.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "two", active[0].Message)
	assert.Equal(t, "three", active[1].Message)
}

func TestToaster_DismissAndClear(t *testing.T) {
	toaster := NewToaster()
	ctx := context.Background()

	changes := 0
	toaster.SetOnChange(func() { changes++ })

	id := toaster.Show(ctx, port.Notice{Message: "one", Type: port.NotificationInfo})
	toaster.Show(ctx, port.Notice{Message: "two", Type: port.NotificationError})
	assert.Equal(t, 2, changes)

	toaster.Dismiss(ctx, id)
	toaster.Dismiss(ctx, "missing")
	assert.Equal(t, 3, changes)
	require.Len(t, toaster.Active(), 1)

	toaster.Clear(ctx)
	toaster.Clear(ctx)
	assert.Equal(t, 4, changes)
	assert.Empty(t, toaster.Active())
}
