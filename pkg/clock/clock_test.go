package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeAdvance(t *testing.T) {
	start := time.Unix(1700000000, 0)
	c := NewFake(start)

	var fired []string
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "b") })
	assert.Equal(t, 2, c.Pending())

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, start.Add(100*time.Millisecond), c.Now())
	assert.Equal(t, 1, c.Pending())

	c.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Zero(t, c.Pending())
}

func TestFakeAdvanceOrdering(t *testing.T) {
	c := NewFake(time.Unix(0, 0))

	var fired []int
	c.AfterFunc(200*time.Millisecond, func() { fired = append(fired, 2) })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, 1) })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, 3) })

	c.Advance(time.Second)
	assert.Equal(t, []int{1, 3, 2}, fired, "due time then scheduling order")
}

func TestFakeCallbackSchedulesTimer(t *testing.T) {
	c := NewFake(time.Unix(0, 0))

	var chained bool
	c.AfterFunc(time.Millisecond, func() {
		c.AfterFunc(time.Millisecond, func() { chained = true })
	})

	c.Advance(time.Millisecond)
	assert.False(t, chained, "nested timer waits for its own due time")
	require.Equal(t, 1, c.Pending())

	c.Advance(time.Millisecond)
	assert.True(t, chained)
}

func TestFakeSleepReturnsImmediately(t *testing.T) {
	c := NewFake(time.Unix(0, 0))

	done := make(chan error, 1)
	go func() { done <- c.Sleep(context.Background(), time.Hour) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("fake sleep blocked")
	}
}

func TestFakeSleepCanceledContext(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Sleep(ctx, time.Hour), context.Canceled)
}

func TestRealSleep(t *testing.T) {
	c := New()

	t.Run("zero duration", func(t *testing.T) {
		assert.NoError(t, c.Sleep(context.Background(), 0))
	})

	t.Run("context cancel unblocks", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go cancel()
		assert.ErrorIs(t, c.Sleep(ctx, time.Minute), context.Canceled)
	})
}
