package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReal_SleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Real{}.Sleep(ctx, time.Hour)

	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReal_SleepCompletes(t *testing.T) {
	err := Real{}.Sleep(context.Background(), time.Millisecond)
	assert.NoError(t, err)
}

func TestFake_SleepAdvances(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewFake(start)

	require.NoError(t, c.Sleep(context.Background(), 2*time.Second))
	c.Advance(time.Second)

	assert.Equal(t, start.Add(3*time.Second), c.Now())
	assert.Equal(t, []time.Duration{2 * time.Second}, c.Sleeps())
}

func TestFake_SleepHonoursCancel(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Sleep(ctx, time.Second)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.Sleeps())
}
