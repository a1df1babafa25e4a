package resize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arrival struct {
	msg SettledMsg
	at  time.Time
}

func TestCoordinator_BurstSettlesOnce(t *testing.T) {
	c := New(DefaultQuiet)
	out := make(chan arrival, 5)

	var lastObserved time.Time
	for i := 0; i < 5; i++ {
		cmd := c.Observe(Size{Width: 80 + i, Height: 24})
		lastObserved = time.Now()
		go func() {
			msg := cmd()
			out <- arrival{msg: msg.(SettledMsg), at: time.Now()}
		}()
		if i < 4 {
			time.Sleep(100 * time.Millisecond)
		}
	}

	settled := 0
	for i := 0; i < 5; i++ {
		a := <-out
		if size, ok := c.Settle(a.msg); ok {
			settled++
			assert.Equal(t, Size{Width: 84, Height: 24}, size)
			assert.GreaterOrEqual(t, a.at.Sub(lastObserved), DefaultQuiet)
		}
	}
	assert.Equal(t, 1, settled)
	assert.False(t, c.Pending())
}

func TestCoordinator_StaleTickIgnored(t *testing.T) {
	c := New(time.Millisecond)
	c.Observe(Size{Width: 10, Height: 10})
	c.Observe(Size{Width: 20, Height: 10})

	_, ok := c.Settle(SettledMsg{Seq: 1, Size: Size{Width: 10, Height: 10}})
	assert.False(t, ok)

	size, ok := c.Settle(SettledMsg{Seq: 2, Size: Size{Width: 20, Height: 10}})
	require.True(t, ok)
	assert.Equal(t, 20, size.Width)

	_, ok = c.Settle(SettledMsg{Seq: 2, Size: Size{Width: 20, Height: 10}})
	assert.False(t, ok, "a sequence settles at most once")
}

func TestNew_DefaultQuiet(t *testing.T) {
	assert.Equal(t, DefaultQuiet, New(0).Quiet())
	assert.Equal(t, time.Second, New(time.Second).Quiet())
}
