package climb

import (
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	c := FixedClock{Step: 16 * time.Millisecond}
	for i := 0; i < 3; i++ {
		if got := c.Elapsed(); got != 16*time.Millisecond {
			t.Errorf("Elapsed() = %v, want 16ms", got)
		}
	}
}

func TestWallClock(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewWallClock(func() time.Time { return now }, 100*time.Millisecond)

	tests := []struct {
		name    string
		advance time.Duration
		want    time.Duration
	}{
		{"measured", 20 * time.Millisecond, 20 * time.Millisecond},
		{"capped", time.Second, 100 * time.Millisecond},
		{"backwards", -time.Second, 0},
		{"still", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = now.Add(tt.advance)
			if got := c.Elapsed(); got != tt.want {
				t.Errorf("Elapsed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWallClockReset(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewWallClock(func() time.Time { return now }, 0)

	now = now.Add(time.Minute)
	c.Reset()
	now = now.Add(5 * time.Millisecond)

	if got := c.Elapsed(); got != 5*time.Millisecond {
		t.Errorf("Elapsed() after Reset = %v, want 5ms", got)
	}
}
