package core

import (
	"testing"
	"time"
)

func TestEventForKey(t *testing.T) {
	tests := []struct {
		key      rune
		expected EventType
	}{
		{'q', EventExit},
		{'Q', EventExit},
		{0x03, EventExit},
		{'r', EventReset},
		{'R', EventReset},
		{'x', EventNone},
		{' ', EventNone},
	}

	for _, tc := range tests {
		if result := EventForKey(tc.key); result != tc.expected {
			t.Errorf("EventForKey(%q) = %v, expected %v", tc.key, result, tc.expected)
		}
	}
}

func TestResizeEvent(t *testing.T) {
	ev := ResizeEvent(120, 40)
	if ev.Type != EventResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("ResizeEvent(120, 40) = %+v", ev)
	}
}

func TestStatsFPS(t *testing.T) {
	s := Stats{Frames: 500, Elapsed: 10 * time.Second}
	if s.FPS() != 50 {
		t.Errorf("FPS() = %v, expected 50", s.FPS())
	}
	if (Stats{Frames: 3}).FPS() != 0 {
		t.Error("FPS() with zero elapsed should be 0")
	}
}
