package input

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestInput(t *testing.T, vp Viewport) (*Input, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cfg := DefaultConfig()
	cfg.Now = clock.Now
	return New(cfg, vp), clock
}

// frame processes events, runs check, then ends the frame.
func frame(in *Input, events []EventInfo, check func()) {
	for _, e := range events {
		in.EnqueueEvent(e)
	}
	in.ProcessEnqueuedEvents()
	if check != nil {
		check()
	}
	in.OnFrameFinished()
}

func keyDown(k Key) EventInfo { return EventInfo{Type: EventKeyDown, Key: k} }

func keyUp(k Key) EventInfo { return EventInfo{Type: EventKeyUp, Key: k} }

func mouseDown(b MouseButton) EventInfo { return EventInfo{Type: EventMouseDown, Button: b} }

func mouseUp(b MouseButton) EventInfo { return EventInfo{Type: EventMouseUp, Button: b} }

func TestNeverPressed(t *testing.T) {
	in, _ := newTestInput(t, nil)

	for _, k := range []Key{KeyA, KeyEscape, KeySpace, Key(999)} {
		if in.KeyPressed(k) || in.KeyDown(k) || in.KeyUp(k) {
			t.Errorf("key %d should report nothing before any event", k)
		}
	}
	for _, b := range []MouseButton{MouseLeft, MouseRight, MouseX2} {
		if in.MouseButtonPressed(b) || in.MouseButtonDown(b) || in.MouseButtonUp(b) || in.MouseButtonDoubleClick(b) {
			t.Errorf("button %d should report nothing before any event", b)
		}
	}
}

func TestKeyLifecycle(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{keyDown(KeyW)}, func() {
		if !in.KeyDown(KeyW) {
			t.Error("KeyDown should be true on the press frame")
		}
		if !in.KeyPressed(KeyW) {
			t.Error("KeyPressed should be true on the press frame")
		}
		if in.KeyUp(KeyW) {
			t.Error("KeyUp should be false on the press frame")
		}
	})

	frame(in, nil, func() {
		if in.KeyDown(KeyW) {
			t.Error("KeyDown should be cleared after one frame")
		}
		if !in.KeyPressed(KeyW) {
			t.Error("KeyPressed should hold until release")
		}
	})

	frame(in, []EventInfo{keyUp(KeyW)}, func() {
		if !in.KeyUp(KeyW) {
			t.Error("KeyUp should be true on the release frame")
		}
		if in.KeyDown(KeyW) {
			t.Error("KeyDown should stay false on the release frame")
		}
	})

	frame(in, nil, func() {
		if in.KeyPressed(KeyW) || in.KeyDown(KeyW) || in.KeyUp(KeyW) {
			t.Error("released key should be forgotten after the release frame")
		}
		if _, ok := in.keys[KeyW]; ok {
			t.Error("released key should be removed from the state map")
		}
	})
}

func TestPressAndReleaseSameFrame(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{keyDown(KeyQ), keyUp(KeyQ)}, func() {
		if !in.KeyDown(KeyQ) || !in.KeyPressed(KeyQ) {
			t.Error("press should survive a release in the same frame")
		}
		if !in.KeyUp(KeyQ) {
			t.Error("release in the same frame should set KeyUp")
		}
	})

	frame(in, nil, func() {
		if in.KeyPressed(KeyQ) || in.KeyUp(KeyQ) {
			t.Error("key should be gone one frame after the release")
		}
	})
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{keyUp(KeyE), mouseUp(MouseLeft)}, func() {
		if in.KeyUp(KeyE) {
			t.Error("release without a press should not set KeyUp")
		}
		if in.MouseButtonUp(MouseLeft) {
			t.Error("release without a press should not set MouseButtonUp")
		}
	})
	if len(in.keys) != 0 || len(in.buttons) != 0 {
		t.Errorf("state maps should stay empty, got %d keys, %d buttons", len(in.keys), len(in.buttons))
	}
}

func TestReleaseThenPressSameFrameKeepsUp(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{keyDown(KeyR)}, nil)
	frame(in, []EventInfo{keyUp(KeyR), keyDown(KeyR)}, func() {
		if !in.KeyUp(KeyR) || !in.KeyDown(KeyR) || !in.KeyPressed(KeyR) {
			t.Errorf("release then press should report both edges, got %+v", in.keys[KeyR])
		}
	})
}

func TestAutoRepeatDropped(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{{Type: EventKeyDown, Key: KeyA, Repeat: true}}, func() {
		if in.KeyPressed(KeyA) || in.KeyDown(KeyA) {
			t.Error("auto-repeat press should not change state")
		}
	})

	frame(in, []EventInfo{keyDown(KeyA)}, nil)
	frame(in, []EventInfo{{Type: EventKeyUp, Key: KeyA, Repeat: true}}, func() {
		if in.KeyUp(KeyA) || !in.KeyPressed(KeyA) {
			t.Error("auto-repeat release should not change state")
		}
	})
}

func TestUnknownEventIgnored(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{{Type: EventNone, Key: KeyA}, {Type: EventType(42), Key: KeyA}}, func() {
		if in.KeyPressed(KeyA) {
			t.Error("unknown event types should be ignored")
		}
	})
}

func TestEventsProcessedInOrder(t *testing.T) {
	in, _ := newTestInput(t, nil)

	in.EnqueueEvent(EventInfo{Type: EventMouseMove, X: 10, Y: 10})
	in.EnqueueEvent(EventInfo{Type: EventMouseMove, X: 20, Y: 30})

	if got := in.MouseCoords(); got.X != 0 || got.Y != 0 {
		t.Errorf("enqueue should not process events, coords = %v", got)
	}

	in.ProcessEnqueuedEvents()
	if got := in.MouseCoords(); got.X != 20 || got.Y != 30 {
		t.Errorf("last move should win, coords = %v", got)
	}
	if len(in.queue) != 0 {
		t.Errorf("queue should be empty after processing, got %d", len(in.queue))
	}
}

func TestEnqueueConcurrent(t *testing.T) {
	in, _ := newTestInput(t, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				in.EnqueueEvent(keyDown(Key(g*100 + n)))
			}
		}(g)
	}
	wg.Wait()

	in.ProcessEnqueuedEvents()
	if len(in.keys) != 800 {
		t.Errorf("expected 800 pressed keys, got %d", len(in.keys))
	}
}

func TestMouseButtonLifecycle(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{mouseDown(MouseRight)}, func() {
		if !in.MouseButtonDown(MouseRight) || !in.MouseButtonPressed(MouseRight) {
			t.Error("right button should be down and pressed")
		}
		if in.MouseButtonPressed(MouseLeft) {
			t.Error("left button should be untouched")
		}
	})
	frame(in, nil, func() {
		if in.MouseButtonDown(MouseRight) || !in.MouseButtonPressed(MouseRight) {
			t.Error("right button should be held without a down edge")
		}
	})
	frame(in, []EventInfo{mouseUp(MouseRight)}, func() {
		if !in.MouseButtonUp(MouseRight) {
			t.Error("right button should report up on release frame")
		}
	})
	frame(in, nil, func() {
		if in.MouseButtonPressed(MouseRight) || in.MouseButtonUp(MouseRight) {
			t.Error("right button should be forgotten")
		}
	})
}

func TestDoubleClick(t *testing.T) {
	in, clock := newTestInput(t, nil)

	frame(in, []EventInfo{mouseDown(MouseLeft)}, func() {
		if in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("first press is not a double click")
		}
	})
	clock.Advance(100 * time.Millisecond)
	frame(in, []EventInfo{mouseUp(MouseLeft)}, nil)
	clock.Advance(100 * time.Millisecond)

	frame(in, []EventInfo{mouseDown(MouseLeft)}, func() {
		if !in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("second press within the threshold should be a double click")
		}
	})
	frame(in, nil, func() {
		if in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("double click should last one frame")
		}
	})
}

func TestDoubleClickTooSlow(t *testing.T) {
	in, clock := newTestInput(t, nil)

	frame(in, []EventInfo{mouseDown(MouseLeft), mouseUp(MouseLeft)}, nil)
	clock.Advance(time.Second)
	frame(in, nil, nil)

	frame(in, []EventInfo{mouseDown(MouseLeft)}, func() {
		if in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("press after the threshold is not a double click")
		}
	})
}

func TestDoubleClickSameFrameRejected(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{mouseDown(MouseLeft), mouseUp(MouseLeft), mouseDown(MouseLeft)}, func() {
		if in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("zero elapsed time between presses should not be a double click")
		}
	})
}

func TestDoubleClickSameFrameAllowed(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cfg := DefaultConfig()
	cfg.Now = clock.Now
	cfg.RejectSameFrameDoubleClick = false
	in := New(cfg, nil)

	frame(in, []EventInfo{mouseDown(MouseLeft), mouseDown(MouseLeft)}, func() {
		if !in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("same-frame presses should double click when rejection is off")
		}
	})
}

func TestDoubleClickOnlyForDownButton(t *testing.T) {
	in, clock := newTestInput(t, nil)

	frame(in, []EventInfo{mouseDown(MouseLeft)}, nil)
	clock.Advance(50 * time.Millisecond)
	frame(in, nil, nil)
	frame(in, []EventInfo{mouseDown(MouseRight)}, func() {
		if !in.MouseButtonDoubleClick(MouseRight) {
			t.Error("press on any button within the threshold counts as a double click")
		}
		if in.MouseButtonDoubleClick(MouseLeft) {
			t.Error("held left button has no down edge, so no double click")
		}
	})
}

func TestMouseWheel(t *testing.T) {
	in, _ := newTestInput(t, nil)

	frame(in, []EventInfo{
		{Type: EventMouseWheel, WheelDelta: 1},
		{Type: EventMouseWheel, WheelDelta: 2},
	}, func() {
		if got := in.MouseWheel(); got < 0.999 || got > 1.001 {
			t.Errorf("MouseWheel = %v, want 1 (3 notches at 1/3)", got)
		}
	})
	frame(in, nil, func() {
		if in.MouseWheel() != 0 {
			t.Errorf("MouseWheel should reset each frame, got %v", in.MouseWheel())
		}
	})
}

func TestEventTypeString(t *testing.T) {
	if EventKeyDown.String() != "key_down" {
		t.Errorf("EventKeyDown.String() = %q", EventKeyDown.String())
	}
	if EventType(99).String() != "none" {
		t.Errorf("unknown type should stringify as none")
	}
}
