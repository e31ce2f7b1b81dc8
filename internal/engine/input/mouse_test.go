package input

import (
	"testing"

	"github.com/Faultbox/midgard-engine/pkg/math"
)

// fakeViewport is a viewport whose cursor only moves when warped.
type fakeViewport struct {
	width, height int
	x, y          int
	warps         [][2]int
}

func (v *fakeViewport) Size() (int, int) { return v.width, v.height }

func (v *fakeViewport) WarpCursor(x, y int) {
	v.x, v.y = x, y
	v.warps = append(v.warps, [2]int{x, y})
}

func (v *fakeViewport) CursorPosition() (int, int) { return v.x, v.y }

// sizeOnly cannot warp the cursor.
type sizeOnly struct{ w, h int }

func (s sizeOnly) Size() (int, int) { return s.w, s.h }

func move(x, y int) EventInfo { return EventInfo{Type: EventMouseMove, X: x, Y: y} }

func TestMouseDeltaAndAxis(t *testing.T) {
	in, _ := newTestInput(t, &fakeViewport{width: 800, height: 600})

	frame(in, []EventInfo{move(100, 60)}, func() {
		if d := in.MouseDelta(); d != (math.Vec2{X: 100, Y: 60}) {
			t.Errorf("MouseDelta = %v, want (100, 60)", d)
		}
		axis := in.MouseAxis()
		if axis.X != 0.125 || axis.Y != 0.1 {
			t.Errorf("MouseAxis = %v, want (0.125, 0.1)", axis)
		}
		if in.MouseDeltaX() != 100 || in.MouseAxisY() != 0.1 {
			t.Error("per-axis accessors should match the vector forms")
		}
	})

	frame(in, nil, func() {
		if d := in.MouseDelta(); d != (math.Vec2{}) {
			t.Errorf("MouseDelta without movement = %v, want zero", d)
		}
		if c := in.MouseCoords(); c != (math.Vec2{X: 100, Y: 60}) {
			t.Errorf("MouseCoords = %v, want (100, 60)", c)
		}
	})
}

func TestMouseAxisWithoutViewport(t *testing.T) {
	in, _ := newTestInput(t, nil)
	frame(in, []EventInfo{move(10, 10)}, func() {
		if a := in.MouseAxis(); a != (math.Vec2{}) {
			t.Errorf("MouseAxis without viewport = %v, want zero", a)
		}
	})
}

func TestMouseWrap(t *testing.T) {
	tests := []struct {
		name   string
		from   [2]int
		wantTo [2]int
	}{
		{"right edge", [2]int{800, 50}, [2]int{0, 50}},
		{"left edge", [2]int{-1, 50}, [2]int{799, 50}},
		{"bottom edge", [2]int{30, 600}, [2]int{30, 0}},
		{"top edge", [2]int{30, -5}, [2]int{30, 599}},
		{"corner", [2]int{900, 700}, [2]int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := &fakeViewport{width: 800, height: 600}
			in, _ := newTestInput(t, vp)
			in.SetMouseWrapping(true)

			frame(in, []EventInfo{move(tt.from[0], tt.from[1])}, nil)

			if len(vp.warps) != 1 || vp.warps[0] != tt.wantTo {
				t.Fatalf("warps = %v, want [%v]", vp.warps, tt.wantTo)
			}
			want := math.Vec2{X: float32(tt.wantTo[0]), Y: float32(tt.wantTo[1])}
			if c := in.MouseCoords(); c != want {
				t.Errorf("MouseCoords = %v, want %v", c, want)
			}
			if d := in.MouseDelta(); d != (math.Vec2{}) {
				t.Errorf("wrap should leave no delta, got %v", d)
			}
		})
	}
}

func TestMouseWrapInsideViewport(t *testing.T) {
	vp := &fakeViewport{width: 800, height: 600}
	in, _ := newTestInput(t, vp)
	in.SetMouseWrapping(true)

	frame(in, []EventInfo{move(0, 0), move(799, 599)}, nil)
	if len(vp.warps) != 0 {
		t.Errorf("cursor inside the viewport should not warp, got %v", vp.warps)
	}
}

func TestMouseWrapDisabled(t *testing.T) {
	vp := &fakeViewport{width: 800, height: 600}
	in, _ := newTestInput(t, vp)

	frame(in, []EventInfo{move(1000, 50)}, nil)
	if len(vp.warps) != 0 {
		t.Errorf("wrapping is off, got warps %v", vp.warps)
	}
	if in.MouseWrapping() {
		t.Error("wrapping should default to off")
	}
}

func TestMouseWrapNeedsWarper(t *testing.T) {
	in, _ := newTestInput(t, sizeOnly{800, 600})
	in.SetMouseWrapping(true)

	frame(in, []EventInfo{move(1000, 50)}, nil)
	if c := in.MouseCoords(); c.X != 1000 {
		t.Errorf("viewport without warping should leave coords alone, got %v", c)
	}
}

func TestMouseLock(t *testing.T) {
	vp := &fakeViewport{width: 800, height: 600}
	in, _ := newTestInput(t, vp)

	frame(in, []EventInfo{move(400, 300)}, nil)

	in.SetMouseLocked(true)
	if !in.MouseLocked() {
		t.Fatal("MouseLocked should report true")
	}

	frame(in, []EventInfo{move(410, 300)}, func() {
		if len(vp.warps) != 1 || vp.warps[0] != [2]int{400, 300} {
			t.Fatalf("locked move should warp back to (400, 300), got %v", vp.warps)
		}
		if d := in.MouseDelta(); d != (math.Vec2{X: 10}) {
			t.Errorf("MouseDelta = %v, want (10, 0)", d)
		}
	})

	// The move produced by the warp is swallowed.
	frame(in, []EventInfo{move(400, 300)}, func() {
		if c := in.MouseCoords(); c != (math.Vec2{X: 410, Y: 300}) {
			t.Errorf("warp echo should be ignored, coords = %v", c)
		}
		if len(vp.warps) != 1 {
			t.Errorf("warp echo should not warp again, got %v", vp.warps)
		}
		if d := in.MouseDelta(); d != (math.Vec2{X: 10}) {
			t.Errorf("locked reference should hold while settling, delta = %v", d)
		}
	})

	for n := 0; n < 4; n++ {
		frame(in, nil, nil)
	}
	if d := in.MouseDelta(); d != (math.Vec2{}) {
		t.Errorf("reference should catch up once the mouse is still, delta = %v", d)
	}

	// The next real move is processed normally.
	frame(in, []EventInfo{move(420, 300)}, func() {
		if c := in.MouseCoords(); c != (math.Vec2{X: 420, Y: 300}) {
			t.Errorf("coords = %v, want (420, 300)", c)
		}
	})
}

func TestMouseLockWithoutWarperReportsPerFrameMotion(t *testing.T) {
	in, _ := newTestInput(t, sizeOnly{800, 600})
	frame(in, []EventInfo{move(400, 300)}, nil)
	in.SetMouseLocked(true)

	for n := 1; n <= 4; n++ {
		frame(in, []EventInfo{move(400+10*n, 300)}, func() {
			if d := in.MouseDelta(); d != (math.Vec2{X: 10}) {
				t.Errorf("frame %d: MouseDelta = %v, want (10, 0)", n, d)
			}
			if a := in.MouseAxisX(); a != 0.0125 {
				t.Errorf("frame %d: MouseAxisX = %f, want 0.0125", n, a)
			}
		})
	}
}

func TestMouseUnlockedFollowsEveryFrame(t *testing.T) {
	vp := &fakeViewport{width: 800, height: 600}
	in, _ := newTestInput(t, vp)

	frame(in, []EventInfo{move(10, 10)}, nil)
	frame(in, []EventInfo{move(15, 10)}, func() {
		if d := in.MouseDelta(); d != (math.Vec2{X: 5}) {
			t.Errorf("MouseDelta = %v, want (5, 0)", d)
		}
	})
	if len(vp.warps) != 0 {
		t.Errorf("unlocked mouse should never warp, got %v", vp.warps)
	}
}
