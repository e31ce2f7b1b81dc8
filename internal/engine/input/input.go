// Package input turns windowing-toolkit events into a keyboard and mouse
// state snapshot that game code polls once per frame.
//
// The host feeds events with EnqueueEvent, drains them with
// ProcessEnqueuedEvents before game logic runs, and calls OnFrameFinished
// after game logic has polled. Down and Up edges are visible for exactly one
// frame between those two calls.
package input

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-engine/pkg/math"
)

// Viewport reports the drawable size that mouse axis values and wrapping
// are measured against.
type Viewport interface {
	Size() (width, height int)
}

// CursorWarper is implemented by viewports that can move the system cursor.
// Mouse locking and wrapping need it; without it they only affect axis
// bookkeeping.
type CursorWarper interface {
	// WarpCursor moves the cursor to viewport coordinates.
	WarpCursor(x, y int)
	// CursorPosition returns the cursor position in viewport coordinates.
	CursorPosition() (x, y int)
}

// Config holds input tracking settings.
type Config struct {
	// DoubleClickThreshold is the longest gap between two mouse presses
	// that still counts as a double click.
	DoubleClickThreshold time.Duration

	// RejectSameFrameDoubleClick ignores a second press with zero elapsed
	// frame time, which happens when a toolkit delivers a delayed or
	// duplicated press.
	RejectSameFrameDoubleClick bool

	// LockSettleFrames is how many still frames pass before the locked
	// mouse's reference position catches up with the cursor.
	LockSettleFrames int

	// WheelScale converts wheel notches into the MouseWheel value.
	WheelScale float32

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger

	// Now is the frame clock. Nil uses time.Now.
	Now func() time.Time
}

// DefaultConfig returns the stock input settings.
func DefaultConfig() Config {
	return Config{
		DoubleClickThreshold:       300 * time.Millisecond,
		RejectSameFrameDoubleClick: true,
		LockSettleFrames:           3,
		WheelScale:                 1.0 / 3.0,
	}
}

// Input is the keyboard and mouse state tracker.
// EnqueueEvent may be called from any goroutine; every other method belongs
// to the game loop goroutine.
type Input struct {
	cfg      Config
	log      *zap.Logger
	viewport Viewport

	queueMu sync.Mutex
	queue   []EventInfo

	keys    buttonStates[Key]
	buttons buttonStates[MouseButton]

	mouse           math.Vec2
	lastMouse       math.Vec2
	wheel           float32
	doubleClick     bool
	framesStill     int
	locked          bool
	wrapping        bool
	suppressMove    bool
	sinceMouseDown  time.Duration
	seenMouseDown   bool
	lastFrameFinish time.Time
}

// New creates an input tracker measuring against viewport.
func New(cfg Config, viewport Viewport) *Input {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Input{
		cfg:             cfg,
		log:             log,
		viewport:        viewport,
		queue:           make([]EventInfo, 0, 16),
		keys:            make(buttonStates[Key]),
		buttons:         make(buttonStates[MouseButton]),
		lastFrameFinish: cfg.Now(),
	}
}

// EnqueueEvent queues an event for the next ProcessEnqueuedEvents call.
func (i *Input) EnqueueEvent(e EventInfo) {
	i.queueMu.Lock()
	i.queue = append(i.queue, e)
	i.queueMu.Unlock()
}

// ProcessEnqueuedEvents applies queued events in arrival order and empties
// the queue.
func (i *Input) ProcessEnqueuedEvents() {
	i.queueMu.Lock()
	events := i.queue
	i.queue = make([]EventInfo, 0, cap(events))
	i.queueMu.Unlock()

	for _, e := range events {
		i.processEvent(e)
	}
}

func (i *Input) processEvent(e EventInfo) {
	switch e.Type {
	case EventMouseWheel:
		i.wheel += e.WheelDelta * i.cfg.WheelScale
	case EventMouseMove:
		i.processMouseMove(e)
	case EventMouseDown:
		i.processMouseDown(e)
	case EventMouseUp:
		i.buttons.release(e.Button)
	case EventKeyDown:
		if !e.Repeat {
			i.keys.press(e.Key)
		}
	case EventKeyUp:
		if !e.Repeat {
			i.keys.release(e.Key)
		}
	}
}

func (i *Input) processMouseDown(e EventInfo) {
	i.buttons.press(e.Button)

	if i.seenMouseDown && i.sinceMouseDown <= i.cfg.DoubleClickThreshold &&
		!(i.cfg.RejectSameFrameDoubleClick && i.sinceMouseDown == 0) {
		i.doubleClick = true
		i.log.Debug("double click", zap.Uint8("button", uint8(e.Button)),
			zap.Duration("gap", i.sinceMouseDown))
	}
	i.sinceMouseDown = 0
	i.seenMouseDown = true
}

// OnFrameFinished ages one-frame state. Call it once per frame after game
// logic has polled.
func (i *Input) OnFrameFinished() {
	i.keys.endFrame()
	i.buttons.endFrame()
	i.doubleClick = false

	now := i.cfg.Now()
	i.sinceMouseDown += now.Sub(i.lastFrameFinish)
	i.lastFrameFinish = now

	i.wheel = 0
	// While locked the cursor is re-centered every move, so the reference
	// position only follows once the mouse has been still for a while.
	// A viewport that cannot warp never re-centers and follows every frame.
	if !i.recentering() || i.framesStill > i.cfg.LockSettleFrames {
		i.lastMouse = i.mouse
	}
	i.framesStill++

	i.wrapMouse()
}

func (i *Input) recentering() bool {
	if !i.locked {
		return false
	}
	_, ok := i.viewport.(CursorWarper)
	return ok
}

// KeyPressed reports whether k is held.
func (i *Input) KeyPressed(k Key) bool {
	return i.keys.get(k).Pressed
}

// KeyDown reports whether k went down this frame.
func (i *Input) KeyDown(k Key) bool {
	return i.keys.get(k).Down
}

// KeyUp reports whether k was released this frame.
func (i *Input) KeyUp(k Key) bool {
	return i.keys.get(k).Up
}

// MouseButtonPressed reports whether b is held.
func (i *Input) MouseButtonPressed(b MouseButton) bool {
	return i.buttons.get(b).Pressed
}

// MouseButtonDown reports whether b went down this frame.
func (i *Input) MouseButtonDown(b MouseButton) bool {
	return i.buttons.get(b).Down
}

// MouseButtonUp reports whether b was released this frame.
func (i *Input) MouseButtonUp(b MouseButton) bool {
	return i.buttons.get(b).Up
}

// MouseButtonDoubleClick reports whether b went down this frame as the
// second press of a double click.
func (i *Input) MouseButtonDoubleClick(b MouseButton) bool {
	return i.MouseButtonDown(b) && i.doubleClick
}

// MouseWheel returns the scaled wheel movement of this frame.
func (i *Input) MouseWheel() float32 {
	return i.wheel
}
