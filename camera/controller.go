package camera

import (
	"errors"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/bezier3d"
)

// Controller defaults.
const (
	DefaultSpeed       = 2.5   // units per second
	DefaultSensitivity = 0.003 // radians per pixel of mouse drag
	DefaultTurnRate    = 1.5   // radians per second for arrow keys
	DefaultZoomStep    = 2.0   // degrees per scroll unit
	boostFactor        = 3.0
)

// Controller drives a Camera from window input. Keys are recorded as held
// by event callbacks and applied on Update, so motion is independent of the
// keyboard repeat rate.
//
// Bindings: W/S forward and back, A/D strafe, Q/E down and up, arrow keys
// turn, left-drag looks around, scroll zooms, Shift moves faster.
type Controller struct {
	Speed       float64
	Sensitivity float64
	TurnRate    float64
	ZoomStep    float64

	mu       sync.Mutex
	cam      *Camera
	held     map[gpucontext.Key]bool
	mods     gpucontext.Modifiers
	dragging bool
	lastX    float64
	lastY    float64
}

// NewController returns a controller for cam with default rates.
func NewController(cam *Camera) *Controller {
	return &Controller{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		TurnRate:    DefaultTurnRate,
		ZoomStep:    DefaultZoomStep,
		cam:         cam,
		held:        make(map[gpucontext.Key]bool),
	}
}

// Attach registers the controller's callbacks on src.
func (c *Controller) Attach(src gpucontext.EventSource) {
	src.OnKeyPress(c.keyPress)
	src.OnKeyRelease(c.keyRelease)
	src.OnMousePress(c.mousePress)
	src.OnMouseRelease(c.mouseRelease)
	src.OnMouseMove(c.mouseMove)
	src.OnScroll(c.scroll)
	src.OnResize(c.resize)
	src.OnFocus(c.focus)
}

// Camera returns a copy of the controlled camera's current state.
func (c *Controller) Camera() Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.cam
}

// Update applies held movement and turn keys for a frame of length dt.
func (c *Controller) Update(dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	yaw := axisInput(c.held, gpucontext.KeyRight, gpucontext.KeyLeft)
	pitch := axisInput(c.held, gpucontext.KeyUp, gpucontext.KeyDown)
	if yaw != 0 || pitch != 0 {
		c.cam.Turn(yaw*c.TurnRate*secs, pitch*c.TurnRate*secs)
	}

	fwd := axisInput(c.held, gpucontext.KeyW, gpucontext.KeyS)
	right := axisInput(c.held, gpucontext.KeyD, gpucontext.KeyA)
	up := axisInput(c.held, gpucontext.KeyE, gpucontext.KeyQ)
	if fwd == 0 && right == 0 && up == 0 {
		return
	}

	speed := c.Speed
	if c.mods.HasShift() {
		speed *= boostFactor
	}
	// Opposing keys that cancel out are not an error for the user.
	if err := c.cam.MoveLocal(fwd, right, up, speed*secs); err != nil &&
		!errors.Is(err, bezier3d.ErrNumericDegenerate) {
		bezier3d.Logger().Warn("camera: move failed", "err", err)
	}
}

// Held reports whether key is currently held down.
func (c *Controller) Held(key gpucontext.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.held[key]
}

func axisInput(held map[gpucontext.Key]bool, pos, neg gpucontext.Key) float64 {
	var v float64
	if held[pos] {
		v++
	}
	if held[neg] {
		v--
	}
	return v
}

func (c *Controller) keyPress(key gpucontext.Key, mods gpucontext.Modifiers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held[key] = true
	c.mods = mods
}

func (c *Controller) keyRelease(key gpucontext.Key, mods gpucontext.Modifiers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, key)
	c.mods = mods
}

func (c *Controller) mousePress(button gpucontext.MouseButton, x, y float64) {
	if button != gpucontext.MouseButtonLeft {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *Controller) mouseRelease(button gpucontext.MouseButton, _, _ float64) {
	if button != gpucontext.MouseButtonLeft {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = false
}

func (c *Controller) mouseMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dragging {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	// Screen y grows downward; dragging up looks up.
	c.cam.Turn(dx*c.Sensitivity, -dy*c.Sensitivity)
}

func (c *Controller) scroll(_, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Positive dy scrolls down, which zooms out.
	c.cam.Zoom(-dy * c.ZoomStep)
}

func (c *Controller) resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cam.SetViewport(width, height)
}

func (c *Controller) focus(focused bool) {
	if focused {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.held)
	c.dragging = false
}
