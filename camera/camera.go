// Package camera provides the perspective camera and fly controls used to
// view the curve.
//
// The defaults reproduce a fixed OpenGL setup: 60° vertical field of view,
// near plane 0.1, far plane 100, eye 5 units back along +z looking at the
// origin.
package camera

import (
	"fmt"
	"math"

	"github.com/gogpu/bezier3d"
)

// Default projection settings.
const (
	DefaultFOV      = 60.0 // degrees
	DefaultNear     = 0.1
	DefaultFar      = 100.0
	DefaultDistance = 5.0

	minFOV   = 1.0
	maxFOV   = 120.0
	maxPitch = 89 * math.Pi / 180
)

// WorldUp is the fixed up direction of the fly camera.
var WorldUp = bezier3d.P3(0, 1, 0)

// Camera is a perspective fly camera. Yaw and Pitch are in radians; yaw -π/2
// with pitch 0 looks down the -z axis.
//
// A Camera is a plain value and not safe for concurrent mutation; Controller
// serializes access for event-driven use.
type Camera struct {
	Position bezier3d.Point3
	Yaw      float64
	Pitch    float64

	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
}

// New returns a camera with the default projection looking at the origin
// from DefaultDistance along +z, for a viewport of the given size.
func New(width, height int) *Camera {
	c := &Camera{
		Position: bezier3d.P3(0, 0, DefaultDistance),
		Yaw:      -math.Pi / 2,
		FOV:      DefaultFOV,
		Aspect:   1,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Non-positive sizes are ignored,
// which happens while a window is minimized.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Forward returns the unit view direction.
func (c *Camera) Forward() bezier3d.Point3 {
	sp, cp := math.Sincos(c.Pitch)
	sy, cy := math.Sincos(c.Yaw)
	return bezier3d.P3(cp*cy, sp, cp*sy)
}

// Right returns the unit vector pointing to the right of the view.
func (c *Camera) Right() bezier3d.Point3 {
	return c.Forward().Cross(WorldUp).Normalize()
}

// Up returns the camera's unit up vector.
func (c *Camera) Up() bezier3d.Point3 {
	return c.Right().Cross(c.Forward())
}

// View returns the world-to-camera matrix.
func (c *Camera) View() Mat4 {
	// Pitch is clamped below ±90°, so forward is never parallel to WorldUp.
	m, err := LookAt(c.Position, c.Position.Add(c.Forward()), WorldUp)
	if err != nil {
		return Translation(c.Position.Neg())
	}
	return m
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() Mat4 {
	return Perspective(c.FOV*math.Pi/180, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() Mat4 {
	return c.Projection().Multiply(c.View())
}

// Projector maps world points to pixel coordinates for one frame.
type Projector struct {
	vp            Mat4
	width, height float64
}

// Projector captures the camera's current view-projection for a viewport of
// width x height pixels.
func (c *Camera) Projector(width, height int) Projector {
	return Projector{vp: c.ViewProjection(), width: float64(width), height: float64(height)}
}

// Project returns the pixel position of p (origin top-left, y down) and its
// normalized depth in [-1, 1]. ok is false when p lies behind the eye or
// outside the near/far range.
func (pr Projector) Project(p bezier3d.Point3) (x, y, depth float64, ok bool) {
	cx, cy, cz, w := pr.vp.Transform(p)
	if w <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := cx/w, cy/w, cz/w
	x = (nx + 1) / 2 * pr.width
	y = (1 - ny) / 2 * pr.height
	return x, y, nz, nz >= -1 && nz <= 1
}

// Move translates the camera by distance along direction (world space).
// A zero direction fails with ErrNumericDegenerate and leaves the camera
// unchanged.
func (c *Camera) Move(direction bezier3d.Point3, distance float64) error {
	if direction.IsZero() || !direction.IsFinite() {
		return fmt.Errorf("%w: cannot move along %v", bezier3d.ErrNumericDegenerate, direction)
	}
	c.Position = c.Position.Add(direction.Normalize().Mul(distance))
	return nil
}

// MoveLocal moves relative to the view: forward along the view direction,
// right along the horizontal right vector, up along world up. Opposing
// inputs that cancel out fail with ErrNumericDegenerate.
func (c *Camera) MoveLocal(forward, right, up, distance float64) error {
	dir := c.Forward().Mul(forward).
		Add(c.Right().Mul(right)).
		Add(WorldUp.Mul(up))
	return c.Move(dir, distance)
}

// Turn changes yaw and pitch by the given angles in radians. Pitch is kept
// within ±89°.
func (c *Camera) Turn(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dpitch))
}

// Zoom narrows (positive delta) or widens the field of view by delta degrees.
func (c *Camera) Zoom(delta float64) {
	c.FOV = math.Max(minFOV, math.Min(maxFOV, c.FOV-delta))
}

// Fit moves the camera back along its view direction until box fits inside
// the vertical field of view, keeping the orientation.
func (c *Camera) Fit(box bezier3d.Box3) {
	radius := box.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}
	half := c.FOV * math.Pi / 360
	if c.Aspect < 1 {
		half = math.Atan(math.Tan(half) * c.Aspect)
	}
	dist := radius / math.Sin(half)
	c.Position = box.Center().Sub(c.Forward().Mul(dist))
	if c.Far < dist+radius {
		c.Far = dist + radius
	}
}

// Project maps p to pixel coordinates in a width x height viewport. See
// Projector.Project.
func (c *Camera) Project(p bezier3d.Point3, width, height int) (x, y, depth float64, ok bool) {
	return c.Projector(width, height).Project(p)
}
