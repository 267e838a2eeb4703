// Package cam models a 3D camera: a position/orientation pair and the
// matrix constructions (view, perspective projection, combined
// model-view-projection) needed to render a scene from its viewpoint.
package cam

import (
	"github.com/EngoEngine/glm"
	"github.com/EngoEngine/math"
)

// ModelViewProjection composes model, view and projection matrices into the
// single transform applied to object-space vertices: view first, then
// projection, then model.
func ModelViewProjection(model, view, projection glm.Mat4) glm.Mat4 {
	pv := projection.Mul4(&view)
	return model.Mul4(&pv)
}

// Camera models a camera with a position and direction basis.
//
// Up, Right and Forward are expected to be unit length and mutually
// orthogonal. The orientation mutators keep Right consistent via the cross
// product but never renormalize Up or Forward, so callers writing the
// direction fields directly own that invariant.
type Camera struct {
	Position glm.Vec3 // Camera position
	Up       glm.Vec3 // Up direction
	Right    glm.Vec3 // Right direction
	Forward  glm.Vec3 // Forward direction
}

// New returns a camera at position with the canonical basis, looking towards
// positive z with y up.
func New(position glm.Vec3) Camera {
	return Camera{
		Position: position,
		Right:    glm.Vec3{1, 0, 0},
		Up:       glm.Vec3{0, 1, 0},
		Forward:  glm.Vec3{0, 0, 1},
	}
}

// Orthogonal computes the view matrix of the camera, transforming world
// coordinates into camera space.
func (c *Camera) Orthogonal() glm.Mat4 {
	p := c.Position
	r := c.Right
	u := c.Up
	f := c.Forward
	return glm.Mat4{
		r[0], u[0], f[0], 0,
		r[1], u[1], f[1], 0,
		r[2], u[2], f[2], 0,
		-r.Dot(&p), -u.Dot(&p), -f.Dot(&p), 1,
	}
}

// LookAt orients the camera at a point. Forward becomes position - point,
// running from the target to the camera with the target's distance as its
// length; it is not normalized. Up and Position are left untouched.
func (c *Camera) LookAt(point glm.Vec3) {
	c.Forward = c.Position.Sub(&point)
	c.updateRight()
}

// SetYawPitch sets the yaw and pitch angle of the camera in radians.
func (c *Camera) SetYawPitch(yaw, pitch float32) {
	ys, yc := math.Sin(yaw), math.Cos(yaw)
	ps, pc := math.Sin(pitch), math.Cos(pitch)
	c.Forward = glm.Vec3{ys * pc, ps, yc * pc}
	c.Up = glm.Vec3{ys * -ps, pc, yc * -ps}
	c.updateRight()
}

// SetRotation sets the forward, up and right vectors from a quaternion
// rotation of the canonical basis. The rotation is relative to the positive
// z axis, not to the camera's current orientation.
func (c *Camera) SetRotation(rotation glm.Quat) {
	forward := glm.Vec3{0, 0, 1}
	up := glm.Vec3{0, 1, 0}
	c.Forward = rotation.Rotate(&forward)
	c.Up = rotation.Rotate(&up)
	c.updateRight()
}

func (c *Camera) updateRight() {
	c.Right = c.Up.Cross(&c.Forward)
}
