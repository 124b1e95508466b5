// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from mathgl's float64 types.
// Both sides are column-major, so matrices convert
// element by element.

// Mgl returns v as a mgl64.Vec3.
func (v *V3) Mgl() mgl64.Vec3 { return mgl64.Vec3(*v) }

// V3FromMgl returns v as a V3.
func V3FromMgl(v mgl64.Vec3) V3 { return V3(v) }

// Mgl returns q as a mgl64.Quat.
func (q *Q) Mgl() mgl64.Quat { return mgl64.Quat{W: q.R, V: q.V.Mgl()} }

// QFromMgl returns q as a Q.
func QFromMgl(q mgl64.Quat) Q { return Q{V: V3FromMgl(q.V), R: q.W} }

// Mgl returns m as a mgl64.Mat3.
func (m *M3) Mgl() (n mgl64.Mat3) {
	m.ToArray(n[:], 0)
	return
}

// M3FromMgl returns m as an M3.
func M3FromMgl(m mgl64.Mat3) (n M3) {
	n.FromArray(m[:], 0)
	return
}

// Mgl returns m as a mgl64.Mat4.
func (m *M4) Mgl() (n mgl64.Mat4) {
	m.ToArray(n[:], 0)
	return
}

// M4FromMgl returns m as an M4.
func M4FromMgl(m mgl64.Mat4) (n M4) {
	n.FromArray(m[:], 0)
	return
}
