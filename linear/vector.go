// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// Matrices are column-major. Methods that produce a value
// store it in the receiver and take their operands as
// pointers; the receiver may alias any of the operands.
package linear

import (
	"math"
)

// V3 is a 3-component vector of float64.
// Assigning a V3 copies it.
type V3 [3]float64

// Set sets the components of v.
func (v *V3) Set(x, y, z float64) { *v = V3{x, y, z} }

// SetX sets the first component of v.
func (v *V3) SetX(x float64) { v[0] = x }

// SetY sets the second component of v.
func (v *V3) SetY(y float64) { v[1] = y }

// SetZ sets the third component of v.
func (v *V3) SetZ(z float64) { v[2] = z }

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float64, w *V3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
// A zero w produces a zero v.
func (v *V3) Norm(w *V3) {
	l := w.Len()
	if l == 0 {
		*v = V3{}
		return
	}
	v.Scale(1/l, w)
}

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	*v = V3{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3) Mul(m *M3, w *V3) {
	var u V3
	for i := range u {
		for j := range m {
			u[i] += m[j][i] * w[j]
		}
	}
	*v = u
}

// MulPoint sets v to contain the point p transformed
// by m, including the perspective divide.
func (v *V3) MulPoint(m *M4, p *V3) {
	x, y, z := p[0], p[1], p[2]
	w := m[0][3]*x + m[1][3]*y + m[2][3]*z + m[3][3]
	if w == 0 {
		w = 1
	}
	iw := 1 / w
	*v = V3{
		(m[0][0]*x + m[1][0]*y + m[2][0]*z + m[3][0]) * iw,
		(m[0][1]*x + m[1][1]*y + m[2][1]*z + m[3][1]) * iw,
		(m[0][2]*x + m[1][2]*y + m[2][2]*z + m[3][2]) * iw,
	}
}

// MulDir sets v to contain the direction d transformed
// by the upper-left 3x3 of m.
// It does not normalize the result.
func (v *V3) MulDir(m *M4, d *V3) {
	x, y, z := d[0], d[1], d[2]
	*v = V3{
		m[0][0]*x + m[1][0]*y + m[2][0]*z,
		m[0][1]*x + m[1][1]*y + m[2][1]*z,
		m[0][2]*x + m[1][2]*y + m[2][2]*z,
	}
}

// RotateQ sets v to contain w rotated by the unit
// quaternion q.
func (v *V3) RotateQ(q *Q, w *V3) {
	x, y, z := w[0], w[1], w[2]
	qx, qy, qz, qw := q.V[0], q.V[1], q.V[2], q.R

	// q ⋅ w
	ix := qw*x + qy*z - qz*y
	iy := qw*y + qz*x - qx*z
	iz := qw*z + qx*y - qy*x
	iw := -qx*x - qy*y - qz*z

	// (q ⋅ w) ⋅ q⁻¹
	*v = V3{
		ix*qw + iw*-qx + iy*-qz - iz*-qy,
		iy*qw + iw*-qy + iz*-qx - ix*-qz,
		iz*qw + iw*-qz + ix*-qy - iy*-qx,
	}
}

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	u.Add(&v, &w)
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	u.Sub(&v, &w)
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float64, v V3) (u V3) {
	u.Scale(s, &v)
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) float64 { return v.Dot(&w) }

// LenV3 returns the length of v.
func LenV3(v V3) float64 { return v.Len() }

// NormV3 returns v normalized.
func NormV3(v V3) (u V3) {
	u.Norm(&v)
	return
}

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u.Cross(&v, &w)
	return
}

// V4 is a 4-component vector of float64.
type V4 [4]float64

// Add sets v to contain l + r.
func (v *V4) Add(l, r *V4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4) Sub(l, r *V4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4) Scale(s float64, w *V4) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V4) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Mul sets v to contain m ⋅ w.
func (v *V4) Mul(m *M4, w *V4) {
	var u V4
	for i := range u {
		for j := range m {
			u[i] += m[j][i] * w[j]
		}
	}
	*v = u
}
