// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// M3 is a column-major 3x3 matrix of float64.
// m[i][j] is the element at column i, row j.
// Assigning an M3 copies it; == compares it element-wise.
type M3 [3]V3

// I makes m an identity matrix.
func (m *M3) I() { *m = M3{{1}, {0, 1}, {0, 0, 1}} }

// Set sets the elements of m.
// Arguments are given in row-major order.
func (m *M3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) {
	*m = M3{
		{n11, n21, n31},
		{n12, n22, n32},
		{n13, n23, n33},
	}
}

// Mul sets m to contain l ⋅ r.
func (m *M3) Mul(l, r *M3) {
	var n M3
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M3) Transpose(n *M3) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Det returns the determinant of m.
func (m *M3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert sets m to contain the inverse of n.
// If n is singular and strict is set, it returns an error
// wrapping ErrDegenerate and leaves m unchanged. Otherwise
// it makes m an identity matrix and logs a warning.
func (m *M3) Invert(n *M3, strict bool) error {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	det := n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2
	if det == 0 {
		if err := degenerate("M3.Invert", strict); err != nil {
			return err
		}
		m.I()
		return nil
	}
	idet := 1 / det
	var inv M3
	inv[0][0] = s0 * idet
	inv[0][1] = -(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet
	inv[0][2] = (n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet
	inv[1][0] = -s1 * idet
	inv[1][1] = (n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet
	inv[1][2] = -(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet
	inv[2][0] = s2 * idet
	inv[2][1] = -(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet
	inv[2][2] = (n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet
	*m = inv
	return nil
}

// Normal sets m to contain the normal matrix of n, that
// is, the inverse transpose of its upper-left 3x3.
// Singular matrices are handled as in M3.Invert.
func (m *M3) Normal(n *M4, strict bool) error {
	u := M3{
		{n[0][0], n[0][1], n[0][2]},
		{n[1][0], n[1][1], n[1][2]},
		{n[2][0], n[2][1], n[2][2]},
	}
	if err := u.Invert(&u, strict); err != nil {
		return err
	}
	m.Transpose(&u)
	return nil
}

// Scale2D scales the first two rows of m by sx and sy.
func (m *M3) Scale2D(sx, sy float64) {
	for i := range m {
		m[i][0] *= sx
		m[i][1] *= sy
	}
}

// Rotate2D rotates the first two rows of m by theta
// radians.
func (m *M3) Rotate2D(theta float64) {
	s, c := math.Sincos(theta)
	for i := range m {
		a1, a2 := m[i][0], m[i][1]
		m[i][0] = c*a1 + s*a2
		m[i][1] = -s*a1 + c*a2
	}
}

// Translate2D translates the first two rows of m by tx
// and ty.
func (m *M3) Translate2D(tx, ty float64) {
	for i := range m {
		m[i][0] += tx * m[i][2]
		m[i][1] += ty * m[i][2]
	}
}

// FromArray sets m from the 9 column-major elements
// of a starting at off.
func (m *M3) FromArray(a []float64, off int) {
	a = a[off : off+9]
	for i := range m {
		copy(m[i][:], a[i*3:])
	}
}

// ToArray stores the 9 column-major elements of m into
// a starting at off. a is grown as needed.
// It returns the updated slice.
func (m *M3) ToArray(a []float64, off int) []float64 {
	if n := off + 9; len(a) < n {
		a = append(a, make([]float64, n-len(a))...)
	}
	for i := range m {
		copy(a[off+i*3:], m[i][:])
	}
	return a
}

// M4 is a column-major 4x4 matrix of float64.
// m[i][j] is the element at column i, row j.
// Assigning an M4 copies it; == compares it element-wise.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Set sets the elements of m.
// Arguments are given in row-major order.
func (m *M4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float64) {
	*m = M4{
		{n11, n21, n31, n41},
		{n12, n22, n32, n42},
		{n13, n23, n33, n43},
		{n14, n24, n34, n44},
	}
}

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var n M4
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M4) Transpose(n *M4) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// minors computes the 2x2 sub-determinants shared by
// M4.Det and M4.Invert.
func (m *M4) minors() (s, c [6]float64) {
	s[0] = m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s[1] = m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s[2] = m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s[3] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s[4] = m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s[5] = m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c[0] = m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c[1] = m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c[2] = m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c[3] = m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c[4] = m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c[5] = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	return
}

// Det returns the determinant of m.
func (m *M4) Det() float64 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Invert sets m to contain the inverse of n.
// If n is singular and strict is set, it returns an error
// wrapping ErrDegenerate and leaves m unchanged. Otherwise
// it makes m an identity matrix and logs a warning.
func (m *M4) Invert(n *M4, strict bool) error {
	s, c := n.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		if err := degenerate("M4.Invert", strict); err != nil {
			return err
		}
		m.I()
		return nil
	}
	idet := 1 / det
	var inv M4
	inv[0][0] = (c[5]*n[1][1] - c[4]*n[1][2] + c[3]*n[1][3]) * idet
	inv[0][1] = (-c[5]*n[0][1] + c[4]*n[0][2] - c[3]*n[0][3]) * idet
	inv[0][2] = (s[5]*n[3][1] - s[4]*n[3][2] + s[3]*n[3][3]) * idet
	inv[0][3] = (-s[5]*n[2][1] + s[4]*n[2][2] - s[3]*n[2][3]) * idet
	inv[1][0] = (-c[5]*n[1][0] + c[2]*n[1][2] - c[1]*n[1][3]) * idet
	inv[1][1] = (c[5]*n[0][0] - c[2]*n[0][2] + c[1]*n[0][3]) * idet
	inv[1][2] = (-s[5]*n[3][0] + s[2]*n[3][2] - s[1]*n[3][3]) * idet
	inv[1][3] = (s[5]*n[2][0] - s[2]*n[2][2] + s[1]*n[2][3]) * idet
	inv[2][0] = (c[4]*n[1][0] - c[2]*n[1][1] + c[0]*n[1][3]) * idet
	inv[2][1] = (-c[4]*n[0][0] + c[2]*n[0][1] - c[0]*n[0][3]) * idet
	inv[2][2] = (s[4]*n[3][0] - s[2]*n[3][1] + s[0]*n[3][3]) * idet
	inv[2][3] = (-s[4]*n[2][0] + s[2]*n[2][1] - s[0]*n[2][3]) * idet
	inv[3][0] = (-c[3]*n[1][0] + c[1]*n[1][1] - c[0]*n[1][2]) * idet
	inv[3][1] = (c[3]*n[0][0] - c[1]*n[0][1] + c[0]*n[0][2]) * idet
	inv[3][2] = (-s[3]*n[3][0] + s[1]*n[3][1] - s[0]*n[3][2]) * idet
	inv[3][3] = (s[3]*n[2][0] - s[1]*n[2][1] + s[0]*n[2][2]) * idet
	*m = inv
	return nil
}

// CopyPosition copies the translation of n into m.
func (m *M4) CopyPosition(n *M4) {
	m[3][0] = n[3][0]
	m[3][1] = n[3][1]
	m[3][2] = n[3][2]
}

// SetPosition sets the translation of m to p.
// The upper-left 3x3 is not modified.
func (m *M4) SetPosition(p *V3) {
	m[3][0] = p[0]
	m[3][1] = p[1]
	m[3][2] = p[2]
}

// Translate makes m a translation matrix.
func (m *M4) Translate(x, y, z float64) {
	*m = M4{{1}, {0, 1}, {0, 0, 1}, {x, y, z, 1}}
}

// Scale makes m a scale matrix.
func (m *M4) Scale(x, y, z float64) {
	*m = M4{{x}, {0, y}, {0, 0, z}, {0, 0, 0, 1}}
}

// ApplyScale scales the first three columns of m by the
// components of s.
func (m *M4) ApplyScale(s *V3) {
	for i := range s {
		for j := range m[i] {
			m[i][j] *= s[i]
		}
	}
}

// RotateX makes m a rotation of theta radians about
// the x axis.
func (m *M4) RotateX(theta float64) {
	s, c := math.Sincos(theta)
	*m = M4{{1}, {0, c, s}, {0, -s, c}, {0, 0, 0, 1}}
}

// RotateY makes m a rotation of theta radians about
// the y axis.
func (m *M4) RotateY(theta float64) {
	s, c := math.Sincos(theta)
	*m = M4{{c, 0, -s}, {0, 1}, {s, 0, c}, {0, 0, 0, 1}}
}

// RotateZ makes m a rotation of theta radians about
// the z axis.
func (m *M4) RotateZ(theta float64) {
	s, c := math.Sincos(theta)
	*m = M4{{c, s}, {-s, c}, {0, 0, 1}, {0, 0, 0, 1}}
}

// rotate makes m a rotation matrix whose upper-left
// 3x3 is r.
func (m *M4) rotate(r *M3) {
	*m = M4{
		{r[0][0], r[0][1], r[0][2]},
		{r[1][0], r[1][1], r[1][2]},
		{r[2][0], r[2][1], r[2][2]},
		{0, 0, 0, 1},
	}
}

// RotateQ makes m a rotation matrix from the unit
// quaternion q.
func (m *M4) RotateQ(q *Q) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	m.rotate(&M3{
		{1 - (yy + zz), xy + wz, xz - wy},
		{xy - wz, 1 - (xx + zz), yz + wx},
		{xz + wy, yz - wx, 1 - (xx + yy)},
	})
}

// RotateEuler makes m a rotation matrix from e.
// It returns an error wrapping ErrInvalidRotation if
// e.Order is not a valid Order, in which case m is
// left unchanged.
func (m *M4) RotateEuler(e *Euler) error {
	order, ok := e.Order.resolve()
	if !ok {
		return invalidOrder("M4.RotateEuler", e.Order)
	}
	b, a := math.Sincos(e.X)
	d, c := math.Sincos(e.Y)
	f, g := math.Sincos(e.Z)
	var r M3
	switch order {
	case XYZ:
		ag, af, bg, bf := a*g, a*f, b*g, b*f
		r = M3{
			{c * g, af + bg*d, bf - ag*d},
			{-c * f, ag - bf*d, bg + af*d},
			{d, -b * c, a * c},
		}
	case YXZ:
		cg, cf, dg, df := c*g, c*f, d*g, d*f
		r = M3{
			{cg + df*b, a * f, cf*b - dg},
			{dg*b - cf, a * g, df + cg*b},
			{a * d, -b, a * c},
		}
	case ZXY:
		cg, cf, dg, df := c*g, c*f, d*g, d*f
		r = M3{
			{cg - df*b, cf + dg*b, -a * d},
			{-a * f, a * g, b},
			{dg + cf*b, df - cg*b, a * c},
		}
	case ZYX:
		ag, af, bg, bf := a*g, a*f, b*g, b*f
		r = M3{
			{c * g, c * f, -d},
			{bg*d - af, bf*d + ag, b * c},
			{ag*d + bf, af*d - bg, a * c},
		}
	case YZX:
		ac, ad, bc, bd := a*c, a*d, b*c, b*d
		r = M3{
			{c * g, f, -d * g},
			{bd - ac*f, a * g, ad*f + bc},
			{bc*f + ad, -b * g, ac - bd*f},
		}
	case XZY:
		ac, ad, bc, bd := a*c, a*d, b*c, b*d
		r = M3{
			{c * g, ac*f + bd, bc*f - ad},
			{-f, a * g, b * g},
			{d * g, ad*f - bc, bd*f + ac},
		}
	}
	m.rotate(&r)
	return nil
}

// Compose makes m the transform that scales by s,
// rotates by the unit quaternion q and then translates
// by p.
func (m *M4) Compose(p *V3, q *Q, s *V3) {
	m.RotateQ(q)
	m.ApplyScale(s)
	m.SetPosition(p)
}

// Decompose extracts the translation, rotation and scale
// of the affine transform m.
// A negative determinant is attributed to the x scale.
// Columns of zero length produce a zero scale and do not
// contribute to the rotation.
func (m *M4) Decompose(p *V3, q *Q, s *V3) {
	var sc V3
	for i := range sc {
		sc[i] = math.Sqrt(m[i][0]*m[i][0] + m[i][1]*m[i][1] + m[i][2]*m[i][2])
	}
	if m.Det() < 0 {
		sc[0] = -sc[0]
	}
	var r M4
	for i := range sc {
		is := 1.0
		if sc[i] != 0 {
			is = 1 / sc[i]
		}
		r[i] = V4{m[i][0] * is, m[i][1] * is, m[i][2] * is}
	}
	r[3][3] = 1
	*p = V3{m[3][0], m[3][1], m[3][2]}
	q.SetM4(&r)
	*s = sc
}

// FromArray sets m from the 16 column-major elements
// of a starting at off.
func (m *M4) FromArray(a []float64, off int) {
	a = a[off : off+16]
	for i := range m {
		copy(m[i][:], a[i*4:])
	}
}

// ToArray stores the 16 column-major elements of m into
// a starting at off. a is grown as needed.
// It returns the updated slice.
func (m *M4) ToArray(a []float64, off int) []float64 {
	if n := off + 16; len(a) < n {
		a = append(a, make([]float64, n-len(a))...)
	}
	for i := range m {
		copy(a[off+i*4:], m[i][:])
	}
	return a
}
