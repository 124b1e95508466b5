// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of float64.
// V holds the x, y and z components and R holds w.
// Assigning a Q copies it.
type Q struct {
	V V3
	R float64
}

// I makes q the identity quaternion.
func (q *Q) I() { *q = Q{R: 1} }

// Set sets the components of q.
func (q *Q) Set(x, y, z, w float64) { *q = Q{V: V3{x, y, z}, R: w} }

// Dot returns q ⋅ p.
func (q *Q) Dot(p *Q) float64 { return q.V.Dot(&p.V) + q.R*p.R }

// Len returns the length of q.
func (q *Q) Len() float64 { return math.Sqrt(q.Dot(q)) }

// Norm sets q to contain p normalized.
// A zero p produces the identity quaternion.
func (q *Q) Norm(p *Q) {
	l := p.Len()
	if l == 0 {
		q.I()
		return
	}
	il := 1 / l
	q.V.Scale(il, &p.V)
	q.R = p.R * il
}

// Conj sets q to contain the conjugate of p.
func (q *Q) Conj(p *Q) {
	q.V.Scale(-1, &p.V)
	q.R = p.R
}

// Invert sets q to contain the inverse of the unit
// quaternion p.
func (q *Q) Invert(p *Q) { q.Conj(p) }

// Mul sets q to contain l ⋅ r.
// The resulting rotation applies r first, then l.
func (q *Q) Mul(l, r *Q) {
	var v, w V3
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	q.V.Add(&v, &w)
	q.R = l.R*r.R - d
}

// Rotate sets q to contain a rotation of angle radians
// about axis.
// axis must be a unit vector.
func (q *Q) Rotate(angle float64, axis *V3) {
	s, c := math.Sincos(angle * 0.5)
	q.V.Scale(s, axis)
	q.R = c
}

// SetEuler sets q from the rotation e.
// It returns an error wrapping ErrInvalidRotation if
// e.Order is not valid, in which case q is left unchanged.
func (q *Q) SetEuler(e *Euler) error {
	order, ok := e.Order.resolve()
	if !ok {
		return invalidOrder("Q.SetEuler", e.Order)
	}
	s1, c1 := math.Sincos(e.X * 0.5)
	s2, c2 := math.Sincos(e.Y * 0.5)
	s3, c3 := math.Sincos(e.Z * 0.5)
	switch order {
	case XYZ:
		q.Set(s1*c2*c3+c1*s2*s3, c1*s2*c3-s1*c2*s3, c1*c2*s3+s1*s2*c3, c1*c2*c3-s1*s2*s3)
	case YXZ:
		q.Set(s1*c2*c3+c1*s2*s3, c1*s2*c3-s1*c2*s3, c1*c2*s3-s1*s2*c3, c1*c2*c3+s1*s2*s3)
	case ZXY:
		q.Set(s1*c2*c3-c1*s2*s3, c1*s2*c3+s1*c2*s3, c1*c2*s3+s1*s2*c3, c1*c2*c3-s1*s2*s3)
	case ZYX:
		q.Set(s1*c2*c3-c1*s2*s3, c1*s2*c3+s1*c2*s3, c1*c2*s3-s1*s2*c3, c1*c2*c3+s1*s2*s3)
	case YZX:
		q.Set(s1*c2*c3+c1*s2*s3, c1*s2*c3+s1*c2*s3, c1*c2*s3-s1*s2*c3, c1*c2*c3-s1*s2*s3)
	case XZY:
		q.Set(s1*c2*c3-c1*s2*s3, c1*s2*c3-s1*c2*s3, c1*c2*s3+s1*s2*c3, c1*c2*c3+s1*s2*s3)
	}
	return nil
}

// SetM4 sets q from the rotation in the upper-left 3x3
// of m, which must be unscaled.
func (q *Q) SetM4(m *M4) {
	m11, m12, m13 := m[0][0], m[1][0], m[2][0]
	m21, m22, m23 := m[0][1], m[1][1], m[2][1]
	m31, m32, m33 := m[0][2], m[1][2], m[2][2]

	switch tr := m11 + m22 + m33; {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1)
		q.Set((m32-m23)*s, (m13-m31)*s, (m21-m12)*s, 0.25/s)
	case m11 > m22 && m11 > m33:
		s := 2 * math.Sqrt(1+m11-m22-m33)
		q.Set(0.25*s, (m12+m21)/s, (m13+m31)/s, (m32-m23)/s)
	case m22 > m33:
		s := 2 * math.Sqrt(1+m22-m11-m33)
		q.Set((m12+m21)/s, 0.25*s, (m23+m32)/s, (m13-m31)/s)
	default:
		s := 2 * math.Sqrt(1+m33-m11-m22)
		q.Set((m13+m31)/s, (m23+m32)/s, 0.25*s, (m21-m12)/s)
	}
}

// epsilon is the difference between 1 and the next
// representable float64.
const epsilon = 0x1p-52

// Slerp sets q to contain the spherical linear
// interpolation between the unit quaternions a and b.
// It follows the shorter arc. t is not clamped;
// t == 0 yields a, t == 1 yields b and equal a and b
// yield a.
func (q *Q) Slerp(a, b *Q, t float64) {
	switch {
	case t == 0 || *a == *b:
		*q = *a
		return
	case t == 1:
		*q = *b
		return
	}
	x := *a
	y := *b
	cos := x.Dot(&y)
	if cos < 0 {
		y.V.Scale(-1, &y.V)
		y.R = -y.R
		cos = -cos
	}
	if cos >= 1 {
		*q = x
		return
	}
	sqrSin := 1 - cos*cos
	if sqrSin <= epsilon {
		s := 1 - t
		q.V.Scale(s, &x.V)
		y.V.Scale(t, &y.V)
		q.V.Add(&q.V, &y.V)
		q.R = s*x.R + t*y.R
		q.Norm(q)
		return
	}
	sin := math.Sqrt(sqrSin)
	theta := math.Atan2(sin, cos)
	ra := math.Sin((1-t)*theta) / sin
	rb := math.Sin(t*theta) / sin
	q.V.Scale(ra, &x.V)
	y.V.Scale(rb, &y.V)
	q.V.Add(&q.V, &y.V)
	q.R = ra*x.R + rb*y.R
}

// SlerpFlat is like Q.Slerp but operates on quaternions
// stored as (x, y, z, w) in flat slices.
// The result is written to dst[dstOff:dstOff+4]; the
// inputs are read from src0[off0:] and src1[off1:].
// Identical inputs are copied through unchanged.
func SlerpFlat(dst []float64, dstOff int, src0 []float64, off0 int, src1 []float64, off1 int, t float64) {
	x0, y0, z0, w0 := src0[off0], src0[off0+1], src0[off0+2], src0[off0+3]
	x1, y1, z1, w1 := src1[off1], src1[off1+1], src1[off1+2], src1[off1+3]

	if x0 != x1 || y0 != y1 || z0 != z1 || w0 != w1 {
		s := 1 - t
		cos := x0*x1 + y0*y1 + z0*z1 + w0*w1
		dir := 1.0
		if cos < 0 {
			dir = -1
		}
		lerp := true
		if sqrSin := 1 - cos*cos; sqrSin > epsilon {
			sin := math.Sqrt(sqrSin)
			l := math.Atan2(sin, cos*dir)
			s = math.Sin(s*l) / sin
			t = math.Sin(t*l) / sin
			lerp = false
		}
		tDir := t * dir
		x0 = x0*s + x1*tDir
		y0 = y0*s + y1*tDir
		z0 = z0*s + z1*tDir
		w0 = w0*s + w1*tDir

		if lerp {
			f := 1 / math.Sqrt(x0*x0+y0*y0+z0*z0+w0*w0)
			x0 *= f
			y0 *= f
			z0 *= f
			w0 *= f
		}
	}

	dst[dstOff] = x0
	dst[dstOff+1] = y0
	dst[dstOff+2] = z0
	dst[dstOff+3] = w0
}
