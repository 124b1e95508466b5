// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Order is the sequence in which the elemental rotations
// of an Euler are composed.
// The zero value is equivalent to XYZ.
type Order string

// Rotation orders.
const (
	XYZ Order = "XYZ"
	YZX Order = "YZX"
	ZXY Order = "ZXY"
	XZY Order = "XZY"
	ZYX Order = "ZYX"
	YXZ Order = "YXZ"
)

// DefaultOrder is the Order that the zero Order
// stands for.
const DefaultOrder = XYZ

// resolve maps the zero Order to DefaultOrder and
// reports whether o is a known order.
func (o Order) resolve() (Order, bool) {
	switch o {
	case "":
		return DefaultOrder, true
	case XYZ, YZX, ZXY, XZY, ZYX, YXZ:
		return o, true
	}
	return o, false
}

// Valid reports whether o is one of the six rotation
// orders or the zero Order.
func (o Order) Valid() bool {
	_, ok := o.resolve()
	return ok
}

func (o Order) String() string {
	if o == "" {
		return string(DefaultOrder)
	}
	return string(o)
}

// Euler is a rotation described by three angles, in
// radians, about the x, y and z axes, applied in the
// given Order.
//
// Angles are not wrapped into any canonical range.
// Assigning an Euler copies all four fields; == compares
// all four fields.
type Euler struct {
	X, Y, Z float64
	Order   Order
}

// Set sets all fields of e.
func (e *Euler) Set(x, y, z float64, order Order) {
	*e = Euler{x, y, z, order}
}

// SetM4 sets e from the rotation in the upper-left 3x3
// of m, which must be unscaled.
// The angles are produced in the given order.
// It returns an error wrapping ErrInvalidRotation if
// order is not valid, in which case e is left unchanged.
func (e *Euler) SetM4(m *M4, order Order) error {
	o, ok := order.resolve()
	if !ok {
		return invalidOrder("Euler.SetM4", order)
	}
	// mRC is the element at row R, column C.
	m11, m12, m13 := m[0][0], m[1][0], m[2][0]
	m21, m22, m23 := m[0][1], m[1][1], m[2][1]
	m31, m32, m33 := m[0][2], m[1][2], m[2][2]

	const lim = 0.9999999
	var x, y, z float64
	switch o {
	case XYZ:
		y = math.Asin(clamp(m13))
		if math.Abs(m13) < lim {
			x = math.Atan2(-m23, m33)
			z = math.Atan2(-m12, m11)
		} else {
			x = math.Atan2(m32, m22)
		}
	case YXZ:
		x = math.Asin(-clamp(m23))
		if math.Abs(m23) < lim {
			y = math.Atan2(m13, m33)
			z = math.Atan2(m21, m22)
		} else {
			y = math.Atan2(-m31, m11)
		}
	case ZXY:
		x = math.Asin(clamp(m32))
		if math.Abs(m32) < lim {
			y = math.Atan2(-m31, m33)
			z = math.Atan2(-m12, m22)
		} else {
			z = math.Atan2(m21, m11)
		}
	case ZYX:
		y = math.Asin(-clamp(m31))
		if math.Abs(m31) < lim {
			x = math.Atan2(m32, m33)
			z = math.Atan2(m21, m11)
		} else {
			z = math.Atan2(-m12, m22)
		}
	case YZX:
		z = math.Asin(clamp(m21))
		if math.Abs(m21) < lim {
			x = math.Atan2(-m23, m22)
			y = math.Atan2(-m31, m11)
		} else {
			y = math.Atan2(m13, m33)
		}
	case XZY:
		z = math.Asin(-clamp(m12))
		if math.Abs(m12) < lim {
			x = math.Atan2(m32, m22)
			y = math.Atan2(m13, m11)
		} else {
			x = math.Atan2(-m23, m33)
		}
	}
	*e = Euler{x, y, z, order}
	return nil
}

// SetQ sets e from the unit quaternion q.
// The angles are produced in the given order.
// Invalid orders are handled as in SetM4.
func (e *Euler) SetQ(q *Q, order Order) error {
	if !order.Valid() {
		return invalidOrder("Euler.SetQ", order)
	}
	var m M4
	m.RotateQ(q)
	return e.SetM4(&m, order)
}

func clamp(x float64) float64 { return max(-1, min(1, x)) }
