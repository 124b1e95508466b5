// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestOrder(t *testing.T) {
	for _, o := range orders {
		if !o.Valid() {
			t.Fatalf("Order(%q).Valid\nhave false\nwant true", o)
		}
		if o.String() != string(o) {
			t.Fatalf("Order.String\nhave %q\nwant %q", o.String(), string(o))
		}
	}
	var zero Order
	if !zero.Valid() || zero.String() != "XYZ" {
		t.Fatalf("Order(\"\")\nhave %v %q\nwant true \"XYZ\"", zero.Valid(), zero.String())
	}
	for _, o := range [...]Order{"xyz", "XXY", "XY", "XYZW"} {
		if o.Valid() {
			t.Fatalf("Order(%q).Valid\nhave true\nwant false", o)
		}
	}
}

func TestEuler(t *testing.T) {
	var e Euler
	e.Set(1, 2, 3, ZYX)
	if e != (Euler{1, 2, 3, ZYX}) {
		t.Fatalf("Euler.Set\nhave %v\nwant {1 2 3 ZYX}", e)
	}
	f := e
	if f != e {
		t.Fatalf("Euler copy\nhave %v\nwant %v", f, e)
	}
	f.Order = XYZ
	if f == e {
		t.Fatal("Euler ==: order is ignored")
	}
	f.Order = ZYX
	f.Y = 2.5
	if f == e || e.Y != 2 {
		t.Fatal("Euler copy: not independent")
	}
}

// Round trip through the quaternion representation.
func TestEulerQ(t *testing.T) {
	for _, o := range orders {
		for _, a := range angles {
			e := Euler{a[0], a[1], a[2], o}
			var q Q
			var f Euler
			q.SetEuler(&e)
			if err := f.SetQ(&q, o); err != nil {
				t.Fatalf("Euler.SetQ: %v", err)
			}
			if f.Order != o || !near(f.X, e.X) || !near(f.Y, e.Y) || !near(f.Z, e.Z) {
				t.Fatalf("Euler.SetQ\nhave %v\nwant %v", f, e)
			}
		}
	}
}

// At gimbal lock only the combined rotation is
// recoverable.
func TestEulerGimbal(t *testing.T) {
	for _, o := range orders {
		var a V3
		a[o[1]-'X'] = math.Pi / 2
		a[o[0]-'X'] = 0.4
		a[o[2]-'X'] = -0.3
		e := Euler{a[0], a[1], a[2], o}
		var m, n M4
		var f Euler
		m.RotateEuler(&e)
		if err := f.SetM4(&m, o); err != nil {
			t.Fatal(err)
		}
		n.RotateEuler(&f)
		if !nearM4(&m, &n) {
			t.Fatalf("Euler.SetM4(%v): gimbal lock\nhave %v\nwant %v", e, n, m)
		}
	}
}

func TestEulerInvalid(t *testing.T) {
	var m M4
	var q Q
	m.I()
	q.I()
	e := Euler{1, 2, 3, XYZ}
	if err := e.SetM4(&m, "ABC"); errors.Cause(err) != ErrInvalidRotation {
		t.Fatalf("Euler.SetM4\nhave %v\nwant %v", err, ErrInvalidRotation)
	}
	if err := e.SetQ(&q, "ZZZ"); errors.Cause(err) != ErrInvalidRotation {
		t.Fatalf("Euler.SetQ\nhave %v\nwant %v", err, ErrInvalidRotation)
	}
	if e != (Euler{1, 2, 3, XYZ}) {
		t.Fatalf("Euler: receiver changed\nhave %v", e)
	}
}
