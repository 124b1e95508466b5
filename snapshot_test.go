// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/gviegas/scene3d/linear"
)

func TestSnapshot(t *testing.T) {
	s := New()
	a := s.NewObject()
	b := s.NewObject()
	c := s.NewObject()
	a.Name, b.Name, c.Name = "a", "b", "c"
	s.Add(a)
	a.Add(b, c)

	a.Position = linear.V3{1, 2, 3}
	a.SetRotation(linear.Euler{X: 0.5, Y: -0.25, Z: 1, Order: linear.YZX})
	a.Scale = linear.V3{2, 2, 2}
	a.CastShadow = true
	a.RenderOrder = 4
	b.Visible = false
	b.Type = "Marker"
	c.MatrixAutoUpdate = false
	var m linear.M4
	m.Translate(0, -1, 0)
	c.SetLocal(&m)
	c.MatrixAutoUpdate = false
	s.Update()

	var buf bytes.Buffer
	if err := Encode(&buf, a); err != nil {
		t.Fatal(err)
	}
	t.Log(buf.String())

	dst := New()
	x, err := dst.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if x.ID() != 1 || x.Parent() != nil {
		t.Fatalf("Scene.Decode: root\nhave %d %p\nwant 1 nil", x.ID(), x.Parent())
	}
	if x.Name != "a" || x.Position != a.Position || x.Scale != a.Scale || !x.CastShadow || x.RenderOrder != 4 {
		t.Fatalf("Scene.Decode: fields\n%s", spew.Sdump(x.Name, x.Position, x.Scale, x.CastShadow, x.RenderOrder))
	}
	if q, p := x.Quaternion(), a.Quaternion(); !nearQ(&q, &p) {
		t.Fatalf("Scene.Decode: Quaternion\nhave %v\nwant %v", q, p)
	}
	if e, f := x.Rotation(), a.Rotation(); !nearEuler(&e, &f) {
		t.Fatalf("Scene.Decode: Rotation\nhave %v\nwant %v", e, f)
	}
	if len(x.Children()) != 2 {
		t.Fatalf("Scene.Decode: children\nhave %s\nwant [b c]", spew.Sdump(x.names()))
	}
	xb, xc := x.Children()[0], x.Children()[1]
	if xb.Name != "b" || xb.Visible || xb.Type != "Marker" || !xb.FrustumCulled {
		t.Fatalf("Scene.Decode: b\n%s", spew.Sdump(xb.Name, xb.Visible, xb.Type, xb.FrustumCulled))
	}
	if xc.Name != "c" || xc.MatrixAutoUpdate || *xc.Local() != m {
		t.Fatalf("Scene.Decode: c\nhave %v %v\nwant false %v", xc.MatrixAutoUpdate, *xc.Local(), m)
	}

	dst.Add(x)
	dst.Update()
	for _, pair := range [...][2]*Object3D{{a, x}, {b, xb}, {c, xc}} {
		if !nearM4(pair[0].World(), pair[1].World()) {
			t.Fatalf("Scene.Decode: world of %s\nhave %v\nwant %v", pair[0].Name, *pair[1].World(), *pair[0].World())
		}
	}
}

func TestSnapshotDefaults(t *testing.T) {
	const doc = `
name: root
position: [1, 0, 0]
children:
  - name: child
    order: ZYX
`
	s := New()
	o, err := s.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if o.Type != TypeObject3D || o.Scale != (linear.V3{1, 1, 1}) || o.Quaternion() != (linear.Q{R: 1}) || !o.Visible || !o.MatrixAutoUpdate {
		t.Fatalf("Scene.Decode: defaults\n%s", spew.Sdump(o.Type, o.Scale, o.Quaternion(), o.Visible, o.MatrixAutoUpdate))
	}
	if o.Local()[3] != (linear.V4{1, 0, 0, 1}) {
		t.Fatalf("Scene.Decode: Local\nhave %v", *o.Local())
	}
	ch := o.ObjectByName("child")
	if ch == nil || ch.Parent() != o || ch.Rotation().Order != linear.ZYX {
		t.Fatalf("Scene.Decode: child\n%s", spew.Sdump(ch))
	}
}

func TestSnapshotInvalid(t *testing.T) {
	s := New()
	_, err := s.Decode(strings.NewReader("name: x\nchildren:\n  - order: XYZZ\n"))
	if !errors.Is(err, linear.ErrInvalidRotation) {
		t.Fatalf("Scene.Decode: order\nhave %v\nwant %v", err, linear.ErrInvalidRotation)
	}
	if _, err := s.Decode(strings.NewReader("position: [1, 2]\n")); err == nil {
		t.Fatal("Scene.Decode: position\nhave nil\nwant error")
	}
	if _, err := s.Decode(strings.NewReader("")); err == nil {
		t.Fatal("Scene.Decode: empty\nhave nil\nwant error")
	}
}

func TestSnapshotEuler(t *testing.T) {
	s := New()
	o := s.NewObject()
	if err := o.SetRotation(linear.Euler{X: 4, Order: linear.XYZ}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, o); err != nil {
		t.Fatal(err)
	}
	x, err := New().Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// The angle comes back in the principal range.
	if e := x.Rotation(); !near(e.X, 4-2*math.Pi) || !near(e.Y, 0) || !near(e.Z, 0) || e.Order != linear.XYZ {
		t.Fatalf("Scene.Decode: Rotation\nhave %v\nwant {%v 0 0 XYZ}", e, 4-2*math.Pi)
	}
	if q, p := x.Quaternion(), o.Quaternion(); !nearQ(&q, &p) {
		t.Fatalf("Scene.Decode: Quaternion\nhave %v\nwant %v", q, p)
	}
}
