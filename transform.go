// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"github.com/pkg/errors"

	"github.com/gviegas/scene3d/linear"
)

// Local returns the local transform of o.
// It is only updated by UpdateMatrix, SetLocal and, when
// o.MatrixAutoUpdate is set, UpdateMatrixWorld.
func (o *Object3D) Local() *linear.M4 { return &o.local }

// World returns the world transform of o as computed by
// the last call to UpdateMatrixWorld.
func (o *Object3D) World() *linear.M4 { return &o.world }

// SetLocal sets the local transform of o to m and
// decomposes it into Position, the quaternion and Scale.
// m must be an affine transform.
func (o *Object3D) SetLocal(m *linear.M4) {
	o.local = *m
	var q linear.Q
	o.local.Decompose(&o.Position, &q, &o.Scale)
	o.SetQuaternion(q)
	o.worldNeedsUpdate = true
}

// UpdateMatrix composes the local transform of o from
// Position, the quaternion and Scale.
func (o *Object3D) UpdateMatrix() {
	o.local.Compose(&o.Position, &o.quaternion, &o.Scale)
	o.worldNeedsUpdate = true
}

// UpdateMatrixWorld updates the world transforms of o
// and its descendants, depth-first.
// The world transform of a root is its local transform.
// Otherwise it is the parent's world transform times
// the local transform. force causes the world transform
// to be recomputed even if nothing changed; it is
// implied for the descendants of any object whose world
// transform was recomputed.
func (o *Object3D) UpdateMatrixWorld(force bool) {
	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}
	if o.worldNeedsUpdate || force {
		if o.parent == nil {
			o.world = o.local
		} else {
			o.world.Mul(&o.parent.world, &o.local)
		}
		o.worldNeedsUpdate = false
		force = true
	}
	for x := o.sub; x != nil; x = x.next {
		x.UpdateMatrixWorld(force)
	}
}

// LocalToWorld converts the point p from the local space
// of o to world space.
func (o *Object3D) LocalToWorld(p linear.V3) (w linear.V3) {
	w.MulPoint(&o.world, &p)
	return
}

// WorldToLocal converts the point p from world space to
// the local space of o.
// If the world transform is singular, it fails with
// linear.ErrDegenerate when the package is configured
// with StrictInverse, and returns p unchanged otherwise.
func (o *Object3D) WorldToLocal(p linear.V3) (l linear.V3, err error) {
	var inv linear.M4
	if err = inv.Invert(&o.world, cfg.StrictInverse); err != nil {
		return p, errors.WithMessagef(err, "Object3D.WorldToLocal: object %d", o.id)
	}
	l.MulPoint(&inv, &p)
	return
}

// WorldPosition returns the translation of the world
// transform of o.
func (o *Object3D) WorldPosition() linear.V3 {
	return linear.V3{o.world[3][0], o.world[3][1], o.world[3][2]}
}

// WorldQuaternion returns the rotation of the world
// transform of o.
func (o *Object3D) WorldQuaternion() (q linear.Q) {
	var p, s linear.V3
	o.world.Decompose(&p, &q, &s)
	return
}

// WorldScale returns the scale of the world transform
// of o.
func (o *Object3D) WorldScale() (s linear.V3) {
	var p linear.V3
	var q linear.Q
	o.world.Decompose(&p, &q, &s)
	return
}

// WorldDirection returns the direction of the positive
// z axis of o in world space.
func (o *Object3D) WorldDirection() (d linear.V3) {
	z := linear.V3{o.world[2][0], o.world[2][1], o.world[2][2]}
	d.Norm(&z)
	return
}

// UpdateModelView sets the model-view transform of o to
// view times its world transform, and the normal matrix
// to the inverse transpose of the result.
// A singular model-view transform is handled as in
// WorldToLocal.
func (o *Object3D) UpdateModelView(view *linear.M4) error {
	o.modelView.Mul(view, &o.world)
	if err := o.normal.Normal(&o.modelView, cfg.StrictInverse); err != nil {
		return errors.WithMessagef(err, "Object3D.UpdateModelView: object %d", o.id)
	}
	return nil
}

// ModelView returns the model-view transform of o as
// computed by the last call to UpdateModelView.
func (o *Object3D) ModelView() *linear.M4 { return &o.modelView }

// NormalMatrix returns the normal matrix of o as computed
// by the last call to UpdateModelView.
func (o *Object3D) NormalMatrix() *linear.M3 { return &o.normal }
