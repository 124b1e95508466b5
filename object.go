// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gviegas/scene3d/linear"
)

// TypeObject3D is the Type of objects created by
// NewObject.
const TypeObject3D = "Object3D"

// Object3D is a transformable node of a scene graph.
// Objects have at most one immediate ancestor and
// an arbitrary number of immediate descendants.
//
// The orientation of an object is held both as an Euler
// rotation and as a unit quaternion. Every method that
// writes one of them rederives the other, so the two
// always describe the same orientation.
type Object3D struct {
	next   *Object3D
	prev   *Object3D
	sub    *Object3D
	parent *Object3D

	id   uint64
	uuid uuid.UUID

	// Name for the object.
	// It is not used by object code other than
	// ObjectByName.
	Name string

	// Type tag of the object.
	Type string

	// Up direction.
	Up linear.V3

	// Position, relative to the parent.
	Position linear.V3

	// Scale, relative to the parent.
	Scale linear.V3

	rotation   linear.Euler
	quaternion linear.Q

	local     linear.M4
	world     linear.M4
	modelView linear.M4
	normal    linear.M3

	// Whether UpdateMatrixWorld recomposes the local
	// transform from Position, the quaternion and Scale.
	MatrixAutoUpdate bool
	worldNeedsUpdate bool

	Visible       bool
	CastShadow    bool
	ReceiveShadow bool
	FrustumCulled bool
	RenderOrder   int
}

// NewObject creates an initialized object whose
// identifier is taken from ids.
func NewObject(ids IDAllocator) *Object3D { return new(Object3D).Init(ids) }

// Init initializes o using the package configuration.
// Its identifier is taken from ids.
// o must not be part of a scene graph.
func (o *Object3D) Init(ids IDAllocator) *Object3D {
	*o = Object3D{
		id:               ids.Next(),
		uuid:             uuid.New(),
		Type:             TypeObject3D,
		Up:               cfg.Up,
		Scale:            linear.V3{1, 1, 1},
		rotation:         linear.Euler{Order: cfg.Order},
		MatrixAutoUpdate: cfg.MatrixAutoUpdate,
		Visible:          true,
		FrustumCulled:    true,
	}
	o.syncQuaternion()
	o.local.I()
	o.world.I()
	o.modelView.I()
	o.normal.I()
	return o
}

// ID returns the identifier of o.
func (o *Object3D) ID() uint64 { return o.id }

// UUID returns the universally unique identifier of o.
func (o *Object3D) UUID() uuid.UUID { return o.uuid }

// syncQuaternion rederives the quaternion from the
// rotation. The rotation order is always valid.
func (o *Object3D) syncQuaternion() {
	if err := o.quaternion.SetEuler(&o.rotation); err != nil {
		panic(err)
	}
}

// syncRotation rederives the rotation from the
// quaternion, keeping the current order.
func (o *Object3D) syncRotation() {
	if err := o.rotation.SetQ(&o.quaternion, o.rotation.Order); err != nil {
		panic(err)
	}
}

// Rotation returns the Euler rotation of o.
func (o *Object3D) Rotation() linear.Euler { return o.rotation }

// Quaternion returns the orientation of o as a unit
// quaternion.
func (o *Object3D) Quaternion() linear.Q { return o.quaternion }

// SetRotation sets the Euler rotation of o.
// It fails with linear.ErrInvalidRotation if e.Order is
// not valid, in which case o is not changed.
func (o *Object3D) SetRotation(e linear.Euler) error {
	if !e.Order.Valid() {
		return errors.Wrapf(linear.ErrInvalidRotation, "Object3D.SetRotation: unknown rotation order %q", string(e.Order))
	}
	o.rotation = e
	o.syncQuaternion()
	return nil
}

// SetRotationFromEuler is equivalent to SetRotation(*e).
func (o *Object3D) SetRotationFromEuler(e *linear.Euler) error { return o.SetRotation(*e) }

// SetRotationX sets the x angle of the rotation of o.
func (o *Object3D) SetRotationX(x float64) {
	o.rotation.X = x
	o.syncQuaternion()
}

// SetRotationY sets the y angle of the rotation of o.
func (o *Object3D) SetRotationY(y float64) {
	o.rotation.Y = y
	o.syncQuaternion()
}

// SetRotationZ sets the z angle of the rotation of o.
func (o *Object3D) SetRotationZ(z float64) {
	o.rotation.Z = z
	o.syncQuaternion()
}

// SetOrder sets the order of the rotation of o.
// The angles are kept and reinterpreted, so the
// orientation of o changes.
func (o *Object3D) SetOrder(order linear.Order) error {
	e := o.rotation
	e.Order = order
	return o.SetRotation(e)
}

// SetQuaternion sets the orientation of o to the
// normalization of q.
func (o *Object3D) SetQuaternion(q linear.Q) {
	o.quaternion.Norm(&q)
	o.syncRotation()
}

// SetRotationFromQuaternion is equivalent to
// SetQuaternion(*q).
func (o *Object3D) SetRotationFromQuaternion(q *linear.Q) { o.SetQuaternion(*q) }

// SetRotationFromAxisAngle sets the orientation of o to
// a rotation of angle radians about the unit vector axis.
func (o *Object3D) SetRotationFromAxisAngle(axis *linear.V3, angle float64) {
	var q linear.Q
	q.Rotate(angle, axis)
	o.SetQuaternion(q)
}

// SetRotationFromMatrix sets the orientation of o from
// the upper-left 3x3 of m, which must be a pure
// rotation.
func (o *Object3D) SetRotationFromMatrix(m *linear.M4) {
	var q linear.Q
	q.SetM4(m)
	o.SetQuaternion(q)
}

// RotateOnAxis rotates o by angle radians about the unit
// vector axis, in the local frame.
func (o *Object3D) RotateOnAxis(axis *linear.V3, angle float64) {
	var d, q linear.Q
	d.Rotate(angle, axis)
	q.Mul(&o.quaternion, &d)
	o.SetQuaternion(q)
}

// RotateOnWorldAxis rotates o by angle radians about the
// unit vector axis, in the parent's frame.
func (o *Object3D) RotateOnWorldAxis(axis *linear.V3, angle float64) {
	var d, q linear.Q
	d.Rotate(angle, axis)
	q.Mul(&d, &o.quaternion)
	o.SetQuaternion(q)
}

var (
	axisX = linear.V3{1, 0, 0}
	axisY = linear.V3{0, 1, 0}
	axisZ = linear.V3{0, 0, 1}
)

// RotateX rotates o about its local x axis.
func (o *Object3D) RotateX(angle float64) { o.RotateOnAxis(&axisX, angle) }

// RotateY rotates o about its local y axis.
func (o *Object3D) RotateY(angle float64) { o.RotateOnAxis(&axisY, angle) }

// RotateZ rotates o about its local z axis.
func (o *Object3D) RotateZ(angle float64) { o.RotateOnAxis(&axisZ, angle) }

// TranslateOnAxis moves o by distance along the unit
// vector axis, in the local frame.
func (o *Object3D) TranslateOnAxis(axis *linear.V3, distance float64) {
	var v linear.V3
	v.RotateQ(&o.quaternion, axis)
	v.Scale(distance, &v)
	o.Position.Add(&o.Position, &v)
}

// TranslateX moves o along its local x axis.
func (o *Object3D) TranslateX(distance float64) { o.TranslateOnAxis(&axisX, distance) }

// TranslateY moves o along its local y axis.
func (o *Object3D) TranslateY(distance float64) { o.TranslateOnAxis(&axisY, distance) }

// TranslateZ moves o along its local z axis.
func (o *Object3D) TranslateZ(distance float64) { o.TranslateOnAxis(&axisZ, distance) }
