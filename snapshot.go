// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gviegas/scene3d/linear"
)

// snapshot is the YAML form of an object tree.
type snapshot struct {
	Name             string       `yaml:"name,omitempty"`
	Type             string       `yaml:"type,omitempty"`
	Up               linear.V3    `yaml:"up"`
	Position         linear.V3    `yaml:"position"`
	Quaternion       linear.Q     `yaml:"quaternion"`
	Order            linear.Order `yaml:"order,omitempty"`
	Scale            linear.V3    `yaml:"scale"`
	MatrixAutoUpdate bool         `yaml:"matrixAutoUpdate"`
	Matrix           *linear.M4   `yaml:"matrix,omitempty"`
	Visible          bool         `yaml:"visible"`
	CastShadow       bool         `yaml:"castShadow,omitempty"`
	ReceiveShadow    bool         `yaml:"receiveShadow,omitempty"`
	FrustumCulled    bool         `yaml:"frustumCulled"`
	RenderOrder      int          `yaml:"renderOrder,omitempty"`
	Children         []snapshot   `yaml:"children,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Missing fields take the values of a new object.
func (x *snapshot) UnmarshalYAML(n *yaml.Node) error {
	type plain snapshot
	p := plain{
		Up:               cfg.Up,
		Quaternion:       linear.Q{R: 1},
		Order:            cfg.Order,
		Scale:            linear.V3{1, 1, 1},
		MatrixAutoUpdate: cfg.MatrixAutoUpdate,
		Visible:          true,
		FrustumCulled:    true,
	}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*x = snapshot(p)
	return nil
}

func newSnapshot(o *Object3D) snapshot {
	x := snapshot{
		Name:             o.Name,
		Type:             o.Type,
		Up:               o.Up,
		Position:         o.Position,
		Quaternion:       o.quaternion,
		Order:            o.rotation.Order,
		Scale:            o.Scale,
		MatrixAutoUpdate: o.MatrixAutoUpdate,
		Visible:          o.Visible,
		CastShadow:       o.CastShadow,
		ReceiveShadow:    o.ReceiveShadow,
		FrustumCulled:    o.FrustumCulled,
		RenderOrder:      o.RenderOrder,
	}
	if !o.MatrixAutoUpdate {
		m := o.local
		x.Matrix = &m
	}
	for c := o.sub; c != nil; c = c.next {
		x.Children = append(x.Children, newSnapshot(c))
	}
	return x
}

// Encode writes the tree rooted at o to w as a YAML
// document.
// Identifiers are not written. Local transforms are
// only written for objects whose MatrixAutoUpdate is
// not set.
// Rotations are written as a quaternion and an order.
// Decoding re-derives the Euler angles from them, so
// angles outside the principal range come back as an
// equivalent rotation.
func Encode(w io.Writer, o *Object3D) error {
	x := newSnapshot(o)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&x); err != nil {
		return errors.Wrap(err, "Encode")
	}
	return errors.Wrap(enc.Close(), "Encode")
}

// build creates the tree described by x.
func (s *Scene) build(x *snapshot) *Object3D {
	o := s.NewObject()
	o.Name = x.Name
	if x.Type != "" {
		o.Type = x.Type
	}
	o.Up = x.Up
	o.Position = x.Position
	o.Scale = x.Scale
	o.rotation.Order = x.Order
	o.SetQuaternion(x.Quaternion)
	o.MatrixAutoUpdate = x.MatrixAutoUpdate
	if x.Matrix != nil {
		o.local = *x.Matrix
	} else {
		o.UpdateMatrix()
	}
	o.worldNeedsUpdate = true
	o.Visible = x.Visible
	o.CastShadow = x.CastShadow
	o.ReceiveShadow = x.ReceiveShadow
	o.FrustumCulled = x.FrustumCulled
	o.RenderOrder = x.RenderOrder
	for i := range x.Children {
		o.insert(s.build(&x.Children[i]))
	}
	return o
}

// Decode reads a YAML document written by Encode from r
// and creates the tree it describes.
// New objects take their identifiers from s. The root of
// the tree is returned and is not inserted into s.
// Unknown rotation orders cause the decoding to fail
// with linear.ErrInvalidRotation.
func (s *Scene) Decode(r io.Reader) (*Object3D, error) {
	var x snapshot
	if err := yaml.NewDecoder(r).Decode(&x); err != nil {
		return nil, errors.Wrap(err, "Scene.Decode")
	}
	return s.build(&x), nil
}
