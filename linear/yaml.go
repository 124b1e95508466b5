// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML encoding: vectors and quaternions are flow
// sequences ([x, y, z] and [x, y, z, w]), matrices are
// flat column-major sequences and orders are strings.

func flow(v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return &n, nil
}

// MarshalYAML implements yaml.Marshaler.
func (v V3) MarshalYAML() (any, error) { return flow([3]float64(v)) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *V3) UnmarshalYAML(n *yaml.Node) error {
	var a []float64
	if err := n.Decode(&a); err != nil {
		return err
	}
	if len(a) != len(v) {
		return errors.Errorf("linear: V3 needs %d components, got %d", len(v), len(a))
	}
	copy(v[:], a)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (q Q) MarshalYAML() (any, error) {
	return flow([4]float64{q.V[0], q.V[1], q.V[2], q.R})
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Q) UnmarshalYAML(n *yaml.Node) error {
	var a []float64
	if err := n.Decode(&a); err != nil {
		return err
	}
	if len(a) != 4 {
		return errors.Errorf("linear: Q needs 4 components, got %d", len(a))
	}
	q.Set(a[0], a[1], a[2], a[3])
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m M4) MarshalYAML() (any, error) { return flow(m.ToArray(nil, 0)) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *M4) UnmarshalYAML(n *yaml.Node) error {
	var a []float64
	if err := n.Decode(&a); err != nil {
		return err
	}
	if len(a) != 16 {
		return errors.Errorf("linear: M4 needs 16 elements, got %d", len(a))
	}
	m.FromArray(a, 0)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Unknown orders are rejected with ErrInvalidRotation.
func (o *Order) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	if !Order(s).Valid() {
		return invalidOrder("Order.UnmarshalYAML", Order(s))
	}
	*o = Order(s)
	return nil
}
