// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package gltf converts between the node hierarchy of
// glTF 2.0 documents and scene3d objects.
// Only names and transforms are converted.
package gltf

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/gviegas/scene3d"
	"github.com/gviegas/scene3d/linear"
)

var (
	identity   = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	noRotation = [4]float32{0, 0, 0, 1}
	unitScale  = [3]float32{1, 1, 1}
)

var (
	zeroMatrix   [16]float32
	zeroRotation [4]float32
)

// Import creates the object trees of the default scene
// of doc, using s to allocate the objects.
// The default scene is doc.Scene, or 0 if it is not set.
// If doc has no scenes, every node without a parent is
// a root.
// Nodes that define a matrix have it decomposed into
// position, rotation and scale. A zero rotation is taken
// as the identity.
// The roots are returned in scene order and are not
// inserted into s.
func Import(doc *gltf.Document, s *scene3d.Scene) ([]*scene3d.Object3D, error) {
	parent, err := check(doc)
	if err != nil {
		return nil, errors.WithMessage(err, "Import")
	}
	var roots []uint32
	switch {
	case len(doc.Scenes) > 0:
		var i uint32
		if doc.Scene != nil {
			i = *doc.Scene
		}
		if doc.Scenes[i] != nil {
			roots = doc.Scenes[i].Nodes
		}
	default:
		for i, p := range parent {
			if p == -1 {
				roots = append(roots, uint32(i))
			}
		}
	}
	objs := make([]*scene3d.Object3D, len(roots))
	for i, r := range roots {
		objs[i] = importNode(doc, r, s)
	}
	return objs, nil
}

func importNode(doc *gltf.Document, idx uint32, s *scene3d.Scene) *scene3d.Object3D {
	n := doc.Nodes[idx]
	o := s.NewObject()
	o.Name = n.Name
	if n.Matrix != identity && n.Matrix != zeroMatrix {
		var a [16]float64
		for i, x := range n.Matrix {
			a[i] = float64(x)
		}
		var m linear.M4
		m.FromArray(a[:], 0)
		o.SetLocal(&m)
	} else {
		t, r, sc := n.Translation, n.Rotation, n.Scale
		o.Position = linear.V3{float64(t[0]), float64(t[1]), float64(t[2])}
		if r == zeroRotation {
			r = noRotation
		}
		o.SetQuaternion(linear.Q{V: linear.V3{float64(r[0]), float64(r[1]), float64(r[2])}, R: float64(r[3])})
		o.Scale = linear.V3{float64(sc[0]), float64(sc[1]), float64(sc[2])}
		o.UpdateMatrix()
	}
	for _, c := range n.Children {
		// The hierarchy was checked already.
		if err := o.Add(importNode(doc, c, s)); err != nil {
			panic(err)
		}
	}
	return o
}

// Export creates a document containing the trees rooted
// at roots in its default scene.
// Objects whose MatrixAutoUpdate is not set are written
// with their local transform as a matrix. Other objects
// are written with translation, rotation and scale.
func Export(roots ...*scene3d.Object3D) *gltf.Document {
	doc := gltf.NewDocument()
	for _, o := range roots {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, exportNode(doc, o))
	}
	return doc
}

func exportNode(doc *gltf.Document, o *scene3d.Object3D) uint32 {
	n := &gltf.Node{
		Name:     o.Name,
		Matrix:   identity,
		Rotation: noRotation,
		Scale:    unitScale,
	}
	if o.MatrixAutoUpdate {
		q := o.Quaternion()
		n.Translation = [3]float32{float32(o.Position[0]), float32(o.Position[1]), float32(o.Position[2])}
		n.Rotation = [4]float32{float32(q.V[0]), float32(q.V[1]), float32(q.V[2]), float32(q.R)}
		n.Scale = [3]float32{float32(o.Scale[0]), float32(o.Scale[1]), float32(o.Scale[2])}
	} else {
		a := o.Local().ToArray(make([]float64, 0, 16), 0)
		for i, x := range a {
			n.Matrix[i] = float32(x)
		}
	}
	idx := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, n)
	for _, c := range o.Children() {
		i := exportNode(doc, c)
		n.Children = append(n.Children, i)
	}
	return idx
}

// Decode reads a glTF or GLB document from r and imports
// it as Import does.
// Buffers are not needed and must not be external.
func Decode(r io.Reader, s *scene3d.Scene) ([]*scene3d.Object3D, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "Decode")
	}
	return Import(doc, s)
}

// Encode writes the document created by Export(roots...)
// to w as glTF JSON.
func Encode(w io.Writer, roots ...*scene3d.Object3D) error {
	return encode(w, false, roots)
}

// EncodeGLB is like Encode but writes a GLB container.
func EncodeGLB(w io.Writer, roots ...*scene3d.Object3D) error {
	return encode(w, true, roots)
}

func encode(w io.Writer, binary bool, roots []*scene3d.Object3D) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	return errors.Wrap(enc.Encode(Export(roots...)), "Encode")
}
