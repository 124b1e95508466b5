// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene3d provides scene graphs of transformable
// objects.
package scene3d

// TypeScene is the Type of a Scene's root object.
const TypeScene = "Scene"

// Scene defines a scene graph.
// Its root is an Object3D whose Type is TypeScene.
type Scene struct {
	Object3D
	ids Counter
}

// New creates an initialized scene.
func New() *Scene { return new(Scene).Init() }

// Init initializes a scene.
// Objects in s are removed and s is removed from its
// parent, if any.
// The scene's allocator keeps counting, so objects
// created before the call keep unique identifiers.
func (s *Scene) Init() *Scene {
	s.Clear()
	s.RemoveFromParent()
	s.Object3D.Init(&s.ids)
	s.Type = TypeScene
	return s
}

// NewObject creates an object whose identifier is
// unique within s.
// The object is not inserted into s.
func (s *Scene) NewObject() *Object3D { return NewObject(&s.ids) }

// Update updates the world transforms of every object
// in s.
func (s *Scene) Update() { s.UpdateMatrixWorld(false) }

// Len returns the number of descendants of the root.
func (s *Scene) Len() (n int) {
	s.ForEach(func(*Object3D) { n++ })
	return
}
