// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"github.com/pkg/errors"
)

// ErrCycle is returned by Object3D.Add when an object
// would become a descendant of itself.
var ErrCycle = errors.New("scene3d: object cannot descend from itself")

// Add inserts each of objs as the last immediate
// descendant of o, removing it from its previous parent.
// It fails with ErrCycle if any of objs is o or one of
// its ancestors, in which case no object is inserted.
// nil elements are ignored.
func (o *Object3D) Add(objs ...*Object3D) error {
	for _, x := range objs {
		if x == nil {
			continue
		}
		for a := o; a != nil; a = a.parent {
			if a == x {
				return errors.Wrapf(ErrCycle, "Object3D.Add: object %d (%q) into %d", x.id, x.Name, o.id)
			}
		}
	}
	for _, x := range objs {
		if x != nil {
			o.insert(x)
		}
	}
	return nil
}

// insert inserts node sub as the last immediate
// descendant of node o.
// sub must not be an ancestor of o.
func (o *Object3D) insert(sub *Object3D) {
	sub.remove()
	sub.parent = o
	sub.worldNeedsUpdate = true
	if o.sub == nil {
		sub.prev = o
		o.sub = sub
		return
	}
	last := o.sub
	for last.next != nil {
		last = last.next
	}
	last.next = sub
	sub.prev = last
}

// remove removes node o from its immediate ancestor.
func (o *Object3D) remove() {
	// Note that prev is only nil when the node has no
	// ancestors, since the prev field of the first
	// immediate descendant refers to its immediate
	// ancestor.
	if o.prev != nil {
		if o.prev.sub == o {
			o.prev.sub = o.next
		} else {
			o.prev.next = o.next
		}
		if o.next != nil {
			o.next.prev = o.prev
		}
		o.prev = nil
		o.next = nil
	}
	o.parent = nil
}

// Remove removes each of objs from o.
// Objects that are not immediate descendants of o are
// ignored.
func (o *Object3D) Remove(objs ...*Object3D) {
	for _, x := range objs {
		if x != nil && x.parent == o {
			x.remove()
			x.worldNeedsUpdate = true
		}
	}
}

// RemoveFromParent removes o from its parent, if any.
func (o *Object3D) RemoveFromParent() {
	if o.parent != nil {
		o.parent.Remove(o)
	}
}

// Clear removes all immediate descendants of o.
func (o *Object3D) Clear() {
	for o.sub != nil {
		x := o.sub
		x.remove()
		x.worldNeedsUpdate = true
	}
}

// Parent returns the immediate ancestor of o, or nil
// if o is a root.
func (o *Object3D) Parent() *Object3D { return o.parent }

// Children returns the immediate descendants of o in
// insertion order.
// The returned slice is not retained by o.
func (o *Object3D) Children() []*Object3D {
	var s []*Object3D
	for x := o.sub; x != nil; x = x.next {
		s = append(s, x)
	}
	return s
}

// ForEach calls f for each descendant of o.
// Ancestors are processed first.
// The scene graph must not be changed until this
// method returns.
func (o *Object3D) ForEach(f func(*Object3D)) {
	if o.sub == nil {
		return
	}
	que := []*Object3D{o.sub}
	for len(que) > 0 {
		for x := que[0]; x != nil; x = x.next {
			f(x)
			if sub := x.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// Until calls f for each descendant of o.
// Ancestors are processed first. If f returns false,
// Until returns immediately.
// The scene graph must not be changed until this
// method returns.
func (o *Object3D) Until(f func(*Object3D) bool) {
	if o.sub == nil {
		return
	}
	que := []*Object3D{o.sub}
	for len(que) > 0 {
		for x := que[0]; x != nil; x = x.next {
			if !f(x) {
				return
			}
			if sub := x.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// find returns the first object, starting at o and then
// breadth-first through its descendants, for which f
// returns true.
func (o *Object3D) find(f func(*Object3D) bool) (obj *Object3D) {
	if f(o) {
		return o
	}
	o.Until(func(x *Object3D) bool {
		if f(x) {
			obj = x
			return false
		}
		return true
	})
	return
}

// ObjectByName returns the first object named name
// among o and its descendants, or nil if none is.
func (o *Object3D) ObjectByName(name string) *Object3D {
	return o.find(func(x *Object3D) bool { return x.Name == name })
}

// ObjectByID returns the object identified by id among
// o and its descendants, or nil if none is.
func (o *Object3D) ObjectByID(id uint64) *Object3D {
	return o.find(func(x *Object3D) bool { return x.id == id })
}
