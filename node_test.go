// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// fmt.Stringer for testing only.
// o.Name must have been set in order to produce
// meaningful output.
func (o *Object3D) String() string {
	const s = `
(%5s) <-> (%5s) <-> (%5s)
               |
               v
            (%5s)
`
	nd := [4]*Object3D{o.prev, o, o.next, o.sub}
	nm := [4]string{}
	for i := range nd {
		if nd[i] != nil {
			nm[i] = nd[i].Name
		} else {
			nm[i] = "<nil>"
		}
	}
	return fmt.Sprintf(s, nm[0], nm[1], nm[2], nm[3])
}

// logGraph outputs the scene graph whose root is o.
func (o *Object3D) logGraph(t *testing.T) {
	s := o.String()
	o.ForEach(func(o *Object3D) {
		s += o.String()
	})
	t.Log(s)
}

// names returns the names of the immediate descendants
// of o.
func (o *Object3D) names() (s []string) {
	for _, x := range o.Children() {
		s = append(s, x.Name)
	}
	return
}

// testAdd calls o.Add and checks that it works as
// expected.
func (o *Object3D) testAdd(sub *Object3D, t *testing.T) {
	if err := o.Add(sub); err != nil {
		t.Fatalf("o.Add: unexpected error: %v", err)
	}
	if sub.parent != o {
		t.Fatalf("o.Add: sub.parent\nhave %p\nwant %p\n%v", sub.parent, o, sub)
	}
	last := o.sub
	for last.next != nil {
		last = last.next
	}
	if last != sub {
		t.Fatalf("o.Add: last descendant\nhave %p\nwant %p\n%v", last, sub, o)
	}
	if o.sub == sub && sub.prev != o {
		t.Fatalf("o.Add: sub.prev\nhave %p\nwant %p\n%v", sub.prev, o, sub)
	}
}

// testRemove calls o.RemoveFromParent and checks that
// it works as expected.
func (o *Object3D) testRemove(t *testing.T) {
	var anc, sub *Object3D
	if x := o.prev; x != nil && o == x.sub {
		anc = x
		sub = o.next
	}
	o.RemoveFromParent()
	if o.next != nil {
		t.Fatalf("o.RemoveFromParent: o.next\nhave %p\nwant nil\n%v", o.next, o)
	}
	if o.prev != nil {
		t.Fatalf("o.RemoveFromParent: o.prev\nhave %p\nwant nil\n%v", o.prev, o)
	}
	if o.parent != nil {
		t.Fatalf("o.RemoveFromParent: o.parent\nhave %p\nwant nil\n%v", o.parent, o)
	}
	if anc != nil && anc.sub != sub {
		t.Fatalf("o.RemoveFromParent: anc.sub\nhave %p\nwant %p\n%v", anc.sub, sub, anc)
	}
}

func newObjects(ids IDAllocator, names ...string) []*Object3D {
	objs := make([]*Object3D, len(names))
	for i, s := range names {
		objs[i] = NewObject(ids)
		objs[i].Name = s
	}
	return objs
}

func TestGraph(t *testing.T) {
	var ids Counter
	n := newObjects(&ids, "n1", "n2", "n3", "n4", "n5")
	n1, n2, n3, n4, n5 := n[0], n[1], n[2], n[3], n[4]

	n1.testAdd(n2, t)
	n1.testAdd(n3, t)
	n1.testAdd(n4, t)
	n3.testAdd(n5, t)
	n1.logGraph(t)
	n2.testRemove(t)
	n3.testRemove(t)
	n1.testRemove(t)
	n5.testRemove(t)
	n4.testRemove(t)
	n1.logGraph(t)
	n3.logGraph(t)

	n5.testAdd(n4, t)
	n4.testAdd(n3, t)
	n3.testAdd(n2, t)
	n2.testAdd(n1, t)
	n5.logGraph(t)
	n1.testRemove(t)
	n2.testRemove(t)
	n3.testRemove(t)
	n4.testRemove(t)
	n5.logGraph(t)
	n4.logGraph(t)
	n3.logGraph(t)
	n2.logGraph(t)
	n1.logGraph(t)

	n1.testAdd(n2, t)
	n2.testAdd(n3, t)
	n1.testAdd(n2, t)
	n1.logGraph(t)
	n1.testAdd(n3, t)
	n1.logGraph(t)
	n2.logGraph(t)
	n2.testRemove(t)
	n3.testAdd(n2, t)
	n1.logGraph(t)
}

func TestChildren(t *testing.T) {
	var ids Counter
	n := newObjects(&ids, "root", "a", "b", "c", "d")
	root := n[0]
	if err := root.Add(n[1], n[2], n[3]); err != nil {
		t.Fatal(err)
	}
	if s := fmt.Sprint(root.names()); s != "[a b c]" {
		t.Fatalf("Object3D.Children\nhave %s\nwant [a b c]", s)
	}
	root.Remove(n[2], n[4])
	if s := fmt.Sprint(root.names()); s != "[a c]" {
		t.Fatalf("Object3D.Remove\nhave %s\nwant [a c]", s)
	}
	if n[2].Parent() != nil {
		t.Fatalf("Object3D.Parent\nhave %p\nwant nil", n[2].Parent())
	}
	// Adding an existing child moves it to the end.
	if err := root.Add(n[1], nil); err != nil {
		t.Fatal(err)
	}
	if s := fmt.Sprint(root.names()); s != "[c a]" {
		t.Fatalf("Object3D.Add: re-add\nhave %s\nwant [c a]", s)
	}
	// Re-parenting.
	if err := n[4].Add(n[3]); err != nil {
		t.Fatal(err)
	}
	if s := fmt.Sprint(root.names()); s != "[a]" || n[3].Parent() != n[4] {
		t.Fatalf("Object3D.Add: re-parent\nhave %s %p\nwant [a] %p", s, n[3].Parent(), n[4])
	}
	root.Clear()
	if len(root.Children()) != 0 || n[1].Parent() != nil {
		t.Fatalf("Object3D.Clear\nhave %s", spew.Sdump(root.names()))
	}
}

func TestCycle(t *testing.T) {
	var ids Counter
	n := newObjects(&ids, "n1", "n2", "n3", "n4")
	n1, n2, n3, n4 := n[0], n[1], n[2], n[3]
	n1.testAdd(n2, t)
	n2.testAdd(n3, t)

	for _, x := range [...]*Object3D{n3, n2, n1} {
		if err := n3.Add(n4, x); !errors.Is(err, ErrCycle) {
			t.Fatalf("Object3D.Add(%s)\nhave %v\nwant %v", x.Name, err, ErrCycle)
		}
	}
	if n4.Parent() != nil || n3.sub != nil {
		t.Fatalf("Object3D.Add: failed call inserted objects\n%s", spew.Sdump(n3.names(), n4.parent == nil))
	}
	if n1.Parent() != nil || n2.Parent() != n1 || n3.Parent() != n2 {
		t.Fatal("Object3D.Add: failed call changed the graph")
	}
}

func TestForEach(t *testing.T) {
	var ids Counter
	n := newObjects(&ids, "root", "a", "b", "a1", "a2", "b1", "a11")
	root, a, b, a1, a2, b1, a11 := n[0], n[1], n[2], n[3], n[4], n[5], n[6]
	root.Add(a, b)
	a.Add(a1, a2)
	b.Add(b1)
	a1.Add(a11)

	var s []string
	root.ForEach(func(o *Object3D) { s = append(s, o.Name) })
	if x := fmt.Sprint(s); x != "[a b a1 a2 b1 a11]" {
		t.Fatalf("Object3D.ForEach\nhave %s\nwant [a b a1 a2 b1 a11]", x)
	}
	s = s[:0]
	root.Until(func(o *Object3D) bool {
		s = append(s, o.Name)
		return o != a2
	})
	if x := fmt.Sprint(s); x != "[a b a1 a2]" {
		t.Fatalf("Object3D.Until\nhave %s\nwant [a b a1 a2]", x)
	}

	if o := root.ObjectByName("b1"); o != b1 {
		t.Fatalf("Object3D.ObjectByName\nhave %v\nwant %v", o, b1)
	}
	if o := root.ObjectByName("root"); o != root {
		t.Fatalf("Object3D.ObjectByName: self\nhave %v\nwant %v", o, root)
	}
	if o := a.ObjectByName("b"); o != nil {
		t.Fatalf("Object3D.ObjectByName: not a descendant\nhave %v\nwant nil", o)
	}
	if o := root.ObjectByID(a11.ID()); o != a11 {
		t.Fatalf("Object3D.ObjectByID\nhave %v\nwant %v", o, a11)
	}
	if o := root.ObjectByID(1 << 40); o != nil {
		t.Fatalf("Object3D.ObjectByID: unknown\nhave %v\nwant nil", o)
	}
}
