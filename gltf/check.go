// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

var (
	// ErrIndex means that a document refers to a scene
	// or node that does not exist.
	ErrIndex = errors.New("gltf: invalid index")

	// ErrHierarchy means that the nodes of a document
	// do not form disjoint trees.
	ErrHierarchy = errors.New("gltf: invalid node hierarchy")
)

// check checks that the node hierarchy of doc is valid.
// It returns the parent of each node, or -1 if the node
// has none.
func check(doc *gltf.Document) ([]int, error) {
	if s := doc.Scene; s != nil && int(*s) >= len(doc.Scenes) {
		return nil, errors.Wrapf(ErrIndex, "Document.Scene %d out of %d scenes", *s, len(doc.Scenes))
	}
	parent := make([]int, len(doc.Nodes))
	for i := range parent {
		parent[i] = -1
	}
	for i, n := range doc.Nodes {
		if n == nil {
			return nil, errors.Wrapf(ErrIndex, "Document.Nodes[%d] is nil", i)
		}
		for _, c := range n.Children {
			switch {
			case int(c) >= len(doc.Nodes):
				return nil, errors.Wrapf(ErrIndex, "Node[%d].Children: %d out of %d nodes", i, c, len(doc.Nodes))
			case int(c) == i:
				return nil, errors.Wrapf(ErrHierarchy, "Node[%d] is its own child", i)
			case parent[c] != -1:
				return nil, errors.Wrapf(ErrHierarchy, "Node[%d] has parents %d and %d", c, parent[c], i)
			}
			parent[c] = i
		}
	}
	for _, s := range doc.Scenes {
		if s == nil {
			continue
		}
		for _, r := range s.Nodes {
			switch {
			case int(r) >= len(doc.Nodes):
				return nil, errors.Wrapf(ErrIndex, "Scene %q: node %d out of %d nodes", s.Name, r, len(doc.Nodes))
			case parent[r] != -1:
				return nil, errors.Wrapf(ErrHierarchy, "Scene %q: root node %d has parent %d", s.Name, r, parent[r])
			}
		}
	}
	return parent, nil
}
