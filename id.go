// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene3d

import (
	"sync/atomic"
)

// IDAllocator provides object identifiers.
type IDAllocator interface {
	// Next returns a new identifier.
	// Identifiers must increase monotonically.
	Next() uint64
}

// Counter is an IDAllocator that yields 0, 1, 2, ...
// It is safe for concurrent use.
// The zero value is ready to use.
type Counter struct {
	n atomic.Uint64
}

// Next implements IDAllocator.
func (c *Counter) Next() uint64 { return c.n.Add(1) - 1 }
