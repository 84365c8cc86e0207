package luma

import (
	"fmt"
	"sync"
)

// Allocator provides the memory backing destination buffers.
// Free receives slices previously returned by Allocate.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Free(data []byte)
}

// HeapAllocator allocates fresh, zeroed memory from the Go heap.
// Freed memory is left to the garbage collector.
type HeapAllocator struct{}

var _ Allocator = HeapAllocator{}

// Allocate returns a new slice of size bytes.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cannot allocate %d bytes", ErrAllocationFailure, size)
	}
	return make([]byte, size), nil
}

// Free is a no-op.
func (HeapAllocator) Free([]byte) {}

// Pool is an Allocator that keeps released buffers for reuse, grouped by size.
// Reused memory is handed out as is, without being cleared.
//
// Thread safety: all methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

var _ Allocator = (*Pool)(nil)

// NewPool creates a pool retaining at most maxPerBucket buffers of each size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Allocate pops a retained buffer of the requested size, or allocates a new one.
func (p *Pool) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cannot allocate %d bytes", ErrAllocationFailure, size)
	}

	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[size] = bucket[:n-1]
		p.mu.Unlock()
		return buf, nil
	}
	p.mu.Unlock()

	return make([]byte, size), nil
}

// Free retains data for a later Allocate of the same size.
// The buffer is discarded if its bucket is full.
func (p *Pool) Free(data []byte) {
	if len(data) == 0 {
		return
	}
	data = data[:cap(data)]

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(data)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[len(data)] = append(bucket, data)
}

// Len returns the number of buffers currently retained by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
