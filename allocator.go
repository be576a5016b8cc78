package xvg

import "sync"

// Allocator provides the memory that a Bitmap owns.
//
// A Bitmap calls Free exactly once for every buffer it obtained from
// Alloc, when it is reset or released, and never calls Free for memory
// that was supplied by the caller.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly size bytes.
	Alloc(size int) []byte

	// Free returns a buffer obtained from Alloc. The caller must not
	// use buf afterwards.
	Free(buf []byte)
}

// HeapAllocator allocates with make and leaves freed buffers to the
// garbage collector. It is the default Allocator.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) []byte { return make([]byte, size) }

func (HeapAllocator) Free([]byte) {}

// PoolAllocator recycles freed buffers for later allocations of the
// same size. It suits renderers that repeatedly allocate bitmaps of a
// handful of sizes, such as per-frame render targets.
//
// A PoolAllocator is safe for concurrent use.
//
// Usage:
//
//	pool := xvg.NewPoolAllocator()
//	bmp := xvg.NewBitmapSize(w, h, xvg.WithAllocator(pool))
//	defer bmp.Release()
type PoolAllocator struct {
	m     sync.Mutex
	pools map[int]*sync.Pool
}

// NewPoolAllocator returns an empty PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pools: make(map[int]*sync.Pool)}
}

func (p *PoolAllocator) pool(size int) *sync.Pool {
	p.m.Lock()
	defer p.m.Unlock()

	pool, ok := p.pools[size]
	if !ok {
		pool = &sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		}
		p.pools[size] = pool
	}
	return pool
}

// Alloc returns a zeroed buffer of size bytes, reusing a freed one if
// one is available.
func (p *PoolAllocator) Alloc(size int) []byte {
	buf := *p.pool(size).Get().(*[]byte)
	clear(buf)
	return buf
}

// Free makes buf available to later calls to Alloc for len(buf) bytes.
func (p *PoolAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	buf = buf[:len(buf):len(buf)]
	p.pool(len(buf)).Put(&buf)
}

// Warmup pre-allocates count buffers of size bytes so that later
// allocations of that size avoid the heap.
func (p *PoolAllocator) Warmup(size, count int) {
	bufs := make([][]byte, count)
	for i := range bufs {
		bufs[i] = p.Alloc(size)
	}
	for _, buf := range bufs {
		p.Free(buf)
	}
}
