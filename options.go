package xvg

// BitmapOption configures a Bitmap during creation.
//
// Example:
//
//	pool := xvg.NewPoolAllocator()
//	bmp := xvg.NewBitmapSize(800, 600, xvg.WithAllocator(pool))
type BitmapOption func(*bitmapOptions)

type bitmapOptions struct {
	alloc Allocator
}

func defaultBitmapOptions() bitmapOptions {
	return bitmapOptions{
		alloc: HeapAllocator{},
	}
}

// WithAllocator sets the allocator that a Bitmap uses for the memory
// it owns. Borrowed memory never passes through it. A nil allocator
// selects HeapAllocator.
func WithAllocator(a Allocator) BitmapOption {
	return func(o *bitmapOptions) {
		if a == nil {
			a = HeapAllocator{}
		}
		o.alloc = a
	}
}
