package UnionFind

import "fmt"

// IndexOutOfRangeError is the panic value when an element outside [0, Size) is used.
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

// InvalidSizeError is the panic value when New is called with a non positive size.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("union find size must be positive, got %d", e.Size)
}
