// Package linear holds the common vocabulary of the linear containers.
//
// Both linkedlist.LinkedList and vector.Vector implement Container,
// so a consumer can swap one for the other without touching its traversal code.
// Iterators come in two capability levels over the same position:
// a read-only Cursor and a read-write MutableCursor.
// Iterators are values: moving one (Next, Prev, Add, Sub) returns a new iterator
// and leaves the receiver untouched.
package linear

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrEmptyContainer is returned when an element is requested from a container without elements.
	ErrEmptyContainer errorkit.Error = "empty container"
	// ErrInvalidPosition is returned when an iterator points to a position where the operation is not possible,
	// like dereferencing the end, stepping past the boundaries,
	// or using an iterator that belongs to a different container or that was invalidated.
	ErrInvalidPosition errorkit.Error = "invalid position"
)

// Cursor is the read-only capability of a bidirectional iterator.
type Cursor[T any, C any] interface {
	// Value returns the element at the current position.
	Value() (T, error)
	Next() (C, error)
	Prev() (C, error)
	// Add returns an iterator moved by n positions. A negative n moves backwards.
	Add(n int) (C, error)
	// Sub returns an iterator moved back by n positions. A negative n moves forward.
	Sub(n int) (C, error)
	// Equal reports whether both iterators denote the same position.
	Equal(oth C) bool
}

// MutableCursor is the read-write capability of a bidirectional iterator.
type MutableCursor[T any, I any, C any] interface {
	Cursor[T, I]
	// Set overwrites the element at the current position.
	Set(v T) error
	// Pointer returns a mutable view of the element at the current position.
	Pointer() (*T, error)
	// Const drops the write capability.
	Const() C
}

type Sizer interface {
	Len() int
}

type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type Slicer[T any] interface {
	// Slice returns the contents as a slice of T.
	Slice() []T
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Prependable[T any] interface {
	Prepend(vs ...T)
}

// Container is the behaviour shared by the linear containers.
type Container[T any, I MutableCursor[T, I, C], C Cursor[T, C]] interface {
	Sizer
	Iterable[T]
	Slicer[T]
	Appendable[T]
	Prependable[T]

	IsEmpty() bool
	// Insert places v right before the position of the iterator.
	Insert(pos I, v T) error
	PopFirst() (T, error)
	PopLast() (T, error)
	// Erase removes the element at the position of the iterator.
	Erase(pos I) error
	// EraseRange removes the elements of the [first, last) interval.
	EraseRange(first, last I) error
	Clear()

	Begin() I
	End() I
	CBegin() C
	CEnd() C
}

// Transferable is implemented by containers with value semantics.
//
// Clone and CopyFrom make a deep copy of the elements.
// Move and MoveFrom transfer the storage and leave the source empty, but ready for reuse.
type Transferable[S any] interface {
	Clone() S
	Move() S
	CopyFrom(src S)
	MoveFrom(src S)
}

// Collect walks from first until it reaches last and returns the visited values.
// The value at last is not included.
func Collect[T any, C Cursor[T, C]](first, last C) ([]T, error) {
	var vs []T
	for it := first; !it.Equal(last); {
		v, err := it.Value()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		it, err = it.Next()
		if err != nil {
			return nil, err
		}
	}
	return vs, nil
}

// CollectReverse walks backwards from last until it reaches first,
// and returns the visited values in reverse order.
// The value at last is not included, the value at first is.
func CollectReverse[T any, C Cursor[T, C]](first, last C) ([]T, error) {
	var vs []T
	for it := last; !it.Equal(first); {
		prev, err := it.Prev()
		if err != nil {
			return nil, err
		}
		v, err := prev.Value()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		it = prev
	}
	return vs, nil
}

// Distance counts how many steps it takes to reach last from first.
func Distance[T any, C Cursor[T, C]](first, last C) (int, error) {
	var n int
	for it := first; !it.Equal(last); n++ {
		var err error
		it, err = it.Next()
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}
