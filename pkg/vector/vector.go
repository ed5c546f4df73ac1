// Package vector implements a generic contiguous array that grows by doubling its capacity.
//
// Elements live in the [0, Len()) slots of a single buffer, the rest of the buffer is spare capacity.
// Whenever the buffer is reallocated, every iterator obtained earlier becomes invalid,
// and using such an iterator fails with linear.ErrInvalidPosition.
//
// The zero value of Vector is an empty vector ready to use.
package vector

import (
	"iter"

	"github.com/adamluzsi/linearkit/pkg/linear"
)

// DefaultCapacity is the capacity of the buffer a new vector starts with.
const DefaultCapacity = 40

type Vector[T any] struct {
	s *storage[T]
}

var _ linear.Container[any, Iterator[any], ConstIterator[any]] = (*Vector[any])(nil)
var _ linear.Transferable[*Vector[any]] = (*Vector[any])(nil)

// storage is the buffer of a vector.
// len(items) is the capacity, size is the number of occupied slots.
type storage[T any] struct {
	items    []T
	size     int
	released bool
}

func newStorage[T any](capacity int) *storage[T] {
	return &storage[T]{items: make([]T, capacity)}
}

func (s *storage[T]) release() {
	s.items = nil
	s.size = 0
	s.released = true
}

// New creates a vector holding the given values in the same order.
func New[T any](vs ...T) *Vector[T] {
	v := &Vector[T]{}
	if DefaultCapacity < len(vs) {
		v.s = newStorage[T](len(vs) * 2)
	}
	v.Append(vs...)
	return v
}

func (v *Vector[T]) storage() *storage[T] {
	if v.s == nil {
		v.s = newStorage[T](DefaultCapacity)
	}
	return v.s
}

// reallocate moves the elements into a new buffer with the given capacity and releases the old one.
func (v *Vector[T]) reallocate(capacity int) {
	old := v.storage()
	s := newStorage[T](capacity)
	s.size = copy(s.items, old.items[:old.size])
	old.release()
	v.s = s
}

// grow makes room for one more element.
func (v *Vector[T]) grow() {
	s := v.storage()
	if s.size < len(s.items) {
		return
	}
	capacity := len(s.items) * 2
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	v.reallocate(capacity)
}

// Reserve ensures that the buffer can hold at least n elements without reallocation.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.reallocate(n)
}

// Cap returns the capacity of the underlying buffer.
func (v *Vector[T]) Cap() int {
	return len(v.storage().items)
}

func (v *Vector[T]) IsEmpty() bool {
	return v.storage().size == 0
}

func (v *Vector[T]) Len() int {
	return v.storage().size
}

// Append adds the values to the end of the vector.
func (v *Vector[T]) Append(vs ...T) {
	for _, x := range vs {
		v.grow()
		s := v.s
		s.items[s.size] = x
		s.size++
	}
}

// Prepend adds the values to the beginning of the vector.
// Every existing element is shifted to the right.
func (v *Vector[T]) Prepend(vs ...T) {
	for i, x := range vs {
		v.insertAt(i, x)
	}
}

func (v *Vector[T]) insertAt(index int, x T) {
	v.grow()
	s := v.s
	copy(s.items[index+1:s.size+1], s.items[index:s.size])
	s.items[index] = x
	s.size++
}

// Insert places x right before the position of the iterator.
// Inserting at End() is equivalent to Append, inserting at Begin() is equivalent to Prepend.
func (v *Vector[T]) Insert(pos Iterator[T], x T) error {
	index, err := v.resolve(pos.c)
	if err != nil {
		return err
	}
	switch index {
	case v.s.size:
		v.Append(x)
	case 0:
		v.Prepend(x)
	default:
		v.insertAt(index, x)
	}
	return nil
}

func (v *Vector[T]) PopFirst() (T, error) {
	s := v.storage()
	if s.size == 0 {
		var zero T
		return zero, linear.ErrEmptyContainer.F("cannot pop the first element of an empty vector")
	}
	x := s.items[0]
	v.removeAt(0)
	return x, nil
}

func (v *Vector[T]) PopLast() (T, error) {
	s := v.storage()
	if s.size == 0 {
		var zero T
		return zero, linear.ErrEmptyContainer.F("cannot pop the last element of an empty vector")
	}
	x := s.items[s.size-1]
	v.removeAt(s.size - 1)
	return x, nil
}

func (v *Vector[T]) removeAt(index int) {
	s := v.s
	copy(s.items[index:s.size-1], s.items[index+1:s.size])
	s.size--
	var zero T
	s.items[s.size] = zero
}

// Erase removes the element at the position of the iterator.
// Elements after the position shift one slot to the left.
func (v *Vector[T]) Erase(pos Iterator[T]) error {
	index, err := v.resolve(pos.c)
	if err != nil {
		return err
	}
	if v.s.size == 0 || index == v.s.size {
		return linear.ErrInvalidPosition.F("out of range: cannot erase the end position of the vector")
	}
	v.removeAt(index)
	return nil
}

// EraseRange removes every element in the [first, last) interval.
// The remaining elements are copied into a new, tightly sized buffer,
// so every iterator obtained before becomes invalid.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) error {
	from, err := v.resolve(first.c)
	if err != nil {
		return err
	}
	to, err := v.resolve(last.c)
	if err != nil {
		return err
	}
	if to < from {
		return linear.ErrInvalidPosition.F("the end of the range (%d) is before its beginning (%d)", to, from)
	}
	if from == to {
		return nil
	}
	old := v.s
	s := newStorage[T](old.size - (to - from))
	n := copy(s.items, old.items[:from])
	n += copy(s.items[n:], old.items[to:old.size])
	s.size = n
	old.release()
	v.s = s
	return nil
}

// Clear removes all the elements but keeps the capacity.
func (v *Vector[T]) Clear() {
	s := v.storage()
	clear(s.items[:s.size])
	s.size = 0
}

// resolve checks that the cursor points into the current buffer of this vector and returns its index.
func (v *Vector[T]) resolve(c cursor[T]) (int, error) {
	if err := c.valid(); err != nil {
		return 0, err
	}
	if c.s != v.storage() {
		return 0, linear.ErrInvalidPosition.F("the iterator belongs to a different vector")
	}
	return c.index, nil
}

func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{c: cursor[T]{s: v.storage(), index: 0}}
}

func (v *Vector[T]) End() Iterator[T] {
	s := v.storage()
	return Iterator[T]{c: cursor[T]{s: s, index: s.size}}
}

func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

func (v *Vector[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v == nil || v.s == nil {
			return
		}
		for i := 0; i < v.s.size; i++ {
			if !yield(v.s.items[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) Slice() []T {
	s := v.storage()
	vs := make([]T, s.size)
	copy(vs, s.items[:s.size])
	return vs
}

func copyCapacity(size int) int {
	return max(DefaultCapacity, size*2)
}

// Clone returns a deep copy of the vector.
// Elements are copied by value assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	src := v.storage()
	s := newStorage[T](copyCapacity(src.size))
	s.size = copy(s.items, src.items[:src.size])
	return &Vector[T]{s: s}
}

// CopyFrom replaces the contents of the vector with a copy of src's elements.
// The buffer is reallocated, so iterators of the receiver are invalidated.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	from := src.storage()
	s := newStorage[T](copyCapacity(from.size))
	s.size = copy(s.items, from.items[:from.size])
	v.storage().release()
	v.s = s
}

// Move transfers the buffer into a new vector and leaves the receiver empty.
// Iterators keep pointing to the same slots, which now belong to the returned vector.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{s: v.storage()}
	v.s = newStorage[T](DefaultCapacity)
	return dst
}

// MoveFrom discards the current buffer and takes over src's buffer.
// src is left empty and reusable.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.storage().release()
	v.s = src.storage()
	src.s = newStorage[T](DefaultCapacity)
}
