// Package linkedlist implements a generic doubly linked list.
//
// The list is bounded by two permanent sentinel nodes,
// so inserting or erasing at the edges needs no special casing.
// The sentinels never hold data and are never dereferenceable through an iterator.
//
// The zero value of LinkedList is an empty list ready to use.
package linkedlist

import (
	"iter"

	"github.com/adamluzsi/linearkit/pkg/linear"
)

type LinkedList[T any] struct {
	c *chain[T]
}

var _ linear.Container[any, Iterator[any], ConstIterator[any]] = (*LinkedList[any])(nil)
var _ linear.Transferable[*LinkedList[any]] = (*LinkedList[any])(nil)

// chain is the storage of a list.
// Moving a list moves the chain, so iterators follow their elements to the new owner.
type chain[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
	// chain is nil once the node is unlinked.
	chain *chain[T]
}

func newChain[T any]() *chain[T] {
	c := &chain[T]{}
	c.head = &node[T]{chain: c}
	c.tail = &node[T]{chain: c}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// linkBefore splices a new node holding v right before at.
func (c *chain[T]) linkBefore(at *node[T], v T) *node[T] {
	n := &node[T]{
		value: v,
		prev:  at.prev,
		next:  at,
		chain: c,
	}
	at.prev.next = n
	at.prev = n
	c.length++
	return n
}

func (c *chain[T]) unlink(n *node[T]) T {
	v := n.value
	n.prev.next = n.next
	n.next.prev = n.prev
	var zero T
	n.value = zero
	n.prev, n.next, n.chain = nil, nil, nil
	c.length--
	return v
}

// New creates a list holding the given values in the same order.
func New[T any](vs ...T) *LinkedList[T] {
	var l LinkedList[T]
	l.Append(vs...)
	return &l
}

func (l *LinkedList[T]) storage() *chain[T] {
	if l.c == nil {
		l.c = newChain[T]()
	}
	return l.c
}

func (l *LinkedList[T]) IsEmpty() bool {
	c := l.storage()
	return c.head.next == c.tail
}

// Len returns the number of elements in the list.
func (l *LinkedList[T]) Len() int {
	return l.storage().length
}

// Append adds the values to the end of the list.
func (l *LinkedList[T]) Append(vs ...T) {
	c := l.storage()
	for _, v := range vs {
		c.linkBefore(c.tail, v)
	}
}

// Prepend adds the values to the beginning of the list.
// The values keep their order, so Prepend(a, b) results in a list that begins with a, b.
func (l *LinkedList[T]) Prepend(vs ...T) {
	c := l.storage()
	first := c.head.next
	for _, v := range vs {
		c.linkBefore(first, v)
	}
}

// Insert places v right before the position of the iterator.
// Inserting at End() is equivalent to Append.
func (l *LinkedList[T]) Insert(pos Iterator[T], v T) error {
	n, err := l.resolve(pos.c)
	if err != nil {
		return err
	}
	l.storage().linkBefore(n, v)
	return nil
}

func (l *LinkedList[T]) PopFirst() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, linear.ErrEmptyContainer.F("cannot pop the first element of an empty list")
	}
	c := l.storage()
	return c.unlink(c.head.next), nil
}

func (l *LinkedList[T]) PopLast() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, linear.ErrEmptyContainer.F("cannot pop the last element of an empty list")
	}
	c := l.storage()
	return c.unlink(c.tail.prev), nil
}

// Erase removes the element at the position of the iterator.
// The iterator, and every copy of it, becomes invalid.
func (l *LinkedList[T]) Erase(pos Iterator[T]) error {
	n, err := l.resolve(pos.c)
	if err != nil {
		return err
	}
	c := l.storage()
	if n == c.tail {
		return linear.ErrInvalidPosition.F("cannot erase the end position of the list")
	}
	c.unlink(n)
	return nil
}

// EraseRange removes every element in the [first, last) interval.
// Nothing is removed when last is not reachable from first.
func (l *LinkedList[T]) EraseRange(first, last Iterator[T]) error {
	from, err := l.resolve(first.c)
	if err != nil {
		return err
	}
	to, err := l.resolve(last.c)
	if err != nil {
		return err
	}
	for n := from; n != to; n = n.next {
		if n.next == nil {
			return linear.ErrInvalidPosition.F("the end of the range is not reachable from its beginning")
		}
	}
	for it := first; !it.Equal(last); {
		next, err := it.Next()
		if err != nil {
			return err
		}
		if err := l.Erase(it); err != nil {
			return err
		}
		it = next
	}
	return nil
}

// Clear removes all the elements.
func (l *LinkedList[T]) Clear() {
	c := l.storage()
	for c.head.next != c.tail {
		c.unlink(c.head.next)
	}
}

// resolve checks that the cursor points into this list and returns its node.
func (l *LinkedList[T]) resolve(c cursor[T]) (*node[T], error) {
	if err := c.valid(); err != nil {
		return nil, err
	}
	if c.n.chain != l.storage() {
		return nil, linear.ErrInvalidPosition.F("the iterator belongs to a different list")
	}
	return c.n, nil
}

func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{c: cursor[T]{n: l.storage().head.next}}
}

func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{c: cursor[T]{n: l.storage().tail}}
}

func (l *LinkedList[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *LinkedList[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

func (l *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil || l.c == nil {
			return
		}
		for n := l.c.head.next; n != l.c.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Slice() []T {
	vs := make([]T, 0, l.Len())
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Clone returns a deep copy of the list.
// Elements are copied by value assignment.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	var cp LinkedList[T]
	cp.Append(l.Slice()...)
	return &cp
}

// CopyFrom replaces the contents of the list with a copy of src's elements.
// Iterators of the receiver are invalidated.
func (l *LinkedList[T]) CopyFrom(src *LinkedList[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.Append(src.Slice()...)
}

// Move transfers the elements into a new list and leaves the receiver empty.
// Iterators keep pointing to their elements, which now belong to the returned list.
func (l *LinkedList[T]) Move() *LinkedList[T] {
	dst := &LinkedList[T]{c: l.storage()}
	l.c = newChain[T]()
	return dst
}

// MoveFrom discards the current elements and takes over src's elements.
// src is left empty and reusable.
func (l *LinkedList[T]) MoveFrom(src *LinkedList[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.c = src.storage()
	src.c = newChain[T]()
}
