package linkedlist

import "github.com/adamluzsi/linearkit/pkg/linear"

// cursor is the position tracking shared by Iterator and ConstIterator.
type cursor[T any] struct {
	n *node[T]
}

func (c cursor[T]) valid() error {
	if c.n == nil {
		return linear.ErrInvalidPosition.F("the iterator is not attached to a list")
	}
	if c.n.chain == nil {
		return linear.ErrInvalidPosition.F("the iterator points to an erased element")
	}
	return nil
}

func (c cursor[T]) pointer() (*T, error) {
	if err := c.valid(); err != nil {
		return nil, err
	}
	if c.n.next == nil {
		return nil, linear.ErrInvalidPosition.F("cannot dereference the end position")
	}
	return &c.n.value, nil
}

func (c cursor[T]) next() (cursor[T], error) {
	if err := c.valid(); err != nil {
		return cursor[T]{}, err
	}
	if c.n.next == nil {
		return cursor[T]{}, linear.ErrInvalidPosition.F("cannot increment past the end")
	}
	return cursor[T]{n: c.n.next}, nil
}

func (c cursor[T]) prev() (cursor[T], error) {
	if err := c.valid(); err != nil {
		return cursor[T]{}, err
	}
	// the head sentinel is the only node without a predecessor
	if c.n.prev == nil || c.n.prev.prev == nil {
		return cursor[T]{}, linear.ErrInvalidPosition.F("cannot decrement before the first element")
	}
	return cursor[T]{n: c.n.prev}, nil
}

func (c cursor[T]) add(d int) (cursor[T], error) {
	var err error
	for ; 0 < d; d-- {
		if c, err = c.next(); err != nil {
			return cursor[T]{}, err
		}
	}
	for ; d < 0; d++ {
		if c, err = c.prev(); err != nil {
			return cursor[T]{}, err
		}
	}
	return c, nil
}

func (c cursor[T]) value() (T, error) {
	ptr, err := c.pointer()
	if err != nil {
		var zero T
		return zero, err
	}
	return *ptr, nil
}

// ConstIterator is a read-only position in a LinkedList.
type ConstIterator[T any] struct {
	c cursor[T]
}

var _ linear.Cursor[any, ConstIterator[any]] = ConstIterator[any]{}

func (it ConstIterator[T]) Value() (T, error) {
	return it.c.value()
}

func (it ConstIterator[T]) Next() (ConstIterator[T], error) {
	c, err := it.c.next()
	return ConstIterator[T]{c: c}, err
}

func (it ConstIterator[T]) Prev() (ConstIterator[T], error) {
	c, err := it.c.prev()
	return ConstIterator[T]{c: c}, err
}

// Add steps n times forward, or backwards when n is negative.
func (it ConstIterator[T]) Add(n int) (ConstIterator[T], error) {
	c, err := it.c.add(n)
	return ConstIterator[T]{c: c}, err
}

func (it ConstIterator[T]) Sub(n int) (ConstIterator[T], error) {
	c, err := it.c.add(-n)
	return ConstIterator[T]{c: c}, err
}

func (it ConstIterator[T]) Equal(oth ConstIterator[T]) bool {
	return it.c.n == oth.c.n
}

// Iterator is a read-write position in a LinkedList.
type Iterator[T any] struct {
	c cursor[T]
}

var _ linear.MutableCursor[any, Iterator[any], ConstIterator[any]] = Iterator[any]{}

func (it Iterator[T]) Value() (T, error) {
	return it.c.value()
}

func (it Iterator[T]) Pointer() (*T, error) {
	return it.c.pointer()
}

func (it Iterator[T]) Set(v T) error {
	ptr, err := it.c.pointer()
	if err != nil {
		return err
	}
	*ptr = v
	return nil
}

func (it Iterator[T]) Next() (Iterator[T], error) {
	c, err := it.c.next()
	return Iterator[T]{c: c}, err
}

func (it Iterator[T]) Prev() (Iterator[T], error) {
	c, err := it.c.prev()
	return Iterator[T]{c: c}, err
}

func (it Iterator[T]) Add(n int) (Iterator[T], error) {
	c, err := it.c.add(n)
	return Iterator[T]{c: c}, err
}

func (it Iterator[T]) Sub(n int) (Iterator[T], error) {
	c, err := it.c.add(-n)
	return Iterator[T]{c: c}, err
}

func (it Iterator[T]) Equal(oth Iterator[T]) bool {
	return it.c.n == oth.c.n
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{c: it.c}
}
