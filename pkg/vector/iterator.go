package vector

import "github.com/adamluzsi/linearkit/pkg/linear"

// cursor tracks an index together with the buffer it was taken from.
// Two cursors denote the same slot when both the buffer and the index match.
type cursor[T any] struct {
	s     *storage[T]
	index int
}

func (c cursor[T]) valid() error {
	if c.s == nil {
		return linear.ErrInvalidPosition.F("the iterator is not attached to a vector")
	}
	if c.s.released {
		return linear.ErrInvalidPosition.F("the iterator was invalidated by a reallocation")
	}
	if c.index < 0 || c.s.size < c.index {
		return linear.ErrInvalidPosition.F("the iterator index %d is outside of [0, %d]", c.index, c.s.size)
	}
	return nil
}

func (c cursor[T]) pointer() (*T, error) {
	if err := c.valid(); err != nil {
		return nil, err
	}
	if c.index == c.s.size {
		return nil, linear.ErrInvalidPosition.F("cannot dereference the end position")
	}
	return &c.s.items[c.index], nil
}

func (c cursor[T]) value() (T, error) {
	ptr, err := c.pointer()
	if err != nil {
		var zero T
		return zero, err
	}
	return *ptr, nil
}

func (c cursor[T]) next() (cursor[T], error) {
	if err := c.valid(); err != nil {
		return cursor[T]{}, err
	}
	if c.index == c.s.size {
		return cursor[T]{}, linear.ErrInvalidPosition.F("cannot increment past the end")
	}
	return cursor[T]{s: c.s, index: c.index + 1}, nil
}

func (c cursor[T]) prev() (cursor[T], error) {
	if err := c.valid(); err != nil {
		return cursor[T]{}, err
	}
	if c.index == 0 {
		return cursor[T]{}, linear.ErrInvalidPosition.F("cannot decrement before the first element")
	}
	return cursor[T]{s: c.s, index: c.index - 1}, nil
}

// add recomputes the index directly instead of stepping.
func (c cursor[T]) add(d int) (cursor[T], error) {
	if err := c.valid(); err != nil {
		return cursor[T]{}, err
	}
	index := c.index + d
	if index < 0 || c.s.size < index {
		return cursor[T]{}, linear.ErrInvalidPosition.F("offset %d moves the iterator outside of [0, %d]", d, c.s.size)
	}
	return cursor[T]{s: c.s, index: index}, nil
}

// ConstIterator is a read-only position in a Vector.
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

func (it ConstIterator[T]) Add(n int) (ConstIterator[T], error) {
	c, err := it.c.add(n)
	return ConstIterator[T]{c: c}, err
}

func (it ConstIterator[T]) Sub(n int) (ConstIterator[T], error) {
	c, err := it.c.add(-n)
	return ConstIterator[T]{c: c}, err
}

func (it ConstIterator[T]) Equal(oth ConstIterator[T]) bool {
	return it.c == oth.c
}

// Index returns the position of the iterator as an index.
func (it ConstIterator[T]) Index() int {
	return it.c.index
}

// Iterator is a read-write position in a Vector.
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
	return it.c == oth.c
}

func (it Iterator[T]) Index() int {
	return it.c.index
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{c: it.c}
}
