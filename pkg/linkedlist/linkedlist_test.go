package linkedlist_test

import (
	"testing"

	"github.com/adamluzsi/linearkit/pkg/linear"
	"github.com/adamluzsi/linearkit/pkg/linear/linearcontract"
	"github.com/adamluzsi/linearkit/pkg/linkedlist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestLinkedList_contract(t *testing.T) {
	linearcontract.Container[string, linkedlist.Iterator[string], linkedlist.ConstIterator[string]](func(tb testing.TB) *linkedlist.LinkedList[string] {
		return &linkedlist.LinkedList[string]{}
	}, linearcontract.Config[string]{}).Test(t)

	linearcontract.Container[int, linkedlist.Iterator[int], linkedlist.ConstIterator[int]](func(tb testing.TB) *linkedlist.LinkedList[int] {
		return linkedlist.New[int]()
	}, linearcontract.Config[int]{}).Test(t)
}

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *linkedlist.LinkedList[string] {
		return &linkedlist.LinkedList[string]{}
	})

	s.Test("append, prepend, pop last and erase begin", func(t *testcase.T) {
		l := list.Get(t)
		l.Append("a")
		l.Append("b")
		l.Prepend("z")
		assert.Equal(t, []string{"z", "a", "b"}, l.Slice())
		assert.Equal(t, 3, l.Len())

		got, err := l.PopLast()
		assert.NoError(t, err)
		assert.Equal(t, "b", got)
		assert.Equal(t, 2, l.Len())
		assert.Equal(t, []string{"z", "a"}, l.Slice())

		assert.NoError(t, l.Erase(l.Begin()))
		assert.Equal(t, []string{"a"}, l.Slice())
		assert.Equal(t, 1, l.Len())
	})

	s.Test("range erase from a literal list", func(t *testcase.T) {
		l := linkedlist.New(1, 2, 3, 4, 5)

		first, err := l.Begin().Add(1)
		assert.NoError(t, err)
		last, err := l.Begin().Add(3)
		assert.NoError(t, err)

		assert.NoError(t, l.EraseRange(first, last))
		assert.Equal(t, []int{1, 4, 5}, l.Slice())
		assert.Equal(t, 3, l.Len())
	})

	s.When("the list has values", func(s *testcase.Spec) {
		list.Let(s, func(t *testcase.T) *linkedlist.LinkedList[string] {
			return linkedlist.New("foo", "bar", "baz")
		})

		s.Then("an iterator to an erased element becomes invalid", func(t *testcase.T) {
			pos, err := list.Get(t).Begin().Next()
			assert.NoError(t, err)
			cpy := pos

			assert.NoError(t, list.Get(t).Erase(pos))

			_, err = cpy.Value()
			assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			_, err = cpy.Next()
			assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			assert.ErrorIs(t, list.Get(t).Erase(cpy), linear.ErrInvalidPosition)
			assert.Equal(t, []string{"foo", "baz"}, list.Get(t).Slice())
		})

		s.Then("iterators to other elements stay valid after an erase", func(t *testcase.T) {
			begin := list.Get(t).Begin()
			last, err := list.Get(t).End().Prev()
			assert.NoError(t, err)
			middle, err := begin.Next()
			assert.NoError(t, err)

			assert.NoError(t, list.Get(t).Erase(middle))

			v, err := begin.Value()
			assert.NoError(t, err)
			assert.Equal(t, "foo", v)

			next, err := begin.Next()
			assert.NoError(t, err)
			assert.True(t, next.Equal(last))
		})

		s.Then("iterators stay valid after inserts and appends", func(t *testcase.T) {
			begin := list.Get(t).Begin()

			for i := 0; i < 100; i++ {
				list.Get(t).Append("qux")
			}
			list.Get(t).Prepend("first")
			assert.NoError(t, list.Get(t).Insert(begin, "second"))

			v, err := begin.Value()
			assert.NoError(t, err)
			assert.Equal(t, "foo", v)

			prev, err := begin.Prev()
			assert.NoError(t, err)
			v, err = prev.Value()
			assert.NoError(t, err)
			assert.Equal(t, "second", v)
		})

		s.Then("iterators follow their elements after a move", func(t *testcase.T) {
			begin := list.Get(t).Begin()

			moved := list.Get(t).Move()

			assert.True(t, begin.Equal(moved.Begin()))
			assert.NoError(t, moved.Erase(begin))
			assert.Equal(t, []string{"bar", "baz"}, moved.Slice())
			assert.ErrorIs(t, list.Get(t).Erase(moved.Begin()), linear.ErrInvalidPosition)
		})

		s.Then("clear invalidates every element iterator", func(t *testcase.T) {
			begin := list.Get(t).Begin()

			list.Get(t).Clear()

			assert.True(t, list.Get(t).IsEmpty())
			_, err := begin.Value()
			assert.ErrorIs(t, err, linear.ErrInvalidPosition)
		})

		s.Then("range erase with an unreachable end removes nothing", func(t *testcase.T) {
			first, err := list.Get(t).Begin().Add(2)
			assert.NoError(t, err)
			last, err := list.Get(t).Begin().Add(1)
			assert.NoError(t, err)

			assert.ErrorIs(t, list.Get(t).EraseRange(first, last), linear.ErrInvalidPosition)
			assert.Equal(t, []string{"foo", "bar", "baz"}, list.Get(t).Slice())
		})

		s.Then("offset by a negative value walks backwards", func(t *testcase.T) {
			it, err := list.Get(t).CEnd().Add(-2)
			assert.NoError(t, err)
			v, err := it.Value()
			assert.NoError(t, err)
			assert.Equal(t, "bar", v)

			it, err = it.Sub(-1)
			assert.NoError(t, err)
			v, err = it.Value()
			assert.NoError(t, err)
			assert.Equal(t, "baz", v)
		})
	})

	s.Test("zero value list is usable", func(t *testcase.T) {
		var l linkedlist.LinkedList[int]
		assert.True(t, l.IsEmpty())
		assert.True(t, l.Begin().Equal(l.End()))
		l.Prepend(1, 2)
		l.Append(3)
		assert.Equal(t, []int{1, 2, 3}, l.Slice())
	})
}

func BenchmarkLinkedList(b *testing.B) {
	const n = 10000

	b.Run("prepend", func(b *testing.B) {
		for range b.N {
			var l linkedlist.LinkedList[string]
			for range n {
				l.Prepend("prep")
			}
		}
	})

	b.Run("pop last", func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			var l linkedlist.LinkedList[string]
			for range n {
				l.Prepend("prep")
			}
			b.StartTimer()
			for range n {
				_, _ = l.PopLast()
			}
		}
	})
}
