package linearcontract

import (
	"fmt"
	"slices"
	"testing"

	"github.com/adamluzsi/linearkit/pkg/linear"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Subject is the behaviour the Container contract expects from a linear container.
type Subject[T any, I linear.MutableCursor[T, I, C], C linear.Cursor[T, C], S any] interface {
	linear.Container[T, I, C]
	linear.Transferable[S]
}

type Config[T any] struct {
	// MakeElem creates a random element for the container.
	// Defaults to a random string based value when T is string.
	MakeElem func(tb testing.TB) T
}

func (c Config[T]) makeElem(t *testcase.T) T {
	if c.MakeElem != nil {
		return c.MakeElem(t)
	}
	return defaultMakeElem[T](t)
}

func defaultMakeElem[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	switch any(*new(T)).(type) {
	case string:
		return any(t.Random.String()).(T)
	case int:
		return any(t.Random.Int()).(T)
	default:
		tb.Fatalf("linearcontract.Config.MakeElem is required for %T", *new(T))
		return *new(T)
	}
}

// Container is the contract that both the linked list and the vector fulfil.
// mk must return an empty container.
func Container[T any, I linear.MutableCursor[T, I, C], C linear.Cursor[T, C], S Subject[T, I, C, S]](mk contract.Make[S], c Config[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) S {
		return mk(t)
	})

	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return c.makeElem(t)
		})
	})

	elem := let.Var(s, func(t *testcase.T) T {
		return c.makeElem(t)
	})

	// filled is a helper that put the values into the subject
	filled := func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})
	}

	s.Test("a new container is empty", func(t *testcase.T) {
		assert.True(t, subject.Get(t).IsEmpty())
		assert.Equal(t, 0, subject.Get(t).Len())
		assert.True(t, subject.Get(t).Begin().Equal(subject.Get(t).End()))
		assert.True(t, subject.Get(t).CBegin().Equal(subject.Get(t).CEnd()))
		assert.Empty(t, subject.Get(t).Slice())
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("values are kept in insertion order", func(t *testcase.T) {
			act(t)

			assert.Equal(t, values.Get(t), subject.Get(t).Slice())
		})

		s.Then("length reflects the number of appended values", func(t *testcase.T) {
			act(t)

			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
			assert.False(t, subject.Get(t).IsEmpty())
		})

		s.Then("iteration between begin and end yields the values", func(t *testcase.T) {
			act(t)

			got, err := linear.Collect[T](subject.Get(t).CBegin(), subject.Get(t).CEnd())
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t), got)

			var fromIter []T
			for v := range subject.Get(t).Iter() {
				fromIter = append(fromIter, v)
			}
			assert.Equal(t, values.Get(t), fromIter)
		})

		s.Then("backward iteration yields the values in reverse", func(t *testcase.T) {
			act(t)

			got, err := linear.CollectReverse[T](subject.Get(t).CBegin(), subject.Get(t).CEnd())
			assert.NoError(t, err)
			exp := slices.Clone(values.Get(t))
			slices.Reverse(exp)
			assert.Equal(t, exp, got)
		})

		s.Then("append followed by pop last is a round trip", func(t *testcase.T) {
			act(t)
			size := subject.Get(t).Len()

			subject.Get(t).Append(elem.Get(t))
			got, err := subject.Get(t).PopLast()
			assert.NoError(t, err)
			assert.Equal(t, elem.Get(t), got)
			assert.Equal(t, size, subject.Get(t).Len())
			assert.Equal(t, values.Get(t), subject.Get(t).Slice())
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		s.When("the container has values", func(s *testcase.Spec) {
			filled(s)

			s.Then("the prepended value becomes the first", func(t *testcase.T) {
				subject.Get(t).Prepend(elem.Get(t))

				got, err := subject.Get(t).Begin().Value()
				assert.NoError(t, err)
				assert.Equal(t, elem.Get(t), got)
				assert.Equal(t, append([]T{elem.Get(t)}, values.Get(t)...), subject.Get(t).Slice())
			})

			s.Then("prepend followed by pop first is a round trip", func(t *testcase.T) {
				size := subject.Get(t).Len()

				subject.Get(t).Prepend(elem.Get(t))
				got, err := subject.Get(t).PopFirst()
				assert.NoError(t, err)
				assert.Equal(t, elem.Get(t), got)
				assert.Equal(t, size, subject.Get(t).Len())
				assert.Equal(t, values.Get(t), subject.Get(t).Slice())
			})
		})

		s.Then("multiple values keep their argument order", func(t *testcase.T) {
			subject.Get(t).Append(elem.Get(t))
			subject.Get(t).Prepend(values.Get(t)...)

			assert.Equal(t, append(slices.Clone(values.Get(t)), elem.Get(t)), subject.Get(t).Slice())
		})
	})

	s.Describe("#PopFirst + #PopLast", func(s *testcase.Spec) {
		s.When("the container is empty", func(s *testcase.Spec) {
			s.Then("pop first reports an empty container", func(t *testcase.T) {
				_, err := subject.Get(t).PopFirst()
				assert.ErrorIs(t, err, linear.ErrEmptyContainer)
			})

			s.Then("pop last reports an empty container", func(t *testcase.T) {
				_, err := subject.Get(t).PopLast()
				assert.ErrorIs(t, err, linear.ErrEmptyContainer)
			})
		})

		s.When("the container has values", func(s *testcase.Spec) {
			filled(s)

			s.Then("pop first drains the values from the front", func(t *testcase.T) {
				for i, exp := range values.Get(t) {
					got, err := subject.Get(t).PopFirst()
					assert.NoError(t, err)
					assert.Equal(t, exp, got)
					assert.Equal(t, len(values.Get(t))-i-1, subject.Get(t).Len())
				}
				assert.True(t, subject.Get(t).IsEmpty())
			})

			s.Then("pop last drains the values from the back", func(t *testcase.T) {
				vs := values.Get(t)
				for i := len(vs) - 1; 0 <= i; i-- {
					got, err := subject.Get(t).PopLast()
					assert.NoError(t, err)
					assert.Equal(t, vs[i], got)
					assert.Equal(t, i, subject.Get(t).Len())
				}
				assert.True(t, subject.Get(t).IsEmpty())
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		offset := let.Var[int](s, nil)

		act := let.Act(func(t *testcase.T) error {
			pos, err := subject.Get(t).Begin().Add(offset.Get(t))
			assert.NoError(t, err)
			return subject.Get(t).Insert(pos, elem.Get(t))
		})

		s.When("the container is empty", func(s *testcase.Spec) {
			offset.LetValue(s, 0)

			s.Then("the value becomes the only element", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.Equal(t, []T{elem.Get(t)}, subject.Get(t).Slice())
			})
		})

		s.When("the container has values", func(s *testcase.Spec) {
			filled(s)
			offset.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(values.Get(t)))
			})

			s.Then("the value is placed before the element at the position", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slices.Insert(slices.Clone(values.Get(t)), offset.Get(t), elem.Get(t))
				assert.Equal(t, exp, subject.Get(t).Slice())
				assert.Equal(t, len(exp), subject.Get(t).Len())
			})

			s.And("the position is the end", func(s *testcase.Spec) {
				offset.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it behaves like append", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := subject.Get(t).PopLast()
					assert.NoError(t, err)
					assert.Equal(t, elem.Get(t), got)
				})
			})

			s.And("the position is the beginning", func(s *testcase.Spec) {
				offset.LetValue(s, 0)

				s.Then("it behaves like prepend", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := subject.Get(t).PopFirst()
					assert.NoError(t, err)
					assert.Equal(t, elem.Get(t), got)
				})
			})
		})

		s.Test("an iterator of another container is rejected", func(t *testcase.T) {
			oth := mk(t)
			oth.Append(elem.Get(t))

			assert.ErrorIs(t, subject.Get(t).Insert(oth.Begin(), elem.Get(t)), linear.ErrInvalidPosition)
			assert.True(t, subject.Get(t).IsEmpty())
		})

		s.Test("a zero iterator is rejected", func(t *testcase.T) {
			var zero I
			assert.ErrorIs(t, subject.Get(t).Insert(zero, elem.Get(t)), linear.ErrInvalidPosition)
		})
	})

	s.Describe("#Erase", func(s *testcase.Spec) {
		s.When("the container is empty", func(s *testcase.Spec) {
			s.Then("erasing the end is an invalid position", func(t *testcase.T) {
				err := subject.Get(t).Erase(subject.Get(t).End())
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})
		})

		s.When("the container has values", func(s *testcase.Spec) {
			filled(s)

			s.Then("erasing the end is an invalid position and nothing changes", func(t *testcase.T) {
				err := subject.Get(t).Erase(subject.Get(t).End())
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
				assert.Equal(t, values.Get(t), subject.Get(t).Slice())
			})

			s.Then("the element at the position is removed", func(t *testcase.T) {
				index := t.Random.IntN(len(values.Get(t)))
				pos, err := subject.Get(t).Begin().Add(index)
				assert.NoError(t, err)

				assert.NoError(t, subject.Get(t).Erase(pos))

				exp := slices.Delete(slices.Clone(values.Get(t)), index, index+1)
				assert.Equal(t, exp, subject.Get(t).Slice())
				assert.Equal(t, len(exp), subject.Get(t).Len())
			})

			s.Then("erasing begin removes the first element", func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).Erase(subject.Get(t).Begin()))

				assert.Equal(t, values.Get(t)[1:], subject.Get(t).Slice())
			})
		})
	})

	s.Describe("#EraseRange", func(s *testcase.Spec) {
		s.When("the container has values", func(s *testcase.Spec) {
			filled(s)

			s.Then("erasing [begin, end) empties the container", func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).EraseRange(subject.Get(t).Begin(), subject.Get(t).End()))

				assert.True(t, subject.Get(t).IsEmpty())
				assert.Equal(t, 0, subject.Get(t).Len())
				assert.True(t, subject.Get(t).Begin().Equal(subject.Get(t).End()))
			})

			s.Then("elements outside of the range remain in order", func(t *testcase.T) {
				n := len(values.Get(t))
				from := t.Random.IntBetween(0, n)
				to := t.Random.IntBetween(from, n)

				first, err := subject.Get(t).Begin().Add(from)
				assert.NoError(t, err)
				last, err := subject.Get(t).Begin().Add(to)
				assert.NoError(t, err)

				assert.NoError(t, subject.Get(t).EraseRange(first, last))

				exp := slices.Delete(slices.Clone(values.Get(t)), from, to)
				assert.Equal(t, exp, subject.Get(t).Slice())
				assert.Equal(t, len(exp), subject.Get(t).Len())
			})

			s.Then("an empty range removes nothing", func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).EraseRange(subject.Get(t).End(), subject.Get(t).End()))

				assert.Equal(t, values.Get(t), subject.Get(t).Slice())
			})

			s.Then("a reversed range is an invalid position and nothing changes", func(t *testcase.T) {
				err := subject.Get(t).EraseRange(subject.Get(t).End(), subject.Get(t).Begin())
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)

				assert.Equal(t, values.Get(t), subject.Get(t).Slice())
			})
		})
	})

	s.Describe("iterator", func(s *testcase.Spec) {
		s.When("the container is empty", func(s *testcase.Spec) {
			s.Then("end cannot be dereferenced", func(t *testcase.T) {
				_, err := subject.Get(t).End().Value()
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})

			s.Then("end cannot be incremented", func(t *testcase.T) {
				_, err := subject.Get(t).End().Next()
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})

			s.Then("begin cannot be decremented", func(t *testcase.T) {
				_, err := subject.Get(t).CBegin().Prev()
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})
		})

		s.When("the container has values", func(s *testcase.Spec) {
			filled(s)

			s.Then("end cannot be incremented", func(t *testcase.T) {
				_, err := subject.Get(t).CEnd().Next()
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})

			s.Then("end cannot be dereferenced", func(t *testcase.T) {
				_, err := subject.Get(t).CEnd().Value()
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)

				err = subject.Get(t).End().Set(elem.Get(t))
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})

			s.Then("begin cannot be decremented", func(t *testcase.T) {
				_, err := subject.Get(t).Begin().Prev()
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})

			s.Then("moving by the length connects begin and end", func(t *testcase.T) {
				n := subject.Get(t).Len()

				end, err := subject.Get(t).Begin().Add(n)
				assert.NoError(t, err)
				assert.True(t, end.Equal(subject.Get(t).End()))

				begin, err := subject.Get(t).CEnd().Sub(n)
				assert.NoError(t, err)
				assert.True(t, begin.Equal(subject.Get(t).CBegin()))

				begin, err = subject.Get(t).CEnd().Add(-n)
				assert.NoError(t, err)
				assert.True(t, begin.Equal(subject.Get(t).CBegin()))

				dist, err := linear.Distance[T](subject.Get(t).CBegin(), subject.Get(t).CEnd())
				assert.NoError(t, err)
				assert.Equal(t, n, dist)
			})

			s.Then("moving beyond the boundaries is an invalid position", func(t *testcase.T) {
				n := subject.Get(t).Len()

				_, err := subject.Get(t).Begin().Add(n + 1)
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)

				_, err = subject.Get(t).End().Sub(n + 1)
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)

				_, err = subject.Get(t).Begin().Sub(1)
				assert.ErrorIs(t, err, linear.ErrInvalidPosition)
			})

			s.Then("offset returns a new iterator and leaves the original in place", func(t *testcase.T) {
				begin := subject.Get(t).Begin()

				moved, err := begin.Add(1)
				assert.NoError(t, err)
				assert.False(t, moved.Equal(begin))
				assert.True(t, begin.Equal(subject.Get(t).Begin()))

				got, err := moved.Value()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[1], got)
			})

			s.Then("the element can be modified through the mutable iterator", func(t *testcase.T) {
				index := t.Random.IntN(len(values.Get(t)))
				pos, err := subject.Get(t).Begin().Add(index)
				assert.NoError(t, err)

				assert.NoError(t, pos.Set(elem.Get(t)))

				got, err := pos.Const().Value()
				assert.NoError(t, err)
				assert.Equal(t, elem.Get(t), got)

				exp := slices.Clone(values.Get(t))
				exp[index] = elem.Get(t)
				assert.Equal(t, exp, subject.Get(t).Slice())
			})

			s.Then("the element can be modified through a pointer", func(t *testcase.T) {
				ptr, err := subject.Get(t).Begin().Pointer()
				assert.NoError(t, err)
				*ptr = elem.Get(t)

				got, err := subject.Get(t).CBegin().Value()
				assert.NoError(t, err)
				assert.Equal(t, elem.Get(t), got)
			})

			s.Then("stepping back and forth returns to the same position", func(t *testcase.T) {
				it, err := subject.Get(t).Begin().Next()
				assert.NoError(t, err)
				it, err = it.Prev()
				assert.NoError(t, err)
				assert.True(t, it.Equal(subject.Get(t).Begin()))
			})
		})
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		filled(s)

		s.Then("the clone holds the same elements", func(t *testcase.T) {
			cp := subject.Get(t).Clone()

			assert.Equal(t, values.Get(t), cp.Slice())
			assert.Equal(t, subject.Get(t).Len(), cp.Len())
		})

		s.Then("mutating the original does not affect the clone", func(t *testcase.T) {
			cp := subject.Get(t).Clone()

			subject.Get(t).Append(elem.Get(t))
			_, err := subject.Get(t).PopFirst()
			assert.NoError(t, err)
			assert.NoError(t, subject.Get(t).Begin().Set(elem.Get(t)))

			assert.Equal(t, values.Get(t), cp.Slice())
			assert.Equal(t, len(values.Get(t)), cp.Len())
		})
	})

	s.Describe("#CopyFrom", func(s *testcase.Spec) {
		filled(s)

		s.Then("the destination holds a copy of the source", func(t *testcase.T) {
			dst := mk(t)
			dst.Append(elem.Get(t))

			dst.CopyFrom(subject.Get(t))
			assert.Equal(t, values.Get(t), dst.Slice())

			subject.Get(t).Clear()
			assert.Equal(t, values.Get(t), dst.Slice())
		})

		s.Then("copying from itself changes nothing", func(t *testcase.T) {
			subject.Get(t).CopyFrom(subject.Get(t))

			assert.Equal(t, values.Get(t), subject.Get(t).Slice())
		})
	})

	s.Describe("#Move", func(s *testcase.Spec) {
		filled(s)

		s.Then("the destination holds the elements of the source", func(t *testcase.T) {
			dst := subject.Get(t).Move()

			assert.Equal(t, values.Get(t), dst.Slice())
			assert.Equal(t, len(values.Get(t)), dst.Len())
		})

		s.Then("the source is left empty and reusable", func(t *testcase.T) {
			_ = subject.Get(t).Move()

			assert.True(t, subject.Get(t).IsEmpty())
			assert.Equal(t, 0, subject.Get(t).Len())

			subject.Get(t).Append(elem.Get(t))
			assert.Equal(t, []T{elem.Get(t)}, subject.Get(t).Slice())
		})
	})

	s.Describe("#MoveFrom", func(s *testcase.Spec) {
		filled(s)

		s.Then("the destination takes over the elements and the source is emptied", func(t *testcase.T) {
			dst := mk(t)
			dst.Append(elem.Get(t))

			dst.MoveFrom(subject.Get(t))

			assert.Equal(t, values.Get(t), dst.Slice())
			assert.True(t, subject.Get(t).IsEmpty())

			subject.Get(t).Prepend(elem.Get(t))
			assert.Equal(t, []T{elem.Get(t)}, subject.Get(t).Slice())
			assert.Equal(t, values.Get(t), dst.Slice())
		})

		s.Then("moving from itself changes nothing", func(t *testcase.T) {
			subject.Get(t).MoveFrom(subject.Get(t))

			assert.Equal(t, values.Get(t), subject.Get(t).Slice())
		})
	})

	s.Test("random operations keep the size and the order consistent", func(t *testcase.T) {
		var (
			sub = subject.Get(t)
			exp []T
		)
		t.Random.Repeat(32, 128, func() {
			v := c.makeElem(t)
			switch t.Random.IntN(7) {
			case 0:
				sub.Append(v)
				exp = append(exp, v)
			case 1:
				sub.Prepend(v)
				exp = append([]T{v}, exp...)
			case 2:
				index := t.Random.IntBetween(0, len(exp))
				pos, err := sub.Begin().Add(index)
				assert.NoError(t, err)
				assert.NoError(t, sub.Insert(pos, v))
				exp = slices.Insert(exp, index, v)
			case 3:
				got, err := sub.PopFirst()
				if len(exp) == 0 {
					assert.ErrorIs(t, err, linear.ErrEmptyContainer)
					break
				}
				assert.NoError(t, err)
				assert.Equal(t, exp[0], got)
				exp = exp[1:]
			case 4:
				got, err := sub.PopLast()
				if len(exp) == 0 {
					assert.ErrorIs(t, err, linear.ErrEmptyContainer)
					break
				}
				assert.NoError(t, err)
				assert.Equal(t, exp[len(exp)-1], got)
				exp = exp[:len(exp)-1]
			case 5:
				if len(exp) == 0 {
					assert.ErrorIs(t, sub.Erase(sub.Begin()), linear.ErrInvalidPosition)
					break
				}
				index := t.Random.IntN(len(exp))
				pos, err := sub.Begin().Add(index)
				assert.NoError(t, err)
				assert.NoError(t, sub.Erase(pos))
				exp = slices.Delete(exp, index, index+1)
			case 6:
				from := t.Random.IntBetween(0, len(exp))
				to := t.Random.IntBetween(from, len(exp))
				first, err := sub.Begin().Add(from)
				assert.NoError(t, err)
				last, err := sub.Begin().Add(to)
				assert.NoError(t, err)
				assert.NoError(t, sub.EraseRange(first, last))
				exp = slices.Delete(exp, from, to)
			}
			assert.Equal(t, len(exp), sub.Len())
			assert.Equal(t, len(exp) == 0, sub.IsEmpty())
		})
		if len(exp) == 0 {
			assert.Empty(t, sub.Slice())
			return
		}
		assert.Equal(t, exp, sub.Slice())
	})

	return s.AsSuite(fmt.Sprintf("linear.Container[%T]", *new(T)))
}
