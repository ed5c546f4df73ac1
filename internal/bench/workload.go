package bench

import (
	"time"

	"github.com/adamluzsi/linearkit/pkg/linear"
	"go.llib.dev/testcase/clock"
)

const (
	ContainerLinkedList = "linkedlist"
	ContainerVector     = "vector"
)

const (
	WorkloadPrepend = "prepend"
	WorkloadPopLast = "pop-last"
)

// sequence is the part of the container API the timed workloads exercise.
type sequence[T any] interface {
	Prepend(vs ...T)
	PopLast() (T, error)
	Len() int
}

type subject[I linear.MutableCursor[string, I, C], C linear.Cursor[string, C], S any] interface {
	linear.Container[string, I, C]
	linear.Transferable[S]
}

// measure runs blk and returns how long it took.
func measure(blk func() error) (time.Duration, error) {
	start := clock.Now()
	err := blk()
	return clock.Now().Sub(start), err
}

// prependWorkload measures prepending every payload value into a new container.
func prependWorkload[S sequence[string]](mk func() S, payload []string) (time.Duration, error) {
	c := mk()
	return measure(func() error {
		for _, v := range payload {
			c.Prepend(v)
		}
		if c.Len() != len(payload) {
			return ErrWorkloadMismatch.F("expected %d elements after prepend, got %d", len(payload), c.Len())
		}
		return nil
	})
}

// popLastWorkload fills a container with prepends, then measures popping every element from its end.
func popLastWorkload[S sequence[string]](mk func() S, payload []string) (time.Duration, error) {
	c := mk()
	for _, v := range payload {
		c.Prepend(v)
	}
	return measure(func() error {
		for range payload {
			if _, err := c.PopLast(); err != nil {
				return err
			}
		}
		if c.Len() != 0 {
			return ErrWorkloadMismatch.F("expected an empty container after popping, got %d elements", c.Len())
		}
		return nil
	})
}

// smokeWorkload exercises the whole container API on short literals,
// and checks that erasing the full range leaves nothing behind.
func smokeWorkload[I linear.MutableCursor[string, I, C], C linear.Cursor[string, C], S subject[I, C, S]](mk func(vs ...string) S) error {
	c := mk()
	c.CopyFrom(mk("a", "da", "ma"))
	c.Append("pp")
	c.Prepend("prepend")
	if c.Len() != 5 {
		return ErrWorkloadMismatch.F("expected 5 elements, got %d", c.Len())
	}

	last, err := c.End().Prev()
	if err != nil {
		return err
	}
	if v, err := last.Value(); err != nil {
		return err
	} else if v != "pp" {
		return ErrWorkloadMismatch.F("expected the last element to be %q, got %q", "pp", v)
	}

	c.MoveFrom(mk("ala", "ma", "kota", "psa", "słonia", "konia", "psa", "trumpet", "d", "d"))
	at, err := c.CBegin().Add(8)
	if err != nil {
		return err
	}
	if v, err := at.Value(); err != nil {
		return err
	} else if v != "d" {
		return ErrWorkloadMismatch.F("expected %q at offset 8, got %q", "d", v)
	}

	if err := c.EraseRange(c.Begin(), c.End()); err != nil {
		return err
	}
	if !c.IsEmpty() || c.Len() != 0 {
		return ErrWorkloadMismatch.F("%d elements left after erasing the full range", c.Len())
	}
	return nil
}
