package linkedlist

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func assertLinks[T any](tb testing.TB, l *LinkedList[T]) {
	tb.Helper()
	c := l.storage()
	assert.Nil(tb, c.head.prev)
	assert.Nil(tb, c.tail.next)
	var count int
	for n := c.head.next; n != c.tail; n = n.next {
		assert.True(tb, n.next.prev == n, "next.prev must point back to the node")
		assert.True(tb, n.prev.next == n, "prev.next must point back to the node")
		assert.True(tb, n.chain == c)
		count++
	}
	assert.Equal(tb, count, c.length)
}

func TestLinkedList_links(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	var l LinkedList[int]
	assertLinks(t, &l)
	c := l.storage()
	assert.True(t, c.head.next == c.tail)
	assert.True(t, c.tail.prev == c.head)

	for i := 0; i < 256; i++ {
		switch rnd.IntN(5) {
		case 0:
			l.Append(rnd.Int())
		case 1:
			l.Prepend(rnd.Int())
		case 2:
			_, _ = l.PopFirst()
		case 3:
			_, _ = l.PopLast()
		case 4:
			pos, err := l.Begin().Add(rnd.IntBetween(0, l.Len()))
			assert.NoError(t, err)
			assert.NoError(t, l.Insert(pos, rnd.Int()))
		}
		assertLinks(t, &l)
	}

	l.Clear()
	assertLinks(t, &l)
	assert.True(t, c.head.next == c.tail)
}

func TestLinkedList_unlinkDetachesTheNode(t *testing.T) {
	l := New("a", "b", "c")
	n := l.storage().head.next.next

	v := l.storage().unlink(n)
	assert.Equal(t, "b", v)
	assert.Nil(t, n.chain)
	assert.Nil(t, n.prev)
	assert.Nil(t, n.next)
	assert.Equal(t, "", n.value)
	assertLinks(t, l)
}
