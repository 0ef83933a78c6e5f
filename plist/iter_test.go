package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIter(t *testing.T) {
	assert := assert.New(t)
	list := New[int]().Prepend(1).Prepend(2).Prepend(3)

	it := list.Iter()
	for _, want := range []int{3, 2, 1} {
		v, ok := it.Next()
		assert.True(ok)
		assert.Equal(want, v)
	}
	_, ok := it.Next()
	assert.False(ok)
	_, ok = it.Next()
	assert.False(ok)

	// a new traversal starts over
	v, ok := list.Iter().Next()
	assert.True(ok)
	assert.Equal(3, v)
}

func TestIterEmpty(t *testing.T) {
	_, ok := New[int]().Iter().Next()
	assert.False(t, ok)
	for range New[int]().All() {
		t.Fatal("empty list yielded")
	}
}

func TestAllRestartable(t *testing.T) {
	assert := assert.New(t)
	list := Of("a", "b", "c")
	seq := list.All()

	var first, second []string
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}
	assert.Equal([]string{"a", "b", "c"}, first)
	assert.Equal(first, second)
}

func TestAllBreak(t *testing.T) {
	var got []int
	for v := range Of(1, 2, 3, 4).All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestIterDoesNotConsume(t *testing.T) {
	list := Of(1, 2)
	it := list.Iter()
	it.Next()
	it.Next()
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, 2, list.Release())
}
