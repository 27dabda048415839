package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventAddRaiseRemove(t *testing.T) {
	e := NewEvent[int]()
	var got []int
	first := e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })
	assert.Equal(t, 2, e.NumberOfListeners())

	e.Raise(3)
	assert.Equal(t, []int{3, 30}, got)

	assert.True(t, e.RemoveListener(first))
	assert.False(t, e.RemoveListener(first))
	assert.False(t, e.RemoveListener(uuid.New()))
	assert.Equal(t, 1, e.NumberOfListeners())

	got = nil
	e.Raise(2)
	assert.Equal(t, []int{20}, got)
}

func TestEventRemoveDuringRaise(t *testing.T) {
	e := NewEvent[string]()
	calls := map[string]int{}

	var second uuid.UUID
	e.AddListener(func(string) {
		calls["first"]++
		e.RemoveListener(second)
	})
	second = e.AddListener(func(string) { calls["second"]++ })
	e.AddListener(func(string) { calls["third"]++ })

	e.Raise("go")
	assert.Equal(t, 0, calls["second"])
	assert.Equal(t, 1, calls["third"])
	assert.Equal(t, 2, e.NumberOfListeners())

	e.Raise("again")
	assert.Equal(t, map[string]int{"first": 2, "third": 2}, calls)
}

func TestEventAddDuringRaise(t *testing.T) {
	e := NewEvent[int]()
	late := 0
	e.AddListener(func(int) {
		if late == 0 {
			e.AddListener(func(int) { late++ })
		}
	})

	e.Raise(1)
	assert.Equal(t, 0, late)
	e.Raise(1)
	assert.Equal(t, 1, late)
}

func TestEventRemoveSelfDuringRaise(t *testing.T) {
	e := NewEvent[int]()
	calls := 0
	var id uuid.UUID
	id = e.AddListener(func(int) {
		calls++
		e.RemoveListener(id)
	})

	e.Raise(1)
	e.Raise(1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.NumberOfListeners())
}
