package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAssociativeArrayBasics(t *testing.T) {
	a := NewAssociativeArray[string, int]()
	a.Set("a", 1)
	a.Set("b", 2)
	a.Set("c", 3)
	assert.Equal(t, 3, a.Length())
	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.Equal(t, []string{"a", "b", "c"}, a.Keys())

	a.Set("b", 20)
	assert.Equal(t, []int{1, 20, 3}, a.Values())

	v, ok := a.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = a.Get("z")
	assert.False(t, ok)

	assert.True(t, a.Remove("a"))
	assert.False(t, a.Remove("a"))
	assert.False(t, a.Contains("a"))
	assert.Equal(t, []int{20, 3}, a.Values())

	v, ok = a.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	a.RemoveAll()
	assert.Zero(t, a.Length())
	assert.False(t, a.Contains("b"))
}

func TestAssociativeArrayZeroValue(t *testing.T) {
	var a AssociativeArray[int, int]
	a.Set(1, 10)
	assert.True(t, a.Contains(1))
}

func TestAssociativeArrayNonComparableValues(t *testing.T) {
	a := NewAssociativeArray[string, []float64]()
	a.Set("origin", []float64{0, 0, 0})
	a.Set("unit", []float64{1, 1, 1})
	a.Set("origin", []float64{0, 0, 1})

	v, ok := a.Get("origin")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 1}, v)
	assert.Equal(t, []string{"origin", "unit"}, a.Keys())

	callbacks := NewAssociativeArray[int, func() int]()
	callbacks.Set(1, func() int { return 7 })
	fn, ok := callbacks.Get(1)
	require.True(t, ok)
	assert.Equal(t, 7, fn())
}

func TestAssociativeArrayRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAssociativeArray[int, int]()
	shadow := map[int]int{}

	for i := 0; i < 2000; i++ {
		key := rng.Intn(50)
		if rng.Intn(3) == 0 {
			_, present := shadow[key]
			assert.Equal(t, present, a.Remove(key))
			delete(shadow, key)
		} else {
			value := rng.Int()
			a.Set(key, value)
			shadow[key] = value
		}

		require.Equal(t, len(shadow), a.Length())
		require.Len(t, a.Keys(), a.Length())
		for idx, k := range a.Keys() {
			require.Equal(t, shadow[k], a.Values()[idx])
			require.Equal(t, idx, a.indexes[k])
		}
	}
}
