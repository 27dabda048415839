package containers

// AssociativeArray maps unique keys to values while keeping a live slice of the
// values in insertion order, so callers can iterate without key lookups.
// Every value in the index appears exactly once in Values and vice versa.
type AssociativeArray[K comparable, V any] struct {
	values []V
	keys   []K
	// indexes maps a key to its position in values and keys.
	indexes map[K]int
}

func NewAssociativeArray[K comparable, V any]() *AssociativeArray[K, V] {
	return &AssociativeArray[K, V]{
		indexes: make(map[K]int),
	}
}

// Length returns the number of stored values.
func (a *AssociativeArray[K, V]) Length() int {
	return len(a.values)
}

// Values returns the ordered values. The slice is shared with the array: it
// must not be modified and is only valid until the next mutation.
func (a *AssociativeArray[K, V]) Values() []V {
	return a.values
}

// Keys returns the keys in the same order as Values.
func (a *AssociativeArray[K, V]) Keys() []K {
	return a.keys
}

func (a *AssociativeArray[K, V]) Contains(key K) bool {
	_, ok := a.indexes[key]
	return ok
}

// Set associates value with key. An existing entry is overwritten in place and
// keeps its position.
func (a *AssociativeArray[K, V]) Set(key K, value V) {
	if a.indexes == nil {
		a.indexes = make(map[K]int)
	}
	if idx, ok := a.indexes[key]; ok {
		a.values[idx] = value
		return
	}
	a.indexes[key] = len(a.values)
	a.values = append(a.values, value)
	a.keys = append(a.keys, key)
}

// Get returns the value stored under key and whether it was present.
func (a *AssociativeArray[K, V]) Get(key K) (V, bool) {
	idx, ok := a.indexes[key]
	if !ok {
		var zero V
		return zero, false
	}
	return a.values[idx], true
}

// Remove deletes key and its value. It reports whether the key was present.
func (a *AssociativeArray[K, V]) Remove(key K) bool {
	idx, ok := a.indexes[key]
	if !ok {
		return false
	}
	delete(a.indexes, key)

	copy(a.values[idx:], a.values[idx+1:])
	var zeroV V
	a.values[len(a.values)-1] = zeroV
	a.values = a.values[:len(a.values)-1]

	copy(a.keys[idx:], a.keys[idx+1:])
	var zeroK K
	a.keys[len(a.keys)-1] = zeroK
	a.keys = a.keys[:len(a.keys)-1]

	for i := idx; i < len(a.keys); i++ {
		a.indexes[a.keys[i]] = i
	}
	return true
}

// RemoveAll clears the array.
func (a *AssociativeArray[K, V]) RemoveAll() {
	a.values = nil
	a.keys = nil
	a.indexes = make(map[K]int)
}
