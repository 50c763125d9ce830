package nn

// registry is an insertion-ordered string-keyed map.
//
// Overwriting an existing key keeps its original position. The zero value is
// an empty registry ready to use.
type registry[V any] struct {
	keys  []string
	index map[string]int
	vals  []V
}

func (r *registry[V]) set(key string, val V) {
	if i, ok := r.index[key]; ok {
		r.vals[i] = val
		return
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[key] = len(r.keys)
	r.keys = append(r.keys, key)
	r.vals = append(r.vals, val)
}

func (r *registry[V]) get(key string) (V, bool) {
	i, ok := r.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return r.vals[i], true
}

func (r *registry[V]) remove(key string) {
	i, ok := r.index[key]
	if !ok {
		return
	}
	r.keys = append(r.keys[:i], r.keys[i+1:]...)
	r.vals = append(r.vals[:i], r.vals[i+1:]...)
	delete(r.index, key)
	for j := i; j < len(r.keys); j++ {
		r.index[r.keys[j]] = j
	}
}

func (r *registry[V]) len() int {
	return len(r.keys)
}

// each calls fn for every entry in insertion order.
func (r *registry[V]) each(fn func(key string, val V)) {
	for i, k := range r.keys {
		fn(k, r.vals[i])
	}
}
