package aggregate

// ordered is a map that remembers first-insertion order of its keys.
type ordered[V any] struct {
	keys  []string
	index map[string]*V
}

func newOrdered[V any]() *ordered[V] {
	return &ordered[V]{index: make(map[string]*V)}
}

// slot returns the entry for key, creating it with init on first sight.
func (o *ordered[V]) slot(key string, init func() V) *V {
	if v, ok := o.index[key]; ok {
		return v
	}
	v := init()
	o.index[key] = &v
	o.keys = append(o.keys, key)
	return &v
}

func (o *ordered[V]) each(fn func(key string, v *V)) {
	for _, k := range o.keys {
		fn(k, o.index[k])
	}
}

func (o *ordered[V]) values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, *o.index[k])
	}
	return out
}
