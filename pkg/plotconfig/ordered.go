package plotconfig

// orderedAxes maps scale keys to axis builders and iterates in first-insertion order.
type orderedAxes struct {
	keys  []string
	items map[string]*AxisBuilder
}

func newOrderedAxes() *orderedAxes {
	return &orderedAxes{items: make(map[string]*AxisBuilder)}
}

func (m *orderedAxes) get(key string) (*AxisBuilder, bool) {
	a, ok := m.items[key]
	return a, ok
}

// set stores a under key. Replacing an existing key keeps its position.
func (m *orderedAxes) set(key string, a *AxisBuilder) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = a
}

func (m *orderedAxes) len() int {
	return len(m.keys)
}

// each calls fn for every entry in insertion order.
func (m *orderedAxes) each(fn func(key string, a *AxisBuilder)) {
	for _, k := range m.keys {
		fn(k, m.items[k])
	}
}
