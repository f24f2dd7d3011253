package value

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an ordered collection of uniquely keyed entries.
// It backs both object regions and array regions of a document.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping builds a mapping from entries in order. A repeated key
// replaces the earlier value but keeps its original position.
func NewMapping(entries ...Entry) *Mapping {
	m := &Mapping{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores value under key, appending the key if it is new.
func (m *Mapping) Set(key string, v Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Equal reports whether both mappings hold equal entries in the same order.
func (m *Mapping) Equal(o *Mapping) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := range m.Len() {
		a, b := m.entries[i], o.entries[i]
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}
