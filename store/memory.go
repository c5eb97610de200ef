package store

// Memory is an in-memory Store used by tests. MaxBytes, when positive, caps
// the total stored size so quota exhaustion can be simulated.
type Memory struct {
	values   map[string]string
	MaxBytes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.MaxBytes > 0 {
		size := len(value)
		for k, v := range m.values {
			if k != key {
				size += len(v)
			}
		}
		if size > m.MaxBytes {
			return ErrQuotaExceeded
		}
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
