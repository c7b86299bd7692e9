package store

import "encoding/json"

// Memory is an in-memory store. It backs tests and serves as the degraded
// mode when the state directory is unavailable: the session keeps working,
// nothing survives it. Values are kept JSON-encoded so reads observe the
// same serialization boundary as the file store.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	raw, ok := m.values[key]
	return raw, ok
}

func (m *Memory) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.values[key] = data
}

func (m *Memory) Delete(key string) {
	delete(m.values, key)
}
