// Package store is the persistence boundary of the tracker: a small
// key/value store where reads that fail for any reason report absence
// instead of erroring, and writes are best-effort.
package store

import "encoding/json"

// Store is a synchronous key/value slice store. Get returns the raw value
// and whether it was present and readable. Set persists the JSON encoding
// of value; failures are logged by implementations and never surfaced.
// Delete removes a slice; removing an absent key is a no-op.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value any)
	Delete(key string)
}

// GetJSON decodes the value under key into dest. A missing key or a
// malformed value is treated as absence and leaves dest untouched.
func GetJSON(s Store, key string, dest any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}
