package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. It backs `assist --no-config` and
// tests. Save snapshots the current values and Load rolls back to the last
// snapshot, so a settings edit can be abandoned the same way a file edit can.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	saved  map[string]any
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: map[string]any{}, saved: map[string]any{}}
}

// NewConfigStoreFrom seeds the store with a copy of values, treated as saved.
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	return &ConfigStore{values: cloneValues(values), saved: cloneValues(values)}
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := lookup[string](s, key)
	return v
}

// GetInt accepts the integer shapes TOML and JSON decoders produce.
func (s *ConfigStore) GetInt(key string) int {
	raw, _ := s.Get(key)
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (s *ConfigStore) GetBool(key string) bool {
	v, _ := lookup[bool](s, key)
	return v
}

// GetStringSlice drops non-string elements of a decoded []any.
func (s *ConfigStore) GetStringSlice(key string) []string {
	raw, _ := s.Get(key)
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Save() error {
	s.mu.Lock()
	s.saved = cloneValues(s.values)
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Load() error {
	s.mu.Lock()
	s.values = cloneValues(s.saved)
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Path() string {
	return ":memory:"
}

func lookup[T any](s *ConfigStore, key string) (T, bool) {
	raw, _ := s.Get(key)
	v, ok := raw.(T)
	return v, ok
}

// cloneValues never returns nil, so Set is always safe.
func cloneValues(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}
