package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestNewConfigStoreFrom_CopiesValues(t *testing.T) {
	seed := map[string]any{"llm.provider": "mock", "router.max_steps": 6}
	store := NewConfigStoreFrom(seed)

	seed["llm.provider"] = "openai"

	assert.Equal(t, "mock", store.GetString("llm.provider"))
	assert.Equal(t, 6, store.GetInt("router.max_steps"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreFrom(map[string]any{
		"knowledge_base.path":     "kb",
		"knowledge_base.watch":    true,
		"server.port":             int64(4000),
		"server.rate_burst":       float64(10),
		"server.allowed_origins":  []any{"http://a", 3, "http://b"},
		"server.web_origin_slice": []string{"http://c"},
	})

	assert.Equal(t, "kb", store.GetString("knowledge_base.path"))
	assert.True(t, store.GetBool("knowledge_base.watch"))
	assert.Equal(t, 4000, store.GetInt("server.port"))
	assert.Equal(t, 10, store.GetInt("server.rate_burst"))
	assert.Equal(t, []string{"http://a", "http://b"}, store.GetStringSlice("server.allowed_origins"))
	assert.Equal(t, []string{"http://c"}, store.GetStringSlice("server.web_origin_slice"))
}

func TestConfigStore_MissingAndWrongType(t *testing.T) {
	store := NewConfigStoreFrom(map[string]any{"server.port": "4000"})

	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("server.port"))
	assert.False(t, store.GetBool("server.port"))
	assert.Nil(t, store.GetStringSlice("server.port"))

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_SetOverwrites(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("llm.model", "a"))
	require.NoError(t, store.Set("llm.model", "b"))

	assert.Equal(t, "b", store.GetString("llm.model"))
}

func TestConfigStore_LoadRollsBackToSave(t *testing.T) {
	store := NewConfigStoreFrom(map[string]any{"llm.provider": "mock"})

	require.NoError(t, store.Set("llm.provider", "openai"))
	require.NoError(t, store.Load())
	assert.Equal(t, "mock", store.GetString("llm.provider"))

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Save())
	require.NoError(t, store.Set("llm.provider", "anthropic"))
	require.NoError(t, store.Load())
	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.Equal(t, ":memory:", store.Path())
}

func TestNewConfigStoreFrom_Nil(t *testing.T) {
	store := NewConfigStoreFrom(nil)

	require.NoError(t, store.Set("llm.model", "m"))
	assert.Equal(t, "m", store.GetString("llm.model"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("router.max_steps", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("router.max_steps")
		}()
	}
	wg.Wait()

	_, ok := store.Get("router.max_steps")
	assert.True(t, ok)
}
