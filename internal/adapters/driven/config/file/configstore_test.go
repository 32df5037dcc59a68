package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(nested)
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("llm.provider", "openai"))
	require.NoError(t, store.Set("router.max_steps", 8))
	require.NoError(t, store.Set("knowledge_base.watch", true))
	require.NoError(t, store.Set("server.rate_limit", 2.5))
	require.NoError(t, store.Set("server.allowed_origins", []string{"http://a", "http://b"}))

	assert.Equal(t, "openai", store.GetString("llm.provider"))
	assert.Equal(t, 8, store.GetInt("router.max_steps"))
	assert.True(t, store.GetBool("knowledge_base.watch"))
	assert.InDelta(t, 2.5, store.GetFloat("server.rate_limit"), 1e-9)
	assert.Equal(t, []string{"http://a", "http://b"}, store.GetStringSlice("server.allowed_origins"))
}

func TestConfigStore_WrongTypeReturnsZero(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("server.port", "4000"))

	assert.Equal(t, 0, store.GetInt("server.port"))
	assert.False(t, store.GetBool("server.port"))
	assert.Zero(t, store.GetFloat("server.port"))
	assert.Nil(t, store.GetStringSlice("server.port"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("llm.model", "llama3.2"))
	require.NoError(t, store.Set("server.port", 4000))
	require.NoError(t, store.Set("server.allowed_origins", []string{"http://localhost:3000"}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[llm]")
	assert.Contains(t, string(raw), "[server]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "ollama", reloaded.GetString("llm.provider"))
	assert.Equal(t, "llama3.2", reloaded.GetString("llm.model"))
	assert.Equal(t, 4000, reloaded.GetInt("server.port"))
	assert.Equal(t, []string{"http://localhost:3000"}, reloaded.GetStringSlice("server.allowed_origins"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[knowledge_base]
path = "/srv/kb"
watch = false

[router]
max_steps = 6
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/kb", store.GetString("knowledge_base.path"))
	assert.False(t, store.GetBool("knowledge_base.watch"))
	_, ok := store.Get("knowledge_base.watch")
	assert.True(t, ok)
	assert.Equal(t, 6, store.GetInt("router.max_steps"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("llm.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyAndCommentOnlyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# nothing\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("llm.provider")
	assert.False(t, ok)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[llm\nprovider ="), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store := newStore(t)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
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
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"llm.provider":  "mock",
		"llm.model":     "mock",
		"version":       1,
		"server":        "scalar",
		"server.port":   4000,
		"a.b.c":         true,
		"a.b.d":         false,
		"router.steps":  3,
		"router":        map[string]any{},
		"trace.enabled": true,
	})

	assert.Equal(t, map[string]any{"provider": "mock", "model": "mock"}, nested["llm"])
	assert.Equal(t, 1, nested["version"])
	assert.Equal(t, "scalar", nested["server"])
	assert.Equal(t, map[string]any{"b": map[string]any{"c": true, "d": false}}, nested["a"])
	assert.Equal(t, map[string]any{"enabled": true}, nested["trace"])
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"llm":  map[string]any{"provider": "openai"},
		"port": int64(4000),
	}, "")

	assert.Equal(t, map[string]any{"llm.provider": "openai", "port": int64(4000)}, flat)
}
