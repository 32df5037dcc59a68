// Package env overlays environment variables on a ConfigStore. Overlaid
// values are read-only: Set and Save reach the wrapped store, so secrets
// from the environment never end up in the settings file.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/core/services"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// Ensure Overlay implements the interface.
var _ driven.ConfigStore = (*Overlay)(nil)

// Environment variable names.
//
//nolint:gosec // G101: variable names, not credentials.
const (
	VarKnowledgeBasePath = "KNOWLEDGE_BASE_PATH"
	VarLLMProvider       = "LLM_PROVIDER"
	VarOpenAIKey         = "OPENAI_API_KEY"
	VarOpenAIModel       = "OPENAI_MODEL"
	VarGenAIHubKey       = "GENAIHUB_API_KEY"
	VarGenAIHubURL       = "GENAIHUB_API_URL"
	VarGenAIHubModel     = "GENAIHUB_MODEL"
	VarAnthropicKey      = "ANTHROPIC_API_KEY"
	VarOllamaBaseURL     = "OLLAMA_BASE_URL"
	VarMaxSteps          = "PLAYBOOK_MAX_STEPS"
	VarWebOrigin         = "WEB_ORIGIN"
	VarPort              = "PORT"
)

// LookupFunc reads one variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Overlay wraps a ConfigStore with values taken from the environment.
type Overlay struct {
	inner  driven.ConfigStore
	lookup LookupFunc
}

// New wraps inner with the process environment.
func New(inner driven.ConfigStore) *Overlay {
	return NewWithLookup(inner, os.LookupEnv)
}

// NewWithLookup wraps inner with a custom variable source.
func NewWithLookup(inner driven.ConfigStore, lookup LookupFunc) *Overlay {
	return &Overlay{inner: inner, lookup: lookup}
}

// LoadDotEnv loads variables from the given files (".env" when none are
// named) without overriding variables already set. Missing files are fine.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			logger.Warn("env: failed to load %s: %v", f, err)
			continue
		}
		logger.Debug("env: loaded %s", f)
	}
}

// value returns a trimmed, non-empty variable.
func (o *Overlay) value(name string) (string, bool) {
	v, ok := o.lookup(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// provider resolves the active provider. Without an explicit choice an
// OpenAI key selects OpenAI.
func (o *Overlay) provider() (domain.AIProvider, bool) {
	if v, ok := o.value(VarLLMProvider); ok {
		return domain.AIProvider(strings.ToLower(v)), true
	}
	if stored := o.inner.GetString(services.KeyLLMProvider); stored != "" {
		return domain.AIProvider(strings.ToLower(stored)), false
	}
	if _, ok := o.value(VarOpenAIKey); ok {
		return domain.AIProviderOpenAI, true
	}
	return "", false
}

// overlay returns the environment value for key, typed the way the file
// store would hold it.
func (o *Overlay) overlay(key string) (any, bool) {
	switch key {
	case services.KeyKnowledgeBasePath:
		return o.str(VarKnowledgeBasePath)
	case services.KeyLLMProvider:
		p, fromEnv := o.provider()
		if !fromEnv {
			return nil, false
		}
		return string(p), true
	case services.KeyLLMAPIKey:
		return o.perProvider(map[domain.AIProvider]string{
			domain.AIProviderOpenAI:    VarOpenAIKey,
			domain.AIProviderGenAIHub:  VarGenAIHubKey,
			domain.AIProviderAnthropic: VarAnthropicKey,
		})
	case services.KeyLLMModel:
		return o.perProvider(map[domain.AIProvider]string{
			domain.AIProviderOpenAI:   VarOpenAIModel,
			domain.AIProviderGenAIHub: VarGenAIHubModel,
		})
	case services.KeyLLMBaseURL:
		return o.perProvider(map[domain.AIProvider]string{
			domain.AIProviderGenAIHub: VarGenAIHubURL,
			domain.AIProviderOllama:   VarOllamaBaseURL,
		})
	case services.KeyMaxSteps:
		return o.integer(VarMaxSteps)
	case services.KeyServerPort:
		return o.integer(VarPort)
	case services.KeyWebOrigin:
		return o.str(VarWebOrigin)
	}
	return nil, false
}

func (o *Overlay) str(name string) (any, bool) {
	v, ok := o.value(name)
	if !ok {
		return nil, false
	}
	return v, true
}

func (o *Overlay) integer(name string) (any, bool) {
	v, ok := o.value(name)
	if !ok {
		return nil, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.Warn("env: ignoring %s=%q: not a positive integer", name, v)
		return nil, false
	}
	return n, true
}

func (o *Overlay) perProvider(vars map[domain.AIProvider]string) (any, bool) {
	p, _ := o.provider()
	name, ok := vars[p]
	if !ok {
		return nil, false
	}
	return o.str(name)
}

// Get returns the environment value when set, else the stored value.
func (o *Overlay) Get(key string) (any, bool) {
	if v, ok := o.overlay(key); ok {
		return v, true
	}
	return o.inner.Get(key)
}

// GetString retrieves a string configuration value.
func (o *Overlay) GetString(key string) string {
	if v, ok := o.overlay(key); ok {
		if s, isStr := v.(string); isStr {
			return s
		}
	}
	return o.inner.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (o *Overlay) GetInt(key string) int {
	if v, ok := o.overlay(key); ok {
		if n, isInt := v.(int); isInt {
			return n
		}
	}
	return o.inner.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
func (o *Overlay) GetBool(key string) bool {
	return o.inner.GetBool(key)
}

// GetStringSlice retrieves a string slice configuration value.
func (o *Overlay) GetStringSlice(key string) []string {
	return o.inner.GetStringSlice(key)
}

// Set writes through to the wrapped store. Values that only mirror the
// environment are not written, so saving settings never persists them.
func (o *Overlay) Set(key string, value any) error {
	if v, ok := o.overlay(key); ok && fmt.Sprint(v) == fmt.Sprint(value) {
		return nil
	}
	if key == services.KeyAllowedOrigins {
		value = o.withoutWebOrigin(value)
	}
	return o.inner.Set(key, value)
}

func (o *Overlay) withoutWebOrigin(value any) any {
	origins, ok := value.([]string)
	web, set := o.value(VarWebOrigin)
	if !ok || !set {
		return value
	}
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin != web {
			out = append(out, origin)
		}
	}
	return out
}

// Save persists the wrapped store.
func (o *Overlay) Save() error {
	return o.inner.Save()
}

// Load reloads the wrapped store.
func (o *Overlay) Load() error {
	return o.inner.Load()
}

// Path returns the wrapped store's file path.
func (o *Overlay) Path() string {
	return o.inner.Path()
}

// Applied lists the variables currently overriding settings.
func (o *Overlay) Applied() []string {
	var names []string
	for _, name := range []string{
		VarKnowledgeBasePath, VarLLMProvider, VarOpenAIKey, VarOpenAIModel,
		VarGenAIHubKey, VarGenAIHubURL, VarGenAIHubModel, VarAnthropicKey,
		VarOllamaBaseURL, VarMaxSteps, VarWebOrigin, VarPort,
	} {
		if _, ok := o.value(name); ok {
			names = append(names, name)
		}
	}
	return names
}
