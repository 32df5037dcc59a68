package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// recordingSettings captures what configureLLMProvider writes.
type recordingSettings struct {
	fakeSettingsService
	provider    domain.AIProvider
	model       string
	apiKey      string
	baseURL     string
	pingErr     error
	providerSet bool
}

func (r *recordingSettings) SetLLMProvider(p domain.AIProvider, model, apiKey, baseURL string) error {
	r.provider, r.model, r.apiKey, r.baseURL = p, model, apiKey, baseURL
	r.providerSet = true
	return nil
}

func (r *recordingSettings) ValidateLLMConfig() error {
	return r.pingErr
}

func runConfigure(t *testing.T, svc *recordingSettings, input string) (string, error) {
	t.Helper()
	prev := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = prev })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := configureLLMProvider(cmd, svc, bufio.NewReader(strings.NewReader(input)))
	return out.String(), err
}

func TestConfigureLLMProvider_Mock(t *testing.T) {
	svc := &recordingSettings{}

	out, err := runConfigure(t, svc, "5\n\n")

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderMock, svc.provider)
	assert.Equal(t, "mock", svc.model)
	assert.Empty(t, svc.apiKey)
	assert.Contains(t, out, "Validating configuration... OK")
	assert.Contains(t, out, "Mock (deterministic, offline)")
}

func TestConfigureLLMProvider_OllamaDefaults(t *testing.T) {
	svc := &recordingSettings{}

	_, err := runConfigure(t, svc, "\n\n\n")

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, svc.provider)
	assert.Equal(t, "llama3.2", svc.model)
	assert.Empty(t, svc.baseURL)
}

func TestConfigureLLMProvider_OpenAI(t *testing.T) {
	svc := &recordingSettings{}

	_, err := runConfigure(t, svc, "2\ngpt-4o\nsk-test\n")

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, svc.provider)
	assert.Equal(t, "gpt-4o", svc.model)
	assert.Equal(t, "sk-test", svc.apiKey)
}

func TestConfigureLLMProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pingErr error
		want    string
		set     bool
	}{
		{name: "openai without key", input: "2\n\n\n", want: "API key is required"},
		{name: "genaihub without base url", input: "4\n\n\n", want: "base URL is required"},
		{name: "ping fails", input: "5\n\n", pingErr: errors.New("unreachable"), want: "validation failed", set: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &recordingSettings{pingErr: tt.pingErr}

			_, err := runConfigure(t, svc, tt.input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.set, svc.providerSet)
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := map[string]string{
		"":                    "****",
		"abc123":              "****",
		"12345678":            "****",
		"sk-1234567890abcdef": "sk-1...cdef",
	}
	for in, want := range tests {
		assert.Equal(t, want, maskAPIKey(in), in)
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"3", 3},
		{"5", 5},
		{"0", 1},
		{"6", 1},
		{"two", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseChoice(tt.input, 5, 1), tt.input)
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
