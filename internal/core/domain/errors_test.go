package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allErrors() map[string]error {
	return map[string]error{
		"ErrInvalidInput":          ErrInvalidInput,
		"ErrEmptyQuestion":         ErrEmptyQuestion,
		"ErrInvalidLocale":         ErrInvalidLocale,
		"ErrUnknownIntent":         ErrUnknownIntent,
		"ErrCorpusUnavailable":     ErrCorpusUnavailable,
		"ErrProviderNotConfigured": ErrProviderNotConfigured,
		"ErrInvalidSetting":        ErrInvalidSetting,
		"ErrRateLimited":           ErrRateLimited,
	}
}

func TestErrors_Existence(t *testing.T) {
	for name, err := range allErrors() {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	errs := allErrors()
	for n1, err1 := range errs {
		for n2, err2 := range errs {
			if n1 != n2 {
				assert.False(t, errors.Is(err1, err2), "%s should not match %s", n1, n2)
			}
		}
	}
}

// The HTTP API returns this message verbatim.
func TestErrEmptyQuestion_Message(t *testing.T) {
	assert.Equal(t, "question is required", ErrEmptyQuestion.Error())
}

func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %q", ErrUnknownIntent, "apps")

	assert.True(t, errors.Is(wrapped, ErrUnknownIntent))
	assert.Contains(t, wrapped.Error(), "unknown intent")
}
