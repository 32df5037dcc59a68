package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports

	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingAskService)
	assert.NoError(t, (&Ports{Ask: &fakeAsk{}}).Validate())
}
