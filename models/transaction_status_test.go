package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitParseTransactionStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected TransactionStatus
	}{
		{"D", StatusDenied},
		{"F", StatusPartiallyRefunded},
		{"P", StatusPending},
		{"S", StatusSuccessful},
		{"V", StatusReversed},
		{"s", StatusSuccessful},
		{"denied", StatusDenied},
		{"REFUNDED", StatusPartiallyRefunded},
		{"pending", StatusPending},
		{"successful", StatusSuccessful},
		{"success", StatusSuccessful},
		{"Reversed", StatusReversed},
	}
	for _, c := range cases {
		status, err := ParseTransactionStatus(c.input)
		assert.NoError(t, err, c.input)
		assert.Equal(t, c.expected, status, c.input)
	}

	_, err := ParseTransactionStatus("X")
	assert.EqualError(t, err, `unknown transaction status "X"`)
}

func TestUnitTransactionStatusLabel(t *testing.T) {
	assert.Equal(t, "Denied", StatusDenied.Label())
	assert.Equal(t, "Partially Refunded", StatusPartiallyRefunded.Label())
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "Successful", StatusSuccessful.Label())
	assert.Equal(t, "Reversed", StatusReversed.Label())
}
