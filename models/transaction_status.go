package models

import (
	"fmt"
	"strings"
)

// TransactionStatus is one of the single-letter status codes the reporting
// API attaches to a transaction.
type TransactionStatus string

const (
	StatusDenied            TransactionStatus = "D"
	StatusPartiallyRefunded TransactionStatus = "F"
	StatusPending           TransactionStatus = "P"
	StatusSuccessful        TransactionStatus = "S"
	StatusReversed          TransactionStatus = "V"
)

var statusLabels = map[TransactionStatus]string{
	StatusDenied:            "Denied",
	StatusPartiallyRefunded: "Partially Refunded",
	StatusPending:           "Pending",
	StatusSuccessful:        "Successful",
	StatusReversed:          "Reversed",
}

// Word aliases accepted alongside the letter codes.
var statusAliases = map[string]TransactionStatus{
	"DENIED":     StatusDenied,
	"REFUNDED":   StatusPartiallyRefunded,
	"PENDING":    StatusPending,
	"SUCCESSFUL": StatusSuccessful,
	"SUCCESS":    StatusSuccessful,
	"REVERSED":   StatusReversed,
}

// ParseTransactionStatus resolves a status code or word alias,
// case-insensitively.
func ParseTransactionStatus(value string) (TransactionStatus, error) {
	upper := strings.ToUpper(value)
	if _, ok := statusLabels[TransactionStatus(upper)]; ok {
		return TransactionStatus(upper), nil
	}
	if status, ok := statusAliases[upper]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown transaction status %q", value)
}

// Label returns the human-readable form of the status.
func (s TransactionStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
