package cliutil

import (
	"errors"
	"io/fs"
	"net/http"
	"syscall"

	"paypalquery/models"
	"paypalquery/service"
)

// Process exit codes, following the BSD sysexits convention so callers can
// distinguish failure categories.
const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitUnavailable = 69
	ExitSoftware    = 70
	ExitOSErr       = 71
	ExitIOErr       = 74
	ExitNoPerm      = 77
)

// ExitCode maps an error to the process exit code for its category: auth
// failures, other client errors, server unavailability, file errors and
// internal errors all exit differently.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return ExitNoPerm
		case apiErr.StatusCode < 500:
			return ExitSoftware
		default:
			return ExitUnavailable
		}
	}

	var unknownField *service.UnknownFieldNameError
	if errors.As(err, &unknownField) {
		return ExitUsage
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOErr
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return ExitOSErr
	}

	return ExitSoftware
}
