package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Audit accepted the project
	ExitAuditFailed = 1 // Audit ran to completion but rejected the project
	ExitError       = 2 // Precondition, configuration, or runtime error
)

// AuditFailureError indicates that the audit ran to completion but the
// project's success rate fell below the accept threshold.
type AuditFailureError struct {
	Message string
}

func (e *AuditFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var auditFailureErr *AuditFailureError
		if errors.As(err, &auditFailureErr) {
			os.Exit(ExitAuditFailed)
		}

		// All other errors are precondition/configuration/runtime errors
		os.Exit(ExitError)
	}
}
