package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrArtifactNotFound    = errors.New("apk not found or not built yet")
	ErrDescriptionRequired = errors.New("missing description")
	ErrDescriptionTooShort = errors.New("description too short")
)

// ScaffoldError reports a filesystem failure while materializing the
// project tree.
type ScaffoldError struct {
	Path string
	Err  error
}

func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("scaffold %s: %v", e.Path, e.Err)
}

func (e *ScaffoldError) Unwrap() error { return e.Err }

// ToolchainError reports a failed gradle invocation: a non-zero exit code or
// a successful exit with no artifact produced. Tail carries the last lines
// of combined build output for diagnostics.
type ToolchainError struct {
	Reason string
	Tail   []string
}

func (e *ToolchainError) Error() string {
	if len(e.Tail) == 0 {
		return e.Reason
	}
	return e.Reason + "\n" + strings.Join(e.Tail, "\n")
}
