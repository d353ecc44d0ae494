package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors mark the failure class of an operation. Commands wrap
// their failures with one of these so the CLI can map each class to a
// distinct exit code.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrFileState    = errors.New("file state error")
	ErrExternalTool = errors.New("external tool error")
	ErrProbe        = errors.New("probe error")
)

// Exit codes per failure class.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitFileState    = 3
	ExitExternalTool = 4
	ExitProbe        = 5
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later exit-code classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Usagef reports a user-input error with a formatted message.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps an error to the process exit code the CLI should return.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrFileState):
		return ExitFileState
	case errors.Is(err, ErrExternalTool):
		return ExitExternalTool
	case errors.Is(err, ErrProbe):
		return ExitProbe
	default:
		return ExitFailure
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "command failure"
	}
	return strings.Join(parts, ": ")
}
