package cli

import "fmt"

// Process exit codes: 0 success, 1 a roll failed to parse or evaluate,
// 2 a usage or configuration problem.
const (
	exitSuccess = 0
	exitEval    = 1
	exitUsage   = 2
)

// ExitError carries the process exit code a failed command asks for. main
// unwraps it from the cobra error chain and passes Code to os.Exit.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}
