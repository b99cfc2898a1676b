package cli

import "fmt"

// ExitError carries a process exit code for failures already reported to the user
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit codes
const (
	ExitLoadFailed = 1
	ExitNotFound   = 2
)

type notFoundError struct {
	id string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("entry not found: %s", e.id)
}
