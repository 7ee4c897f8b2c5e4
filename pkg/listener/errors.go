package listener

import (
	"errors"
	"fmt"
)

// ErrNotLambda indicates the Lambda execution environment is absent
var ErrNotLambda = errors.New("not running in a Lambda execution environment")

// FatalError represents a failure to register with the serverless runtime.
// It is the only error class that aborts startup; everything that can go
// wrong inside a single invocation is converted into an HTTP response.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("listener registration failed: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal returns true if the error is a FatalError
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
