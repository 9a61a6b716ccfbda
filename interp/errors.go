package interp

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is reported for operations the interpreter has no
// handler for.
var ErrUnknownOperation = errors.New("interp: unknown operation")

// OpError records a failed operation. Failed operations are skipped; the
// run continues with the next one.
type OpError struct {
	Index int  // position in the operation list
	Kind  Kind // kind reported by the operation, -1 for nil
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
