package checker

import "fmt"

// InternalError reports a broken analyzer invariant.
// It is never counted as a user diagnostic.
type InternalError struct {
	Line int
	Msg  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("FATAL:%d: %s", e.Line, e.Msg)
}

// fatalf aborts the walk; Check converts the panic into a returned error
func (c *Checker) fatalf(line int, format string, args ...interface{}) {
	panic(&InternalError{Line: line, Msg: fmt.Sprintf(format, args...)})
}
