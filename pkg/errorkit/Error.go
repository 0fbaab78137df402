package errorkit

import (
	"errors"
	"fmt"
)

// Error is a string based error type, which makes it possible to declare sentinel errors as constants.
//
//	const ErrSomething errorkit.Error = "something went wrong"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Wrap bundles another error value with this Error.
// Both errors.Is(result, err) and errors.Is(result, oth) hold for the returned value.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F formats a detail message and wraps it with the Error.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	Owner   Error
	Wrapped error
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) Unwrap() []error { return []error{w.Owner, w.Wrapped} }

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
