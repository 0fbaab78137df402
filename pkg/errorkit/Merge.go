package errorkit

import (
	"errors"
	"strings"
)

// Merge combines the non nil error values into a single error.
// It returns nil when there is nothing to merge,
// and the error itself when only one non nil error is present.
func Merge(errs ...error) error {
	var present []error
	for _, err := range errs {
		if err != nil {
			present = append(present, err)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	default:
		return multiError(present)
	}
}

type multiError []error

func (errs multiError) Error() string {
	var msgs = make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) Unwrap() []error { return errs }

func (errs multiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
