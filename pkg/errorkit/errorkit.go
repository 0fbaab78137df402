// Package errorkit holds the error helpers shared by the querykit packages.
package errorkit

// Finish is meant to be used from a deferred context,
// it merges the result of blk into the named return error.
//
//	defer errorkit.Finish(&returnError, rows.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// ErrFunc reports the error state of something that was already consumed, like a finished traversal.
type ErrFunc = func() error

// MergeErrFunc combines multiple ErrFunc into one, which reports the merged errors.
func MergeErrFunc(errFuncs ...ErrFunc) ErrFunc {
	return func() error {
		var errs []error
		for _, fn := range errFuncs {
			if fn == nil {
				continue
			}
			errs = append(errs, fn())
		}
		return Merge(errs...)
	}
}
