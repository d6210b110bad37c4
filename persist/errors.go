package persist

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is returned by every failing operation in this package: reading, writing, encoding or
// decoding. Path is empty for operations that do not involve a file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (err *Error) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("persist: %s failed: %v", err.Op, err.Err)
	}

	return fmt.Sprintf("persist: %s %s failed: %v", err.Op, err.Path, err.Err)
}

// Cause allows errors.Cause to see through the Error to its cause
func (err *Error) Cause() error {
	return err.Err
}

func (err *Error) Unwrap() error {
	return err.Err
}

// IsFailure returns whether or not the error, or anything it wraps, is an Error from this package
func IsFailure(err error) bool {
	for err != nil {
		if _, ok := err.(*Error); ok {
			return true
		}

		c, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = c.Cause()
	}

	return false
}

// ErrBadVersion is the cause of an Error when decoding data written by an incompatible version
var ErrBadVersion = errors.New("unsupported format version")
