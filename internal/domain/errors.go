package domain

import (
	"context"
	"errors"
	"io/fs"
)

// Describe turns a collection error into the short reason shown in the report.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, ErrUnavailable):
		return "not available on this system"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "collection interrupted"
	default:
		return err.Error()
	}
}
