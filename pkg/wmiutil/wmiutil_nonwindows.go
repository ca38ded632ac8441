// +build !windows

package wmiutil

import (
	"context"
	"errors"
	"runtime"
	"time"
)

// ErrNotImplementedForOS exists here just for cross-platform building
var ErrNotImplementedForOS = errors.New("WMI not implemented for " + runtime.GOOS)

func QueryWithContext(ctx context.Context, query string, dst interface{}, connectServerArgs ...interface{}) error {
	return ErrNotImplementedForOS
}

func QueryWithTimeout(timeout time.Duration, query string, dst interface{}, connectServerArgs ...interface{}) error {
	return ErrNotImplementedForOS
}

func CheckConnection() error {
	return ErrNotImplementedForOS
}
