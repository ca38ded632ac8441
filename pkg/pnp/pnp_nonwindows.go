// +build !windows

package pnp

import "time"

func newWMIEnumerator(timeout time.Duration) (Enumerator, error) {
	return nil, ErrNotImplementedForOS
}

func newSetupAPIEnumerator(timeout time.Duration) (Enumerator, error) {
	return nil, ErrNotImplementedForOS
}
