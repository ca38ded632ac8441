// +build windows

package wmiutil

import (
	"context"
	"time"

	"github.com/StackExchange/wmi"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/pkg/errors"
)

// QueryWithContext runs a WQL query and decodes the result rows into dst.
// wmi.Query has no cancellation support of its own, so the query runs on a
// separate goroutine and the result is discarded when ctx expires first.
func QueryWithContext(ctx context.Context, query string, dst interface{}, connectServerArgs ...interface{}) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- wmi.Query(query, dst, connectServerArgs...)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// QueryWithTimeout is QueryWithContext with a fresh deadline.
func QueryWithTimeout(timeout time.Duration, query string, dst interface{}, connectServerArgs ...interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return QueryWithContext(ctx, query, dst, connectServerArgs...)
}

// CheckConnection verifies the WMI service is reachable by opening an OLE
// session to the root\cimv2 namespace.
func CheckConnection() error {
	if err := ole.CoInitializeEx(0, 0); err != nil {
		return errors.Wrap(err, "wmiutil: OLE CoInitializeEx failed")
	}
	defer ole.CoUninitialize()

	locator, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return errors.Wrap(err, "wmiutil: failed to create SWbemLocator")
	}
	defer locator.Release()

	dispatch, err := locator.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return errors.Wrap(err, "wmiutil: failed to create QueryInterface")
	}
	defer dispatch.Release()

	services, err := oleutil.CallMethod(dispatch, "ConnectServer")
	if err != nil {
		return errors.Wrap(err, "wmiutil: failed to connect to the local WMI service")
	}
	services.ToIDispatch().Release()

	return nil
}
