// +build !windows

package main

import (
	"errors"
)

func sendErrorNotification(title, message string) error {
	return errors.New("Implemented only for Windows")
}

func sendSuccessNotification(title, message string) error {
	return errors.New("Implemented only for Windows")
}
