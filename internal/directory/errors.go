package directory

import "errors"

var (
	// ErrNotFound indicates the device answered on no channel.
	ErrNotFound = errors.New("directory: device not found on any channel")

	// ErrNoUsableChannel indicates every configured channel failed
	// before a scan could complete.
	ErrNoUsableChannel = errors.New("directory: no usable channel")
)
