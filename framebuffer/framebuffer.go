// Package framebuffer blits a pixel surface onto the operating system's
// native framebuffer.
//
// This requires framebuffer device support in the operating system. The
// framebuffer can be opened with the [Open] call; on systems without
// framebuffer support Open returns [ErrNotSupported].
package framebuffer

import "errors"

// Errors returned by the framebuffer device.
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrPixelFormat  = errors.New("framebuffer: unsupported pixel format")
)
