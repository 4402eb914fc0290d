//go:build !linux

package framebuffer

import "github.com/BeatGlow/raster/pixel"

// Device is an open framebuffer device.
type Device struct{}

// Open is not supported on this platform.
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

// Size returns the framebuffer dimensions in pixels.
func (d *Device) Size() (width, height int) { return 0, 0 }

// Blit is not supported on this platform.
func (d *Device) Blit(_ *pixel.Surface) error { return ErrNotSupported }

// Close is not supported on this platform.
func (d *Device) Close() error { return ErrNotSupported }
