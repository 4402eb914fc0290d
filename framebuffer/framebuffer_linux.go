package framebuffer

import (
	"encoding/binary"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/raster/internal/ioctl"
	"github.com/BeatGlow/raster/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type pixelFormat int

const (
	formatUnknown pixelFormat = iota
	formatRGB565
	formatXRGB8888
)

// Device is an open framebuffer device.
type Device struct {
	f          *os.File
	fd         uintptr
	pix        []byte
	stride     int
	width      int
	height     int
	format     pixelFormat
	info       fixedScreenInfo
	screenInfo varScreenInfo
}

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	d := &Device{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(d.fd, fbioGetFScreenInfo, unsafe.Pointer(&d.info)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(d.fd, fbioGetVScreenInfo, unsafe.Pointer(&d.screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if d.format = parsePixelFormat(&d.screenInfo); d.format == formatUnknown {
		_ = f.Close()
		return nil, ErrPixelFormat
	}

	// Map the pixel buffer.
	if d.pix, err = syscall.Mmap(int(d.fd), 0, int(d.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	d.width = int(d.screenInfo.Xres)
	d.height = int(d.screenInfo.Yres)
	d.stride = int(d.info.LineLength)
	return d, nil
}

// Size returns the framebuffer dimensions in pixels.
func (d *Device) Size() (width, height int) {
	return d.width, d.height
}

// Blit converts and copies the surface onto the framebuffer, top-left
// aligned. Pixels beyond the framebuffer extent are dropped.
func (d *Device) Blit(s *pixel.Surface) error {
	w, h := s.Width(), s.Height()
	if w > d.width {
		w = d.width
	}
	if h > d.height {
		h = d.height
	}
	depth := uint32(s.Depth)
	if depth == 0 {
		depth = 1
	}

	for y := 0; y < h; y++ {
		row := s.Pix[y*s.Width():]
		out := d.pix[y*d.stride:]
		for x := 0; x < w; x++ {
			c := row[x]
			r := uint32(c.R) * 255 / depth
			g := uint32(c.G) * 255 / depth
			b := uint32(c.B) * 255 / depth
			switch d.format {
			case formatRGB565:
				v := uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b>>3)
				binary.LittleEndian.PutUint16(out[x*2:], v)
			case formatXRGB8888:
				out[x*4+0] = byte(b)
				out[x*4+1] = byte(g)
				out[x*4+2] = byte(r)
				out[x*4+3] = 0xff
			}
		}
	}
	return nil
}

// Close unmaps and closes the framebuffer device.
func (d *Device) Close() error {
	if err := syscall.Munmap(d.pix); err != nil {
		return err
	}
	return d.f.Close()
}

func parsePixelFormat(info *varScreenInfo) pixelFormat {
	switch info.BitsPerPixel {
	case 16:
		if info.Red.Offset == 11 && info.Red.Length == 5 &&
			info.Green.Offset == 5 && info.Green.Length == 6 &&
			info.Blue.Offset == 0 && info.Blue.Length == 5 {
			return formatRGB565
		}
	case 32:
		if info.Red.Offset == 16 && info.Red.Length == 8 &&
			info.Green.Offset == 8 && info.Green.Length == 8 &&
			info.Blue.Offset == 0 && info.Blue.Length == 8 {
			return formatXRGB8888
		}
	}
	return formatUnknown
}

type fixedScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a
// frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
