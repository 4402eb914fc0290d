//go:build linux

// Package ioctl wraps the ioctl system call.
package ioctl

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	var (
		mode = c >> 30 & 0x03
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&1 > 0 {
		str += " write"
	}
	if mode&2 > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}

// Do executes an ioctl call with a pointer argument.
func Do(fd uintptr, command Command, ptr unsafe.Pointer) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), uintptr(ptr))
	if errno != 0 {
		return fmt.Errorf("%s failed: %v", command, errno)
	}
	return nil
}

// Call executes a plain ioctl call.
func Call(fd, command, arg uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, command, arg)
	if errno != 0 {
		return fmt.Errorf("%s failed: %v", Command(command), errno)
	}
	return nil
}
