// Package memory gives the kernel side read access to the memory of the
// task that issued a trap.
package memory

import (
	"bytes"
	"unsafe"

	"github.com/pkg/errors"
)

// Reader resolves user addresses passed in argument registers.
type Reader interface {
	// ReadCString returns the bytes at addr up to, not including, the first
	// NUL.
	ReadCString(addr uintptr) ([]byte, error)
}

// MaxCString bounds how far ReadCString scans for a terminator.
const MaxCString = 32768

var (
	ErrNullPointer  = errors.New("null pointer")
	ErrUnterminated = errors.New("string not terminated")
)

func readCString(addr uintptr, at func(uintptr) (byte, error)) ([]byte, error) {
	if addr == 0 {
		return nil, ErrNullPointer
	}

	var buf bytes.Buffer

	off := addr

	for i := 0; i < MaxCString; i++ {
		b, err := at(off)
		if err != nil {
			return nil, err
		}

		if b == 0 {
			return buf.Bytes(), nil
		}

		buf.WriteByte(b)
		off += 1
	}

	return nil, errors.Wrapf(ErrUnterminated, "no NUL within %d bytes of %x", MaxCString, addr)
}

// Host reads the memory of the current process directly. It is the reader
// for tasks that run in the same address space as the kernel, where user
// addresses are ordinary Go pointers into the heap.
type Host struct{}

func (Host) ReadCString(addr uintptr) ([]byte, error) {
	return readCString(addr, func(off uintptr) (byte, error) {
		return *(*byte)(unsafe.Pointer(off)), nil
	})
}
