// Package sys is the service catalogue user programs call into. Each
// function issues one trap with a fixed service id; unused argument
// registers are zero and the kernel's result is discarded.
package sys

import (
	"runtime"
	"strings"
	"unsafe"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/trap"
	"github.com/pkg/errors"
)

// Client issues services through an arbitrary gate.
type Client struct {
	Gate trap.Gate
}

func New(g trap.Gate) *Client {
	return &Client{Gate: g}
}

// Print writes the NUL-terminated string at str to the console. str must
// point into memory that stays put while the kernel reads it, such as a heap
// allocation from BytePtrFromString.
func (c *Client) Print(str *byte) {
	trap.Invoke(c.Gate, abi.SysPrint, uintptr(unsafe.Pointer(str)), 0, 0)

	// Only the register holds the address while the kernel reads it.
	runtime.KeepAlive(str)
}

// PrintString prints s up to its first NUL.
func (c *Client) PrintString(s string) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	b := make([]byte, len(s)+1)
	copy(b, s)

	c.Print(&b[0])
}

// PrintU32 writes n to the console in decimal.
func (c *Client) PrintU32(n uint32) {
	trap.Invoke(c.Gate, abi.SysPrintU32, uintptr(n), 0, 0)
}

// Yield gives the CPU to the scheduler and returns when this task runs again.
func (c *Client) Yield() {
	trap.Invoke(c.Gate, abi.SysYield, 0, 0, 0)
}

// Create asks the kernel to start a new task at entry.
func (c *Client) Create(entry uintptr) {
	trap.Invoke(c.Gate, abi.SysCreate, entry, 0, 0)
}

// Exit terminates the calling task with code. It does not return, even if
// the kernel hands control back.
func (c *Client) Exit(code int32) {
	trap.Invoke(c.Gate, abi.SysExit, uintptr(code), 0, 0)

	for {
	}
}

var std = &Client{Gate: trap.SVC}

func Print(str *byte)      { std.Print(str) }
func PrintString(s string) { std.PrintString(s) }
func PrintU32(n uint32)    { std.PrintU32(n) }
func Yield()               { std.Yield() }
func Create(entry uintptr) { std.Create(entry) }
func Exit(code int32)      { std.Exit(code) }

var ErrNUL = errors.New("string contains NUL")

// BytePtrFromString returns a pointer to a NUL-terminated heap copy of s.
func BytePtrFromString(s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, errors.Wrapf(ErrNUL, "%q", s)
	}

	b := make([]byte, len(s)+1)
	copy(b, s)

	return &b[0], nil
}
