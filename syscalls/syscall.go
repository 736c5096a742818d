package syscalls

import (
	"context"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/kernel"
	hclog "github.com/hashicorp/go-hclog"
)

// SysArgs is a trap decoded from the register frame: R0 selects the
// service, R1-R3 are its arguments.
type SysArgs struct {
	Index uintptr
	Args  SyscallRequest
}

type SyscallRequest struct {
	R1, R2, R3 uintptr
}

var Syscalls [abi.NumSyscalls]func(context.Context, hclog.Logger, *kernel.Task, SysArgs) uintptr
