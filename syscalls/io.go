package syscalls

import (
	"context"
	"strconv"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/kernel"
	hclog "github.com/hashicorp/go-hclog"
)

func sysPrint(ctx context.Context, l hclog.Logger, task *kernel.Task, args SysArgs) uintptr {
	var (
		ptr = args.Args.R1
	)

	str, err := task.Kernel.Mem.ReadCString(ptr)
	if err != nil {
		l.Error("error reading string from userspace", "error", err, "pid", task.Pid, "addr", ptr)
		return abi.Failed
	}

	n, err := task.Kernel.Console.Write(str)
	if err != nil {
		l.Error("error writing to console", "error", err)
		return abi.Failed
	}

	return uintptr(n)
}

func sysPrintU32(ctx context.Context, l hclog.Logger, task *kernel.Task, args SysArgs) uintptr {
	var (
		num = uint32(args.Args.R1)
	)

	buf := strconv.AppendUint(nil, uint64(num), 10)

	n, err := task.Kernel.Console.Write(buf)
	if err != nil {
		l.Error("error writing to console", "error", err)
		return abi.Failed
	}

	return uintptr(n)
}

func init() {
	Syscalls[abi.SysPrint] = sysPrint
	Syscalls[abi.SysPrintU32] = sysPrintU32
}
