package syscalls

import (
	"context"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/kernel"
	hclog "github.com/hashicorp/go-hclog"
)

func sysReserved(ctx context.Context, l hclog.Logger, task *kernel.Task, args SysArgs) uintptr {
	return 0
}

func sysYield(ctx context.Context, l hclog.Logger, task *kernel.Task, args SysArgs) uintptr {
	task.Yield()
	return 0
}

func init() {
	Syscalls[abi.SysReserved] = sysReserved
	Syscalls[abi.SysYield] = sysYield
}
