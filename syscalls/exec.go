package syscalls

import (
	"context"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/kernel"
	hclog "github.com/hashicorp/go-hclog"
)

func sysExit(ctx context.Context, l hclog.Logger, task *kernel.Task, args SysArgs) uintptr {
	task.Exit(int32(args.Args.R1))
	return 0
}

func init() {
	Syscalls[abi.SysExit] = sysExit
}
