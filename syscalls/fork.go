package syscalls

import (
	"context"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/kernel"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

func sysCreate(ctx context.Context, l hclog.Logger, task *kernel.Task, args SysArgs) uintptr {
	var (
		entry = args.Args.R1
	)

	pid, err := task.Spawn(entry)
	if err != nil {
		switch errors.Cause(err) {
		case kernel.ErrUnknownEntry, kernel.ErrNoSlot:
			l.Warn("unable to create process", "error", err, "pid", task.Pid)
		default:
			l.Error("error creating process", "error", err, "pid", task.Pid)
		}

		return abi.Failed
	}

	return uintptr(pid)
}

func init() {
	Syscalls[abi.SysCreate] = sysCreate
}
