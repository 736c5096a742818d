package syscalls

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/kernel"
	"github.com/evanphx/chocos/log"
	"github.com/evanphx/chocos/trap"
	hclog "github.com/hashicorp/go-hclog"
)

// Poison is what R1-R3 hold after a trap when the Invoker clobbers them.
const Poison = uintptr(0xdeadbeef)

// Invoker is the kernel's trap handler.
type Invoker struct {
	Kernel *kernel.Kernel

	// Clobber overwrites R1-R3 with Poison before returning to the task.
	Clobber bool

	L hclog.Logger
}

func (i *Invoker) logger() hclog.Logger {
	if i.L != nil {
		return i.L
	}

	return log.L
}

func (i *Invoker) HandleTrap(ctx context.Context, f *trap.Frame) {
	args := SysArgs{
		Index: f.R0,
		Args:  SyscallRequest{R1: f.R1, R2: f.R2, R3: f.R3},
	}

	l := i.logger()

	if l.IsTrace() {
		l.Trace("trap", "frame", spew.Sdump(*f))
	}

	f.R0 = i.InvokeSyscall(ctx, args)

	if i.Clobber {
		f.R1, f.R2, f.R3 = Poison, Poison, Poison
	}
}

func (i *Invoker) InvokeSyscall(ctx context.Context, args SysArgs) uintptr {
	l := i.logger()

	p, ok := kernel.GetTask(ctx)
	if !ok {
		l.Error("trap outside of a task", "index", args.Index)
		return abi.Failed
	}

	if args.Index < uintptr(len(Syscalls)) {
		if f := Syscalls[args.Index]; f != nil {
			l.Trace("syscall", "pid", p.Pid, "index", args.Index, "name", abi.Name(args.Index),
				"a", args.Args.R1, "b", args.Args.R2, "c", args.Args.R3)

			return f(ctx, l, p, args)
		}
	}

	l.Error("unknown syscall", "pid", p.Pid, "index", args.Index)
	return abi.Failed
}
