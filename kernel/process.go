package kernel

import (
	"context"
	"runtime"

	"github.com/evanphx/chocos/abi"
	"github.com/evanphx/chocos/trap"
)

type prockey struct{}

func GetTask(ctx context.Context) (*Task, bool) {
	if v := ctx.Value(prockey{}); v != nil {
		return v.(*Task), true
	}

	return nil, false
}

func SetTask(ctx context.Context, t *Task) context.Context {
	return context.WithValue(ctx, prockey{}, t)
}

// Task is a process as seen from its own thread of execution. It is the
// trap gate the process's program issues services through.
type Task struct {
	*Process
}

func (t *Task) Trap(f *trap.Frame) {
	h := t.Kernel.Invoker
	if h == nil {
		t.Kernel.L.Error("trap with no handler installed", "pid", t.Pid, "index", f.R0)
		f.R0 = abi.Failed
		return
	}

	h.HandleTrap(SetTask(t.Kernel.ctx, t), f)
}

// Yield hands the CPU to the next runnable process and returns once this
// one is scheduled again.
func (t *Task) Yield() {
	t.Kernel.yield(t.Process)
}

// Spawn creates a process running the program registered at entry. The
// child runs before Spawn returns its pid.
func (t *Task) Spawn(entry uintptr) (int, error) {
	return t.Kernel.spawn(t.Process, entry)
}

// Exit terminates the process. It never returns.
func (t *Task) Exit(code int32) {
	t.Kernel.terminate(t.Process, code)

	// A terminated process is never scheduled again. Once the kernel is
	// gone there is nothing left to return to.
	<-t.Kernel.halted
	runtime.Goexit()
}

type ProcessState int

const (
	Initialize ProcessState = iota
	Running
	Ready
	Terminated
)

func (s ProcessState) String() string {
	switch s {
	case Initialize:
		return "initialize"
	case Running:
		return "running"
	case Ready:
		return "ready"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Each process owns a fixed stack slot below the kernel's.
const (
	StackTop  = 0x2000_E000
	StackSize = 0xC00
)

func StackBase(pid int) uintptr {
	return StackTop - uintptr(pid)*StackSize
}

type ExitStatus struct {
	Pid   int
	Ppid  int
	Entry uintptr
	Code  int32
}

type ProcessInfo struct {
	Pid       int
	Ppid      int
	Entry     uintptr
	StackBase uintptr
	State     ProcessState
}

type Process struct {
	Kernel    *Kernel
	Pid       int
	Ppid      int
	Entry     uintptr
	StackBase uintptr

	// Protected by Kernel.mu.
	state   ProcessState
	started bool

	prog   Program
	resume chan struct{}
}

func (p *Process) info() ProcessInfo {
	return ProcessInfo{
		Pid:       p.Pid,
		Ppid:      p.Ppid,
		Entry:     p.Entry,
		StackBase: p.StackBase,
		State:     p.state,
	}
}
