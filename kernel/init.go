package kernel

import (
	"context"
)

// Boot starts init as pid 0 and runs tasks until every process has exited
// or ctx is done. A kernel boots once.
func (k *Kernel) Boot(ctx context.Context, init Program) error {
	k.mu.Lock()
	if k.booted {
		k.mu.Unlock()
		return ErrBooted
	}

	k.booted = true
	k.ctx = ctx

	p := k.newProcess(0, 0, 0, init)
	p.state = Running
	p.started = true
	k.current = 0
	k.mu.Unlock()

	k.L.Info("kernel boot", "max-procs", len(k.procs))

	go k.run(p)
	p.resume <- struct{}{}

	select {
	case <-k.halted:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newProcess fills slot pid. k.mu must be held.
func (k *Kernel) newProcess(pid, ppid int, entry uintptr, prog Program) *Process {
	p := &Process{
		Kernel:    k,
		Pid:       pid,
		Ppid:      ppid,
		Entry:     entry,
		StackBase: StackBase(pid),
		state:     Initialize,
		prog:      prog,
		resume:    make(chan struct{}, 1),
	}

	k.procs[pid] = p

	return p
}

func (k *Kernel) run(p *Process) {
	<-p.resume

	k.L.Trace("process-start", "pid", p.Pid, "entry", p.Entry)

	p.prog(&Task{Process: p})

	// Falling off the end of a program is an exit with code 0.
	k.terminate(p, 0)
}
