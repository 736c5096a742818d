package kernel

import (
	"github.com/pkg/errors"
)

// nextRunnable picks the process to switch to from cur: a pending new
// process first, then the next ready one after cur in pid order. Returns
// nil if no other process can run. k.mu must be held.
func (k *Kernel) nextRunnable(cur *Process) *Process {
	if k.pending != 0 {
		pid := k.pending
		k.pending = 0

		if p := k.procs[pid]; p != nil && p != cur {
			return p
		}
	}

	n := len(k.procs)

	for i := 1; i <= n; i++ {
		p := k.procs[(cur.Pid+i)%n]
		if p == nil || p == cur {
			continue
		}

		if p.state == Ready || p.state == Initialize {
			return p
		}
	}

	return nil
}

// schedule passes the CPU from cur to the next runnable process and returns
// it. When nothing else can run, cur keeps the CPU, or the kernel halts if
// cur has terminated (and nil is returned).
func (k *Kernel) schedule(cur *Process) *Process {
	k.mu.Lock()

	next := k.nextRunnable(cur)
	if next == nil {
		terminated := cur.state == Terminated
		k.mu.Unlock()

		if terminated {
			k.halt()
			return nil
		}

		return cur
	}

	if cur.state == Running {
		cur.state = Ready
	}

	start := !next.started
	next.started = true
	next.state = Running
	k.current = next.Pid

	k.mu.Unlock()

	k.L.Trace("context-switch", "from", cur.Pid, "to", next.Pid, "start", start)

	if start {
		go k.run(next)
	}

	next.resume <- struct{}{}

	return next
}

func (k *Kernel) yield(p *Process) {
	if k.schedule(p) != p {
		<-p.resume
	}
}

func (k *Kernel) spawn(parent *Process, entry uintptr) (int, error) {
	k.mu.Lock()

	prog, ok := k.programs[entry]
	if !ok {
		k.mu.Unlock()
		return 0, errors.Wrapf(ErrUnknownEntry, "entry=%#x", entry)
	}

	pid := -1
	for i := 1; i < len(k.procs); i++ {
		if k.procs[i] == nil {
			pid = i
			break
		}
	}

	if pid < 0 {
		k.mu.Unlock()
		return 0, errors.Wrapf(ErrNoSlot, "max-procs=%d", len(k.procs))
	}

	k.newProcess(pid, parent.Pid, entry, prog)
	k.pending = pid

	k.mu.Unlock()

	k.L.Debug("process created", "pid", pid, "ppid", parent.Pid, "entry", entry)

	k.yield(parent)

	return pid, nil
}

// terminate marks p dead, frees its slot and hands the CPU on. It returns
// to the caller, who must not run p's program any further.
func (k *Kernel) terminate(p *Process, code int32) {
	k.mu.Lock()

	p.state = Terminated
	k.procs[p.Pid] = nil
	k.exits = append(k.exits, ExitStatus{
		Pid:   p.Pid,
		Ppid:  p.Ppid,
		Entry: p.Entry,
		Code:  code,
	})

	k.mu.Unlock()

	k.L.Debug("process exited", "pid", p.Pid, "code", code)

	k.events.Notify(ProcessExited)

	k.schedule(p)
}
