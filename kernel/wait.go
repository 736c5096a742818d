package kernel

import (
	"context"

	"github.com/evanphx/chocos/pkg/waiter"
	"github.com/pkg/errors"
)

const (
	_ waiter.EventType = iota
	ProcessExited
)

// Wait blocks until no live process has pid and returns the most recent
// exit of pid.
func (k *Kernel) Wait(ctx context.Context, pid int) (ExitStatus, error) {
	c := make(chan struct{}, 1)
	ev := k.events.RegisterChannel(ProcessExited, c)
	defer k.events.Unregister(ev)

	for {
		status, done, err := k.waitOnce(pid)
		if err != nil || done {
			return status, err
		}

		k.L.Trace("process-waiting-exit", "pid", pid)

		select {
		case <-ctx.Done():
			return ExitStatus{}, ctx.Err()
		case <-c:
			// ok, try the loop again
		}
	}
}

func (k *Kernel) waitOnce(pid int) (ExitStatus, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if pid < 0 || pid >= len(k.procs) {
		return ExitStatus{}, false, errors.Wrapf(ErrUnknownProcess, "pid=%d", pid)
	}

	if k.procs[pid] != nil {
		return ExitStatus{}, false, nil
	}

	for i := len(k.exits) - 1; i >= 0; i-- {
		if k.exits[i].Pid == pid {
			return k.exits[i], true, nil
		}
	}

	return ExitStatus{}, false, errors.Wrapf(ErrUnknownProcess, "pid=%d", pid)
}
