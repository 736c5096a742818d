// Package traptest provides stub kernels for exercising code that issues
// traps.
package traptest

import (
	"sync"

	"github.com/evanphx/chocos/trap"
)

// Poison is written into clobbered registers.
const Poison = uintptr(0xdeadbeef)

// Recorder is a Gate that records every frame it receives, as it looked on
// entry, then lets Respond play the kernel.
type Recorder struct {
	// Respond, when set, runs after the frame is recorded and may rewrite it.
	Respond func(f *trap.Frame)

	mu     sync.Mutex
	frames []trap.Frame
}

func (r *Recorder) Trap(f *trap.Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, *f)
	r.mu.Unlock()

	if r.Respond != nil {
		r.Respond(f)
	}
}

// Frames returns a copy of the recorded frames in trap order.
func (r *Recorder) Frames() []trap.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]trap.Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.frames)
}

// Last returns the most recent frame. It panics if nothing was recorded.
func (r *Recorder) Last() trap.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.frames[len(r.frames)-1]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = nil
}

// Echo answers with the value the caller left in register reg (0-3).
func Echo(reg int) func(f *trap.Frame) {
	return func(f *trap.Frame) {
		switch reg {
		case 0:
		case 1:
			f.R0 = f.R1
		case 2:
			f.R0 = f.R2
		case 3:
			f.R0 = f.R3
		default:
			panic("traptest: no such argument register")
		}
	}
}

// Clobber answers with result and poisons R1-R3.
func Clobber(result uintptr) func(f *trap.Frame) {
	return func(f *trap.Frame) {
		f.R0 = result
		f.R1, f.R2, f.R3 = Poison, Poison, Poison
	}
}
