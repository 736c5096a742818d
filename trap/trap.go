// Package trap is the syscall trampoline: it moves a service id and three
// argument words into the argument registers, enters the kernel with a
// single software trap and hands back the result register.
//
// Register convention (fixed, shared with the kernel):
//
//	R0  service id on entry, result on return
//	R1  arg1
//	R2  arg2
//	R3  arg3
//	SVC #0 enters the kernel
//
// R1-R3 hold no defined value after the trap.
package trap

// Frame is the register file exchanged with the kernel for one trap.
type Frame struct {
	R0, R1, R2, R3 uintptr
}

// A Gate transfers a frame to the kernel and returns once the kernel has
// written its result into R0. The kernel may overwrite R1-R3.
type Gate interface {
	Trap(f *Frame)
}

// GateFunc adapts a function to a Gate.
type GateFunc func(f *Frame)

func (g GateFunc) Trap(f *Frame) {
	g(f)
}

// Invoke issues exactly one trap through g with id in R0 and a1-a3 in
// R1-R3, and returns R0 as left by the kernel. Nothing is validated; an id
// the kernel does not know is the kernel's business.
func Invoke(g Gate, id, a1, a2, a3 uintptr) uintptr {
	f := Frame{R0: id, R1: a1, R2: a2, R3: a3}
	g.Trap(&f)
	return f.R0
}

type svcGate struct{}

func (svcGate) Trap(f *Frame) {
	f.R0 = Raw(f.R0, f.R1, f.R2, f.R3)
	f.R1, f.R2, f.R3 = 0, 0, 0
}

// SVC is the gate backed by the hardware trap instruction.
var SVC Gate = svcGate{}
