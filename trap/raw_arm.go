package trap

// Raw loads id into R0 and a1-a3 into R1-R3, executes SVC #0 and returns R0.
//
// Implemented in raw_arm.s. Under ABI0 every general register is
// caller-saved across an assembly call, so the compiler keeps nothing live
// in R0-R3 (or anywhere else) across Raw. The kernel must preserve R4-R12,
// SP and LR.
//
//go:noescape
func Raw(id, a1, a2, a3 uintptr) uintptr
