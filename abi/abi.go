// Package abi defines the service ids understood by the chocos kernel and the
// register layout used to request them.
//
// A request travels in four registers: R0 holds the service id, R1-R3 hold
// up to three arguments. Arguments a service does not use are zero. The
// kernel places its single result in R0.
package abi

const (
	SysReserved uintptr = 0
	SysYield    uintptr = 1
	SysPrint    uintptr = 4
	SysExit     uintptr = 5
	SysCreate   uintptr = 6
	SysPrintU32 uintptr = 7
)

// NumSyscalls bounds the service id space.
const NumSyscalls = 8

// Failed is the result the kernel reports for an unknown id or a request it
// could not carry out.
const Failed = ^uintptr(0)

var SyscallNames = [NumSyscalls]string{
	SysReserved: "reserved",
	SysYield:    "yield",
	SysPrint:    "print",
	SysExit:     "exit",
	SysCreate:   "create",
	SysPrintU32: "printu32",
}

// Name returns the service name for id, or "unknown".
func Name(id uintptr) string {
	if id < NumSyscalls && SyscallNames[id] != "" {
		return SyscallNames[id]
	}

	return "unknown"
}
