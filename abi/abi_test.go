package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	require.Equal(t, "yield", Name(SysYield))
	require.Equal(t, "print", Name(SysPrint))
	require.Equal(t, "exit", Name(SysExit))
	require.Equal(t, "create", Name(SysCreate))
	require.Equal(t, "printu32", Name(SysPrintU32))

	// 3 was a language-specific print in an older ABI and is not assigned.
	require.Equal(t, "unknown", Name(3))
	require.Equal(t, "unknown", Name(NumSyscalls))
	require.Equal(t, "unknown", Name(Failed))
}
