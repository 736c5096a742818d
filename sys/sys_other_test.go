//go:build !arm

package sys_test

import (
	"testing"

	"github.com/evanphx/chocos/sys"
	"github.com/evanphx/chocos/trap"
	"github.com/stretchr/testify/require"
)

func TestDefaultGateNeedsHardware(t *testing.T) {
	require.PanicsWithValue(t, trap.ErrNoTrap, func() { sys.Yield() })
	require.PanicsWithValue(t, trap.ErrNoTrap, func() { sys.PrintU32(1) })
	require.PanicsWithValue(t, trap.ErrNoTrap, func() { sys.Create(0x1000) })
}
