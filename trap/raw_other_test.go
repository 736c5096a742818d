//go:build !arm

package trap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawWithoutTrap(t *testing.T) {
	require.PanicsWithValue(t, ErrNoTrap, func() {
		Raw(1, 0, 0, 0)
	})

	require.PanicsWithValue(t, ErrNoTrap, func() {
		Invoke(SVC, 1, 0, 0, 0)
	})
}
