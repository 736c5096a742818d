package waiter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	evA EventType = 1 << iota
	evB
)

func TestNotify(t *testing.T) {
	var w Waiter

	ca := make(chan struct{}, 1)
	cb := make(chan struct{}, 1)

	ea := w.RegisterChannel(evA, ca)
	w.RegisterChannel(evB, cb)
	require.Equal(t, 2, w.Len())

	w.Notify(evA)
	w.Notify(evA)

	require.Len(t, ca, 1)
	require.Len(t, cb, 0)

	<-ca

	w.Unregister(ea)
	require.Equal(t, 1, w.Len())

	w.Notify(evA | evB)
	require.Len(t, ca, 0)
	require.Len(t, cb, 1)
}
