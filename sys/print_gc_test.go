package sys_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evanphx/chocos/memory"
	"github.com/evanphx/chocos/sys"
	"github.com/evanphx/chocos/trap"
	"github.com/stretchr/testify/require"
)

type cbuf struct {
	b [16]byte
}

func printOnlyReference(c *sys.Client, freed *atomic.Bool) {
	buf := &cbuf{}
	copy(buf.b[:], "OK\x00")

	runtime.SetFinalizer(buf, func(*cbuf) { freed.Store(true) })

	c.Print(&buf.b[0])
}

func TestPrintKeepsStringAlive(t *testing.T) {
	var (
		freed       atomic.Bool
		freedInTrap bool
		seen        string
	)

	g := trap.GateFunc(func(f *trap.Frame) {
		for i := 0; i < 5; i++ {
			runtime.GC()
		}

		// Give the finalizer goroutine a chance to run.
		time.Sleep(10 * time.Millisecond)

		freedInTrap = freed.Load()

		str, err := memory.Host{}.ReadCString(f.R1)
		require.NoError(t, err)
		seen = string(str)
	})

	printOnlyReference(sys.New(g), &freed)

	require.False(t, freedInTrap, "string released while the kernel was reading it")
	require.Equal(t, "OK", seen)
}
