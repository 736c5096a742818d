package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/evanphx/chocos/kernel"
	"github.com/evanphx/chocos/syscalls"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	var console bytes.Buffer

	k, err := kernel.NewKernel(kernel.Config{Console: &console, Logger: hclog.NewNullLogger()})
	require.NoError(t, err)

	k.Invoker = &syscalls.Invoker{Kernel: k, Clobber: true, L: hclog.NewNullLogger()}

	d := &demo{workers: 2, rounds: 2}
	require.NoError(t, d.install(k))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, k.Boot(ctx, d.init))

	require.Equal(t, "init: starting 2 workers\n"+
		"worker 0 round 0\n"+
		"worker 1 round 0\n"+
		"worker 0 round 1\n"+
		"worker 1 round 1\n"+
		"init: exiting\n", console.String())

	codes := map[int]int32{}
	for _, st := range k.Exits() {
		codes[st.Pid] = st.Code
	}

	require.Equal(t, map[int]int32{0: 0, 1: 0, 2: 1}, codes)
}
