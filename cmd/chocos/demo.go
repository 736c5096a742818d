package main

import (
	"github.com/evanphx/chocos/kernel"
	"github.com/evanphx/chocos/sys"
)

const workerBase = 0x1000

// demo is the program set the CLI boots: init creates a few workers that
// take turns printing until they run out of rounds.
type demo struct {
	workers int
	rounds  int
}

func workerEntry(n int) uintptr {
	return workerBase + uintptr(n)*0x100
}

func (d *demo) install(k *kernel.Kernel) error {
	for i := 0; i < d.workers; i++ {
		if err := k.Register(workerEntry(i), d.worker(uint32(i))); err != nil {
			return err
		}
	}

	return nil
}

func (d *demo) init(t *kernel.Task) {
	c := sys.New(t)

	c.PrintString("init: starting ")
	c.PrintU32(uint32(d.workers))
	c.PrintString(" workers\n")

	for i := 0; i < d.workers; i++ {
		c.Create(workerEntry(i))
	}

	c.Yield()

	c.PrintString("init: exiting\n")
	c.Exit(0)
}

func (d *demo) worker(n uint32) kernel.Program {
	return func(t *kernel.Task) {
		c := sys.New(t)

		for r := 0; r < d.rounds; r++ {
			c.PrintString("worker ")
			c.PrintU32(n)
			c.PrintString(" round ")
			c.PrintU32(uint32(r))
			c.PrintString("\n")
			c.Yield()
		}

		c.Exit(int32(n))
	}
}
