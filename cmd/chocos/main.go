package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/evanphx/chocos/kernel"
	clog "github.com/evanphx/chocos/log"
	"github.com/evanphx/chocos/syscalls"
	"github.com/spf13/pflag"
)

var (
	fTrace    = pflag.Bool("trace", false, "log every trap")
	fLevel    = pflag.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fMaxProcs = pflag.Int("max-procs", kernel.MaxProcs, "size of the process table, init included")
	fWorkers  = pflag.IntP("workers", "w", 2, "worker processes init creates")
	fRounds   = pflag.IntP("rounds", "r", 3, "rounds each worker runs before exiting")
	fClobber  = pflag.Bool("clobber", false, "poison R1-R3 on every return from a trap")
	fDump     = pflag.Bool("dump", false, "dump the exit history when the kernel halts")
	fTimeout  = pflag.Duration("timeout", 10*time.Second, "give up if the kernel has not halted by then")
)

func main() {
	cpuprofile := os.Getenv("CPUPROFILE")
	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		fmt.Printf("pprof: profiling started\n")
	}

	pflag.Parse()

	if *fLevel != "" && !clog.SetLevel(*fLevel) {
		log.Fatalf("unknown log level: %s", *fLevel)
	}

	clog.EnableDebug(*fTrace)

	k, err := kernel.NewKernel(kernel.Config{
		Console:  os.Stdout,
		MaxProcs: *fMaxProcs,
		Logger:   clog.Named("kernel"),
	})
	if err != nil {
		log.Fatal(err)
	}

	k.Invoker = &syscalls.Invoker{
		Kernel:  k,
		Clobber: *fClobber,
		L:       clog.Named("syscall"),
	}

	demo := &demo{
		workers: *fWorkers,
		rounds:  *fRounds,
	}

	if err := demo.install(k); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()

	err = k.Boot(ctx, demo.init)

	if cpuprofile != "" {
		pprof.StopCPUProfile()
		fmt.Printf("pprof: profiling finished\n")
	}

	if *fDump {
		spew.Fdump(os.Stderr, k.Exits())
		spew.Fdump(os.Stderr, k.Processes())
	}

	if err != nil {
		log.Fatal(err)
	}
}
