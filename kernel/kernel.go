// Package kernel is a hosted stand-in for the chocos kernel. It keeps the
// process table, runs user programs as tasks on a single virtual CPU and
// answers their traps through a TrapHandler.
package kernel

import (
	"context"
	"io"
	"sync"

	"github.com/evanphx/chocos/log"
	"github.com/evanphx/chocos/memory"
	"github.com/evanphx/chocos/pkg/waiter"
	"github.com/evanphx/chocos/trap"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// MaxProcs is the default size of the process table, init included.
const MaxProcs = 8

// A Program is the code found at an entry address.
type Program func(t *Task)

// TrapHandler services a trap raised by the task stored in ctx.
type TrapHandler interface {
	HandleTrap(ctx context.Context, f *trap.Frame)
}

type Config struct {
	// Console receives everything tasks print. Defaults to io.Discard.
	Console io.Writer

	// Memory resolves addresses tasks pass in registers. Defaults to
	// memory.Host, for programs that share the kernel's address space.
	Memory memory.Reader

	// MaxProcs sizes the process table. Defaults to MaxProcs.
	MaxProcs int

	Logger hclog.Logger
}

type Kernel struct {
	L       hclog.Logger
	Console io.Writer
	Mem     memory.Reader
	Invoker TrapHandler

	ctx context.Context

	mu       sync.Mutex
	procs    []*Process
	current  int
	pending  int
	programs map[uintptr]Program
	exits    []ExitStatus
	booted   bool

	events   waiter.Waiter
	halted   chan struct{}
	haltOnce sync.Once
}

func NewKernel(cfg Config) (*Kernel, error) {
	if cfg.MaxProcs == 0 {
		cfg.MaxProcs = MaxProcs
	}

	if cfg.MaxProcs < 1 {
		return nil, errors.Errorf("invalid process table size: %d", cfg.MaxProcs)
	}

	if cfg.Console == nil {
		cfg.Console = io.Discard
	}

	if cfg.Memory == nil {
		cfg.Memory = memory.Host{}
	}

	if cfg.Logger == nil {
		cfg.Logger = log.Named("kernel")
	}

	k := &Kernel{
		L:        cfg.Logger,
		Console:  cfg.Console,
		Mem:      cfg.Memory,
		ctx:      context.Background(),
		procs:    make([]*Process, cfg.MaxProcs),
		programs: make(map[uintptr]Program),
		halted:   make(chan struct{}),
	}

	return k, nil
}

var (
	ErrBadEntry       = errors.New("invalid entry address")
	ErrEntryInUse     = errors.New("entry address already registered")
	ErrUnknownEntry   = errors.New("no program at entry address")
	ErrNoSlot         = errors.New("process table full")
	ErrBooted         = errors.New("kernel already booted")
	ErrUnknownProcess = errors.New("unknown process")
)

// Register places prog at entry so tasks can create it.
func (k *Kernel) Register(entry uintptr, prog Program) error {
	if entry == 0 || prog == nil {
		return errors.Wrapf(ErrBadEntry, "entry=%#x", entry)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, ok := k.programs[entry]; ok {
		return errors.Wrapf(ErrEntryInUse, "entry=%#x", entry)
	}

	k.programs[entry] = prog

	return nil
}

// Halted is closed once no live process remains.
func (k *Kernel) Halted() <-chan struct{} {
	return k.halted
}

func (k *Kernel) halt() {
	k.haltOnce.Do(func() {
		k.L.Info("kernel halted", "exits", len(k.Exits()))
		close(k.halted)
	})
}

// Current returns the pid that owns the CPU.
func (k *Kernel) Current() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.current
}

// Exits returns the exit history in order of termination.
func (k *Kernel) Exits() []ExitStatus {
	k.mu.Lock()
	defer k.mu.Unlock()

	out := make([]ExitStatus, len(k.exits))
	copy(out, k.exits)
	return out
}

// Processes returns a snapshot of the live process table.
func (k *Kernel) Processes() []ProcessInfo {
	k.mu.Lock()
	defer k.mu.Unlock()

	var out []ProcessInfo

	for _, p := range k.procs {
		if p != nil {
			out = append(out, p.info())
		}
	}

	return out
}
