//go:build !arm

package trap

import (
	"runtime"

	"github.com/pkg/errors"
)

var ErrNoTrap = errors.New("trap: no kernel trap on " + runtime.GOARCH)

// Raw has no trap instruction to issue outside arm. Calling it panics with
// ErrNoTrap; use a Gate that talks to an emulated kernel instead.
func Raw(id, a1, a2, a3 uintptr) uintptr {
	panic(ErrNoTrap)
}
