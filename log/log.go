package log

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

var L hclog.Logger

func init() {
	L = hclog.New(&hclog.LoggerOptions{
		Name:   "chocos",
		Output: os.Stderr,
		Level:  hclog.Info,
	})

	EnableDebug(false)
}

// Named returns a sub-logger of L for a kernel subsystem.
func Named(name string) hclog.Logger {
	return L.Named(name)
}
