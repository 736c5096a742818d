package log

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

// EnableDebug switches L to trace level when force is set or TRACE is
// present in the environment.
func EnableDebug(force bool) {
	if force || os.Getenv("TRACE") != "" {
		L.SetLevel(hclog.Trace)
	}
}

// SetLevel parses a level name such as "trace" or "warn". Unknown names
// leave the level untouched and return false.
func SetLevel(name string) bool {
	lvl := hclog.LevelFromString(name)
	if lvl == hclog.NoLevel {
		return false
	}

	L.SetLevel(lvl)
	return true
}
