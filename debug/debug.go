package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Events bool
	Timing bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("X_DEBUG_EVENTS")
	d.Timing = boolEnv("X_DEBUG_TIMING")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Events() bool {
	return d.Events
}
func Timing() bool {
	return d.Timing
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
