// Package debug provides logging to stderr enabled by environment
// variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Patch bool
	Eval  bool
	CLI   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("JDOC_DEBUG_DIFF")
	d.Patch = boolEnv("JDOC_DEBUG_PATCH")
	d.Eval = boolEnv("JDOC_DEBUG_EVAL")
	d.CLI = boolEnv("JDOC_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func CLI() bool {
	return d.CLI
}
