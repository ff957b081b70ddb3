// Package debug holds debugging switches read from the environment.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Merge    bool
	Encode   bool
}

var (
	d *debug

	// Out is where Logf writes.
	Out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("UEINI_DEBUG_TOKENIZE")
	d.Parse = boolEnv("UEINI_DEBUG_PARSE")
	d.Merge = boolEnv("UEINI_DEBUG_MERGE")
	d.Encode = boolEnv("UEINI_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Encode() bool {
	return d.Encode
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(Out, msg, args...)
}
