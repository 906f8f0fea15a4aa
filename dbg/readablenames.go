package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for arbitrary pointers. Hull nodes and their points are
// distinguished only by identity, and hex addresses are miserable to
// eyeball in a trace, so we hand out memorable names instead. Names are
// memoized forever; that leaks, but only if debugging output is actually
// generated.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in order of demand, so we keep them
	// nondeterministic as a reminder that a name never survives a rerun.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
