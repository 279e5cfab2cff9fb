// Package rtx provides the panic-on-error test helper used throughout this
// module's test files, the same calling convention as github.com/m-lab/go/rtx
// but implemented locally rather than imported: this module already depends
// on github.com/m-lab/go/logx for throttled logging (rtroute, rtlink), but
// pulling in m-lab/go/rtx too for this one function would mean depending on
// that package's own test-assertion surface for a three-line helper.
package rtx

import "fmt"

// Must panics with msg (formatted against args) if err is non-nil. Tests
// use this for setup calls that should never fail in a working test
// environment, so a failure there is a bug in the test, not a case to be
// handled gracefully.
func Must(err error, msg string, args ...interface{}) {
	if err != nil {
		panic(fmt.Sprintf(msg, args...) + ": " + err.Error())
	}
}
