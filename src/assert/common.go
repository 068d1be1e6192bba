// Package assert contains the small set of test assertions used by the
// packages of this module.
package assert

import "fmt"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . TestingErrf

// TestingErrf reports non-fatal failures. It is satisfied by testing.T,
// testing.B and testing.TB.
type TestingErrf interface {
	Errorf(format string, args ...any)
	Helper()
}

//counterfeiter:generate . TestingFatalf

// TestingFatalf reports failures which stop the current test.
type TestingFatalf interface {
	Fatalf(format string, args ...any)
	Helper()
}

func fromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	fmtStr, ok := msgAndArgs[0].(string)
	if !ok {
		panic("The first argument in msgAndArgs must be a string format value.")
	}

	return fmt.Sprintf(" ("+fmtStr+")", msgAndArgs[1:]...)
}
