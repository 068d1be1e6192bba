package assert

import "errors"

// NilErr stops the test when err is not nil.
func NilErr(t TestingFatalf, err error, msgAndArgs ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("expected nil error but got `%s`%s", err, fromMsgAndArgs(msgAndArgs...))
}

// NotNilErr stops the test when err is nil.
func NotNilErr(t TestingFatalf, err error, msgAndArgs ...any) {
	t.Helper()

	if err != nil {
		return
	}

	t.Fatalf("unexpected nil error%s", fromMsgAndArgs(msgAndArgs...))
}

// ErrorIs stops the test unless target is found in the chain of err.
func ErrorIs(t TestingFatalf, err, target error, msgAndArgs ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("expected error `%s` in chain but got `%v`%s",
		target, err, fromMsgAndArgs(msgAndArgs...),
	)
}
