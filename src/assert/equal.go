package assert

// Equal fails the test when expected and actual differ.
func Equal[V comparable](t TestingErrf, expected, actual V, msgAndArgs ...any) {
	t.Helper()

	if expected == actual {
		return
	}

	t.Errorf("not equal: expected `%#v` but got `%#v`%s",
		expected, actual, fromMsgAndArgs(msgAndArgs...),
	)
}

// EqualSlices fails the test when the two slices differ in length or in any
// element.
func EqualSlices[V comparable](t TestingErrf, expected, actual []V, msgAndArgs ...any) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Errorf("length mismatch: expected %d but got %d%s",
			len(expected), len(actual), fromMsgAndArgs(msgAndArgs...),
		)
		return
	}

	for i := range expected {
		if expected[i] == actual[i] {
			continue
		}

		t.Errorf("element %d: expected `%#v` but got `%#v`%s",
			i, expected[i], actual[i], fromMsgAndArgs(msgAndArgs...),
		)
		return
	}
}
