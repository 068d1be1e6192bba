//go:build tools

// Package tools pins the code generators used by qruuid so that go.mod keeps
// track of their versions. counterfeiter generates the fakes in
// src/assert/assertfakes, see the go:generate lines in src/assert.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
