// Package version reports which qruuid build is running and which code
// format it produces.
package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ironsmile/qruuid/src/uuid45"
)

// Version stores the current version of qruuid. It is set during building
// with -ldflags "-X github.com/ironsmile/qruuid/src/version.Version=...".
var Version = "dev-unreleased"

// CodeFormat names the format of the codes this build produces. Codes from
// builds with a different format are not interchangeable.
var CodeFormat = fmt.Sprintf("base45-uuid4/%d", uuid45.EncodedLen)

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "qruuid %s\n", Version)
	fmt.Fprintf(out, "Code format: %s\n", CodeFormat)
	fmt.Fprintf(out, "Built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
