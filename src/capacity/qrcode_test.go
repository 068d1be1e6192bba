package capacity_test

import (
	"strings"
	"testing"

	"github.com/skip2/go-qrcode"

	"github.com/ironsmile/qruuid/src/assert"
	"github.com/ironsmile/qruuid/src/capacity"
)

var recoveryLevels = map[capacity.Level]qrcode.RecoveryLevel{
	capacity.L: qrcode.Low,
	capacity.M: qrcode.Medium,
	capacity.Q: qrcode.High,
	capacity.H: qrcode.Highest,
}

// TestTableAgainstEncoder builds real QR symbols for payloads which exactly
// fill a version according to the table. The encoder must never need a
// larger version than the one MinimalVersion promised.
func TestTableAgainstEncoder(t *testing.T) {
	if testing.Short() {
		t.Skip("encoding QR symbols is slow")
	}

	for level, recovery := range recoveryLevels {
		for _, version := range []int{1, 2, 5, 9, 10, 20, 26, 27, 33, 40} {
			length, err := capacity.Capacity(level, version)
			assert.NilErr(t, err)

			payload := strings.Repeat("A1", length/2+1)[:length]
			v, err := capacity.MinimalVersion(length, level)
			assert.NilErr(t, err)
			assert.Equal(t, version, v, "level %s", level)

			code, err := qrcode.New(payload, recovery)
			assert.NilErr(t, err, "encoding %d characters at level %s", length, level)

			if code.VersionNumber > v {
				t.Errorf("level %s: encoder needed version %d for %d characters "+
					"but the table says %d", level, code.VersionNumber, length, v)
			}
		}
	}
}
