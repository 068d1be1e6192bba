package capacity

import "strings"

// Charset is the 45 character set of the QR alphanumeric mode, in the order
// of the character values it encodes to.
const Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// IsAlphanumeric reports whether every character of s belongs to Charset,
// meaning s can be encoded in alphanumeric mode and the capacity table
// describes it.
func IsAlphanumeric(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(Charset, r) {
			return false
		}
	}
	return true
}
