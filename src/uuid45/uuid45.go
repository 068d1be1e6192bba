/*
Package uuid45 encodes version 4 UUIDs as short Base45 strings suitable for
QR Code alphanumeric mode.

Six bits of every v4 UUID are fixed: the version nibble in byte 6 and the two
variant bits in byte 8. They are stripped before encoding and restored when
decoding, so the remaining 122 bits fit in 16 bytes whose top six bits are
always zero. Those 16 bytes are then Base45 encoded into 24 characters.

The compact layout takes the UUID bits most significant first and packs them
least significant first into the output bytes, leaving the padding in the
high bits of the last byte.
*/
package uuid45

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/pborman/uuid"

	"github.com/ironsmile/qruuid/src/base45"
)

const (
	// Size is the length in bytes of both a UUID and its compact form.
	Size = 16

	// EncodedLen is the length of every encoded UUID.
	EncodedLen = 24

	payloadBits = 122
	paddingMask = 0b1111_1100
)

var (
	// ErrInvalidUUID is returned for input which is not a UUID.
	ErrInvalidUUID = errors.New("invalid UUID")

	// ErrInvalidBase45 is returned when the code is not valid Base45.
	ErrInvalidBase45 = errors.New("invalid base45")

	// ErrNonZeroPadding is returned when any of the six unused bits of a
	// compact payload is set.
	ErrNonZeroPadding = errors.New("non-zero padding bits in compact payload")
)

// InvalidLengthError is returned when a compact payload is not exactly Size
// bytes long.
type InvalidLengthError struct {
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length: expected %d got %d", e.Expected, e.Actual)
}

// fixedBit reports whether the given bit of the given byte is one of the
// version or variant bits. Bits are numbered 7 (most significant) to 0.
func fixedBit(byteIdx, bit int) bool {
	return (byteIdx == 6 && bit >= 4) || (byteIdx == 8 && bit >= 6)
}

// fixedValue is the value of a fixed bit in a v4 RFC 4122 UUID: version 0100
// and variant 10.
func fixedValue(byteIdx, bit int) byte {
	if (byteIdx == 6 && bit == 6) || (byteIdx == 8 && bit == 7) {
		return 1
	}
	return 0
}

// ToCompact strips the version and variant bits of id and packs the rest.
// Input whose fixed bits do not match v4 is accepted; those bits are dropped.
func ToCompact(id [Size]byte) [Size]byte {
	var out [Size]byte
	pos := 0
	for byteIdx, b := range id {
		for bit := 7; bit >= 0; bit-- {
			if fixedBit(byteIdx, bit) {
				continue
			}
			out[pos/8] |= (b >> bit & 1) << (pos % 8)
			pos++
		}
	}
	return out
}

// FromCompact rebuilds a v4 UUID from its compact form.
func FromCompact(compact []byte) ([Size]byte, error) {
	var out [Size]byte

	if len(compact) != Size {
		return out, &InvalidLengthError{Expected: Size, Actual: len(compact)}
	}
	if compact[Size-1]&paddingMask != 0 {
		return out, ErrNonZeroPadding
	}

	pos := 0
	for byteIdx := range out {
		var acc byte
		for bit := 7; bit >= 0; bit-- {
			if fixedBit(byteIdx, bit) {
				acc |= fixedValue(byteIdx, bit) << bit
				continue
			}
			acc |= (compact[pos/8] >> (pos % 8) & 1) << bit
			pos++
		}
		out[byteIdx] = acc
	}

	return out, nil
}

// New returns a random version 4 UUID.
func New() uuid.UUID {
	return uuid.NewRandom()
}

// EncodeBytes encodes the 16 raw bytes of a UUID.
func EncodeBytes(id [Size]byte) string {
	compact := ToCompact(id)
	return base45.Encode(compact[:])
}

// Encode returns the Base45 code of id.
func Encode(id uuid.UUID) (string, error) {
	if len(id) != Size {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidUUID, len(id))
	}

	var arr [Size]byte
	copy(arr[:], id)
	return EncodeBytes(arr), nil
}

// EncodeString parses s as a UUID and encodes it.
func EncodeString(s string) (string, error) {
	id := uuid.Parse(s)
	if id == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}
	return Encode(id)
}

// DecodeBytes returns the 16 canonical bytes of the UUID in code.
func DecodeBytes(code string) ([Size]byte, error) {
	compact, err := base45.Decode(code)
	if err != nil {
		return [Size]byte{}, fmt.Errorf("%w: %w", ErrInvalidBase45, err)
	}
	return FromCompact(compact)
}

// Decode returns the UUID encoded in code.
func Decode(code string) (uuid.UUID, error) {
	arr, err := DecodeBytes(code)
	if err != nil {
		return nil, err
	}
	return uuid.UUID(arr[:]), nil
}

// DecodeString returns the hyphenated form of the UUID encoded in code.
func DecodeString(code string) (string, error) {
	id, err := Decode(code)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ParseInput accepts a canonical UUID string or 32 hexadecimal digits and
// returns the UUID bytes.
func ParseInput(s string) ([Size]byte, error) {
	var arr [Size]byte
	s = strings.TrimSpace(s)

	if id := uuid.Parse(s); id != nil {
		copy(arr[:], id)
		return arr, nil
	}

	if len(s) == 2*Size {
		if _, err := hex.Decode(arr[:], []byte(s)); err == nil {
			return arr, nil
		}
	}

	return [Size]byte{}, fmt.Errorf("%w: unrecognised input format %q", ErrInvalidUUID, s)
}
