/*
Package base45 implements the Base45 encoding described in RFC 9285.

Base45 only uses the 45 characters of the QR Code alphanumeric mode, so an
encoded value can be stored in a QR symbol without switching to byte mode.
Two bytes are encoded as three characters and a trailing single byte as two.
*/
package base45

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsmile/qruuid/src/capacity"
)

const alphabet = capacity.Charset

var (
	// ErrInvalidCharacter is returned when decoding a character which is not
	// part of the alphabet. Lower case letters are not accepted.
	ErrInvalidCharacter = errors.New("invalid base45 character")

	// ErrDanglingCharacter is returned when the input ends with a lone
	// character which cannot represent a whole byte.
	ErrDanglingCharacter = errors.New("dangling base45 character")

	// ErrOverflow is returned when a group of characters decodes to a value
	// larger than the bytes it stands for can hold.
	ErrOverflow = errors.New("base45 group overflow")
)

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int8(i)
	}
}

// EncodedLen returns the length of the Base45 encoding of n bytes.
func EncodedLen(n int) int {
	return n/2*3 + n%2*2
}

// DecodedLen returns the number of bytes n Base45 characters decode to.
func DecodedLen(n int) (int, error) {
	if n%3 == 1 {
		return 0, ErrDanglingCharacter
	}
	return n/3*2 + n%3/2, nil
}

// Encode returns the Base45 encoding of src.
func Encode(src []byte) string {
	var sb strings.Builder
	sb.Grow(EncodedLen(len(src)))

	for i := 0; i+1 < len(src); i += 2 {
		n := int(src[i])<<8 | int(src[i+1])
		sb.WriteByte(alphabet[n%45])
		sb.WriteByte(alphabet[n/45%45])
		sb.WriteByte(alphabet[n/2025])
	}

	if len(src)%2 == 1 {
		n := int(src[len(src)-1])
		sb.WriteByte(alphabet[n%45])
		sb.WriteByte(alphabet[n/45])
	}

	return sb.String()
}

// Decode returns the bytes represented by the Base45 string s.
func Decode(s string) ([]byte, error) {
	size, err := DecodedLen(len(s))
	if err != nil {
		return nil, err
	}

	vals := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		v := decodeMap[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		vals[i] = int(v)
	}

	out := make([]byte, 0, size)
	for i := 0; i < len(vals); i += 3 {
		if len(vals)-i == 2 {
			n := vals[i] + vals[i+1]*45
			if n > 0xff {
				return nil, fmt.Errorf("%w: %d at position %d", ErrOverflow, n, i)
			}
			out = append(out, byte(n))
			break
		}

		n := vals[i] + vals[i+1]*45 + vals[i+2]*2025
		if n > 0xffff {
			return nil, fmt.Errorf("%w: %d at position %d", ErrOverflow, n, i)
		}
		out = append(out, byte(n>>8), byte(n))
	}

	return out, nil
}
