package capacity

import (
	"fmt"
	"strings"
)

// Level is a QR Code error-correction level. The higher the level the more of
// the symbol is spent on redundancy and the less data it can carry.
type Level int

// The four error-correction levels, in increasing redundancy order.
const (
	L Level = iota // ~7% of codewords can be restored
	M              // ~15%
	Q              // ~25%
	H              // ~30%
)

var levelNames = [...]string{"L", "M", "Q", "H"}

// Levels returns all error-correction levels ordered from the least to the
// most redundant.
func Levels() []Level {
	return []Level{L, M, Q, H}
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= L && l <= H
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a level letter such as "M" or "q" into a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
