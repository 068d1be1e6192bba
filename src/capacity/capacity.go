/*
Package capacity answers how many alphanumeric characters fit in a QR Code
symbol of a given version and error-correction level, and which is the
smallest version able to carry a payload of a given length.

Character capacities are the stored, authoritative data. Bit capacities are
derived from them with BitCost so that the two views can never disagree.
*/
package capacity

import "fmt"

// Symbol version bounds.
const (
	MinVersion = 1
	MaxVersion = 40
)

const (
	modeIndicatorBits = 4
	pairBits          = 11
	singleBits        = 6
)

// chars holds the measured alphanumeric character capacities. Index i is
// version i+1. They include the overhead of the mode indicator, character
// count indicator, terminator and padding.
var chars = [...][MaxVersion]int{
	L: {
		17, 32, 53, 78, 106, 134, 154, 192, 230, 271,
		321, 367, 425, 458, 520, 586, 644, 718, 792, 858,
		929, 1003, 1091, 1171, 1273, 1367, 1465, 1528, 1628, 1732,
		1840, 1952, 2068, 2188, 2303, 2431, 2563, 2699, 2809, 2953,
	},
	M: {
		14, 26, 42, 62, 84, 106, 122, 152, 180, 213,
		251, 287, 331, 362, 412, 450, 504, 560, 624, 666,
		711, 779, 857, 911, 997, 1059, 1125, 1190, 1264, 1370,
		1452, 1538, 1628, 1722, 1809, 1911, 1989, 2099, 2213, 2331,
	},
	Q: {
		11, 20, 32, 46, 60, 74, 86, 108, 130, 151,
		177, 203, 241, 258, 292, 322, 364, 394, 442, 482,
		509, 565, 611, 661, 715, 751, 805, 868, 908, 982,
		1030, 1112, 1168, 1228, 1283, 1351, 1423, 1499, 1579, 1663,
	},
	H: {
		7, 14, 24, 34, 44, 58, 64, 84, 98, 119,
		137, 155, 177, 194, 220, 250, 280, 310, 338, 382,
		403, 439, 461, 511, 535, 593, 625, 658, 698, 742,
		790, 842, 898, 958, 983, 1051, 1093, 1139, 1219, 1273,
	},
}

func validVersion(version int) error {
	if version < MinVersion || version > MaxVersion {
		return fmt.Errorf("%w: %d", ErrVersionOutOfRange, version)
	}
	return nil
}

func validLevel(level Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}
	return nil
}

// Capacity returns the number of alphanumeric characters a symbol with the
// given level and version can hold.
func Capacity(level Level, version int) (int, error) {
	if err := validLevel(level); err != nil {
		return 0, err
	}
	if err := validVersion(version); err != nil {
		return 0, err
	}
	return chars[level][version-1], nil
}

// BitCapacity returns the capacity of a symbol expressed as the bit cost of
// its largest alphanumeric payload, header included.
func BitCapacity(level Level, version int) (int, error) {
	n, err := Capacity(level, version)
	if err != nil {
		return 0, err
	}
	return BitCost(n, version), nil
}

// Capacities returns a copy of the per-version character capacities for
// level. Index i corresponds to version i+1.
func Capacities(level Level) ([]int, error) {
	if err := validLevel(level); err != nil {
		return nil, err
	}
	row := chars[level]
	return row[:], nil
}

// MaxLength is the longest alphanumeric payload any symbol with this level
// can hold.
func MaxLength(level Level) (int, error) {
	return Capacity(level, MaxVersion)
}

// CharCountBits returns the width of the character count indicator for
// alphanumeric mode at the given version.
func CharCountBits(version int) int {
	switch {
	case version <= 9:
		return 9
	case version <= 26:
		return 11
	default:
		return 13
	}
}

// BitCost is the number of bits needed to encode length alphanumeric
// characters at the given version: mode indicator, count indicator, 11 bits
// per character pair and 6 bits for a trailing odd character.
func BitCost(length, version int) int {
	if length < 0 {
		length = 0
	}
	data := (length/2)*pairBits + (length%2)*singleBits
	return modeIndicatorBits + CharCountBits(version) + data
}

// MinimalVersion returns the smallest version whose capacity at level is
// enough for length characters. Rows are non-decreasing so the first fit is
// the minimal one.
func MinimalVersion(length int, level Level) (int, error) {
	if err := validLevel(level); err != nil {
		return 0, err
	}
	for i, c := range chars[level] {
		if length <= c {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %d characters at level %s", ErrCapacityExceeded,
		length, level)
}

// MinimalVersionBits does the same search as MinimalVersion but compares the
// bit cost of the payload against the bit capacity of every version.
func MinimalVersionBits(length int, level Level) (int, error) {
	if err := validLevel(level); err != nil {
		return 0, err
	}
	for i, c := range chars[level] {
		v := i + 1
		if BitCost(length, v) <= BitCost(c, v) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %d characters at level %s", ErrCapacityExceeded,
		length, level)
}
