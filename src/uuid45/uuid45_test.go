package uuid45_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pborman/uuid"

	"github.com/ironsmile/qruuid/src/assert"
	"github.com/ironsmile/qruuid/src/capacity"
	"github.com/ironsmile/qruuid/src/uuid45"
)

func TestRoundTripRandom(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := uuid45.New()

		code, err := uuid45.Encode(id)
		assert.NilErr(t, err)
		assert.Equal(t, uuid45.EncodedLen, len(code))

		decoded, err := uuid45.Decode(code)
		assert.NilErr(t, err)
		if !uuid.Equal(id, decoded) {
			t.Fatalf("round trip of %s returned %s", id, decoded)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		uuid string
		code string
	}{
		{"550e8400-e29b-41d4-a716-446655440000", "ROLX74X390FNFUKLDJ3KH000"},
		{"00000000-0000-4000-8000-000000000000", "000000000000000000000000"},
		{"ffffffff-ffff-4fff-bfff-ffffffffffff", "FGWFGWFGWFGWFGWFGWFGWXAW"},
	}

	for _, test := range tests {
		t.Run(test.uuid, func(t *testing.T) {
			code, err := uuid45.EncodeString(test.uuid)
			assert.NilErr(t, err)
			assert.Equal(t, test.code, code)

			decoded, err := uuid45.DecodeString(code)
			assert.NilErr(t, err)
			assert.Equal(t, test.uuid, decoded)
		})
	}
}

func TestVersionAndVariantPreserved(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := uuid45.Encode(uuid45.New())
		assert.NilErr(t, err)

		decoded, err := uuid45.Decode(code)
		assert.NilErr(t, err)

		version, ok := decoded.Version()
		assert.Equal(t, true, ok)
		assert.Equal(t, uuid.Version(4), version)
		assert.Equal(t, uuid.RFC4122, decoded.Variant())
	}
}

func TestReencodeStability(t *testing.T) {
	for i := 0; i < 50; i++ {
		first, err := uuid45.Encode(uuid45.New())
		assert.NilErr(t, err)

		decoded, err := uuid45.Decode(first)
		assert.NilErr(t, err)

		second, err := uuid45.Encode(decoded)
		assert.NilErr(t, err)
		assert.Equal(t, first, second)
	}
}

// TestNonV4Normalised checks that fixed bits of non-v4 input are dropped and
// replaced with the v4 values on decoding.
func TestNonV4Normalised(t *testing.T) {
	code, err := uuid45.EncodeString("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.NilErr(t, err)

	decoded, err := uuid45.Decode(code)
	assert.NilErr(t, err)

	version, _ := decoded.Version()
	assert.Equal(t, uuid.Version(4), version)
	assert.Equal(t, uuid.RFC4122, decoded.Variant())
}

func TestPaddingBitsZero(t *testing.T) {
	var id [uuid45.Size]byte
	for i := range id {
		id[i] = 0xff
	}

	compact := uuid45.ToCompact(id)
	assert.Equal(t, byte(0b0000_0011), compact[uuid45.Size-1])
}

func TestNonZeroPaddingRejected(t *testing.T) {
	compact := uuid45.ToCompact([uuid45.Size]byte{1, 2, 3})
	compact[uuid45.Size-1] |= 0b0001_0000

	_, err := uuid45.FromCompact(compact[:])
	assert.ErrorIs(t, err, uuid45.ErrNonZeroPadding)
}

func TestInvalidLengthRejected(t *testing.T) {
	compact := uuid45.ToCompact([uuid45.Size]byte{})

	_, err := uuid45.FromCompact(compact[:15])
	assert.NotNilErr(t, err)

	var lengthErr *uuid45.InvalidLengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("expected InvalidLengthError but got %T", err)
	}
	assert.Equal(t, 16, lengthErr.Expected)
	assert.Equal(t, 15, lengthErr.Actual)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		desc string
		code string
		err  error
	}{
		{"lower case", strings.ToLower("ROLX74X390FNFUKLDJ3KH000"), uuid45.ErrInvalidBase45},
		{"dangling", "A", uuid45.ErrInvalidBase45},
		{"overflow", ":::", uuid45.ErrInvalidBase45},
		{"padding", "FGWFGWFGWFGWFGWFGWFGW:AW", uuid45.ErrNonZeroPadding},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := uuid45.Decode(test.code)
			assert.ErrorIs(t, err, test.err)
		})
	}

	_, err := uuid45.Decode("BB8")
	var lengthErr *uuid45.InvalidLengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("expected InvalidLengthError for a short code but got %v", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := uuid45.EncodeString("not-a-uuid")
	assert.ErrorIs(t, err, uuid45.ErrInvalidUUID)

	_, err = uuid45.Encode(uuid.UUID{1, 2, 3})
	assert.ErrorIs(t, err, uuid45.ErrInvalidUUID)
}

func TestParseInput(t *testing.T) {
	want := uuid.Parse("550e8400-e29b-41d4-a716-446655440000")

	for _, in := range []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"550E8400-E29B-41D4-A716-446655440000",
		"550e8400e29b41d4a716446655440000",
		"  550e8400e29b41d4a716446655440000\n",
	} {
		got, err := uuid45.ParseInput(in)
		assert.NilErr(t, err, "input %q", in)
		assert.EqualSlices(t, []byte(want), got[:])
	}

	for _, in := range []string{"", "550e8400", "zz0e8400e29b41d4a716446655440000"} {
		_, err := uuid45.ParseInput(in)
		assert.ErrorIs(t, err, uuid45.ErrInvalidUUID, "input %q", in)
	}
}

// TestCodeFitsSmallSymbols makes sure that an encoded UUID is alphanumeric and
// fits a version 2 symbol even at level M.
func TestCodeFitsSmallSymbols(t *testing.T) {
	code, err := uuid45.Encode(uuid45.New())
	assert.NilErr(t, err)

	if !capacity.IsAlphanumeric(code) {
		t.Fatalf("code %q is not QR alphanumeric", code)
	}

	v, err := capacity.MinimalVersion(len(code), capacity.M)
	assert.NilErr(t, err)
	assert.Equal(t, 2, v)
}
