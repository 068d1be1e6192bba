package uuid45_test

import (
	"bytes"
	"image"
	"testing"

	// Used for QR code recognizing.
	_ "image/png"

	"github.com/liyue201/goqr"
	"github.com/skip2/go-qrcode"

	"github.com/ironsmile/qruuid/src/uuid45"
)

// TestCodeSurvivesQRSymbol renders an encoded UUID as a QR image, reads it back
// with a recogniser and decodes the UUID from what was read.
func TestCodeSurvivesQRSymbol(t *testing.T) {
	id := uuid45.New()
	code, err := uuid45.Encode(id)
	if err != nil {
		t.Fatalf("error encoding UUID: %s", err)
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		t.Fatalf("error creating QR image: %s", err)
	}

	qrImg, _, err := image.Decode(bytes.NewReader(png))
	if err != nil {
		t.Fatalf("error decoding QR code image: %s", err)
	}

	qrCodes, err := goqr.Recognize(qrImg)
	if err != nil {
		t.Fatalf("unexpected QR reading error: %s", err)
	}

	if len(qrCodes) != 1 {
		t.Fatalf("expected one QR code but found %d", len(qrCodes))
	}

	read := make([]byte, 0, len(qrCodes[0].Payload))
	for _, b := range qrCodes[0].Payload {
		read = append(read, byte(b))
	}

	if string(read) != code {
		t.Fatalf("read `%s` from the QR code but `%s` was written", read, code)
	}

	decoded, err := uuid45.DecodeString(string(read))
	if err != nil {
		t.Fatalf("error decoding the code read from the image: %s", err)
	}
	if decoded != id.String() {
		t.Errorf("expected UUID %s but got %s", id, decoded)
	}
}
