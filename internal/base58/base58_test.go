package base58

import (
	"bytes"
	"testing"

	"github.com/rowbotony/walletcrypto/walleterr"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	input := []byte{0x00, 0x01, 0x09, 0xff, 0x42}
	encoded := Encode(input)
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("roundtrip = %x, want %x", got, input)
	}
}

func TestEncodeLeadingZeros(t *testing.T) {
	input := []byte{0x00, 0x00, 0x01}
	encoded := Encode(input)
	if encoded[0] != '1' || encoded[1] != '1' {
		t.Errorf("Encode(%x) = %q, want two leading '1's", input, encoded)
	}
}

func TestDecodeRejectsInvalidChar(t *testing.T) {
	if _, err := Decode("0OIl"); err != walleterr.ErrInvalidBase58 {
		t.Errorf("Decode(invalid chars) error = %v, want ErrInvalidBase58", err)
	}
}

func TestCheckEncodeDecodeRoundtrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0x04}
	encoded := CheckEncode(payload)
	got, err := CheckDecode(encoded)
	if err != nil {
		t.Fatalf("CheckDecode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("CheckDecode = %x, want %x", got, payload)
	}
}

func TestCheckDecodeRejectsBadChecksum(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03}
	encoded := CheckEncode(payload)
	flipped := []byte(encoded)
	if flipped[len(flipped)-1] == 'a' {
		flipped[len(flipped)-1] = 'b'
	} else {
		flipped[len(flipped)-1] = 'a'
	}
	if _, err := CheckDecode(string(flipped)); err == nil {
		t.Error("expected CheckDecode to reject a corrupted checksum")
	}
}

func TestCheckDecodeRejectsTooShort(t *testing.T) {
	if _, err := CheckDecode(Encode([]byte{0x01, 0x02})); err != walleterr.ErrInvalidLength {
		t.Errorf("CheckDecode(short) error = %v, want ErrInvalidLength", err)
	}
}
