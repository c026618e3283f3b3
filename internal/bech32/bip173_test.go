package bech32

import (
	"testing"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	data := ToWords([]byte{0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4, 0x54, 0x94, 0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23, 0xf1, 0x43, 0x3b, 0xd6})
	encoded, err := Encode("bc", append([]byte{0}, data...))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.HRP != "bc" {
		t.Errorf("HRP = %q, want bc", decoded.HRP)
	}
	if len(decoded.Data) != len(data)+1 {
		t.Errorf("Data length = %d, want %d", len(decoded.Data), len(data)+1)
	}
}

func TestDecodeRejectsFlippedChecksum(t *testing.T) {
	encoded, err := Encode("bc", ToWords([]byte{1, 2, 3}))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	flipped := []byte(encoded)
	last := flipped[len(flipped)-1]
	for _, c := range charset {
		if byte(c) != last {
			flipped[len(flipped)-1] = byte(c)
			break
		}
	}
	if _, err := Decode(string(flipped)); err == nil {
		t.Error("expected Decode to reject a corrupted checksum")
	}
}

func TestEncodeRejectsEmptyHRP(t *testing.T) {
	if _, err := Encode("", []byte{1, 2}); err == nil {
		t.Error("expected Encode to reject an empty HRP")
	}
}

func TestDecodeRejectsMixedCase(t *testing.T) {
	encoded, err := Encode("bc", ToWords([]byte{1, 2, 3}))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	mixed := []byte(encoded)
	mixed[0] = 'B'
	if _, err := Decode(string(mixed)); err == nil {
		t.Error("expected Decode to reject mixed-case input")
	}
}
