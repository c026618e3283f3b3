package bech32

import (
	"bytes"
	"testing"
)

func TestKaspaEncodeDecodeRoundtrip(t *testing.T) {
	payload := ToWords(append([]byte{0}, make([]byte, 32)...))
	encoded, err := KaspaEncode("kaspa", payload)
	if err != nil {
		t.Fatalf("KaspaEncode: %v", err)
	}

	decoded, err := KaspaDecode(encoded)
	if err != nil {
		t.Fatalf("KaspaDecode: %v", err)
	}
	if decoded.HRP != "kaspa" {
		t.Errorf("HRP = %q, want kaspa", decoded.HRP)
	}
	if !bytes.Equal(decoded.Data, payload) {
		t.Errorf("Data = %v, want %v", decoded.Data, payload)
	}
}

func TestKaspaDecodeRequiresSeparator(t *testing.T) {
	if _, err := KaspaDecode("kaspaqqqqqqqq"); err == nil {
		t.Error("expected KaspaDecode to reject an address with no ':' separator")
	}
}

func TestKaspaDecodeRejectsFlippedChecksum(t *testing.T) {
	payload := ToWords([]byte{1, 2, 3})
	encoded, err := KaspaEncode("kaspa", payload)
	if err != nil {
		t.Fatalf("KaspaEncode: %v", err)
	}
	flipped := []byte(encoded)
	last := flipped[len(flipped)-1]
	for _, c := range charset {
		if byte(c) != last {
			flipped[len(flipped)-1] = byte(c)
			break
		}
	}
	if _, err := KaspaDecode(string(flipped)); err == nil {
		t.Error("expected KaspaDecode to reject a corrupted checksum")
	}
}

func TestKaspaPolymodAndChecksumExported(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	if KaspaPolymod(data) == 0 {
		t.Error("KaspaPolymod returned 0 for non-trivial input")
	}
	if len(KaspaCreateChecksum("kaspa", data)) != 8 {
		t.Errorf("KaspaCreateChecksum length = %d, want 8", len(KaspaCreateChecksum("kaspa", data)))
	}
}
