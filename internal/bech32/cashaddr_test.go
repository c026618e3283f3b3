package bech32

import (
	"bytes"
	"testing"
)

func TestCashAddrVersionByte(t *testing.T) {
	vb, err := CashAddrVersionByte(0, 20)
	if err != nil {
		t.Fatalf("CashAddrVersionByte: %v", err)
	}
	if vb != 0 {
		t.Errorf("CashAddrVersionByte(0, 20) = %d, want 0", vb)
	}
}

func TestCashAddrVersionByteRejectsBadLength(t *testing.T) {
	if _, err := CashAddrVersionByte(0, 21); err == nil {
		t.Error("expected CashAddrVersionByte to reject an unsupported hash length")
	}
}

func TestCashAddrEncodeDecodeRoundtrip(t *testing.T) {
	hash := make([]byte, 20)
	for i := range hash {
		hash[i] = byte(i + 1)
	}
	vb, err := CashAddrVersionByte(0, len(hash))
	if err != nil {
		t.Fatalf("CashAddrVersionByte: %v", err)
	}
	payload := append([]byte{vb}, hash...)

	encoded, err := CashAddrEncode("bitcoincash", payload)
	if err != nil {
		t.Fatalf("CashAddrEncode: %v", err)
	}

	gotVB, gotHash, err := CashAddrDecode("bitcoincash", encoded)
	if err != nil {
		t.Fatalf("CashAddrDecode: %v", err)
	}
	if gotVB != vb {
		t.Errorf("version byte = %d, want %d", gotVB, vb)
	}
	if !bytes.Equal(gotHash, hash) {
		t.Errorf("hash = %x, want %x", gotHash, hash)
	}
}

func TestCashAddrDecodeAcceptsExplicitPrefix(t *testing.T) {
	hash := make([]byte, 20)
	payload := append([]byte{0}, hash...)
	encoded, err := CashAddrEncode("bitcoincash", payload)
	if err != nil {
		t.Fatalf("CashAddrEncode: %v", err)
	}
	if _, _, err := CashAddrDecode("bitcoincash", encoded); err != nil {
		t.Errorf("CashAddrDecode with matching default prefix: %v", err)
	}
}

func TestCashAddrDecodeRejectsFlippedChecksum(t *testing.T) {
	hash := make([]byte, 20)
	payload := append([]byte{0}, hash...)
	encoded, err := CashAddrEncode("bitcoincash", payload)
	if err != nil {
		t.Fatalf("CashAddrEncode: %v", err)
	}
	flipped := []byte(encoded)
	last := flipped[len(flipped)-1]
	for _, c := range charset {
		if byte(c) != last {
			flipped[len(flipped)-1] = byte(c)
			break
		}
	}
	if _, _, err := CashAddrDecode("bitcoincash", string(flipped)); err == nil {
		t.Error("expected CashAddrDecode to reject a corrupted checksum")
	}
}
