package hashes

import (
	"encoding/hex"
	"testing"
)

func TestSHA256KnownVector(t *testing.T) {
	got := hex.EncodeToString(SHA256([]byte("abc")))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("SHA256(abc) = %s, want %s", got, want)
	}
}

func TestRIPEMD160KnownVector(t *testing.T) {
	got := hex.EncodeToString(RIPEMD160([]byte("")))
	want := "9c1185a5c5e9fc54612808977ee8f548b2258d31"
	if got != want {
		t.Errorf("RIPEMD160(\"\") = %s, want %s", got, want)
	}
}

func TestKeccak256KnownVector(t *testing.T) {
	got := hex.EncodeToString(Keccak256([]byte("")))
	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got != want {
		t.Errorf("Keccak256(\"\") = %s, want %s", got, want)
	}
}

func TestBlake2bOutputLength(t *testing.T) {
	for _, n := range []int{5, 20, 32, 64} {
		out, err := Blake2b([]byte("test"), n)
		if err != nil {
			t.Fatalf("Blake2b(len=%d): %v", n, err)
		}
		if len(out) != n {
			t.Errorf("Blake2b output length = %d, want %d", len(out), n)
		}
	}
}

func TestHash160(t *testing.T) {
	msg := []byte("hello")
	got := Hash160(msg)
	want := RIPEMD160(SHA256(msg))
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Hash160 = %x, want %x", got, want)
	}
	if len(got) != 20 {
		t.Errorf("Hash160 length = %d, want 20", len(got))
	}
}

func TestHMACSHA256AndSHA512Deterministic(t *testing.T) {
	key := []byte("key")
	msg := []byte("msg")
	if hex.EncodeToString(HMACSHA256(key, msg)) != hex.EncodeToString(HMACSHA256(key, msg)) {
		t.Error("HMACSHA256 not deterministic")
	}
	if len(HMACSHA512(key, msg)) != 64 {
		t.Errorf("HMACSHA512 length = %d, want 64", len(HMACSHA512(key, msg)))
	}
}
