package address

import "testing"

func TestKaspaAddressVector6(t *testing.T) {
	got, err := KaspaAddress(testPubkey)
	if err != nil {
		t.Fatalf("KaspaAddress: %v", err)
	}
	if got != "kaspa:q4nanyksjdqzudvn2qpxmhkduusucyzz7rjztfj0dzt9xu6ewul6sn5lwpwkj" {
		t.Errorf("KaspaAddress = %s, want kaspa:q4nanyksjdqzudvn2qpxmhkduusucyzz7rjztfj0dzt9xu6ewul6sn5lwpwkj", got)
	}
}

func TestKaspaAddressDecodeRoundtrip(t *testing.T) {
	addr, err := KaspaAddress(testPubkey)
	if err != nil {
		t.Fatalf("KaspaAddress: %v", err)
	}
	version, xOnly, err := DecodeKaspaAddress(addr)
	if err != nil {
		t.Fatalf("DecodeKaspaAddress: %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d, want 0", version)
	}
	if len(xOnly) != 32 {
		t.Errorf("x-only pubkey length = %d, want 32", len(xOnly))
	}
	for i, b := range xOnly {
		if b != testPubkey[i+1] {
			t.Fatalf("x-only pubkey mismatch at byte %d: got %#x, want %#x", i, b, testPubkey[i+1])
		}
	}
}
