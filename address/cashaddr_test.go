package address

import "testing"

func TestBitcoinCashAddressVector5(t *testing.T) {
	legacy, err := LegacyAddress(VersionBitcoin, testPubkey)
	if err != nil {
		t.Fatalf("LegacyAddress: %v", err)
	}
	got, err := BitcoinCashAddress(legacy)
	if err != nil {
		t.Fatalf("BitcoinCashAddress: %v", err)
	}
	if got != "bitcoincash:qrfhu0d72l4v9te6p2p4fchwlfp07h350cq2rxar6d" {
		t.Errorf("BitcoinCashAddress = %s, want bitcoincash:qrfhu0d72l4v9te6p2p4fchwlfp07h350cq2rxar6d", got)
	}
}

func TestDecodeBitcoinCashAddressRoundtrip(t *testing.T) {
	legacy, err := LegacyAddress(VersionBitcoin, testPubkey)
	if err != nil {
		t.Fatalf("LegacyAddress: %v", err)
	}
	addr, err := BitcoinCashAddress(legacy)
	if err != nil {
		t.Fatalf("BitcoinCashAddress: %v", err)
	}
	addrType, hash, err := DecodeBitcoinCashAddress(addr)
	if err != nil {
		t.Fatalf("DecodeBitcoinCashAddress: %v", err)
	}
	if addrType != 0 {
		t.Errorf("addrType = %d, want 0", addrType)
	}
	if len(hash) != 20 {
		t.Errorf("hash length = %d, want 20", len(hash))
	}
}
