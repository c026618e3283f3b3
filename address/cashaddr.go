package address

import "github.com/rowbotony/walletcrypto/internal/bech32"

// BitcoinCashPrefix is the fixed CashAddr HRP; the "bitcoincash:" prefix is
// always emitted even though prefix-less input may be accepted on decode.
const BitcoinCashPrefix = "bitcoincash"

// BitcoinCashAddress converts a legacy Base58Check P2PKH address into its
// CashAddr form: decode the legacy address, drop the version byte, and
// re-encode the 20-byte hash160 with version byte 0 (P2PKH, 160-bit hash).
func BitcoinCashAddress(legacyAddr string) (string, error) {
	_, hash, err := DecodeLegacyAddress(legacyAddr)
	if err != nil {
		return "", err
	}
	versionByte, err := bech32.CashAddrVersionByte(0, len(hash))
	if err != nil {
		return "", err
	}
	payload := append([]byte{versionByte}, hash...)
	return bech32.CashAddrEncode(BitcoinCashPrefix, payload)
}

// DecodeBitcoinCashAddress parses a CashAddr string, returning its type (the
// upper bits of the version byte) and the hash payload.
func DecodeBitcoinCashAddress(addr string) (addrType byte, hash []byte, err error) {
	versionByte, hash, err := bech32.CashAddrDecode(BitcoinCashPrefix, addr)
	if err != nil {
		return 0, nil, err
	}
	return versionByte >> 3, hash, nil
}
