// Package address assembles the Base58Check, Bech32, CashAddr, Kaspa,
// Nimiq and Nano address strings from raw public-key bytes, one file per
// currency family, each exposing a single deriveXAddress-shaped entry point.
package address

import (
	"github.com/rowbotony/walletcrypto/internal/base58"
	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// Version bytes for legacy P2PKH addresses.
const (
	VersionBitcoin  byte = 0x00
	VersionLitecoin byte = 0x30
	VersionDogecoin byte = 0x1e
	VersionDash     byte = 0x4c
)

// LegacyAddress builds a Base58Check P2PKH address:
// b58check_encode(version || hash160(pubkey)).
func LegacyAddress(version byte, pubkey []byte) (string, error) {
	if len(pubkey) != 33 && len(pubkey) != 65 {
		return "", walleterr.ErrInvalidLength
	}
	h := hashes.Hash160(pubkey)
	payload := append([]byte{version}, h...)
	return base58.CheckEncode(payload), nil
}

// DecodeLegacyAddress reverses LegacyAddress, returning the version byte and
// the 20-byte hash160 payload.
func DecodeLegacyAddress(addr string) (version byte, hash160 []byte, err error) {
	decoded, err := base58.CheckDecode(addr)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) != 21 {
		return 0, nil, walleterr.ErrInvalidLength
	}
	return decoded[0], decoded[1:], nil
}
