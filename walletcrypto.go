// Package walletcrypto is the library-level facade named in the component
// contract: curve derivation, hashing, and the raw codec primitives,
// re-exported from the internal engines so callers don't need to import
// internal/* directly. Currency-specific address assembly lives in the
// address subpackage; this file covers the bare curve/hash/codec primitives.
package walletcrypto

import (
	"encoding/hex"
	"strings"

	"github.com/rowbotony/walletcrypto/internal/base58"
	"github.com/rowbotony/walletcrypto/internal/bech32"
	"github.com/rowbotony/walletcrypto/internal/edwards25519"
	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/internal/secp256k1"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// DecodeHex decodes a strict-case hex string, rejecting mixed-case input:
// callers must lower-case explicitly; this never silently coerces.
func DecodeHex(s string) ([]byte, error) {
	if s != strings.ToLower(s) {
		return nil, walleterr.ErrInvalidHex
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, walleterr.ErrInvalidHex
	}
	return b, nil
}

// DeriveSecp256k1Pub derives a compressed or uncompressed secp256k1 public
// key from a 32-byte big-endian private key.
func DeriveSecp256k1Pub(privkey32 []byte, compressed bool) ([]byte, error) {
	return secp256k1.DerivePub(privkey32, compressed)
}

// ExpandPub decompresses a 33-byte compressed secp256k1 public key to its
// 65-byte uncompressed form.
func ExpandPub(compressed33 []byte) ([]byte, error) {
	return secp256k1.Expand(compressed33)
}

// DeriveEd25519PubSHA512 derives a Nimiq-style Ed25519 public key: the
// 32-byte seed is expanded with SHA-512, clamped, and scalar-multiplied by
// the base point.
func DeriveEd25519PubSHA512(seed32 []byte) ([]byte, error) {
	if len(seed32) != 32 {
		return nil, walleterr.ErrInvalidLength
	}
	expanded := hashes.SHA512(seed32)
	return edwards25519.DerivePub(expanded)
}

// DeriveEd25519PubBlake2b derives a Nano-style Ed25519 public key: the
// 32-byte seed is expanded with Blake2b-512 instead of SHA-512, sharing the
// same clamp-and-multiply core.
func DeriveEd25519PubBlake2b(seed32 []byte) ([]byte, error) {
	if len(seed32) != 32 {
		return nil, walleterr.ErrInvalidLength
	}
	expanded, err := hashes.Blake2b(seed32, 64)
	if err != nil {
		return nil, err
	}
	return edwards25519.DerivePub(expanded)
}

// Hash160 returns RIPEMD-160(SHA-256(b)).
func Hash160(b []byte) []byte { return hashes.Hash160(b) }

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) []byte { return hashes.SHA256(b) }

// Keccak256 returns the Keccak-256 (pre-NIST padding) digest of b.
func Keccak256(b []byte) []byte { return hashes.Keccak256(b) }

// Blake2b returns a Blake2b digest of b with the given output length in bytes.
func Blake2b(b []byte, outLen int) ([]byte, error) { return hashes.Blake2b(b, outLen) }

// HMACSHA512 returns HMAC-SHA-512(key, msg).
func HMACSHA512(key, msg []byte) []byte { return hashes.HMACSHA512(key, msg) }

// B58Enc encodes bytes to plain Base58.
func B58Enc(b []byte) string { return base58.Encode(b) }

// B58Dec decodes a plain Base58 string.
func B58Dec(s string) ([]byte, error) { return base58.Decode(s) }

// B58CheckEncode encodes a payload with a SHA-256d checksum in Base58Check.
func B58CheckEncode(payload []byte) string { return base58.CheckEncode(payload) }

// B58CheckDecode decodes and verifies a Base58Check string.
func B58CheckDecode(s string) ([]byte, error) { return base58.CheckDecode(s) }

// Bech32Words holds a decoded Bech32 string's human-readable part and
// 5-bit data words.
type Bech32Words = bech32.Decoded

// Bech32Encode builds a BIP-173 Bech32 string from an HRP and 5-bit words.
func Bech32Encode(hrp string, words []byte) (string, error) { return bech32.Encode(hrp, words) }

// Bech32Decode parses and verifies a BIP-173 Bech32 string.
func Bech32Decode(s string) (*Bech32Words, error) { return bech32.Decode(s) }

// ToWords converts an 8-bit byte string to 5-bit words, MSB-first.
func ToWords(b []byte) []byte { return bech32.ToWords(b) }

// FromWords converts 5-bit words back to bytes; strict rejects non-zero
// padding bits.
func FromWords(words []byte, strict bool) ([]byte, error) { return bech32.FromWords(words, strict) }
