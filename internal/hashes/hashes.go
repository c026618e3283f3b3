// Package hashes collects the six hash primitives the codecs and curve
// engines need: SHA-256/512 and HMAC from the standard library, plus
// RIPEMD-160, Keccak-256 and Blake2b from golang.org/x/crypto, the library
// behind hash160 and Ethereum/TRON-style address derivation.
package hashes

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Bitcoin-style hash160
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the SHA-256 digest of msg.
func SHA256(msg []byte) []byte {
	sum := sha256.Sum256(msg)
	return sum[:]
}

// SHA512 returns the SHA-512 digest of msg.
func SHA512(msg []byte) []byte {
	sum := sha512.Sum512(msg)
	return sum[:]
}

// RIPEMD160 returns the RIPEMD-160 digest of msg.
func RIPEMD160(msg []byte) []byte {
	h := ripemd160.New()
	h.Write(msg) //nolint:errcheck // hash.Hash.Write never fails
	return h.Sum(nil)
}

// Keccak256 returns the pre-NIST Keccak-256 digest of msg (padding byte
// 0x01, not SHA3's 0x06) — the hash Ethereum and TRON address derivation use.
func Keccak256(msg []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg) //nolint:errcheck
	return h.Sum(nil)
}

// Blake2b returns a Blake2b digest of msg with the given output length in
// bytes (1-64), no key, no salt, no personalization.
func Blake2b(msg []byte, outLen int) ([]byte, error) {
	h, err := blake2b.New(outLen, nil)
	if err != nil {
		return nil, err
	}
	h.Write(msg) //nolint:errcheck
	return h.Sum(nil), nil
}

// HMACSHA256 returns HMAC-SHA-256(key, msg) per RFC 2104.
func HMACSHA256(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg) //nolint:errcheck
	return mac.Sum(nil)
}

// HMACSHA512 returns HMAC-SHA-512(key, msg) per RFC 2104.
func HMACSHA512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg) //nolint:errcheck
	return mac.Sum(nil)
}

// Hash160 returns RIPEMD-160(SHA-256(msg)), the digest Bitcoin-family
// addresses hash a public key down to.
func Hash160(msg []byte) []byte {
	return RIPEMD160(SHA256(msg))
}
