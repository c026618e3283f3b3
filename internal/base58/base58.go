// Package base58 implements plain Base58 and Base58Check, the encodings
// behind every legacy Bitcoin-family address and WIF private key. The
// teacher's own dependency (github.com/btcsuite/btcd/btcutil/base58) is kept
// as a cross-check oracle in the selftest package rather than used here —
// this codec is the part of the spec implementers are meant to hand-roll.
package base58

import (
	"math/big"

	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/walleterr"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	alphabetIndex [256]int8
	radix         = big.NewInt(58)
)

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i, c := range alphabet {
		alphabetIndex[byte(c)] = int8(i)
	}
}

// Encode converts bytes to a Base58 string: the byte string is treated as a
// big-endian big integer, repeatedly divided by 58 to produce digits
// (reversed), with one leading '1' per leading zero byte.
func Encode(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(input)
	var digits []byte
	zero := big.NewInt(0)
	mod := new(big.Int)
	for n.Cmp(zero) > 0 {
		n.DivMod(n, radix, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Decode converts a Base58 string back to its original bytes, failing on any
// character outside the alphabet.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}

	n := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := alphabetIndex[s[i]]
		if idx < 0 {
			return nil, walleterr.ErrInvalidBase58
		}
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(idx)))
	}

	body := n.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}

// checksum returns the first 4 bytes of SHA-256(SHA-256(payload)).
func checksum(payload []byte) []byte {
	h := hashes.SHA256(hashes.SHA256(payload))
	return h[:4]
}

// CheckEncode returns Base58(payload || checksum(payload)).
func CheckEncode(payload []byte) string {
	full := append(append([]byte{}, payload...), checksum(payload)...)
	return Encode(full)
}

// CheckDecode decodes a Base58Check string, verifying the trailing 4-byte
// checksum and returning the payload without it.
func CheckDecode(s string) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 4 {
		return nil, walleterr.ErrInvalidLength
	}
	payload := decoded[:len(decoded)-4]
	want := decoded[len(decoded)-4:]
	got := checksum(payload)
	for i := range want {
		if want[i] != got[i] {
			return nil, walleterr.ErrInvalidChecksum
		}
	}
	return payload, nil
}
