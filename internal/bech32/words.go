// Package bech32 implements the Bech32 family of codecs: standard BIP-173
// (Bitcoin/Litecoin SegWit), the Bitcoin Cash CashAddr variant, and the
// Kaspa variant. All three share the 8-bit/5-bit word repacker in this file.
package bech32

import "github.com/rowbotony/walletcrypto/walleterr"

// charset is the Bech32 alphabet mapping a 5-bit word to its character.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetIndex [256]int8

func init() {
	for i := range charsetIndex {
		charsetIndex[i] = -1
	}
	for i, c := range charset {
		charsetIndex[byte(c)] = int8(i)
	}
}

// ToWords converts an 8-bit byte string into a sequence of 5-bit words,
// packing bits MSB-first and padding the final word with zero bits.
func ToWords(data []byte) []byte {
	var acc uint32
	var bits uint
	var words []byte
	for _, b := range data {
		acc = (acc << 8) | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			words = append(words, byte((acc>>bits)&0x1f))
		}
	}
	if bits > 0 {
		words = append(words, byte((acc<<(5-bits))&0x1f))
	}
	return words
}

// FromWords converts a sequence of 5-bit words back into bytes. When strict
// is true, any non-zero leftover padding bits are rejected as invalid.
func FromWords(words []byte, strict bool) ([]byte, error) {
	var acc uint32
	var bits uint
	var out []byte
	for _, w := range words {
		if w > 31 {
			return nil, walleterr.ErrInvalidBech32
		}
		acc = (acc << 5) | uint32(w)
		bits += 5
		for bits >= 8 {
			bits -= 8
			out = append(out, byte((acc>>bits)&0xff))
		}
	}
	if strict && bits > 0 {
		mask := uint32(1)<<bits - 1
		if acc&mask != 0 {
			return nil, walleterr.ErrInvalidBech32
		}
	}
	return out, nil
}
