package bech32

import (
	"strings"

	"github.com/rowbotony/walletcrypto/walleterr"
)

// kaspaGen holds the Kaspa 40-bit polymod generator rows.
var kaspaGen = [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470}

// kaspaPolymod computes Kaspa's 40-bit checksum polymod: the accumulator is
// shifted left 5 bits and XORed with generator rows indexed by the top 5
// bits of the pre-shift accumulator.
func kaspaPolymod(values []byte) uint64 {
	c := uint64(1)
	for _, v := range values {
		top := c >> 35
		c = (c&0x07ffffffff)<<5 ^ uint64(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				c ^= kaspaGen[i]
			}
		}
	}
	return c
}

// kaspaHRPExpand uses only the low 5 bits of each HRP character — no
// high-bits/separator-zero block, unlike BIP-173.
func kaspaHRPExpand(hrp string) []byte {
	out := make([]byte, len(hrp))
	for i := 0; i < len(hrp); i++ {
		out[i] = hrp[i] & 0x1f
	}
	return out
}

func kaspaCreateChecksum(hrp string, data []byte) []byte {
	values := append(kaspaHRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0, 0, 0)
	mod := kaspaPolymod(values) ^ 1
	checksum := make([]byte, 8)
	for i := 0; i < 8; i++ {
		checksum[i] = byte((mod >> uint(5*(7-i))) & 31)
	}
	return checksum
}

func kaspaVerifyChecksum(hrp string, data []byte) bool {
	return kaspaPolymod(append(kaspaHRPExpand(hrp), data...)) == 1
}

// KaspaPolymod exposes the raw 40-bit polymod over a sequence of 5-bit
// words, matching the library contract's kaspa_polymod entry point.
func KaspaPolymod(values []byte) uint64 { return kaspaPolymod(values) }

// KaspaCreateChecksum exposes the 8-word checksum generator, matching the
// library contract's kaspa_create_checksum entry point.
func KaspaCreateChecksum(hrp string, data []byte) []byte { return kaspaCreateChecksum(hrp, data) }

// KaspaEncode builds a Kaspa address: hrp + ":" + 5-bit data words + 8-word
// checksum, using ':' as the separator instead of BIP-173's '1'.
func KaspaEncode(hrp string, data []byte) (string, error) {
	checksum := kaspaCreateChecksum(hrp, data)
	combined := append(append([]byte{}, data...), checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte(':')
	for _, w := range combined {
		if w > 31 {
			return "", walleterr.ErrInvalidBech32
		}
		sb.WriteByte(charset[w])
	}
	return sb.String(), nil
}

// KaspaDecode parses and verifies a Kaspa Bech32 address.
func KaspaDecode(s string) (*Decoded, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return nil, walleterr.ErrInvalidBech32
	}
	hrp := s[:idx]
	body := s[idx+1:]
	if len(body) < 8 {
		return nil, walleterr.ErrInvalidBech32
	}

	data := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		ci := charsetIndex[body[i]]
		if ci < 0 {
			return nil, walleterr.ErrInvalidBech32
		}
		data[i] = byte(ci)
	}

	if !kaspaVerifyChecksum(hrp, data) {
		return nil, walleterr.ErrInvalidChecksum
	}

	return &Decoded{HRP: hrp, Data: data[:len(data)-8]}, nil
}
