package bech32

import (
	"strings"

	"github.com/rowbotony/walletcrypto/walleterr"
)

// cashaddrPolymod computes the Bitcoin Cash CashAddr 40-bit BCH checksum
// polymod, distinct from BIP-173's 30-bit generator set.
func cashaddrPolymod(values []byte) uint64 {
	c := uint64(1)
	for _, d := range values {
		c0 := c >> 35
		c = (c&0x07ffffffff)<<5 ^ uint64(d)
		if c0&0x01 != 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			c ^= 0x1e4f43e470
		}
	}
	return c ^ 1
}

func cashaddrPrefixExpand(prefix string) []byte {
	out := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		out[i] = prefix[i] & 0x1f
	}
	out[len(prefix)] = 0
	return out
}

func cashaddrChecksum(prefix string, payload []byte) []byte {
	values := append(cashaddrPrefixExpand(prefix), payload...)
	values = append(values, 0, 0, 0, 0, 0, 0, 0, 0)
	poly := cashaddrPolymod(values)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte((poly >> uint(5*(7-i))) & 0x1f)
	}
	return out
}

func cashaddrVerifyChecksum(prefix string, payload []byte) bool {
	values := append(cashaddrPrefixExpand(prefix), payload...)
	return cashaddrPolymod(values) == 0
}

// CashAddrVersionByte packs an address type and a hash-length code into the
// CashAddr version byte: type in the upper bits, length code in the lower
// bits. 160-bit (20-byte) hashes use length code 0.
func CashAddrVersionByte(addrType byte, hashLen int) (byte, error) {
	var sizeCode byte
	switch hashLen {
	case 20:
		sizeCode = 0
	case 24:
		sizeCode = 1
	case 28:
		sizeCode = 2
	case 32:
		sizeCode = 3
	case 40:
		sizeCode = 4
	case 48:
		sizeCode = 5
	case 56:
		sizeCode = 6
	case 64:
		sizeCode = 7
	default:
		return 0, walleterr.ErrInvalidLength
	}
	return (addrType << 3) | sizeCode, nil
}

// CashAddrEncode builds a CashAddr string: "<prefix>:" followed by the
// Base32 encoding of the 5-bit words for payload (version byte || hash)
// plus an 8-word checksum.
func CashAddrEncode(prefix string, payload []byte) (string, error) {
	words := ToWords(payload)
	checksum := cashaddrChecksum(prefix, words)
	combined := append(append([]byte{}, words...), checksum...)

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte(':')
	for _, w := range combined {
		if w > 31 {
			return "", walleterr.ErrInvalidBech32
		}
		sb.WriteByte(charset[w])
	}
	return sb.String(), nil
}

// CashAddrDecode parses a CashAddr string, accepting an optional
// "<prefix>:" but never emitting prefix-less addresses itself. It returns
// the version byte and the hash payload.
func CashAddrDecode(defaultPrefix, s string) (versionByte byte, hash []byte, err error) {
	prefix := defaultPrefix
	body := s
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		prefix = s[:idx]
		body = s[idx+1:]
	}

	words := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		idx := charsetIndex[body[i]]
		if idx < 0 {
			return 0, nil, walleterr.ErrInvalidBech32
		}
		words[i] = byte(idx)
	}
	if len(words) < 8 {
		return 0, nil, walleterr.ErrInvalidBech32
	}

	if !cashaddrVerifyChecksum(prefix, words) {
		return 0, nil, walleterr.ErrInvalidChecksum
	}

	data := words[:len(words)-8]
	payload, err := FromWords(data, true)
	if err != nil {
		return 0, nil, err
	}
	if len(payload) < 1 {
		return 0, nil, walleterr.ErrInvalidLength
	}
	return payload[0], payload[1:], nil
}
