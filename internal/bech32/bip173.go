package bech32

import (
	"strings"

	"github.com/rowbotony/walletcrypto/walleterr"
)

// gen holds the BIP-173 polymod generator constants.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymod computes the BIP-173 checksum polymod over values, a sequence of
// 5-bit words, as a 30-bit accumulator.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand implements BIP-173's HRP expansion:
// (h >> 5 for h in hrp) || [0] || (h & 31 for h in hrp).
func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, 2*len(hrp)+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ 1
	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == 1
}

// Encode builds a BIP-173 Bech32 string: hrp + "1" + 5-bit data words +
// 6-word checksum.
func Encode(hrp string, data []byte) (string, error) {
	if hrp == "" {
		return "", walleterr.ErrInvalidBech32
	}
	lower := strings.ToLower(hrp)
	if lower != hrp && strings.ToUpper(hrp) != hrp {
		return "", walleterr.ErrInvalidBech32
	}
	hrp = lower

	checksum := createChecksum(hrp, data)
	combined := append(append([]byte{}, data...), checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, w := range combined {
		if w > 31 {
			return "", walleterr.ErrInvalidBech32
		}
		sb.WriteByte(charset[w])
	}
	return sb.String(), nil
}

// Decoded holds the HRP and 5-bit data words of a decoded Bech32 string
// (checksum words stripped).
type Decoded struct {
	HRP  string
	Data []byte
}

// Decode parses and verifies a BIP-173 Bech32 string.
func Decode(s string) (*Decoded, error) {
	if len(s) < 8 || len(s) > 90 {
		return nil, walleterr.ErrInvalidBech32
	}
	lower := strings.ToLower(s)
	upper := strings.ToUpper(s)
	if s != lower && s != upper {
		return nil, walleterr.ErrInvalidBech32
	}
	s = lower

	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+7 > len(s) {
		return nil, walleterr.ErrInvalidBech32
	}
	hrp := s[:sep]
	dataPart := s[sep+1:]

	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		idx := charsetIndex[dataPart[i]]
		if idx < 0 {
			return nil, walleterr.ErrInvalidBech32
		}
		data[i] = byte(idx)
	}

	if !verifyChecksum(hrp, data) {
		return nil, walleterr.ErrInvalidChecksum
	}

	return &Decoded{HRP: hrp, Data: data[:len(data)-6]}, nil
}
