package address

import (
	"github.com/rowbotony/walletcrypto/internal/base58"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// WIF version bytes.
const (
	WIFVersionBitcoin  byte = 0x80
	WIFVersionLitecoin byte = 0xb0
	WIFVersionDogecoin byte = 0x9e
	WIFVersionDash     byte = 0xcc
)

// EncodeWIF builds a Wallet Import Format string:
// b58check_encode(version || privkey32 || (0x01 if compressed)).
func EncodeWIF(version byte, privkey []byte, compressed bool) (string, error) {
	if len(privkey) != 32 {
		return "", walleterr.ErrInvalidLength
	}
	payload := make([]byte, 0, 34)
	payload = append(payload, version)
	payload = append(payload, privkey...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58.CheckEncode(payload), nil
}

// DecodeWIF reverses EncodeWIF.
func DecodeWIF(s string) (version byte, privkey []byte, compressed bool, err error) {
	decoded, err := base58.CheckDecode(s)
	if err != nil {
		return 0, nil, false, err
	}
	switch len(decoded) {
	case 33:
		return decoded[0], decoded[1:33], false, nil
	case 34:
		if decoded[33] != 0x01 {
			return 0, nil, false, walleterr.ErrInvalidLength
		}
		return decoded[0], decoded[1:33], true, nil
	default:
		return 0, nil, false, walleterr.ErrInvalidLength
	}
}
