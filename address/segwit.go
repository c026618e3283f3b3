package address

import (
	"github.com/rowbotony/walletcrypto/internal/bech32"
	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// SegwitAddress builds a native SegWit v0 address for the given HRP ("bc"
// for Bitcoin, "ltc" for Litecoin): bech32_encode(hrp, [0] || to_words(hash160(pubkey))).
func SegwitAddress(hrp string, pubkey []byte) (string, error) {
	if len(pubkey) != 33 && len(pubkey) != 65 {
		return "", walleterr.ErrInvalidLength
	}
	h := hashes.Hash160(pubkey)
	words := append([]byte{0}, bech32.ToWords(h)...)
	return bech32.Encode(hrp, words)
}

// DecodeSegwitAddress reverses SegwitAddress, returning the witness version
// and the 20-byte (or 32-byte, for P2WSH) witness program.
func DecodeSegwitAddress(addr string) (hrp string, version byte, program []byte, err error) {
	decoded, err := bech32.Decode(addr)
	if err != nil {
		return "", 0, nil, err
	}
	if len(decoded.Data) < 1 {
		return "", 0, nil, walleterr.ErrInvalidLength
	}
	version = decoded.Data[0]
	program, err = bech32.FromWords(decoded.Data[1:], true)
	if err != nil {
		return "", 0, nil, err
	}
	return decoded.HRP, version, program, nil
}
