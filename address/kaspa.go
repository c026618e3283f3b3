package address

import (
	"github.com/rowbotony/walletcrypto/internal/bech32"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// KaspaHRP is Kaspa's fixed Bech32 human-readable part.
const KaspaHRP = "kaspa"

// KaspaAddress builds a Kaspa address from a compressed secp256k1 public
// key: payload = [version=0] || x_only_pubkey (the 32 x-coordinate bytes
// with the 0x02/0x03 prefix dropped), encoded with the Kaspa Bech32 variant.
func KaspaAddress(compressedPub []byte) (string, error) {
	if len(compressedPub) != 33 {
		return "", walleterr.ErrInvalidLength
	}
	xOnly := compressedPub[1:]
	words := append([]byte{0}, bech32.ToWords(xOnly)...)
	return bech32.KaspaEncode(KaspaHRP, words)
}

// DecodeKaspaAddress reverses KaspaAddress, returning the version word and
// the 32-byte x-only public key.
func DecodeKaspaAddress(addr string) (version byte, xOnlyPub []byte, err error) {
	decoded, err := bech32.KaspaDecode(addr)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded.Data) < 1 {
		return 0, nil, walleterr.ErrInvalidLength
	}
	xOnlyPub, err = bech32.FromWords(decoded.Data[1:], true)
	if err != nil {
		return 0, nil, err
	}
	return decoded.Data[0], xOnlyPub, nil
}
