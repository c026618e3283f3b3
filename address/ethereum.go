package address

import (
	"encoding/hex"

	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// EthereumAddress derives an EIP-55 checksummed Ethereum address from an
// uncompressed secp256k1 public key (65 bytes, 0x04 prefix):
// addr = keccak256(pubkey[1:])[12:32], cased per EIP-55.
func EthereumAddress(uncompressedPub []byte) (string, error) {
	if len(uncompressedPub) != 65 || uncompressedPub[0] != 0x04 {
		return "", walleterr.ErrInvalidLength
	}
	hash := hashes.Keccak256(uncompressedPub[1:])
	raw := hash[12:]
	return ToEIP55(hex.EncodeToString(raw)), nil
}
