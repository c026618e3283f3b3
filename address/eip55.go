package address

import (
	"encoding/hex"
	"strings"

	"github.com/rowbotony/walletcrypto/internal/hashes"
)

// ToEIP55 applies Ethereum's checksum casing to a 40-character hex address
// (with or without a 0x prefix): for each hex nibble of the address,
// uppercase it iff the corresponding nibble of keccak256(lowercase hex
// address) is >= 8. Idempotent: ToEIP55(ToEIP55(x)) == ToEIP55(x).
func ToEIP55(addr string) string {
	addr = strings.TrimPrefix(addr, "0x")
	lower := strings.ToLower(addr)
	hash := hashes.Keccak256([]byte(lower))
	hashHex := hex.EncodeToString(hash)

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' {
			nibble := hashHex[i]
			var v int
			if nibble >= '0' && nibble <= '9' {
				v = int(nibble - '0')
			} else {
				v = int(nibble-'a') + 10
			}
			if v >= 8 {
				c -= 'a' - 'A'
			}
		}
		out[i] = c
	}
	return "0x" + string(out)
}
