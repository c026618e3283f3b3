package address

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/rowbotony/walletcrypto/internal/bech32"
	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// nimiqAlphabet is the 32-character alphabet used by Nimiq addresses,
// skipping the letters I, O, W and Z.
const nimiqAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVXY"

// NimiqAddress derives a Nimiq "NQ" address from a 32-byte Ed25519 public
// key: hash = Blake2b-256(pub)[0:20], encoded in the Nimiq alphabet and
// prefixed with an IBAN-style mod-97 checksum.
func NimiqAddress(edPub []byte) (string, error) {
	if len(edPub) != 32 {
		return "", walleterr.ErrInvalidLength
	}
	full, err := hashes.Blake2b(edPub, 32)
	if err != nil {
		return "", err
	}
	h := full[:20]

	words := bech32.ToWords(h)
	encoded := make([]byte, len(words))
	for i, w := range words {
		encoded[i] = nimiqAlphabet[w]
	}

	checksum, err := nimiqChecksum(string(encoded))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("NQ%02d%s", checksum, encoded), nil
}

// NimiqAddressSpaced returns addr with a space inserted every 4 characters,
// the human-friendly display form.
func NimiqAddressSpaced(addr string) string {
	var sb strings.Builder
	for i := 0; i < len(addr); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := i + 4
		if end > len(addr) {
			end = len(addr)
		}
		sb.WriteString(addr[i:end])
	}
	return sb.String()
}

// nimiqChecksum computes the IBAN-style mod-97 checksum over
// encoded || "NQ00", mapping letters A=10..Z=35 and digits to themselves.
func nimiqChecksum(encoded string) (int, error) {
	rearranged := encoded + "NQ00"
	var digits strings.Builder
	for _, c := range rearranged {
		switch {
		case c >= '0' && c <= '9':
			digits.WriteRune(c)
		case c >= 'A' && c <= 'Z':
			digits.WriteString(fmt.Sprintf("%d", int(c-'A')+10))
		default:
			return 0, walleterr.ErrInvalidChecksum
		}
	}
	value, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return 0, walleterr.ErrInvalidChecksum
	}
	remainder := new(big.Int).Mod(value, big.NewInt(97))
	return 98 - int(remainder.Int64()), nil
}

// ValidateNimiqAddress recomputes the IBAN checksum and reports whether it
// matches, rejecting any single-character corruption of addr.
func ValidateNimiqAddress(addr string) bool {
	addr = strings.ReplaceAll(addr, " ", "")
	if len(addr) != 36 || !strings.HasPrefix(addr, "NQ") {
		return false
	}
	var checksum int
	if _, err := fmt.Sscanf(addr[2:4], "%02d", &checksum); err != nil {
		return false
	}
	encoded := addr[4:]
	want, err := nimiqChecksum(encoded)
	if err != nil {
		return false
	}
	return want == checksum
}
