// Package nanoraw converts decimal NANO amounts into "raw" units (NANO *
// 10^30) using arbitrary-precision decimal arithmetic, so large balances
// never lose precision to floating point.
package nanoraw

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/rowbotony/walletcrypto/walleterr"
)

// nanoScale is 10^30, the number of raw units in one NANO.
var nanoScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)

// ToRaw multiplies a decimal NANO amount (optionally fractional, e.g.
// "1.5") by 10^30 and returns the canonical decimal raw amount.
func ToRaw(amount string) (string, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return "", walleterr.ErrInvalidLength
	}

	neg := false
	if strings.HasPrefix(amount, "-") {
		neg = true
		amount = amount[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(amount, ".")
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return "", walleterr.ErrInvalidHex
	}
	if len(fracPart) > 30 {
		return "", walleterr.ErrInvalidLength
	}

	digits := intPart + fracPart + strings.Repeat("0", 30-len(fracPart))
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", walleterr.ErrInvalidHex
	}

	if neg {
		value.Neg(value)
	}
	return value.String(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FromRaw divides a raw amount by 10^30, returning the canonical decimal
// NANO amount (with a trailing fractional part trimmed of redundant zeros).
func FromRaw(raw string) (string, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return "", walleterr.ErrInvalidHex
	}

	neg := value.Sign() < 0
	if neg {
		value.Neg(value)
	}

	q, r := new(big.Int).QuoRem(value, nanoScale, new(big.Int))
	frac := fmt.Sprintf("%030s", r.String())
	frac = strings.TrimRight(frac, "0")

	out := q.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out, nil
}
