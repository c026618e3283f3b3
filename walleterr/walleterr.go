// Package walleterr defines the error kinds raised by the curve engines and
// address codecs. Every exported function of the curve engines and codecs
// either succeeds with its documented return value or returns an error that
// wraps exactly one of these sentinels, so callers can branch with
// errors.Is. The CLI output helper in internal/util returns plain errors.
package walleterr

import "errors"

var (
	// ErrInvalidHex marks a hex string of odd length or containing non-hex characters.
	ErrInvalidHex = errors.New("invalid hex input")

	// ErrInvalidScalar marks a scalar that is zero or >= the curve order.
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrInvalidPoint marks a point that failed decompression or curve membership.
	ErrInvalidPoint = errors.New("invalid curve point")

	// ErrInvalidBase58 marks a character outside the Base58 alphabet.
	ErrInvalidBase58 = errors.New("invalid base58 input")

	// ErrInvalidChecksum marks any checksum mismatch: Base58Check, Bech32,
	// CashAddr, Kaspa, IBAN mod-97, or Blake2b-5.
	ErrInvalidChecksum = errors.New("checksum mismatch")

	// ErrInvalidBech32 marks mixed case, a bad HRP, a missing separator,
	// an oversized string, or non-zero padding bits on a strict decode.
	ErrInvalidBech32 = errors.New("invalid bech32 encoding")

	// ErrInvalidLength marks a payload of the wrong size for the operation.
	ErrInvalidLength = errors.New("invalid input length")
)
