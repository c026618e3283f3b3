// Package edwards25519 implements the twisted Edwards curve underlying
// Ed25519 public-key derivation, shared between the Nimiq (SHA-512) and Nano
// (Blake2b-512) clamped-scalar variants. Curve: -x^2 + y^2 = 1 + d*x^2*y^2
// over p = 2^255 - 19.
package edwards25519

import (
	"math/big"

	"github.com/rowbotony/walletcrypto/internal/field"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// P is the Ed25519 field prime: 2^255 - 19.
var P = mustHex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED")

// L is the prime order of the Ed25519 base point's subgroup.
var L = mustDec("7237005577332262213973186563042994240857116359379907606001950938285454250989")

// d is the curve's twist parameter, -121665/121666 mod P.
var d = computeD()

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("edwards25519: bad hex constant " + s)
	}
	return n
}

func mustDec(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("edwards25519: bad decimal constant " + s)
	}
	return n
}

func computeD() *big.Int {
	num := field.Mod(big.NewInt(-121665), P)
	den := field.Mod(big.NewInt(121666), P)
	denInv, ok := field.Invert(den, P)
	if !ok {
		panic("edwards25519: could not invert curve constant")
	}
	return field.Mod(new(big.Int).Mul(num, denInv), P)
}

// Point is an affine point on the curve.
type Point struct {
	X, Y *big.Int
}

// Identity is the neutral element (0, 1).
func Identity() *Point { return &Point{X: big.NewInt(0), Y: big.NewInt(1)} }

// basePoint holds the standard Ed25519 generator, computed once.
var basePoint = &Point{
	X: mustDec("15112221349535400772501151409588531511454012693041857206046113283949847762202"),
	Y: mustDec("46316835694926478169428394003475163141307993866256225615783033603165251855960"),
}

// G returns the Ed25519 base point.
func G() *Point { return &Point{X: new(big.Int).Set(basePoint.X), Y: new(big.Int).Set(basePoint.Y)} }

// Add implements the complete twisted Edwards addition law (valid for
// doubling and identity inputs as well, since a=-1 is a square and d is a
// non-square mod P for this curve).
func Add(p1, p2 *Point) *Point {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y

	x1y2 := new(big.Int).Mul(x1, y2)
	y1x2 := new(big.Int).Mul(y1, x2)
	y1y2 := new(big.Int).Mul(y1, y2)
	x1x2 := new(big.Int).Mul(x1, x2)

	dTerm := field.Mod(new(big.Int).Mul(d, new(big.Int).Mul(x1x2, y1y2)), P)

	xNum := field.Mod(new(big.Int).Add(x1y2, y1x2), P)
	xDen := field.Mod(new(big.Int).Add(big.NewInt(1), dTerm), P)
	xDenInv, ok := field.Invert(xDen, P)
	if !ok {
		panic("edwards25519: addition denominator not invertible")
	}
	x3 := field.Mod(new(big.Int).Mul(xNum, xDenInv), P)

	yNum := field.Mod(new(big.Int).Add(y1y2, x1x2), P)
	yDen := field.Mod(new(big.Int).Sub(big.NewInt(1), dTerm), P)
	yDenInv, ok := field.Invert(yDen, P)
	if !ok {
		panic("edwards25519: addition denominator not invertible")
	}
	y3 := field.Mod(new(big.Int).Mul(yNum, yDenInv), P)

	return &Point{X: x3, Y: y3}
}

// ScalarMul returns k*p via double-and-add, scanning bits LSB to MSB.
func ScalarMul(k *big.Int, p *Point) *Point {
	result := Identity()
	addend := p
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			result = Add(result, addend)
		}
		addend = Add(addend, addend)
	}
	return result
}

// Encode returns the 32-byte little-endian encoding of p: y's bytes with the
// sign bit of x placed in bit 7 of the last byte.
func Encode(p *Point) []byte {
	out := make([]byte, 32)
	yb := p.Y.Bytes() // big-endian
	for i := 0; i < len(yb) && i < 32; i++ {
		out[i] = yb[len(yb)-1-i]
	}
	if p.X.Bit(0) == 1 {
		out[31] |= 0x80
	}
	return out
}

// clampScalar applies the standard Ed25519 clamp to the low 32 bytes of a
// 64-byte expanded seed and returns the resulting little-endian scalar.
func clampScalar(expanded []byte) *big.Int {
	var s [32]byte
	copy(s[:], expanded[:32])
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64

	// interpret little-endian
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[i] = s[31-i]
	}
	return new(big.Int).SetBytes(be)
}

// DerivePub derives a 32-byte Ed25519 public key from a 64-byte expanded
// seed (the output of SHA-512 or Blake2b-512 applied to a 32-byte seed),
// sharing the clamp-then-scalar-multiply core between both variants.
func DerivePub(expanded []byte) ([]byte, error) {
	if len(expanded) != 64 {
		return nil, walleterr.ErrInvalidLength
	}
	s := clampScalar(expanded)
	A := ScalarMul(s, G())
	return Encode(A), nil
}
