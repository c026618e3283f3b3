// Package secp256k1 implements the scalar-multiplication engine used by
// Bitcoin-family address derivation: public key derivation, point
// compression/decompression, and the curve's field constants. The curve is
// y^2 = x^3 + 7 over the 256-bit prime field used by Bitcoin, Litecoin,
// Dogecoin, Dash, Bitcoin Cash, Ethereum and Kaspa.
package secp256k1

import (
	"math/big"

	"github.com/rowbotony/walletcrypto/internal/field"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// P is the secp256k1 field prime: 2^256 - 2^32 - 977.
var P = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

// N is the secp256k1 group order.
var N = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

// Gx, Gy are the coordinates of the base point G.
var (
	Gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
)

var seven = big.NewInt(7)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: bad constant " + s)
	}
	return n
}

// Point is an affine point on the curve. A nil Point represents the point at infinity.
type Point struct {
	X, Y *big.Int
}

// isInfinity reports whether p is the identity element.
func (p *Point) isInfinity() bool {
	return p == nil
}

// G is the secp256k1 base point.
func G() *Point { return &Point{X: new(big.Int).Set(Gx), Y: new(big.Int).Set(Gy)} }

// double returns 2*p.
func double(p *Point) *Point {
	if p.isInfinity() || p.Y.Sign() == 0 {
		return nil
	}
	// lambda = (3x^2) / (2y) mod P
	num := field.Mod(new(big.Int).Mul(big.NewInt(3), new(big.Int).Mul(p.X, p.X)), P)
	den := field.Mod(new(big.Int).Mul(big.NewInt(2), p.Y), P)
	denInv, ok := field.Invert(den, P)
	if !ok {
		return nil
	}
	lambda := field.Mod(new(big.Int).Mul(num, denInv), P)

	x3 := field.Mod(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), new(big.Int).Mul(big.NewInt(2), p.X)), P)
	y3 := field.Mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p.X, x3)), p.Y), P)
	return &Point{X: x3, Y: y3}
}

// add returns p+q for distinct, non-inverse points (falls back to double/identity as needed).
func add(p, q *Point) *Point {
	if p.isInfinity() {
		return q
	}
	if q.isInfinity() {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		if field.Mod(new(big.Int).Add(p.Y, q.Y), P).Sign() == 0 {
			return nil
		}
		return double(p)
	}
	num := field.Mod(new(big.Int).Sub(q.Y, p.Y), P)
	den := field.Mod(new(big.Int).Sub(q.X, p.X), P)
	denInv, ok := field.Invert(den, P)
	if !ok {
		return nil
	}
	lambda := field.Mod(new(big.Int).Mul(num, denInv), P)

	x3 := field.Mod(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), p.X), q.X), P)
	y3 := field.Mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p.X, x3)), p.Y), P)
	return &Point{X: x3, Y: y3}
}

// ScalarMul returns k*p via a double-and-add ladder, LSB to MSB.
func ScalarMul(k *big.Int, p *Point) *Point {
	var result *Point // point at infinity
	addend := p
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			result = add(result, addend)
		}
		addend = double(addend)
	}
	return result
}

// ScalarMulG returns k*G, rejecting k=0 and k>=N per spec: only scalars in
// [1, N-1] are valid for derivation.
func ScalarMulG(k *big.Int) (*Point, error) {
	if k.Sign() == 0 || k.Cmp(N) >= 0 {
		return nil, walleterr.ErrInvalidScalar
	}
	return ScalarMul(k, G()), nil
}

// onCurve reports whether (x, y) satisfies y^2 = x^3 + 7 (mod P).
func onCurve(x, y *big.Int) bool {
	lhs := field.Mod(new(big.Int).Mul(y, y), P)
	rhs := field.Mod(new(big.Int).Add(new(big.Int).Exp(x, big.NewInt(3), P), seven), P)
	return lhs.Cmp(rhs) == 0
}

// Compress encodes p as the 33-byte SEC1 compressed form: 0x02/0x03 prefix
// by y parity, followed by 32 big-endian bytes of x.
func Compress(p *Point) []byte {
	out := make([]byte, 33)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xb := p.X.Bytes()
	copy(out[1+32-len(xb):], xb)
	return out
}

// Decompress parses a 33-byte compressed point, recovering y via sqrt_mod
// and choosing the root matching the prefix's parity.
func Decompress(compressed []byte) (*Point, error) {
	if len(compressed) != 33 {
		return nil, walleterr.ErrInvalidLength
	}
	prefix := compressed[0]
	if prefix != 0x02 && prefix != 0x03 {
		return nil, walleterr.ErrInvalidPoint
	}
	x := new(big.Int).SetBytes(compressed[1:])
	if x.Cmp(P) >= 0 {
		return nil, walleterr.ErrInvalidPoint
	}

	rhs := field.Mod(new(big.Int).Add(new(big.Int).Exp(x, big.NewInt(3), P), seven), P)
	y, ok := field.SqrtMod(rhs, P)
	if !ok {
		return nil, walleterr.ErrInvalidPoint
	}

	wantOdd := prefix == 0x03
	if (y.Bit(0) == 1) != wantOdd {
		y = field.Mod(new(big.Int).Sub(P, y), P)
	}

	p := &Point{X: x, Y: y}
	if !onCurve(p.X, p.Y) {
		return nil, walleterr.ErrInvalidPoint
	}
	return p, nil
}

// Uncompressed encodes p as 0x04 || x || y, 65 bytes total.
func Uncompressed(p *Point) []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(out[1+32-len(xb):33], xb)
	copy(out[33+32-len(yb):], yb)
	return out
}

// Expand decompresses a 33-byte compressed key and re-encodes it in
// uncompressed 65-byte form.
func Expand(compressed []byte) ([]byte, error) {
	p, err := Decompress(compressed)
	if err != nil {
		return nil, err
	}
	return Uncompressed(p), nil
}

// DerivePub derives the compressed or uncompressed public key for a 32-byte
// big-endian private key scalar.
func DerivePub(priv []byte, compressed bool) ([]byte, error) {
	if len(priv) != 32 {
		return nil, walleterr.ErrInvalidLength
	}
	k := new(big.Int).SetBytes(priv)
	p, err := ScalarMulG(k)
	if err != nil {
		return nil, err
	}
	if compressed {
		return Compress(p), nil
	}
	return Uncompressed(p), nil
}
