// Package field implements the modular arithmetic shared by the secp256k1
// and Ed25519 engines: reduction, modular exponentiation, modular inverse via
// extended Euclid, and the p ≡ 3 (mod 4) square-root shortcut. Everything
// here operates on *big.Int and is allocation-heavy rather than constant
// time.
package field

import "math/big"

// Mod returns the unique representative of a in [0, p).
func Mod(a, p *big.Int) *big.Int {
	r := new(big.Int).Mod(a, p)
	if r.Sign() < 0 {
		r.Add(r, p)
	}
	return r
}

// PowMod returns b^e mod p via square-and-multiply.
func PowMod(b, e, p *big.Int) *big.Int {
	if e.Sign() < 0 {
		panic("field: PowMod requires a non-negative exponent")
	}
	result := big.NewInt(1)
	base := Mod(b, p)
	exp := new(big.Int).Set(e)
	zero := big.NewInt(0)
	two := big.NewInt(2)
	for exp.Cmp(zero) > 0 {
		if new(big.Int).And(exp, big.NewInt(1)).Sign() != 0 {
			result.Mod(result.Mul(result, base), p)
		}
		base.Mod(base.Mul(base, base), p)
		exp.Div(exp, two)
	}
	return result
}

// Invert returns a^-1 mod p via the extended Euclidean algorithm. It returns
// ok=false when gcd(a, p) != 1.
func Invert(a, p *big.Int) (inv *big.Int, ok bool) {
	aa := Mod(a, p)
	if aa.Sign() == 0 {
		return nil, false
	}

	// Extended Euclid: track (old_r, r) and (old_s, s) such that
	// old_s*p0 + ... reduces to gcd(a, p) = old_r.
	oldR, r := new(big.Int).Set(p), new(big.Int).Set(aa)
	oldS, s := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
	}

	if oldR.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	return Mod(oldS, p), true
}

// SqrtMod returns a square root of a mod p when p ≡ 3 (mod 4), i.e. a value r
// such that r*r ≡ a (mod p). It returns ok=false if a has no square root.
func SqrtMod(a, p *big.Int) (root *big.Int, ok bool) {
	three := big.NewInt(3)
	four := big.NewInt(4)
	if new(big.Int).Mod(p, four).Cmp(three) != 0 {
		panic("field: SqrtMod only supports p ≡ 3 (mod 4)")
	}

	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Div(exp, four)
	r := PowMod(a, exp, p)

	check := PowMod(r, big.NewInt(2), p)
	if check.Cmp(Mod(a, p)) != 0 {
		return nil, false
	}
	return r, true
}
