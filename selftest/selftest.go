// Package selftest implements known-answer checks for the curve engines
// and codecs, each returning a bool rather than failing a test run. Several
// checks cross-validate this module's hand-rolled primitives against
// independent reference implementations (decred's secp256k1, btcsuite's
// base58/bech32, and go-ethereum's Keccak-256) alongside comparing derived
// addresses against known-good vectors.
package selftest

import (
	"bytes"
	"encoding/hex"

	dcrsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/rowbotony/walletcrypto/address"
	"github.com/rowbotony/walletcrypto/internal/base58"
	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/internal/secp256k1"
)

// TestSecp256k1 checks secp256k1 public key derivation against a known
// vector and cross-validates the result against decred's independent
// implementation.
func TestSecp256k1() bool {
	priv := make([]byte, 32)
	priv[31] = 1

	pub, err := secp256k1.DerivePub(priv, true)
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if !bytes.Equal(pub, want) {
		return false
	}

	dcrPub := dcrsecp256k1.PrivKeyFromBytes(priv).PubKey()
	return bytes.Equal(pub, dcrPub.SerializeCompressed())
}

// TestBech32 checks a Bitcoin native SegWit address against a known vector
// and cross-validates the raw words against btcsuite's bech32 codec.
func TestBech32() bool {
	pub, _ := hex.DecodeString("03acfb325a126805c6b26a004dbbd9bce43982085e1c84b4c9ed12ca6e6b2ee7f5")
	addr, err := address.SegwitAddress("bc", pub)
	if err != nil {
		return false
	}
	if addr != "bc1q6dlrm0jhatp27ws2sd2w9mh6gtl4udr7dq29ed" {
		return false
	}

	h := hashes.Hash160(pub)
	words, err := btcbech32.ConvertBits(h, 8, 5, true)
	if err != nil {
		return false
	}
	theirs, err := btcbech32.Encode("bc", append([]byte{0}, words...))
	if err != nil {
		return false
	}
	return theirs == addr
}

// TestCashAddr checks a Bitcoin Cash CashAddr address against a known vector.
func TestCashAddr() bool {
	legacy, err := address.LegacyAddress(address.VersionBitcoin, mustHex("03acfb325a126805c6b26a004dbbd9bce43982085e1c84b4c9ed12ca6e6b2ee7f5"))
	if err != nil {
		return false
	}
	got, err := address.BitcoinCashAddress(legacy)
	if err != nil {
		return false
	}
	return got == "bitcoincash:qrfhu0d72l4v9te6p2p4fchwlfp07h350cq2rxar6d"
}

// TestKeccak256 checks an Ethereum address against a known vector and
// cross-validates the Keccak-256 digest of the public key against
// go-ethereum's Keccak256.
func TestKeccak256() bool {
	compressed := mustHex("03c026c4b041059c84a187252682b6f80cbbe64eb81497111ab6914b050a8936fd")
	uncompressed, err := secp256k1.Expand(compressed)
	if err != nil {
		return false
	}
	got, err := address.EthereumAddress(uncompressed)
	if err != nil {
		return false
	}
	if got != "0x2161DedC3Be05B7Bb5aa16154BcbD254E9e9eb68" {
		return false
	}

	theirHash := ethcrypto.Keccak256(uncompressed[1:])
	return bytes.Equal(theirHash, hashes.Keccak256(uncompressed[1:]))
}

// TestKaspa checks a Kaspa address against a known vector.
func TestKaspa() bool {
	pub := mustHex("03acfb325a126805c6b26a004dbbd9bce43982085e1c84b4c9ed12ca6e6b2ee7f5")
	got, err := address.KaspaAddress(pub)
	if err != nil {
		return false
	}
	return got == "kaspa:q4nanyksjdqzudvn2qpxmhkduusucyzz7rjztfj0dzt9xu6ewul6sn5lwpwkj"
}

// TestAES is an interface-only stub: AES keystore password encryption is an
// external collaborator this module does not implement. It always reports
// false to signal "not wired" rather than fabricate a positive result.
func TestAES() bool {
	return false
}

// TestBase58Checksum verifies that flipping a single character of a
// Base58Check address raises a checksum error, cross-checked against
// btcsuite's decoder, and that the canonical roundtrip itself passes.
func TestBase58Checksum() bool {
	payload := []byte{0x00, 0x01, 0x02, 0x03}
	encoded := base58.CheckEncode(payload)

	decoded, err := base58.CheckDecode(encoded)
	if err != nil || !bytes.Equal(decoded, payload) {
		return false
	}

	_, btcVersion, err := btcbase58.CheckDecode(encoded)
	if err != nil || btcVersion != payload[0] {
		return false
	}

	flipped := []byte(encoded)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	if _, err := base58.CheckDecode(string(flipped)); err == nil {
		return false
	}
	return true
}

// RunAll executes every known-answer check and returns a name->pass map,
// the shape the CLI's "selftest" command renders.
func RunAll() map[string]bool {
	return map[string]bool{
		"secp256k1":       TestSecp256k1(),
		"bech32":          TestBech32(),
		"cashaddr":        TestCashAddr(),
		"keccak256":       TestKeccak256(),
		"kaspa":           TestKaspa(),
		"base58_checksum": TestBase58Checksum(),
		"aes":             TestAES(),
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
