package address

import (
	"fmt"

	"github.com/rowbotony/walletcrypto/walleterr"
)

// Chain identifies a supported currency.
type Chain string

const (
	ChainBitcoin        Chain = "bitcoin"
	ChainBitcoinSegwit  Chain = "bitcoin-segwit"
	ChainLitecoin       Chain = "litecoin"
	ChainLitecoinSegwit Chain = "litecoin-segwit"
	ChainDogecoin       Chain = "dogecoin"
	ChainDash           Chain = "dash"
	ChainBitcoinCash    Chain = "bitcoincash"
	ChainEthereum       Chain = "ethereum"
	ChainKaspa          Chain = "kaspa"
	ChainNimiq          Chain = "nimiq"
	ChainNano           Chain = "nano"
)

// DeriveAddress dispatches to the per-chain address builder. ECDSA chains
// take a compressed (33-byte) or, for Ethereum, uncompressed (65-byte)
// secp256k1 public key; Nimiq and Nano take a 32-byte Ed25519 public key.
func DeriveAddress(chain Chain, pubkey []byte) (string, error) {
	switch chain {
	case ChainBitcoin:
		return LegacyAddress(VersionBitcoin, pubkey)
	case ChainBitcoinSegwit:
		return SegwitAddress("bc", pubkey)
	case ChainLitecoin:
		return LegacyAddress(VersionLitecoin, pubkey)
	case ChainLitecoinSegwit:
		return SegwitAddress("ltc", pubkey)
	case ChainDogecoin:
		return LegacyAddress(VersionDogecoin, pubkey)
	case ChainDash:
		return LegacyAddress(VersionDash, pubkey)
	case ChainBitcoinCash:
		legacy, err := LegacyAddress(VersionBitcoin, pubkey)
		if err != nil {
			return "", err
		}
		return BitcoinCashAddress(legacy)
	case ChainEthereum:
		return EthereumAddress(pubkey)
	case ChainKaspa:
		return KaspaAddress(pubkey)
	case ChainNimiq:
		return NimiqAddress(pubkey)
	case ChainNano:
		return NanoAddress(pubkey)
	default:
		return "", fmt.Errorf("%w: unsupported chain %q", walleterr.ErrInvalidLength, chain)
	}
}

// AllChains lists every chain DeriveAddress supports, for CLI enumeration
// and self-test sweeps.
func AllChains() []Chain {
	return []Chain{
		ChainBitcoin, ChainBitcoinSegwit, ChainLitecoin, ChainLitecoinSegwit,
		ChainDogecoin, ChainDash, ChainBitcoinCash, ChainEthereum, ChainKaspa,
		ChainNimiq, ChainNano,
	}
}
