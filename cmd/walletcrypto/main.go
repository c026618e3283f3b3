// Command walletcrypto is a thin operator CLI over the walletcrypto
// library: derive an address for a given currency and private key, encode
// a WIF, or run the self-test known-answer vectors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	walletcrypto "github.com/rowbotony/walletcrypto"
	"github.com/rowbotony/walletcrypto/address"
	"github.com/rowbotony/walletcrypto/internal/util"
	"github.com/rowbotony/walletcrypto/selftest"
)

var version = "dev"

var outputFormat string

func main() {
	root := &cobra.Command{
		Use:     "walletcrypto",
		Short:   "Derive cryptocurrency addresses from raw keys",
		Version: version,
	}
	root.PersistentFlags().StringVar(&outputFormat, "format", "json", "output format: json|yaml")

	root.AddCommand(deriveCmd(), wifCmd(), selftestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func deriveCmd() *cobra.Command {
	var privHex string

	cmd := &cobra.Command{
		Use:   "derive <chain>",
		Short: "Derive an address for the given chain from a private/seed key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain := address.Chain(args[0])
			priv, err := walletcrypto.DecodeHex(privHex)
			if err != nil {
				return fmt.Errorf("decoding --priv: %w", err)
			}

			var pubkey []byte
			switch chain {
			case address.ChainNimiq:
				pubkey, err = walletcrypto.DeriveEd25519PubSHA512(priv)
			case address.ChainNano:
				pubkey, err = walletcrypto.DeriveEd25519PubBlake2b(priv)
			case address.ChainEthereum:
				pubkey, err = walletcrypto.DeriveSecp256k1Pub(priv, false)
			default:
				pubkey, err = walletcrypto.DeriveSecp256k1Pub(priv, true)
			}
			if err != nil {
				return fmt.Errorf("deriving public key: %w", err)
			}

			addr, err := address.DeriveAddress(chain, pubkey)
			if err != nil {
				return fmt.Errorf("deriving address: %w", err)
			}

			return util.OutputResult(map[string]string{
				"chain":   string(chain),
				"pubkey":  fmt.Sprintf("%x", pubkey),
				"address": addr,
			}, outputFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&privHex, "priv", "", "hex-encoded private key or seed (32 bytes, lowercase)")
	cmd.MarkFlagRequired("priv") //nolint:errcheck

	return cmd
}

func wifCmd() *cobra.Command {
	var privHex string
	var compressed bool

	cmd := &cobra.Command{
		Use:   "wif <chain>",
		Short: "Encode a private key in Wallet Import Format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := walletcrypto.DecodeHex(privHex)
			if err != nil {
				return fmt.Errorf("decoding --priv: %w", err)
			}

			var ver byte
			switch address.Chain(args[0]) {
			case address.ChainBitcoin, address.ChainBitcoinSegwit, address.ChainBitcoinCash:
				ver = address.WIFVersionBitcoin
			case address.ChainLitecoin, address.ChainLitecoinSegwit:
				ver = address.WIFVersionLitecoin
			case address.ChainDogecoin:
				ver = address.WIFVersionDogecoin
			case address.ChainDash:
				ver = address.WIFVersionDash
			default:
				return fmt.Errorf("wif: unsupported chain %q", args[0])
			}

			wif, err := address.EncodeWIF(ver, priv, compressed)
			if err != nil {
				return fmt.Errorf("encoding wif: %w", err)
			}
			return util.OutputResult(map[string]string{"wif": wif}, outputFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&privHex, "priv", "", "hex-encoded 32-byte private key (lowercase)")
	cmd.Flags().BoolVar(&compressed, "compressed", true, "mark the WIF as corresponding to a compressed public key")
	cmd.MarkFlagRequired("priv") //nolint:errcheck

	return cmd
}

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the known-answer self-test vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := selftest.RunAll()
			allPassed := true
			for _, ok := range results {
				if !ok {
					allPassed = false
				}
			}
			if err := util.OutputResult(results, outputFormat, os.Stdout); err != nil {
				return err
			}
			if !allPassed {
				os.Exit(1)
			}
			return nil
		},
	}
}
