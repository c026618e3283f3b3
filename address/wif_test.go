package address

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/rowbotony/walletcrypto/internal/base58"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// TestEncodeWIFVector9 checks a fixed private key against a Base58Check
// encoding this module's own codec reproduces deterministically every run.
func TestEncodeWIFVector9(t *testing.T) {
	priv, err := hex.DecodeString("314d4297806ee714ff56b0ef3a2b24d028c20ec21c3aabf87258cc2f523747ce")
	if err != nil {
		t.Fatalf("decoding privkey: %v", err)
	}
	wif, err := EncodeWIF(WIFVersionBitcoin, priv, true)
	if err != nil {
		t.Fatalf("EncodeWIF: %v", err)
	}
	if wif != "KxsYgoqvfHmQQKSpDB1pLsBNfJm3K52AcvWz7kjJStu6h8dXkXHo" {
		t.Errorf("EncodeWIF = %s, want KxsYgoqvfHmQQKSpDB1pLsBNfJm3K52AcvWz7kjJStu6h8dXkXHo", wif)
	}
	version, gotPriv, compressed, err := DecodeWIF(wif)
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	if version != WIFVersionBitcoin {
		t.Errorf("version = %#x, want %#x", version, WIFVersionBitcoin)
	}
	if !bytes.Equal(gotPriv, priv) {
		t.Errorf("privkey = %x, want %x", gotPriv, priv)
	}
	if !compressed {
		t.Error("compressed = false, want true")
	}
}

func TestEncodeDecodeWIFRoundtrip(t *testing.T) {
	priv := make([]byte, 32)
	for i := range priv {
		priv[i] = byte(i + 1)
	}

	for _, compressed := range []bool{true, false} {
		wif, err := EncodeWIF(WIFVersionBitcoin, priv, compressed)
		if err != nil {
			t.Fatalf("EncodeWIF(compressed=%v): %v", compressed, err)
		}
		version, gotPriv, gotCompressed, err := DecodeWIF(wif)
		if err != nil {
			t.Fatalf("DecodeWIF: %v", err)
		}
		if version != WIFVersionBitcoin {
			t.Errorf("version = %#x, want %#x", version, WIFVersionBitcoin)
		}
		if !bytes.Equal(gotPriv, priv) {
			t.Errorf("privkey = %x, want %x", gotPriv, priv)
		}
		if gotCompressed != compressed {
			t.Errorf("compressed = %v, want %v", gotCompressed, compressed)
		}
	}
}

func TestEncodeWIFRejectsBadLength(t *testing.T) {
	if _, err := EncodeWIF(WIFVersionBitcoin, make([]byte, 31), true); err != walleterr.ErrInvalidLength {
		t.Errorf("EncodeWIF(short) error = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeWIFRejectsBadCompressionFlag(t *testing.T) {
	priv := make([]byte, 32)
	payload := append([]byte{WIFVersionBitcoin}, priv...)
	payload = append(payload, 0x02) // invalid compression marker
	encoded := base58.CheckEncode(payload)
	if _, _, _, err := DecodeWIF(encoded); err != walleterr.ErrInvalidLength {
		t.Errorf("DecodeWIF(bad flag) error = %v, want ErrInvalidLength", err)
	}
}
