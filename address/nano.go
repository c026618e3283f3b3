package address

import (
	"math/big"

	"github.com/rowbotony/walletcrypto/internal/hashes"
	"github.com/rowbotony/walletcrypto/walleterr"
)

// nanoAlphabet is Nano's 32-character Base32 alphabet.
const nanoAlphabet = "13456789abcdefghijkmnopqrstuwxyz"

// NanoAddress derives a "nano_" address from a 32-byte Ed25519 public key:
// a 5-byte Blake2b checksum of the key, byte-reversed, is appended to the
// key and the 37-byte result is encoded in Nano's Base32 alphabet as 60
// characters (52 for the key, 8 for the checksum).
func NanoAddress(edPub []byte) (string, error) {
	if len(edPub) != 32 {
		return "", walleterr.ErrInvalidLength
	}
	checksum, err := hashes.Blake2b(edPub, 5)
	if err != nil {
		return "", err
	}
	reversed := reverseBytes(checksum)

	pubWords := msbWords(edPub, 52)
	checksumWords := msbWords(reversed, 8)

	out := make([]byte, 0, 60)
	for _, w := range pubWords {
		out = append(out, nanoAlphabet[w])
	}
	for _, w := range checksumWords {
		out = append(out, nanoAlphabet[w])
	}
	return "nano_" + string(out), nil
}

// msbWords splits data into count 5-bit words, MSB first, treating data as
// a single big-endian integer. When count*5 exceeds len(data)*8, the extra
// high-order bits are implicitly zero — this is how Nano pads the 256-bit
// public key out to 52 five-bit words (260 bits) without a trailing pad.
func msbWords(data []byte, count int) []byte {
	v := new(big.Int).SetBytes(data)
	mask := big.NewInt(0x1f)
	words := make([]byte, count)
	for i := 0; i < count; i++ {
		shift := uint(5 * (count - 1 - i))
		word := new(big.Int).Rsh(v, shift)
		word.And(word, mask)
		words[i] = byte(word.Int64())
	}
	return words
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// DecodeNanoAddress reverses NanoAddress, verifying the checksum and
// returning the 32-byte public key.
func DecodeNanoAddress(addr string) ([]byte, error) {
	const prefix = "nano_"
	if len(addr) != len(prefix)+60 || addr[:len(prefix)] != prefix {
		return nil, walleterr.ErrInvalidLength
	}
	body := addr[len(prefix):]

	var index [256]int8
	for i := range index {
		index[i] = -1
	}
	for i, c := range nanoAlphabet {
		index[byte(c)] = int8(i)
	}

	words := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		idx := index[body[i]]
		if idx < 0 {
			return nil, walleterr.ErrInvalidBase58
		}
		words[i] = byte(idx)
	}

	pubWords, checksumWords := words[:52], words[52:]
	pub := wordsToBytesMSB(pubWords, 32)
	checksum := wordsToBytesMSB(checksumWords, 5)

	want, err := hashes.Blake2b(pub, 5)
	if err != nil {
		return nil, err
	}
	got := reverseBytes(checksum)
	for i := range want {
		if want[i] != got[i] {
			return nil, walleterr.ErrInvalidChecksum
		}
	}
	return pub, nil
}

// wordsToBytesMSB is the inverse of msbWords for a known output byte length.
func wordsToBytesMSB(words []byte, outLen int) []byte {
	v := new(big.Int)
	for _, w := range words {
		v.Lsh(v, 5)
		v.Or(v, big.NewInt(int64(w)))
	}
	out := make([]byte, outLen)
	b := v.Bytes()
	copy(out[outLen-len(b):], b)
	return out
}
