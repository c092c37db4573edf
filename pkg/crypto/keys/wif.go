package keys

import (
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/base58"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
)

// WIFVersion is the default version byte of WIF-encoded keys.
const WIFVersion = 0x80

// wifCompressedFlag marks keys whose public key is to be compressed.
const wifCompressedFlag = 0x01

// WIF is a decoded wallet import format key.
type WIF struct {
	Version    byte
	Compressed bool
	PrivateKey *PrivateKey
}

// WIFEncode encodes the 32-byte private key with the given version (WIFVersion
// if zero).
func WIFEncode(key []byte, version byte, compressed bool) (string, error) {
	if len(key) != PrivateKeyLen {
		return "", fmt.Errorf("invalid private key length: %d", len(key))
	}
	if version == 0 {
		version = WIFVersion
	}
	buf := make([]byte, 0, 1+PrivateKeyLen+1)
	buf = append(buf, version)
	buf = append(buf, key...)
	if compressed {
		buf = append(buf, wifCompressedFlag)
	}
	defer slice.Clean(buf)
	return base58.CheckEncode(buf), nil
}

// WIFDecode decodes the WIF string checking its version (WIFVersion if zero).
func WIFDecode(wif string, version byte) (*WIF, error) {
	b, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, err
	}
	defer slice.Clean(b)
	if version == 0 {
		version = WIFVersion
	}

	w := &WIF{Version: version}
	switch len(b) {
	case 1 + PrivateKeyLen:
	case 1 + PrivateKeyLen + 1:
		if flag := b[len(b)-1]; flag != wifCompressedFlag {
			return nil, fmt.Errorf("invalid compression flag %d", flag)
		}
		w.Compressed = true
	default:
		return nil, fmt.Errorf("invalid WIF length %d", len(b))
	}
	if b[0] != version {
		return nil, fmt.Errorf("invalid WIF version %d, expected %d", b[0], version)
	}
	w.PrivateKey, err = NewPrivateKeyFromBytes(b[1 : 1+PrivateKeyLen])
	if err != nil {
		return nil, fmt.Errorf("invalid WIF private key: %w", err)
	}
	return w, nil
}
