// Package keys implements secp256r1 keys used to sign Neo transactions.
package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nspcc-dev/rfc6979"
)

// PrivateKeyLen is the length of serialized private keys.
const PrivateKeyLen = 32

// PrivateKey is an ECDSA private key. Keys are on secp256r1 unless created
// with Secp256k1 constructors.
type PrivateKey struct {
	ecdsa.PrivateKey
}

// NewPrivateKey generates a random secp256r1 key.
func NewPrivateKey() (*PrivateKey, error) {
	return generateKey(elliptic.P256())
}

// NewSecp256k1PrivateKey generates a random secp256k1 key.
func NewSecp256k1PrivateKey() (*PrivateKey, error) {
	return generateKey(secp256k1.S256())
}

func generateKey(c elliptic.Curve) (*PrivateKey, error) {
	pk, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{*pk}, nil
}

// NewPrivateKeyFromHex decodes a hex-encoded secp256r1 key.
func NewPrivateKeyFromHex(str string) (*PrivateKey, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}
	defer slice.Clean(b)
	return NewPrivateKeyFromBytes(b)
}

// NewPrivateKeyFromBytes returns a secp256r1 key with the given 32-byte BE
// scalar.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	return keyFromScalar(b, elliptic.P256())
}

// NewSecp256k1PrivateKeyFromBytes returns a secp256k1 key with the given
// 32-byte BE scalar.
func NewSecp256k1PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	return keyFromScalar(b, secp256k1.S256())
}

func keyFromScalar(b []byte, c elliptic.Curve) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, fmt.Errorf("invalid byte length: expected %d bytes got %d", PrivateKeyLen, len(b))
	}
	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(c.Params().N) >= 0 {
		return nil, errors.New("invalid private key: out of the curve order range")
	}
	x, y := c.ScalarBaseMult(b)
	return &PrivateKey{ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: c, X: x, Y: y},
		D:         d,
	}}, nil
}

// NewPrivateKeyFromWIF decodes a key in wallet import format.
func NewPrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	w, err := WIFDecode(wif, WIFVersion)
	if err != nil {
		return nil, err
	}
	return w.PrivateKey, nil
}

// WIF returns the key in compressed wallet import format.
func (p *PrivateKey) WIF() string {
	pb := p.Bytes()
	defer slice.Clean(pb)
	w, err := WIFEncode(pb, WIFVersion, true)
	if err != nil {
		// Bytes always returns PrivateKeyLen bytes.
		panic(err)
	}
	return w
}

// Destroy zeroes the scalar of the key, it can't be used after that.
func (p *PrivateKey) Destroy() {
	bits := p.D.Bits()
	for i := range bits {
		bits[i] = 0
	}
}

// PublicKey returns the public part of the key.
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := PublicKey(p.PrivateKey.PublicKey)
	return &pub
}

// Address returns the address of the standard account of the key.
func (p *PrivateKey) Address() string {
	return p.PublicKey().Address()
}

// GetScriptHash returns the script hash of the standard account of the key.
func (p *PrivateKey) GetScriptHash() util.Uint160 {
	return p.PublicKey().GetScriptHash()
}

// Sign signs SHA256 of data.
func (p *PrivateKey) Sign(data []byte) []byte {
	return p.SignHash(sha256.Sum256(data))
}

// SignHash signs the digest. Signatures are deterministic (RFC 6979) and
// returned in the 64-byte r||s form.
func (p *PrivateKey) SignHash(digest util.Uint256) []byte {
	r, s := rfc6979.SignECDSA(&p.PrivateKey, digest[:], sha256.New)
	size := p.Curve.Params().P.BitLen() / 8
	sig := make([]byte, 2*size)
	r.FillBytes(sig[:size])
	s.FillBytes(sig[size:])
	return sig
}

// SignHashable signs the network-specific hash of hh (see hash.NetSha256),
// that's how transactions are signed.
func (p *PrivateKey) SignHashable(net uint32, hh hash.Hashable) []byte {
	return p.SignHash(hash.NetSha256(net, hh))
}

// String implements the fmt.Stringer interface, it returns hex-encoded key
// bytes.
func (p *PrivateKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

// Bytes returns the 32-byte BE scalar of the key.
func (p *PrivateKey) Bytes() []byte {
	res := make([]byte, PrivateKeyLen)
	p.D.FillBytes(res)
	return res
}
