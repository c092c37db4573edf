package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/interop/interopnames"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// coordLen is the size of serialized X or Y coordinate.
	coordLen = 32
	// PublicKeyLen is the size of a compressed public key.
	PublicKeyLen = 1 + coordLen
	// SignatureLen is the size of r||s signature.
	SignatureLen = 2 * coordLen

	prefixInfinity     = 0x00
	prefixCompressed   = 0x02
	prefixUncompressed = 0x04

	// verificationScriptLen is PUSHDATA1 <len> <key> SYSCALL <id>.
	verificationScriptLen = 2 + PublicKeyLen + 1 + 4
)

var (
	checkSigID = interopnames.ToID([]byte(interopnames.SystemCryptoCheckSig))

	errInvalidKey = errors.New("invalid key size/prefix")
	errNotOnCurve = errors.New("point is not on the curve")
)

// PublicKey is an EC point of secp256r1 (or secp256k1) curve. A key with nil
// coordinates is the point at infinity.
type PublicKey ecdsa.PublicKey

// NewPublicKeyFromString decodes a hex-encoded secp256r1 public key.
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyFromBytes(b, elliptic.P256())
}

// NewPublicKeyFromBytes decodes a compressed or uncompressed point of the
// given curve.
func NewPublicKeyFromBytes(b []byte, curve elliptic.Curve) (*PublicKey, error) {
	p := &PublicKey{Curve: curve}
	if err := p.DecodeBytes(b); err != nil {
		return nil, err
	}
	return p, nil
}

// IsInfinity checks whether p is the point at infinity.
func (p *PublicKey) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// Cmp compares keys by X and then by Y coordinate, infinity is the lowest.
func (p *PublicKey) Cmp(key *PublicKey) int {
	pInf, kInf := p.IsInfinity(), key.IsInfinity()
	switch {
	case pInf && kInf:
		return 0
	case pInf:
		return -1
	case kInf:
		return 1
	}
	if c := p.X.Cmp(key.X); c != 0 {
		return c
	}
	return p.Y.Cmp(key.Y)
}

// Equal checks whether keys represent the same point.
func (p *PublicKey) Equal(key *PublicKey) bool {
	return p.Cmp(key) == 0
}

// Bytes returns the compressed key, infinity is encoded as a single zero byte.
func (p *PublicKey) Bytes() []byte {
	if p.IsInfinity() {
		return []byte{prefixInfinity}
	}
	res := make([]byte, PublicKeyLen)
	res[0] = prefixCompressed | byte(p.Y.Bit(0))
	p.X.FillBytes(res[1:])
	return res
}

// StringCompressed returns hex-encoded compressed key.
func (p *PublicKey) StringCompressed() string {
	return hex.EncodeToString(p.Bytes())
}

// String implements the fmt.Stringer interface.
func (p *PublicKey) String() string {
	return p.StringCompressed()
}

// DecodeBytes decodes the key from a compressed, uncompressed or infinity
// encoding. The curve is secp256r1 unless set before.
func (p *PublicKey) DecodeBytes(data []byte) error {
	if len(data) == 0 || len(data) != encodedLen(data[0]) {
		return errInvalidKey
	}
	return p.setPoint(data)
}

// encodedLen returns the size of the point encoded with the given prefix or
// 0 for unknown prefixes.
func encodedLen(prefix byte) int {
	switch prefix {
	case prefixInfinity:
		return 1
	case prefixCompressed, prefixCompressed | 1:
		return PublicKeyLen
	case prefixUncompressed:
		return 1 + 2*coordLen
	}
	return 0
}

func (p *PublicKey) setPoint(data []byte) error {
	if p.Curve == nil {
		p.Curve = elliptic.P256()
	}
	if data[0] == prefixInfinity {
		p.X, p.Y = nil, nil
		return nil
	}
	var (
		fieldP = p.Params().P
		x      = new(big.Int).SetBytes(data[1 : 1+coordLen])
		y      *big.Int
	)
	if x.Cmp(fieldP) >= 0 {
		return errors.New("X coordinate exceeds the field size")
	}
	if data[0] == prefixUncompressed {
		y = new(big.Int).SetBytes(data[1+coordLen:])
		if y.Cmp(fieldP) >= 0 || !p.Curve.IsOnCurve(x, y) {
			return errNotOnCurve
		}
	} else {
		var err error
		y, err = decompressY(p.Curve, x, data[0]&1 == 1)
		if err != nil {
			return err
		}
	}
	p.X, p.Y = x, y
	return nil
}

// decompressY solves y² = x³ + ax + b for y of the given parity, a is -3 for
// secp256r1 and 0 for secp256k1.
func decompressY(curve elliptic.Curve, x *big.Int, odd bool) (*big.Int, error) {
	params := curve.Params()
	y2 := new(big.Int).Exp(x, big.NewInt(3), params.P)
	if _, koblitz := curve.(*secp256k1.KoblitzCurve); !koblitz {
		ax := new(big.Int).Mul(x, big.NewInt(3))
		y2.Sub(y2, ax)
	}
	y2.Add(y2, params.B)
	y2.Mod(y2, params.P)
	y := new(big.Int).ModSqrt(y2, params.P)
	if y == nil {
		return nil, errNotOnCurve
	}
	if (y.Bit(0) == 1) != odd {
		y.Neg(y).Mod(y, params.P)
	}
	return y, nil
}

// DecodeBinary implements the io.Serializable interface.
func (p *PublicKey) DecodeBinary(r *io.BinReader) {
	prefix := r.ReadB()
	if r.Err != nil {
		return
	}
	n := encodedLen(prefix)
	if n == 0 {
		r.Err = fmt.Errorf("invalid public key prefix %d", prefix)
		return
	}
	data := make([]byte, n)
	data[0] = prefix
	r.ReadBytes(data[1:])
	if r.Err != nil {
		return
	}
	r.Err = p.setPoint(data)
}

// EncodeBinary implements the io.Serializable interface.
func (p *PublicKey) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(p.Bytes())
}

// MarshalJSON implements the json.Marshaler interface.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.StringCompressed())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	return p.DecodeBytes(b)
}

// GetVerificationScript returns the standard signature verification script
// for the key.
func (p *PublicKey) GetVerificationScript() []byte {
	script := make([]byte, 0, verificationScriptLen)
	script = append(script, byte(opcode.PUSHDATA1), PublicKeyLen)
	script = append(script, p.Bytes()...)
	script = append(script, byte(opcode.SYSCALL))
	return binary.LittleEndian.AppendUint32(script, checkSigID)
}

// GetScriptHash returns the hash of the key's verification script, that is
// the account it controls.
func (p *PublicKey) GetScriptHash() util.Uint160 {
	return hash.Hash160(p.GetVerificationScript())
}

// Address returns the address of the key's account.
func (p *PublicKey) Address() string {
	return address.Uint160ToString(p.GetScriptHash())
}

// Verify checks r||s signature of the hash.
func (p *PublicKey) Verify(signature []byte, hash []byte) bool {
	if p.IsInfinity() || len(signature) != SignatureLen {
		return false
	}
	r := new(big.Int).SetBytes(signature[:coordLen])
	s := new(big.Int).SetBytes(signature[coordLen:])
	return ecdsa.Verify((*ecdsa.PublicKey)(p), hash, r, s)
}

// VerifyHashable checks the signature of the hashable item made for the
// given network.
func (p *PublicKey) VerifyHashable(signature []byte, net uint32, hh hash.Hashable) bool {
	digest := hash.NetSha256(net, hh)
	return p.Verify(signature, digest[:])
}
