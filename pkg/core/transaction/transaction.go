// Package transaction contains Neo N3 transaction model with its signers,
// attributes and witnesses along with the binary and JSON codecs.
package transaction

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
)

const (
	// MaxScriptLength is the limit for transaction's script length.
	MaxScriptLength = math.MaxUint16
	// MaxTransactionSize is the upper limit size in bytes that a transaction can reach. It is
	// set to be 102400.
	MaxTransactionSize = 102400
	// MaxAttributes is maximum number of attributes including signers that can be contained
	// within a transaction. It is set to be 16.
	MaxAttributes = 16
)

// Transaction is a process recorded in the Neo blockchain.
type Transaction struct {
	// The trading version which is currently 0.
	Version uint8

	// Random number to avoid hash collision.
	Nonce uint32

	// Fee to be burned.
	SystemFee int64

	// Fee to be distributed to consensus nodes.
	NetworkFee int64

	// Maximum blockchain height exceeding which
	// transaction should fail verification.
	ValidUntilBlock uint32

	// Code to run in NeoVM for this transaction.
	Script []byte

	// Transaction attributes.
	Attributes []Attribute

	// Transaction signers list (starts with Sender).
	Signers []Signer

	// The scripts that comes with this transaction.
	// Scripts exist out of the verification script
	// and invocation script.
	Scripts []Witness
}

// Various errors for transaction validation.
var (
	ErrInvalidVersion     = errors.New("only version 0 is supported")
	ErrNegativeSystemFee  = errors.New("negative system fee")
	ErrNegativeNetworkFee = errors.New("negative network fee")
	ErrTooBigFees         = errors.New("too big fees: int64 overflow")
	ErrEmptySigners       = errors.New("signers array should contain sender")
	ErrNonUniqueSigners   = errors.New("transaction signers should be unique")
	ErrTooManySigners     = errors.New("too many signers")
	ErrTooManyAttributes  = errors.New("too many attributes")
	ErrInvalidAttribute   = errors.New("invalid attribute")
	ErrEmptyScript        = errors.New("no script")
	ErrInvalidWitnessNum  = errors.New("number of signers doesn't match witnesses")
	ErrTxTooBig           = errors.New("transaction is too big")
)

// New returns a new transaction to execute given script and pay given system
// fee.
func New(script []byte, gas int64) *Transaction {
	return &Transaction{
		Version:    0,
		Nonce:      rand.Uint32(),
		Script:     script,
		SystemFee:  gas,
		Attributes: []Attribute{},
		Signers:    []Signer{},
		Scripts:    []Witness{},
	}
}

// NewTransactionFromBytes decodes byte array into *Transaction. Trailing data
// is rejected.
func NewTransactionFromBytes(b []byte) (*Transaction, error) {
	if len(b) > MaxTransactionSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTxTooBig, len(b))
	}
	tx := &Transaction{}
	r := io.NewBinReaderFromBuf(b)
	tx.DecodeBinary(r)
	r.CheckEOF()
	if r.Err != nil {
		return nil, r.Err
	}
	return tx, nil
}

// Hash returns the hash of the transaction: SHA256 of its hashable
// (witness-less) part.
func (t *Transaction) Hash() util.Uint256 {
	buf := io.NewBufBinWriter()
	t.EncodeHashableFields(buf.BinWriter)
	if buf.Err != nil {
		panic(fmt.Sprintf("failed to encode transaction: %v", buf.Err))
	}
	return hash.Sha256(buf.Bytes())
}

// HasAttribute returns true iff t has an attribute of type typ.
func (t *Transaction) HasAttribute(typ AttrType) bool {
	for i := range t.Attributes {
		if t.Attributes[i].Type == typ {
			return true
		}
	}
	return false
}

// GetAttributes returns the list of transaction's attributes of the given type.
// Returns nil in case if attributes not found.
func (t *Transaction) GetAttributes(typ AttrType) []Attribute {
	var result []Attribute
	for _, attr := range t.Attributes {
		if attr.Type == typ {
			result = append(result, attr)
		}
	}
	return result
}

// DecodeBinary implements the Serializable interface.
func (t *Transaction) DecodeBinary(br *io.BinReader) {
	t.DecodeHashableFields(br)
	if br.Err != nil {
		return
	}
	t.Scripts = io.ReadArray[Witness](br, MaxAttributes)
	if br.Err != nil {
		return
	}
	if len(t.Signers) != len(t.Scripts) {
		br.Err = fmt.Errorf("%w: %d vs %d", ErrInvalidWitnessNum, len(t.Signers), len(t.Scripts))
	}
}

// DecodeHashableFields decodes the fields that are used for signing the
// transaction, which are all fields except the scripts.
func (t *Transaction) DecodeHashableFields(br *io.BinReader) {
	t.Version = br.ReadB()
	t.Nonce = br.ReadU32LE()
	t.SystemFee = int64(br.ReadU64LE())
	t.NetworkFee = int64(br.ReadU64LE())
	t.ValidUntilBlock = br.ReadU32LE()
	nsigners := br.ReadVarUint()
	if br.Err != nil {
		return
	}
	if nsigners > MaxAttributes {
		br.Err = fmt.Errorf("%w: %d", ErrTooManySigners, nsigners)
		return
	}
	if nsigners == 0 {
		br.Err = ErrEmptySigners
		return
	}
	t.Signers = make([]Signer, nsigners)
	for i := range t.Signers {
		t.Signers[i].DecodeBinary(br)
	}
	nattrs := br.ReadVarUint()
	if br.Err != nil {
		return
	}
	if nattrs > MaxAttributes-nsigners {
		br.Err = fmt.Errorf("%w: %d attributes with %d signers", ErrTooManyAttributes, nattrs, nsigners)
		return
	}
	t.Attributes = make([]Attribute, nattrs)
	for i := range t.Attributes {
		t.Attributes[i].DecodeBinary(br)
	}
	t.Script = br.ReadVarBytes(MaxScriptLength)
	if br.Err == nil {
		br.Err = t.isValid()
	}
}

// EncodeBinary implements the Serializable interface.
func (t *Transaction) EncodeBinary(bw *io.BinWriter) {
	t.EncodeHashableFields(bw)
	io.WriteArray(bw, t.Scripts)
}

// EncodeHashableFields encodes the fields that are not used for
// signing the transaction, which are all fields except the scripts.
func (t *Transaction) EncodeHashableFields(bw *io.BinWriter) {
	bw.WriteB(t.Version)
	bw.WriteU32LE(t.Nonce)
	bw.WriteU64LE(uint64(t.SystemFee))
	bw.WriteU64LE(uint64(t.NetworkFee))
	bw.WriteU32LE(t.ValidUntilBlock)
	io.WriteArray(bw, t.Signers)
	io.WriteArray(bw, t.Attributes)
	bw.WriteVarBytes(t.Script)
}

// Bytes converts the transaction to []byte, it returns nil if the
// transaction can't be encoded.
func (t *Transaction) Bytes() []byte {
	buf := io.NewBufBinWriter()
	t.EncodeBinary(buf.BinWriter)
	if buf.Err != nil {
		return nil
	}
	return buf.Bytes()
}

// Base64 returns the standard base64 encoding of the transaction, that's
// the form nodes accept for submission.
func (t *Transaction) Base64() string {
	return base64.StdEncoding.EncodeToString(t.Bytes())
}

// Size returns size of the serialized transaction.
func (t *Transaction) Size() int {
	return io.GetVarSize(t)
}

// FeePerByte returns NetworkFee of the transaction divided by
// its size.
func (t *Transaction) FeePerByte() int64 {
	return t.NetworkFee / int64(t.Size())
}

// Sender returns the sender of the transaction which is always on the first place
// in the transaction's signers list.
func (t *Transaction) Sender() util.Uint160 {
	if len(t.Signers) == 0 {
		panic("transaction does not have signers")
	}
	return t.Signers[0].Account
}

// HasSigner returns true in case if hash is present in the list of signers.
func (t *Transaction) HasSigner(hash util.Uint160) bool {
	for _, h := range t.Signers {
		if h.Account.Equals(hash) {
			return true
		}
	}
	return false
}

// Copy creates a deep copy of the Transaction.
func (t *Transaction) Copy() *Transaction {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Script = slice.Copy(t.Script)
	if t.Attributes != nil {
		cp.Attributes = make([]Attribute, len(t.Attributes))
		for i := range t.Attributes {
			cp.Attributes[i] = *t.Attributes[i].Copy()
		}
	}
	if t.Signers != nil {
		cp.Signers = make([]Signer, len(t.Signers))
		for i := range t.Signers {
			cp.Signers[i] = *t.Signers[i].Copy()
		}
	}
	if t.Scripts != nil {
		cp.Scripts = make([]Witness, len(t.Scripts))
		for i := range t.Scripts {
			cp.Scripts[i] = t.Scripts[i].Copy()
		}
	}
	return &cp
}

// transactionJSON is a wrapper for Transaction and
// used for correct marhalling of transaction.Data.
type transactionJSON struct {
	TxID            util.Uint256 `json:"hash"`
	Size            int          `json:"size"`
	Version         uint8        `json:"version"`
	Nonce           uint32       `json:"nonce"`
	Sender          string       `json:"sender"`
	SystemFee       int64        `json:"sysfee,string"`
	NetworkFee      int64        `json:"netfee,string"`
	ValidUntilBlock uint32       `json:"validuntilblock"`
	Attributes      []Attribute  `json:"attributes"`
	Signers         []Signer     `json:"signers"`
	Script          []byte       `json:"script"`
	Scripts         []Witness    `json:"witnesses"`
}

// MarshalJSON implements the json.Marshaler interface.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	tx := transactionJSON{
		TxID:            t.Hash(),
		Size:            t.Size(),
		Version:         t.Version,
		Nonce:           t.Nonce,
		Sender:          address.Uint160ToString(t.Sender()),
		ValidUntilBlock: t.ValidUntilBlock,
		Attributes:      t.Attributes,
		Signers:         t.Signers,
		Script:          t.Script,
		Scripts:         t.Scripts,
		SystemFee:       t.SystemFee,
		NetworkFee:      t.NetworkFee,
	}
	return json.Marshal(tx)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	tx := new(transactionJSON)
	if err := json.Unmarshal(data, tx); err != nil {
		return err
	}
	t.Version = tx.Version
	t.Nonce = tx.Nonce
	t.ValidUntilBlock = tx.ValidUntilBlock
	t.Attributes = tx.Attributes
	t.Signers = tx.Signers
	t.Scripts = tx.Scripts
	t.SystemFee = tx.SystemFee
	t.NetworkFee = tx.NetworkFee
	t.Script = tx.Script
	if len(t.Signers) != 0 && tx.Sender != "" {
		sender, err := address.StringToUint160(tx.Sender)
		if err != nil {
			return fmt.Errorf("bad sender: %w", err)
		}
		if !sender.Equals(t.Signers[0].Account) {
			return errors.New("sender doesn't match the first signer")
		}
	}
	if t.Hash() != tx.TxID {
		return errors.New("txid doesn't match transaction hash")
	}
	return t.isValid()
}

// isValid checks whether decoded/unmarshalled transaction has all fields valid.
func (t *Transaction) isValid() error {
	if t.Version > 0 {
		return ErrInvalidVersion
	}
	if t.SystemFee < 0 {
		return ErrNegativeSystemFee
	}
	if t.NetworkFee < 0 {
		return ErrNegativeNetworkFee
	}
	if t.NetworkFee+t.SystemFee < t.SystemFee {
		return ErrTooBigFees
	}
	if len(t.Signers) == 0 {
		return ErrEmptySigners
	}
	if len(t.Signers) > MaxAttributes {
		return ErrTooManySigners
	}
	if len(t.Signers)+len(t.Attributes) > MaxAttributes {
		return ErrTooManyAttributes
	}
	for i := 0; i < len(t.Signers); i++ {
		for j := i + 1; j < len(t.Signers); j++ {
			if t.Signers[i].Account.Equals(t.Signers[j].Account) {
				return ErrNonUniqueSigners
			}
		}
	}
	attrs := map[AttrType]bool{}
	for i := range t.Attributes {
		typ := t.Attributes[i].Type
		if !typ.allowMultiple() {
			if attrs[typ] {
				return fmt.Errorf("%w: multiple '%s' attributes", ErrInvalidAttribute, typ.String())
			}
			attrs[typ] = true
		}
	}
	if len(t.Script) == 0 {
		return ErrEmptyScript
	}
	return nil
}

// Validate checks the transaction fields the same way decoding does, it
// doesn't check witnesses.
func (t *Transaction) Validate() error {
	return t.isValid()
}
