package transaction

import (
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
)

// Script size limits, both allow for the 11 out of 21 committee multisignature.
const (
	MaxInvocationScript   = 1024
	MaxVerificationScript = 1024
)

// Witness proves the authority of a signer. The invocation script pushes
// arguments (signatures usually) for the verification script, the latter is
// empty for deployed contract signers, their verify method is used instead.
type Witness struct {
	InvocationScript   []byte `json:"invocation"`
	VerificationScript []byte `json:"verification"`
}

// EncodeBinary implements the Serializable interface.
func (w *Witness) EncodeBinary(bw *io.BinWriter) {
	bw.WriteVarBytes(w.InvocationScript)
	bw.WriteVarBytes(w.VerificationScript)
}

// DecodeBinary implements the Serializable interface.
func (w *Witness) DecodeBinary(br *io.BinReader) {
	w.InvocationScript = br.ReadVarBytes(MaxInvocationScript)
	w.VerificationScript = br.ReadVarBytes(MaxVerificationScript)
}

// ScriptHash returns the hash of the verification script, it's the account
// the witness belongs to (for standard accounts).
func (w Witness) ScriptHash() util.Uint160 {
	return hash.Hash160(w.VerificationScript)
}

// Copy returns a deep copy of w.
func (w Witness) Copy() Witness {
	w.InvocationScript = slice.Copy(w.InvocationScript)
	w.VerificationScript = slice.Copy(w.VerificationScript)
	return w
}
