package transaction

import (
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// NotValidBefore makes the transaction invalid until the given height.
type NotValidBefore struct {
	Height uint32 `json:"height"`
}

// Conflicts marks the transaction as conflicting with the one with the given
// hash, only one of them can be accepted.
type Conflicts struct {
	Hash util.Uint256 `json:"hash"`
}

// NotaryAssisted is set by notary request transactions, NKeys is the number
// of keys to be collected by the notary.
type NotaryAssisted struct {
	NKeys uint8 `json:"nkeys"`
}

// newAttrValue returns an empty value for the given attribute type, nil is
// returned for types without value (and unknown ones).
func newAttrValue(t AttrType) AttrValue {
	switch t {
	case OracleResponseT:
		return new(OracleResponse)
	case NotValidBeforeT:
		return new(NotValidBefore)
	case ConflictsT:
		return new(Conflicts)
	case NotaryAssistedT:
		return new(NotaryAssisted)
	}
	return nil
}

// DecodeBinary implements the io.Serializable interface.
func (n *NotValidBefore) DecodeBinary(br *io.BinReader) { n.Height = br.ReadU32LE() }

// EncodeBinary implements the io.Serializable interface.
func (n *NotValidBefore) EncodeBinary(w *io.BinWriter) { w.WriteU32LE(n.Height) }

func (n *NotValidBefore) toJSONMap(m map[string]any) { m["height"] = n.Height }

// Copy implements the AttrValue interface.
func (n *NotValidBefore) Copy() AttrValue {
	cp := *n
	return &cp
}

// DecodeBinary implements the io.Serializable interface.
func (c *Conflicts) DecodeBinary(br *io.BinReader) { c.Hash.DecodeBinary(br) }

// EncodeBinary implements the io.Serializable interface.
func (c *Conflicts) EncodeBinary(w *io.BinWriter) { c.Hash.EncodeBinary(w) }

func (c *Conflicts) toJSONMap(m map[string]any) { m["hash"] = c.Hash }

// Copy implements the AttrValue interface.
func (c *Conflicts) Copy() AttrValue {
	cp := *c
	return &cp
}

// DecodeBinary implements the io.Serializable interface.
func (n *NotaryAssisted) DecodeBinary(br *io.BinReader) { n.NKeys = br.ReadB() }

// EncodeBinary implements the io.Serializable interface.
func (n *NotaryAssisted) EncodeBinary(w *io.BinWriter) { w.WriteB(n.NKeys) }

func (n *NotaryAssisted) toJSONMap(m map[string]any) { m["nkeys"] = n.NKeys }

// Copy implements the AttrValue interface.
func (n *NotaryAssisted) Copy() AttrValue {
	cp := *n
	return &cp
}
