package transaction

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
)

// AttrValue represents a Transaction Attribute value.
type AttrValue interface {
	io.Serializable
	// toJSONMap is used for embedded json struct marshalling.
	// Anonymous interface fields are not considered anonymous by
	// json lib and marshaling Value together with type makes code
	// harder to follow.
	toJSONMap(map[string]any)
	// Copy returns a deep copy of the attribute value.
	Copy() AttrValue
}

// Attribute represents a Transaction attribute.
type Attribute struct {
	Type  AttrType
	Value AttrValue
}

// attrJSON is used for JSON I/O of Attribute.
type attrJSON struct {
	Type string `json:"type"`
}

// ErrUnknownAttribute is returned for attribute types that can't be decoded.
var ErrUnknownAttribute = errors.New("unknown attribute type")

// DecodeBinary implements the Serializable interface.
func (attr *Attribute) DecodeBinary(br *io.BinReader) {
	attr.Type = AttrType(br.ReadB())
	if br.Err != nil {
		return
	}

	if attr.Type == HighPriority {
		return
	}
	val := newAttrValue(attr.Type)
	if val == nil {
		br.Err = fmt.Errorf("%w: 0x%02x", ErrUnknownAttribute, byte(attr.Type))
		return
	}
	val.DecodeBinary(br)
	attr.Value = val
}

// EncodeBinary implements the Serializable interface.
func (attr *Attribute) EncodeBinary(bw *io.BinWriter) {
	bw.WriteB(byte(attr.Type))
	switch t := attr.Type; t {
	case HighPriority:
	case OracleResponseT, NotValidBeforeT, ConflictsT, NotaryAssistedT:
		if attr.Value == nil {
			bw.Err = fmt.Errorf("no value for %s attribute", t)
			return
		}
		attr.Value.EncodeBinary(bw)
	default:
		bw.Err = fmt.Errorf("%w: 0x%02x", ErrUnknownAttribute, byte(t))
	}
}

// MarshalJSON implements the json Marshaller interface.
func (attr Attribute) MarshalJSON() ([]byte, error) {
	m := map[string]any{"type": attr.Type.String()}
	if attr.Value != nil {
		attr.Value.toJSONMap(m)
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (attr *Attribute) UnmarshalJSON(data []byte) error {
	aj := new(attrJSON)
	err := json.Unmarshal(data, aj)
	if err != nil {
		return err
	}
	t, ok := attrTypeFromString(aj.Type)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, aj.Type)
	}
	attr.Type = t
	attr.Value = newAttrValue(t)
	if attr.Value == nil {
		return nil
	}
	return json.Unmarshal(data, attr.Value)
}

// Copy creates a deep copy of the Attribute.
func (attr *Attribute) Copy() *Attribute {
	cp := &Attribute{Type: attr.Type}
	if attr.Value != nil {
		cp.Value = attr.Value.Copy()
	}
	return cp
}
