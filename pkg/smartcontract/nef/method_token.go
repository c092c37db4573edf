package nef

import (
	"errors"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract/callflag"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

const maxMethodLength = 32

var (
	errInvalidMethodName = errors.New("method name should't start with '_'")
	errInvalidCallFlag   = errors.New("invalid call flag")
)

// MethodToken is a static call of some other contract's method made by the
// NEF script via CALLT.
type MethodToken struct {
	Hash       util.Uint160      `json:"hash"`
	Method     string            `json:"method"`
	ParamCount uint16            `json:"paramcount"`
	HasReturn  bool              `json:"hasreturnvalue"`
	CallFlag   callflag.CallFlag `json:"callflags"`
}

// EncodeBinary implements io.Serializable.
func (t *MethodToken) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(t.Hash[:])
	w.WriteString(t.Method)
	w.WriteU16LE(t.ParamCount)
	w.WriteBool(t.HasReturn)
	w.WriteB(byte(t.CallFlag))
}

// DecodeBinary implements io.Serializable.
func (t *MethodToken) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(t.Hash[:])
	t.Method = r.ReadString(maxMethodLength)
	t.ParamCount = r.ReadU16LE()
	t.HasReturn = r.ReadBool()
	t.CallFlag = callflag.CallFlag(r.ReadB())
	if r.Err == nil {
		r.Err = t.validate()
	}
}

// validate checks the restrictions on method names and flags.
func (t *MethodToken) validate() error {
	if strings.HasPrefix(t.Method, "_") {
		return errInvalidMethodName
	}
	if !t.CallFlag.IsValid() {
		return errInvalidCallFlag
	}
	return nil
}
