package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
)

// OracleResponseCode is the result code of an oracle request.
type OracleResponseCode byte

// Oracle response codes.
const (
	Success                 OracleResponseCode = 0x00
	ProtocolNotSupported    OracleResponseCode = 0x10
	ConsensusUnreachable    OracleResponseCode = 0x12
	NotFound                OracleResponseCode = 0x14
	Timeout                 OracleResponseCode = 0x16
	Forbidden               OracleResponseCode = 0x18
	ResponseTooLarge        OracleResponseCode = 0x1a
	InsufficientFunds       OracleResponseCode = 0x1c
	ContentTypeNotSupported OracleResponseCode = 0x1f
	Error                   OracleResponseCode = 0xff
)

// MaxOracleResultSize is the maximum size of the oracle result.
const MaxOracleResultSize = math.MaxUint16

// Oracle response validation errors.
var (
	ErrInvalidResponseCode = errors.New("invalid oracle response code")
	ErrInvalidResult       = errors.New("oracle response != success, but result is not empty")
)

var oracleCodeNames = map[OracleResponseCode]string{
	Success:                 "Success",
	ProtocolNotSupported:    "ProtocolNotSupported",
	ConsensusUnreachable:    "ConsensusUnreachable",
	NotFound:                "NotFound",
	Timeout:                 "Timeout",
	Forbidden:               "Forbidden",
	ResponseTooLarge:        "ResponseTooLarge",
	InsufficientFunds:       "InsufficientFunds",
	ContentTypeNotSupported: "ContentTypeNotSupported",
	Error:                   "Error",
}

// IsValid checks whether c is a known code.
func (c OracleResponseCode) IsValid() bool {
	_, ok := oracleCodeNames[c]
	return ok
}

// String implements the fmt.Stringer interface.
func (c OracleResponseCode) String() string {
	if s, ok := oracleCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("OracleResponseCode(%d)", byte(c))
}

// MarshalJSON implements the json.Marshaler interface.
func (c OracleResponseCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface, names are case
// insensitive.
func (c *OracleResponseCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for code, name := range oracleCodeNames {
		if strings.EqualFold(name, s) {
			*c = code
			return nil
		}
	}
	return ErrInvalidResponseCode
}

// OracleResponse is the attribute of oracle response transactions.
type OracleResponse struct {
	ID     uint64             `json:"id"`
	Code   OracleResponseCode `json:"code"`
	Result []byte             `json:"result"`
}

// DecodeBinary implements the io.Serializable interface.
func (r *OracleResponse) DecodeBinary(br *io.BinReader) {
	r.ID = br.ReadU64LE()
	r.Code = OracleResponseCode(br.ReadB())
	r.Result = br.ReadVarBytes(MaxOracleResultSize)
	if br.Err == nil {
		br.Err = r.validate()
	}
}

func (r *OracleResponse) validate() error {
	if !r.Code.IsValid() {
		return ErrInvalidResponseCode
	}
	if r.Code != Success && len(r.Result) != 0 {
		return ErrInvalidResult
	}
	return nil
}

// EncodeBinary implements the io.Serializable interface.
func (r *OracleResponse) EncodeBinary(w *io.BinWriter) {
	w.WriteU64LE(r.ID)
	w.WriteB(byte(r.Code))
	w.WriteVarBytes(r.Result)
}

func (r *OracleResponse) toJSONMap(m map[string]any) {
	m["id"] = r.ID
	m["code"] = r.Code
	m["result"] = r.Result
}

// Copy implements the AttrValue interface.
func (r *OracleResponse) Copy() AttrValue {
	cp := *r
	cp.Result = slice.Copy(r.Result)
	return &cp
}
