/*
Package neorpc defines JSON-RPC 2.0 messages exchanged with Neo nodes along
with the error codes used by them.
*/
package neorpc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// JSONRPCVersion is the protocol version set in every request.
const JSONRPCVersion = "2.0"

// Request is a JSON-RPC request. Neo nodes only accept positional parameters,
// so Params is always an array.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

// Response is a JSON-RPC response with the result left undecoded, it's
// method-specific.
type Response struct {
	ID      json.RawMessage `json:"id"`
	JSONRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// SignerWithWitness is a signer along with its witness, it's used by
// invokecontractverify to pass witnesses of verified transactions.
type SignerWithWitness struct {
	transaction.Signer
	transaction.Witness
}

// signerWithWitnessJSON is the wire form of SignerWithWitness, the account is
// an LE hex string there (an address is also accepted on input).
type signerWithWitnessJSON struct {
	Account            string                    `json:"account"`
	Scopes             transaction.WitnessScope  `json:"scopes"`
	AllowedContracts   []util.Uint160            `json:"allowedcontracts,omitempty"`
	AllowedGroups      []*keys.PublicKey         `json:"allowedgroups,omitempty"`
	Rules              []transaction.WitnessRule `json:"rules,omitempty"`
	InvocationScript   []byte                    `json:"invocation,omitempty"`
	VerificationScript []byte                    `json:"verification,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (s *SignerWithWitness) MarshalJSON() ([]byte, error) {
	return json.Marshal(&signerWithWitnessJSON{
		Account:            s.Account.StringLE(),
		Scopes:             s.Scopes,
		AllowedContracts:   s.AllowedContracts,
		AllowedGroups:      s.AllowedGroups,
		Rules:              s.Rules,
		InvocationScript:   s.InvocationScript,
		VerificationScript: s.VerificationScript,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *SignerWithWitness) UnmarshalJSON(data []byte) error {
	var js signerWithWitnessJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return fmt.Errorf("not a signer: %w", err)
	}
	acc, err := parseAccount(js.Account)
	if err != nil {
		return fmt.Errorf("not a signer: %w", err)
	}
	s.Signer = transaction.Signer{
		Account:          acc,
		Scopes:           js.Scopes,
		AllowedContracts: js.AllowedContracts,
		AllowedGroups:    js.AllowedGroups,
		Rules:            js.Rules,
	}
	s.Witness = transaction.Witness{
		InvocationScript:   js.InvocationScript,
		VerificationScript: js.VerificationScript,
	}
	return nil
}

func parseAccount(s string) (util.Uint160, error) {
	if acc, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x")); err == nil {
		return acc, nil
	}
	return address.StringToUint160(s)
}
