package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// WitnessScope represents set of witness flags for Transaction signer.
type WitnessScope byte

const (
	// None specifies that no contract was witnessed. Only sign the transaction.
	None WitnessScope = 0
	// CalledByEntry means that this condition must hold: EntryScriptHash == CallingScriptHash.
	// No params is needed, as the witness/permission/signature given on first invocation will
	// automatically expire if entering deeper internal invokes. This can be default safe
	// choice for native NEO/GAS.
	CalledByEntry WitnessScope = 0x01
	// CustomContracts define custom hash for contract-specific.
	CustomContracts WitnessScope = 0x10
	// CustomGroups define custom public key for group members.
	CustomGroups WitnessScope = 0x20
	// WitnessRules is a set of conditions with boolean operators.
	WitnessRules WitnessScope = 0x40
	// Global allows this witness in all contexts. This cannot be combined
	// with other flags.
	Global WitnessScope = 0x80
)

// validScopes is a mask of all known scope bits.
const validScopes = CalledByEntry | CustomContracts | CustomGroups | WitnessRules | Global

// ErrInvalidWitnessScope is returned for unknown scope names and bits.
var ErrInvalidWitnessScope = errors.New("invalid witness scope")

var scopeNames = []struct {
	scope WitnessScope
	name  string
}{
	{CalledByEntry, "CalledByEntry"},
	{CustomContracts, "CustomContracts"},
	{CustomGroups, "CustomGroups"},
	{WitnessRules, "WitnessRules"},
}

// IsValid checks that s has only known bits set and that Global is not
// combined with anything else.
func (s WitnessScope) IsValid() bool {
	if s&^validScopes != 0 {
		return false
	}
	return s&Global == 0 || s == Global
}

// String implements the fmt.Stringer interface. Combined scopes are joined
// with ", ".
func (s WitnessScope) String() string {
	switch s {
	case None:
		return "None"
	case Global:
		return "Global"
	}
	var res []string
	for _, sn := range scopeNames {
		if s&sn.scope != 0 {
			res = append(res, sn.name)
			s &^= sn.scope
		}
	}
	if s != 0 {
		res = append(res, fmt.Sprintf("WitnessScope(0x%02x)", byte(s)))
	}
	return strings.Join(res, ", ")
}

// ScopesFromString converts string of comma-separated scopes to a set of scopes
// (case-sensitive). String can combine several scopes, e.g. be any of: 'Global',
// 'CalledByEntry,CustomGroups' etc. In case of an empty string an error is
// returned.
func ScopesFromString(s string) (WitnessScope, error) {
	var result WitnessScope
	scopes := strings.Split(s, ",")
	dict := map[string]WitnessScope{
		"None":   None,
		"Global": Global,
	}
	for _, sn := range scopeNames {
		dict[sn.name] = sn.scope
	}
	var isGlobal bool
	for _, scopeStr := range scopes {
		scope, ok := dict[strings.TrimSpace(scopeStr)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWitnessScope, scopeStr)
		}
		if (isGlobal && scope != Global) || (scope == Global && result != None) {
			return 0, fmt.Errorf("%w: Global scope can not be combined with other scopes", ErrInvalidWitnessScope)
		}
		result |= scope
		if scope == Global {
			isGlobal = true
		}
	}
	return result, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (s WitnessScope) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *WitnessScope) UnmarshalJSON(data []byte) error {
	var js string
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	scopes, err := ScopesFromString(js)
	if err != nil {
		return err
	}
	*s = scopes
	return nil
}
