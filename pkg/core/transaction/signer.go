package transaction

import (
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// The maximum number of AllowedContracts, AllowedGroups, Rules or
// And/Or sub-conditions.
const maxSubitems = 16

// Signer implements a Transaction signer.
type Signer struct {
	Account          util.Uint160      `json:"account"`
	Scopes           WitnessScope      `json:"scopes"`
	AllowedContracts []util.Uint160    `json:"allowedcontracts,omitempty"`
	AllowedGroups    []*keys.PublicKey `json:"allowedgroups,omitempty"`
	Rules            []WitnessRule     `json:"rules,omitempty"`
}

// EncodeBinary implements the Serializable interface.
func (c *Signer) EncodeBinary(bw *io.BinWriter) {
	bw.WriteBytes(c.Account[:])
	bw.WriteB(byte(c.Scopes))
	if c.Scopes&CustomContracts != 0 {
		io.WriteArray(bw, c.AllowedContracts)
	}
	if c.Scopes&CustomGroups != 0 {
		bw.WriteVarUint(uint64(len(c.AllowedGroups)))
		for _, g := range c.AllowedGroups {
			if g == nil {
				bw.Err = errors.New("nil allowed group key")
				return
			}
			g.EncodeBinary(bw)
		}
	}
	if c.Scopes&WitnessRules != 0 {
		io.WriteArray(bw, c.Rules)
	}
}

// DecodeBinary implements the Serializable interface.
func (c *Signer) DecodeBinary(br *io.BinReader) {
	br.ReadBytes(c.Account[:])
	c.Scopes = WitnessScope(br.ReadB())
	if br.Err != nil {
		return
	}
	if !c.Scopes.IsValid() {
		br.Err = fmt.Errorf("%w: 0x%02x", ErrInvalidWitnessScope, byte(c.Scopes))
		return
	}
	if c.Scopes&CustomContracts != 0 {
		c.AllowedContracts = io.ReadArray[util.Uint160](br, maxSubitems)
	}
	if c.Scopes&CustomGroups != 0 {
		n := br.ReadVarUint()
		if br.Err != nil {
			return
		}
		if n > maxSubitems {
			br.Err = fmt.Errorf("too many allowed groups: %d", n)
			return
		}
		c.AllowedGroups = make([]*keys.PublicKey, n)
		for i := range c.AllowedGroups {
			c.AllowedGroups[i] = new(keys.PublicKey)
			c.AllowedGroups[i].DecodeBinary(br)
		}
	}
	if c.Scopes&WitnessRules != 0 {
		c.Rules = io.ReadArray[WitnessRule](br, maxSubitems)
	}
}

// Copy creates a deep copy of the Signer.
func (c *Signer) Copy() *Signer {
	if c == nil {
		return nil
	}
	cp := *c
	if c.AllowedContracts != nil {
		cp.AllowedContracts = make([]util.Uint160, len(c.AllowedContracts))
		copy(cp.AllowedContracts, c.AllowedContracts)
	}
	if c.AllowedGroups != nil {
		cp.AllowedGroups = make([]*keys.PublicKey, len(c.AllowedGroups))
		for i, g := range c.AllowedGroups {
			if g != nil {
				k := *g
				cp.AllowedGroups[i] = &k
			}
		}
	}
	if c.Rules != nil {
		cp.Rules = make([]WitnessRule, len(c.Rules))
		for i := range c.Rules {
			cp.Rules[i] = *c.Rules[i].Copy()
		}
	}
	return &cp
}
