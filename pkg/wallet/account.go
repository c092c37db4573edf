/*
Package wallet provides in-memory accounts able to sign transactions. Accounts
are either standard (single or multi-signature) ones backed by a private key
or deployed contract accounts verified by the contract itself.
*/
package wallet

import (
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
)

var (
	// ErrNoPrivateKey is returned when signing is requested from an account
	// that has no private key.
	ErrNoPrivateKey = errors.New("account has no private key")
	// ErrAccountLocked is returned when signing with a locked account.
	ErrAccountLocked = errors.New("account is locked")
	// ErrNoContract is returned for accounts without verification contract.
	ErrNoContract = errors.New("account has no contract")
	// ErrNotSigner is returned when the transaction has no signer matching
	// the account.
	ErrNotSigner = errors.New("transaction is not signed by this account")
	// ErrNoParameters is returned when signing with a standard account whose
	// contract expects no signatures.
	ErrNoParameters = errors.New("account contract has no parameters")
)

// Account represents a Neo account. It holds the private key along with some
// metadata.
type Account struct {
	// Neo private key.
	privateKey *keys.PrivateKey

	// Account's script hash.
	scriptHash util.Uint160

	// Neo public address.
	Address string `json:"address"`

	// Label is a label the user had made for this account.
	Label string `json:"label"`

	// Contract is a Contract object which describes the details of the contract.
	// This field can be null (for watch-only address).
	Contract *Contract `json:"contract"`

	// Indicates whether the account is locked by the user.
	// The client shouldn't spend the funds in a locked account.
	Locked bool `json:"lock"`

	// Indicates whether the account is the default change account.
	Default bool `json:"isDefault"`
}

// Contract represents a subset of the smartcontract to embed in the
// Account.
type Contract struct {
	// Script of the contract deployed on the blockchain.
	Script []byte `json:"script"`

	// A list of parameters used deploying this contract.
	Parameters []ContractParam `json:"parameters"`

	// Indicates whether the contract has been deployed to the blockchain.
	Deployed bool `json:"deployed"`

	// InvocationBuilder returns invocation script for deployed contracts.
	// In case contract is not deployed or has 0 arguments, this field is
	// ignored and might be left empty.
	InvocationBuilder func(tx *transaction.Transaction) ([]byte, error) `json:"-"`
}

// ContractParam is a descriptor of a contract parameter
// containing type and optional name.
type ContractParam struct {
	Name string                  `json:"name"`
	Type smartcontract.ParamType `json:"type"`
}

// ScriptHash returns the hash of contract's script.
func (c Contract) ScriptHash() util.Uint160 {
	return hash.Hash160(c.Script)
}

// NewAccount creates a new Account with a random generated PrivateKey.
func NewAccount() (*Account, error) {
	priv, err := keys.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return NewAccountFromPrivateKey(priv), nil
}

// NewAccountFromWIF creates a new Account from the given WIF.
func NewAccountFromWIF(wif string) (*Account, error) {
	privKey, err := keys.NewPrivateKeyFromWIF(wif)
	if err != nil {
		return nil, err
	}
	return NewAccountFromPrivateKey(privKey), nil
}

// NewAccountFromPrivateKey creates a standard single-signature account from
// the given PrivateKey.
func NewAccountFromPrivateKey(p *keys.PrivateKey) *Account {
	pubKey := p.PublicKey()

	a := &Account{
		privateKey: p,
		scriptHash: p.GetScriptHash(),
		Address:    p.Address(),
		Contract: &Contract{
			Script:     pubKey.GetVerificationScript(),
			Parameters: getContractParams(1),
		},
	}

	return a
}

// NewContractAccount creates a contract account belonging to some deployed
// contract. The params are the arguments of the contract's verify method;
// they're pushed onto the stack in the reverse order by the invocation script,
// so that the first one ends up on top. The account has no private key and
// no verification script.
func NewContractAccount(hash util.Uint160, params ...smartcontract.Parameter) *Account {
	cparams := make([]ContractParam, len(params))
	for i := range params {
		cparams[i] = ContractParam{
			Name: fmt.Sprintf("parameter%d", i),
			Type: params[i].Type,
		}
	}
	return &Account{
		Address: address.Uint160ToString(hash),
		Contract: &Contract{
			Parameters: cparams,
			Deployed:   true,
			InvocationBuilder: func(_ *transaction.Transaction) ([]byte, error) {
				b := smartcontract.NewBuilder()
				for i := len(params) - 1; i >= 0; i-- {
					b.PushParam(params[i])
				}
				return b.Script()
			},
		},
		scriptHash: hash,
	}
}

// PrivateKey returns private key corresponding to the account if it's unlocked.
// Please be very careful when using it, do not copy its contents and do not
// keep a pointer to it unless you absolutely need to. Most of the time you can
// use other methods (PublicKey, ScriptHash, SignTx) to get what you need.
func (a *Account) PrivateKey() *keys.PrivateKey {
	return a.privateKey
}

// PublicKey returns the public key associated with the private key corresponding to
// the account. It can return nil if account has no private key.
func (a *Account) PublicKey() *keys.PublicKey {
	if a.privateKey == nil {
		return nil
	}
	return a.privateKey.PublicKey()
}

// ScriptHash returns the script hash (account) that the Account.Address is
// derived from. It never returns an error, so if this Account has an invalid
// Address you'll just get a zero script hash.
func (a *Account) ScriptHash() util.Uint160 {
	if a.scriptHash.Equals(util.Uint160{}) {
		a.scriptHash, _ = address.StringToUint160(a.Address)
	}
	return a.scriptHash
}

// CanSign returns true when account is not locked and either has a decrypted
// private key or is a deployed contract account.
func (a *Account) CanSign() bool {
	if a.Locked {
		return false
	}
	return a.privateKey != nil || (a.Contract != nil && a.Contract.Deployed)
}

// IsMultiSig returns true if the account's contract is a standard
// multi-signature one.
func (a *Account) IsMultiSig() bool {
	return a.Contract != nil && !a.Contract.Deployed && vm.IsMultiSigContract(a.Contract.Script)
}

// SignTx signs transaction t and updates it's Witnesses. Witnesses of the
// previous signers are expected to be present already. Multisignature accounts
// append their signature to the existing invocation script, so several
// accounts sharing the same multisignature contract can sign one after
// another.
func (a *Account) SignTx(net netmode.Magic, t *transaction.Transaction) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if a.Contract == nil {
		return ErrNoContract
	}
	var (
		haveAcc bool
		pos     int
		accHash = a.ScriptHash()
	)
	for i := range t.Signers {
		if t.Signers[i].Account.Equals(accHash) {
			haveAcc = true
			pos = i
			break
		}
	}
	if !haveAcc {
		return fmt.Errorf("%w: %s", ErrNotSigner, a.Address)
	}
	if len(t.Scripts) < pos {
		return errors.New("transaction is not yet signed by the previous signer")
	}
	if !a.Contract.Deployed {
		if len(a.Contract.Parameters) == 0 {
			return ErrNoParameters
		}
		if a.privateKey == nil {
			return ErrNoPrivateKey
		}
	}
	if len(t.Scripts) == pos {
		t.Scripts = append(t.Scripts, transaction.Witness{
			VerificationScript: a.Contract.Script, // Can be nil for deployed contract.
		})
	}
	if a.Contract.Deployed {
		var invoc []byte
		if a.Contract.InvocationBuilder != nil {
			var err error
			invoc, err = a.Contract.InvocationBuilder(t)
			if err != nil {
				return fmt.Errorf("contract invocation script: %w", err)
			}
		}
		t.Scripts[pos].InvocationScript = invoc
		return nil
	}
	sign := a.privateKey.SignHashable(uint32(net), t)

	invoc := append([]byte{byte(opcode.PUSHDATA1), keys.SignatureLen}, sign...)
	if len(a.Contract.Parameters) == 1 {
		t.Scripts[pos].InvocationScript = invoc
	} else {
		t.Scripts[pos].InvocationScript = append(t.Scripts[pos].InvocationScript, invoc...)
	}

	return nil
}

// GetVerificationScript returns account's verification script.
func (a *Account) GetVerificationScript() []byte {
	if a.Contract != nil {
		return a.Contract.Script
	}
	if pub := a.PublicKey(); pub != nil {
		return pub.GetVerificationScript()
	}
	return nil
}

// ConvertMultisig sets a's contract to multisig contract with m sufficient signatures.
// Keys are used in the order given.
func (a *Account) ConvertMultisig(m int, pubs []*keys.PublicKey) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if a.privateKey == nil {
		return ErrNoPrivateKey
	}
	if !keys.PublicKeys(pubs).Contains(a.privateKey.PublicKey()) {
		return errors.New("own public key was not found among multisig keys")
	}

	script, err := smartcontract.CreateMultiSigRedeemScript(m, pubs)
	if err != nil {
		return err
	}

	a.scriptHash = hash.Hash160(script)
	a.Address = address.Uint160ToString(a.scriptHash)
	a.Contract = &Contract{
		Script:     script,
		Parameters: getContractParams(m),
	}

	return nil
}

// Close cleans up the private key used by Account and disassociates it from
// Account. The Account can no longer sign anything after this call.
func (a *Account) Close() {
	if a.privateKey == nil {
		return
	}
	a.privateKey.Destroy()
	a.privateKey = nil
}

func getContractParams(n int) []ContractParam {
	params := make([]ContractParam, n)
	for i := range params {
		params[i].Name = fmt.Sprintf("parameter%d", i)
		params[i].Type = smartcontract.SignatureType
	}

	return params
}
