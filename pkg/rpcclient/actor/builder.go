package actor

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config"
	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/native/nativehashes"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/rpcclient/unwrap"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
	"go.uber.org/zap"
)

// Config contains network parameters used by Builder. They're never taken
// from any global state.
type Config struct {
	// Network is the magic number transactions are signed for.
	Network netmode.Magic
	// MaxValidUntilBlockIncrement is used to calculate the default
	// ValidUntilBlock value, config.DefaultMaxValidUntilBlockIncrement is
	// used if it's zero.
	MaxValidUntilBlockIncrement uint32
	// Logger is used for debug output, no logging is done if it's nil.
	Logger *zap.Logger
}

// Builder accumulates transaction parameters and produces unsigned or signed
// transactions using RPCActor to resolve fees and ValidUntilBlock. It's not
// safe for concurrent use. Builder state is never changed by GetUnsignedTx or
// Sign, every call produces a new transaction.
type Builder struct {
	ra  RPCActor
	cfg Config
	log *zap.Logger

	script     []byte
	signers    []SignerAccount
	attrs      []transaction.Attribute
	nonce      uint32
	nonceSet   bool
	vub        uint32
	vubSet     bool
	addSysFee  int64
	addNetFee  int64
	allowFault bool

	onLowBalance  func(required, balance *big.Int)
	lowBalanceErr error
}

// NewBuilder creates a Builder using the given RPCActor for chain queries.
func NewBuilder(ra RPCActor, cfg Config) *Builder {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.MaxValidUntilBlockIncrement == 0 {
		cfg.MaxValidUntilBlockIncrement = config.DefaultMaxValidUntilBlockIncrement
	}
	return &Builder{
		ra:  ra,
		cfg: cfg,
		log: log,
	}
}

// SetScript sets the script to be executed by the transaction.
func (b *Builder) SetScript(script []byte) *Builder {
	b.script = slice.Copy(script)
	return b
}

// SetSigners replaces the set of transaction signers. At most one of them
// can have None scope (fee-only signer), it's moved to the first position
// then since it can only be used to pay fees. Standard accounts must match
// signer's script hash.
func (b *Builder) SetSigners(signers ...SignerAccount) error {
	var (
		feeOnly = -1
		res     = make([]SignerAccount, 0, len(signers))
	)
	for i := range signers {
		if err := checkSignerAccount(signers[i]); err != nil {
			return err
		}
		if signers[i].Signer.Scopes == transaction.None {
			if feeOnly >= 0 {
				return ErrMultipleFeeOnlySigners
			}
			feeOnly = i
		}
	}
	if feeOnly >= 0 {
		res = append(res, copySignerAccount(signers[feeOnly]))
	}
	for i := range signers {
		if i != feeOnly {
			res = append(res, copySignerAccount(signers[i]))
		}
	}
	b.signers = res
	return nil
}

// FirstSigner moves the signer with the given account to the first position,
// making it the sender of the transaction.
func (b *Builder) FirstSigner(account util.Uint160) error {
	var pos = -1
	for i := range b.signers {
		if b.signers[i].Signer.Scopes == transaction.None {
			return ErrFeeOnlySignerPresent
		}
		if b.signers[i].Signer.Account.Equals(account) && pos < 0 {
			pos = i
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrSignerNotFound, account.StringLE())
	}
	first := b.signers[pos]
	copy(b.signers[1:pos+1], b.signers[:pos])
	b.signers[0] = first
	return nil
}

// SetAttributes replaces the set of transaction attributes.
func (b *Builder) SetAttributes(attrs ...transaction.Attribute) *Builder {
	b.attrs = make([]transaction.Attribute, len(attrs))
	for i := range attrs {
		b.attrs[i] = *attrs[i].Copy()
	}
	return b
}

// SetNonce sets the transaction nonce, a random one is used otherwise.
func (b *Builder) SetNonce(nonce uint32) *Builder {
	b.nonce = nonce
	b.nonceSet = true
	return b
}

// SetValidUntilBlock sets explicit ValidUntilBlock value. Zero is not a
// valid one.
func (b *Builder) SetValidUntilBlock(vub uint32) *Builder {
	b.vub = vub
	b.vubSet = true
	return b
}

// AddSystemFee adds some GAS to the system fee calculated by test invocation.
// Subsequent calls are additive.
func (b *Builder) AddSystemFee(fee int64) *Builder {
	b.addSysFee += fee
	return b
}

// AddNetworkFee adds some GAS to the network fee calculated by the node.
// Subsequent calls are additive.
func (b *Builder) AddNetworkFee(fee int64) *Builder {
	b.addNetFee += fee
	return b
}

// AllowTransmissionOnFault makes Builder accept scripts that end up in FAULT
// state during test invocation.
func (b *Builder) AllowTransmissionOnFault() *Builder {
	b.allowFault = true
	return b
}

// DoIfSenderCannotCoverFees sets a callback that is executed when the sender's
// GAS balance is less than the sum of transaction fees. The transaction is
// built anyway then.
func (b *Builder) DoIfSenderCannotCoverFees(f func(required, balance *big.Int)) error {
	if b.lowBalanceErr != nil {
		return ErrFeePolicyConflict
	}
	b.onLowBalance = f
	return nil
}

// ThrowIfSenderCannotCoverFees makes GetUnsignedTx fail with the given error
// (ErrInsufficientFunds if nil) when the sender's GAS balance is less than the
// sum of transaction fees.
func (b *Builder) ThrowIfSenderCannotCoverFees(err error) error {
	if b.onLowBalance != nil {
		return ErrFeePolicyConflict
	}
	if err == nil {
		err = ErrInsufficientFunds
	}
	b.lowBalanceErr = err
	return nil
}

// Signers returns the current set of transaction signers.
func (b *Builder) Signers() []SignerAccount {
	return b.signers
}

// GetUnsignedTx checks the configuration and creates a new transaction with
// system and network fees calculated via RPC. Its witnesses contain
// verification scripts only.
func (b *Builder) GetUnsignedTx() (*transaction.Transaction, error) {
	if len(b.script) == 0 {
		return nil, ErrNoScript
	}
	if len(b.signers) == 0 {
		return nil, ErrNoSigners
	}
	for i := range b.signers {
		for j := i + 1; j < len(b.signers); j++ {
			if b.signers[i].Signer.Account.Equals(b.signers[j].Signer.Account) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateSigner, b.signers[i].Signer.Account.StringLE())
			}
		}
	}
	if len(b.signers) > transaction.MaxAttributes {
		return nil, fmt.Errorf("%w: %d", ErrTooManySigners, len(b.signers))
	}
	if len(b.signers)+len(b.attrs) > transaction.MaxAttributes {
		return nil, fmt.Errorf("%w: %d attributes with %d signers", ErrTooManyAttributes, len(b.attrs), len(b.signers))
	}
	var highPriority int
	for i := range b.attrs {
		if b.attrs[i].Type == transaction.HighPriority {
			highPriority++
		}
	}
	if highPriority > 1 {
		return nil, ErrMultipleHighPriority
	}
	if highPriority == 1 {
		if err := b.checkCommitteeSigner(); err != nil {
			return nil, err
		}
	}
	if b.addSysFee < 0 || b.addNetFee < 0 {
		return nil, ErrNegativeFee
	}
	if b.vubSet && b.vub == 0 {
		return nil, ErrInvalidValidUntilBlock
	}

	tx := &transaction.Transaction{
		Script:     slice.Copy(b.script),
		Nonce:      b.nonce,
		Attributes: make([]transaction.Attribute, len(b.attrs)),
		Signers:    make([]transaction.Signer, len(b.signers)),
		Scripts:    make([]transaction.Witness, len(b.signers)),
	}
	if !b.nonceSet {
		tx.Nonce = rand.Uint32()
	}
	for i := range b.attrs {
		tx.Attributes[i] = *b.attrs[i].Copy()
	}
	for i := range b.signers {
		tx.Signers[i] = *b.signers[i].Signer.Copy()
		tx.Scripts[i] = verificationWitness(b.signers[i])
	}
	if err := checkEncodable(tx); err != nil {
		return nil, err
	}

	if b.vubSet {
		tx.ValidUntilBlock = b.vub
	} else {
		count, err := b.ra.GetBlockCount()
		if err != nil {
			return nil, rpcErr("getblockcount", err)
		}
		tx.ValidUntilBlock = count - 1 + b.cfg.MaxValidUntilBlockIncrement
	}

	res, err := b.ra.InvokeScript(tx.Script, tx.Signers)
	if err != nil {
		return nil, rpcErr("invokescript", err)
	}
	if !res.IsHalt() && !b.allowFault {
		return nil, fmt.Errorf("%w: %s state, %s", ErrTransactionConfiguration, res.State, res.FaultException)
	}
	tx.SystemFee = res.GasConsumed + b.addSysFee

	netFee, err := b.ra.CalculateNetworkFee(tx)
	if err != nil {
		return nil, rpcErr("calculatenetworkfee", err)
	}
	tx.NetworkFee = netFee + b.addNetFee
	b.log.Debug("transaction fees calculated",
		zap.Int64("sysfee", tx.SystemFee),
		zap.Int64("netfee", tx.NetworkFee),
		zap.Uint32("vub", tx.ValidUntilBlock))

	if err = b.checkSenderBalance(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Sign creates a transaction via GetUnsignedTx and adds witnesses of all
// signers to it.
func (b *Builder) Sign() (*transaction.Transaction, error) {
	tx, err := b.GetUnsignedTx()
	if err != nil {
		return nil, err
	}
	if err = SignTx(b.cfg.Network, tx, b.signers); err != nil {
		return nil, err
	}
	return tx, nil
}

func (b *Builder) checkCommitteeSigner() error {
	committee, err := unwrap.ArrayOfPublicKeys(b.ra.InvokeFunction(nativehashes.NeoToken, "getCommittee", nil, nil))
	if err != nil {
		return rpcErr("getCommittee", err)
	}
	var allowed = make(map[util.Uint160]bool, len(committee)+1)
	for _, k := range committee {
		allowed[k.GetScriptHash()] = true
	}
	if len(committee) != 0 {
		script, err := smartcontract.CreateMajorityMultiSigRedeemScript(committee)
		if err != nil {
			return fmt.Errorf("committee address: %w", err)
		}
		allowed[hash.Hash160(script)] = true
	}
	for i := range b.signers {
		if allowed[b.signers[i].Signer.Account] {
			return nil
		}
	}
	return ErrHighPriorityNotCommittee
}

func (b *Builder) checkSenderBalance(tx *transaction.Transaction) error {
	if b.onLowBalance == nil && b.lowBalanceErr == nil {
		return nil
	}
	sender := tx.Sender()
	balance, err := unwrap.BigInt(b.ra.InvokeFunction(nativehashes.GasToken, "balanceOf",
		[]smartcontract.Parameter{{Type: smartcontract.Hash160Type, Value: sender}}, nil))
	if err != nil {
		return rpcErr("balanceOf", err)
	}
	required := big.NewInt(tx.SystemFee + tx.NetworkFee)
	if required.Cmp(balance) <= 0 {
		return nil
	}
	b.log.Debug("sender can't cover fees",
		zap.Stringer("sender", sender),
		zap.Stringer("required", required),
		zap.Stringer("balance", balance))
	if b.onLowBalance != nil {
		b.onLowBalance(required, balance)
		return nil
	}
	return b.lowBalanceErr
}

func verificationWitness(s SignerAccount) transaction.Witness {
	var w transaction.Witness
	if !s.Account.Contract.Deployed {
		w.VerificationScript = slice.Copy(s.Account.Contract.Script)
	}
	return w
}

func checkSignerAccount(s SignerAccount) error {
	if !s.Signer.Scopes.IsValid() {
		return fmt.Errorf("%w %s: %s 0x%02x", ErrInvalidSigner, s.Signer.Account.StringLE(),
			transaction.ErrInvalidWitnessScope, byte(s.Signer.Scopes))
	}
	buf := io.NewBufBinWriter()
	s.Signer.EncodeBinary(buf.BinWriter)
	if buf.Err != nil {
		return fmt.Errorf("%w %s: %s", ErrInvalidSigner, s.Signer.Account.StringLE(), buf.Err)
	}
	if s.Account == nil || s.Account.Contract == nil {
		return fmt.Errorf("empty contract for signer %s", s.Signer.Account.StringLE())
	}
	if !s.Account.Contract.Deployed && s.Account.Contract.ScriptHash() != s.Signer.Account {
		return fmt.Errorf("%w: %s", ErrSignerAccountMismatch, s.Account.Address)
	}
	if s.Account.Contract.Deployed && s.Account.ScriptHash() != s.Signer.Account {
		return fmt.Errorf("%w: %s", ErrSignerAccountMismatch, s.Account.Address)
	}
	return nil
}

func copySignerAccount(s SignerAccount) SignerAccount {
	return SignerAccount{
		Signer:  *s.Signer.Copy(),
		Account: s.Account,
	}
}

// checkEncodable ensures the hashable part of tx can be serialized, so that
// it can be hashed and signed.
func checkEncodable(tx *transaction.Transaction) error {
	buf := io.NewBufBinWriter()
	tx.EncodeHashableFields(buf.BinWriter)
	if buf.Err != nil {
		return fmt.Errorf("%w: %s", ErrUnencodable, buf.Err)
	}
	return nil
}
