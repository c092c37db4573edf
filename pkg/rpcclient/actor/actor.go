/*
Package actor provides a way to change chain state via RPC client.

This layer builds on top of the basic RPC client and [invoker] package, it
simplifies creating, signing and sending transactions to the network (since
that's the only way chain state is changed). Every transaction is built with
Builder, which can also be used directly when more control is needed.
*/
package actor

import (
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc/result"
	"github.com/R3E-Network/NeoRust-sub000/pkg/rpcclient/invoker"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/wallet"
	"go.uber.org/zap"
)

// RPCActor is an interface required from the RPC client to successfully
// create and send transactions.
type RPCActor interface {
	invoker.RPCInvoke

	// CalculateNetworkFee calculates network fee for the given transaction.
	CalculateNetworkFee(tx *transaction.Transaction) (int64, error)
	GetBlockCount() (uint32, error)
	GetVersion() (*result.Version, error)
	SendRawTransaction(tx *transaction.Transaction) (util.Uint256, error)
}

// Actor keeps a connection to the RPC endpoint and allows to perform
// state-changing actions (via transactions that can also be created without
// sending them to the network) on behalf of a set of signers. It also provides
// an Invoker interface to perform test calls with the same set of signers.
//
// Actor-specific APIs follow the naming scheme set by Invoker in method
// suffixes. *Call methods operate with function calls and require a contract
// hash, a method and parameters if any. *Run methods operate with scripts and
// require a NeoVM script that will be used directly. "Make" prefix is used for
// methods that create transactions, while "Send" prefix is used by methods
// that directly transmit created transactions to the RPC server.
type Actor struct {
	invoker.Invoker

	client  RPCActor
	opts    Options
	signers []SignerAccount
	version *result.Version
}

// Options are used to create Actor with non-standard transaction modifier,
// additional attributes or a logger.
type Options struct {
	// Attributes are set as is into every transaction created by Actor,
	// unless they're explicitly set in a method call that accepts
	// attributes.
	Attributes []transaction.Attribute
	// Modifier is applied to every transaction before it's signed.
	Modifier TransactionModifier
	// Logger is passed to Builder.
	Logger *zap.Logger
}

// TransactionModifier is a callback that receives the transaction before
// it's signed. It can check fees and other fields of the transaction and
// return an error if there is anything wrong there which will abort the
// creation process. It also can modify Nonce, SystemFee, NetworkFee and
// ValidUntilBlock values taking full responsibility on the effects of these
// modifications.
type TransactionModifier func(t *transaction.Transaction) error

// DefaultModifier is the default modifier, it does nothing.
func DefaultModifier(t *transaction.Transaction) error {
	return nil
}

// New creates an Actor instance using the specified RPC interface and the set of
// signers with corresponding accounts. Every transaction created by this Actor
// will have this set of signers and all communication will be performed via this
// RPC. Upon Actor instance creation a GetVersion call is made and the result of
// it is cached forever, it provides network magic and ValidUntilBlock increment.
func New(ra RPCActor, signers []SignerAccount) (*Actor, error) {
	return NewTuned(ra, signers, Options{})
}

// NewSimple makes it easier to create an Actor for the most widespread case
// when transactions have only one signer that uses CalledByEntry scope. When
// other scopes or multiple signers are needed use New.
func NewSimple(ra RPCActor, acc *wallet.Account) (*Actor, error) {
	return New(ra, []SignerAccount{{
		Signer: transaction.Signer{
			Account: acc.ScriptHash(),
			Scopes:  transaction.CalledByEntry,
		},
		Account: acc,
	}})
}

// NewTuned creates an Actor that will use the specified Options as defaults when
// creating new transactions.
func NewTuned(ra RPCActor, signers []SignerAccount, opts Options) (*Actor, error) {
	if len(signers) < 1 {
		return nil, errors.New("at least one signer (sender) is required")
	}
	// Builder checks and normalizes the signers list.
	b := NewBuilder(ra, Config{})
	if err := b.SetSigners(signers...); err != nil {
		return nil, err
	}
	signers = b.Signers()
	invSigners := make([]transaction.Signer, len(signers))
	for i := range signers {
		invSigners[i] = signers[i].Signer
	}
	version, err := ra.GetVersion()
	if err != nil {
		return nil, rpcErr("getversion", err)
	}
	if opts.Modifier == nil {
		opts.Modifier = DefaultModifier
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Actor{
		Invoker: *invoker.New(ra, invSigners),
		client:  ra,
		opts:    opts,
		signers: signers,
		version: version,
	}, nil
}

// NewBuilder returns a Builder preconfigured with the Actor's signers,
// default attributes and network parameters.
func (a *Actor) NewBuilder(script []byte) *Builder {
	b := NewBuilder(a.client, a.config())
	b.SetScript(script)
	b.SetAttributes(a.opts.Attributes...)
	// Signers are checked already in NewTuned.
	_ = b.SetSigners(a.signers...)
	return b
}

func (a *Actor) config() Config {
	return Config{
		Network:                     a.GetNetwork(),
		MaxValidUntilBlockIncrement: a.version.Protocol.MaxValidUntilBlockIncrement,
		Logger:                      a.opts.Logger,
	}
}

// CalculateNetworkFee wraps RPCActor's CalculateNetworkFee, making it available
// to Actor users directly. It returns network fee value for the given
// transaction.
func (a *Actor) CalculateNetworkFee(tx *transaction.Transaction) (int64, error) {
	return a.client.CalculateNetworkFee(tx)
}

// GetBlockCount wraps RPCActor's GetBlockCount, making it available to
// Actor users directly. It returns current number of blocks in the chain.
func (a *Actor) GetBlockCount() (uint32, error) {
	return a.client.GetBlockCount()
}

// GetNetwork is a convenience method that returns the network's magic number.
func (a *Actor) GetNetwork() netmode.Magic {
	return a.version.Protocol.Network
}

// GetVersion returns version data from the RPC endpoint.
func (a *Actor) GetVersion() result.Version {
	return *a.version
}

// Sender return the sender address that will be used in transactions created
// by Actor.
func (a *Actor) Sender() util.Uint160 {
	return a.signers[0].Signer.Account
}

// CalculateValidUntilBlock returns the default ValidUntilBlock value for a new
// transaction: the current height plus MaxValidUntilBlockIncrement of the
// network.
func (a *Actor) CalculateValidUntilBlock() (uint32, error) {
	blockCount, err := a.client.GetBlockCount()
	if err != nil {
		return 0, rpcErr("getblockcount", err)
	}
	return blockCount - 1 + a.config().MaxValidUntilBlockIncrement, nil
}

// MakeCall creates a signed transaction that calls the given method of the
// given contract with the given parameters.
func (a *Actor) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	script, err := callScript(contract, method, params...)
	if err != nil {
		return nil, err
	}
	return a.MakeRun(script)
}

// MakeRun creates a signed transaction with the given executable script. Test
// invocation of this script is performed and is expected to end up in HALT
// state. Actor's TransactionModifier is applied before signing.
func (a *Actor) MakeRun(script []byte) (*transaction.Transaction, error) {
	tx, err := a.MakeUnsignedRun(script, nil)
	if err != nil {
		return nil, err
	}
	if err = a.opts.Modifier(tx); err != nil {
		return nil, err
	}
	if err = a.Sign(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// MakeUnsignedCall creates an unsigned transaction with the given attributes
// (or Actor default ones if nil) that calls the given method of the given
// contract with the given parameters.
func (a *Actor) MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	script, err := callScript(contract, method, params...)
	if err != nil {
		return nil, err
	}
	return a.MakeUnsignedRun(script, attrs)
}

// MakeUnsignedRun creates an unsigned transaction with the given attributes
// (or Actor default ones if nil) that executes the given script. The
// transaction returned has correct SystemFee and NetworkFee values and
// verification-only witnesses.
func (a *Actor) MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error) {
	b := a.NewBuilder(script)
	if attrs != nil {
		b.SetAttributes(attrs...)
	}
	return b.GetUnsignedTx()
}

// Sign adds signatures to arbitrary transaction using Actor signers wallets.
// Most of the time it shouldn't be used directly since it'll be successful only
// if the transaction is made using the same set of accounts as the one used
// for Actor creation.
func (a *Actor) Sign(tx *transaction.Transaction) error {
	return SignTx(a.GetNetwork(), tx, a.signers)
}

// Send allows to send arbitrary prepared transaction to the network. It returns
// transaction hash and ValidUntilBlock value.
func (a *Actor) Send(tx *transaction.Transaction) (util.Uint256, uint32, error) {
	h, err := a.client.SendRawTransaction(tx)
	if err != nil {
		return h, tx.ValidUntilBlock, rpcErr("sendrawtransaction", err)
	}
	return h, tx.ValidUntilBlock, nil
}

// SignAndSend signs arbitrary transaction (see also Sign) and sends it to the
// network.
func (a *Actor) SignAndSend(tx *transaction.Transaction) (util.Uint256, uint32, error) {
	return a.sendWrapper(tx, a.Sign(tx))
}

// SendCall creates a transaction that calls the given method of the given
// contract with the given parameters (see also MakeCall) and sends it to the
// network.
func (a *Actor) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	return a.sendWrapper(a.MakeCall(contract, method, params...))
}

// SendRun creates a transaction with the given executable script (see also
// MakeRun) and sends it to the network.
func (a *Actor) SendRun(script []byte) (util.Uint256, uint32, error) {
	return a.sendWrapper(a.MakeRun(script))
}

// sendWrapper simplifies wrapping methods that create transactions.
func (a *Actor) sendWrapper(tx *transaction.Transaction, err error) (util.Uint256, uint32, error) {
	if err != nil {
		return util.Uint256{}, 0, err
	}
	return a.Send(tx)
}

func callScript(contract util.Uint160, method string, params ...any) ([]byte, error) {
	b := smartcontract.NewBuilder()
	b.InvokeMethod(contract, method, params...)
	script, err := b.Script()
	if err != nil {
		return nil, fmt.Errorf("failed to create call script: %w", err)
	}
	return script, nil
}
