package actor

import (
	"errors"
	"math/big"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/internal/keytestcases"
	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc/result"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/stackitem"
	"github.com/R3E-Network/NeoRust-sub000/pkg/wallet"
	"github.com/stretchr/testify/require"
)

type RPCClient struct {
	err       error
	invRes    *result.Invoke
	netFee    int64
	bCount    uint32
	version   *result.Version
	hash      util.Uint256
	committee keys.PublicKeys
	balance   int64

	scripts []int
	sent    *transaction.Transaction
}

func (r *RPCClient) InvokeContractVerify(contract util.Uint160, params []smartcontract.Parameter, signers []transaction.Signer, witnesses ...transaction.Witness) (*result.Invoke, error) {
	return r.invRes, r.err
}
func (r *RPCClient) InvokeFunction(contract util.Uint160, operation string, params []smartcontract.Parameter, signers []transaction.Signer) (*result.Invoke, error) {
	if r.err != nil {
		return nil, r.err
	}
	switch operation {
	case "getCommittee":
		items := make([]stackitem.Item, len(r.committee))
		for i := range r.committee {
			items[i] = stackitem.NewByteArray(r.committee[i].Bytes())
		}
		return &result.Invoke{State: result.StateHalt, Stack: []stackitem.Item{stackitem.NewArray(items)}}, nil
	case "balanceOf":
		return &result.Invoke{State: result.StateHalt, Stack: []stackitem.Item{stackitem.Make(r.balance)}}, nil
	}
	return r.invRes, nil
}
func (r *RPCClient) InvokeScript(script []byte, signers []transaction.Signer) (*result.Invoke, error) {
	r.scripts = append(r.scripts, len(script))
	return r.invRes, r.err
}
func (r *RPCClient) CalculateNetworkFee(tx *transaction.Transaction) (int64, error) {
	return r.netFee, r.err
}
func (r *RPCClient) GetBlockCount() (uint32, error) {
	return r.bCount, r.err
}
func (r *RPCClient) GetVersion() (*result.Version, error) {
	verCopy := *r.version
	return &verCopy, r.err
}
func (r *RPCClient) SendRawTransaction(tx *transaction.Transaction) (util.Uint256, error) {
	r.sent = tx
	return r.hash, r.err
}

func testRPCAndAccount(t *testing.T) (*RPCClient, *wallet.Account) {
	client := &RPCClient{
		version: &result.Version{
			Protocol: result.Protocol{
				Network:                     netmode.UnitTestNet,
				MillisecondsPerBlock:        1000,
				MaxValidUntilBlockIncrement: 100,
			},
		},
		invRes: &result.Invoke{State: result.StateHalt, GasConsumed: 984060},
		netFee: 1230610,
		bCount: 42,
	}
	acc, err := wallet.NewAccountFromWIF(keytestcases.Arr[0].Wif)
	require.NoError(t, err)
	return client, acc
}

func testAccount(t *testing.T, i int) *wallet.Account {
	acc, err := wallet.NewAccountFromWIF(keytestcases.Arr[i].Wif)
	require.NoError(t, err)
	return acc
}

func signerAccount(acc *wallet.Account, scope transaction.WitnessScope) SignerAccount {
	return SignerAccount{
		Signer:  transaction.Signer{Account: acc.ScriptHash(), Scopes: scope},
		Account: acc,
	}
}

func TestNew(t *testing.T) {
	client, acc := testRPCAndAccount(t)

	// No signers.
	_, err := New(client, nil)
	require.Error(t, err)

	_, err = New(client, []SignerAccount{})
	require.Error(t, err)

	// Mismatching contract.
	_, err = New(client, []SignerAccount{{
		Signer: transaction.Signer{
			Account: util.Uint160{1, 2, 3},
			Scopes:  transaction.CalledByEntry,
		},
		Account: acc,
	}})
	require.ErrorIs(t, err, ErrSignerAccountMismatch)

	// Good simple.
	a, err := NewSimple(client, acc)
	require.NoError(t, err)
	require.Equal(t, 1, len(a.signers))
	require.Equal(t, 1, len(a.Signers()))
	require.Equal(t, acc.ScriptHash(), a.Sender())
	require.Equal(t, netmode.UnitTestNet, a.GetNetwork())
	require.Equal(t, uint32(100), a.GetVersion().Protocol.MaxValidUntilBlockIncrement)

	// Bad version.
	client.err = errors.New("")
	_, err = NewSimple(client, acc)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, "getversion", rpcErr.Op)
}

func TestUnsignedTxScenario(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	b := NewBuilder(client, Config{Network: netmode.UnitTestNet})
	b.SetScript([]byte{1, 2, 3}).SetValidUntilBlock(1000)
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))

	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, uint8(0), tx.Version)
	require.Equal(t, []byte{1, 2, 3}, tx.Script)
	require.Equal(t, uint32(1000), tx.ValidUntilBlock)
	require.Equal(t, int64(984060), tx.SystemFee)
	require.Equal(t, int64(1230610), tx.NetworkFee)
	require.Equal(t, 1, len(tx.Signers))
	require.Equal(t, 1, len(tx.Scripts))
	require.Equal(t, acc.Contract.Script, tx.Scripts[0].VerificationScript)
	require.Empty(t, tx.Scripts[0].InvocationScript)

	stx, err := b.Sign()
	require.NoError(t, err)
	require.Equal(t, 1, len(stx.Scripts))
	require.Equal(t, acc.Contract.Script, stx.Scripts[0].VerificationScript)
	require.Equal(t, 2+keys.SignatureLen, len(stx.Scripts[0].InvocationScript))
	require.True(t, acc.PublicKey().VerifyHashable(stx.Scripts[0].InvocationScript[2:], uint32(netmode.UnitTestNet), stx))
}

func TestValidUntilBlock(t *testing.T) {
	client, acc := testRPCAndAccount(t)

	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, uint32(41+5760), tx.ValidUntilBlock)

	b = NewBuilder(client, Config{MaxValidUntilBlockIncrement: 10})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	tx, err = b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, uint32(51), tx.ValidUntilBlock)

	b.SetValidUntilBlock(0)
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrInvalidValidUntilBlock)

	client.err = errors.New("boom")
	b.SetValidUntilBlock(10)
	_, err = b.GetUnsignedTx()
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, "invokescript", rpcErr.Op)

	b = NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	_, err = b.GetUnsignedTx()
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, "getblockcount", rpcErr.Op)
}

func TestBuilderConfigErrors(t *testing.T) {
	client, acc := testRPCAndAccount(t)

	b := NewBuilder(client, Config{})
	_, err := b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrNoScript)

	b.SetScript([]byte{1})
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrNoSigners)

	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry), signerAccount(acc, transaction.Global)))
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrDuplicateSigner)

	many := make([]SignerAccount, 0, 17)
	for i := 0; i < 17; i++ {
		many = append(many, SignerAccount{
			Signer:  transaction.Signer{Account: util.Uint160{byte(i + 1)}, Scopes: transaction.CalledByEntry},
			Account: wallet.NewContractAccount(util.Uint160{byte(i + 1)}),
		})
	}
	require.NoError(t, b.SetSigners(many...))
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrTooManySigners)

	require.NoError(t, b.SetSigners(many[:10]...))
	attrs := make([]transaction.Attribute, 7)
	for i := range attrs {
		attrs[i] = transaction.Attribute{Type: transaction.ConflictsT, Value: &transaction.Conflicts{Hash: util.Uint256{byte(i)}}}
	}
	b.SetAttributes(attrs...)
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrTooManyAttributes)

	require.NoError(t, b.SetSigners(many[:9]...))
	_, err = b.GetUnsignedTx()
	require.NoError(t, err)

	b.SetAttributes()
	b.AddSystemFee(-1)
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrNegativeFee)
}

func TestUnencodableAttributes(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))

	for name, attr := range map[string]transaction.Attribute{
		"no value":     {Type: transaction.ConflictsT},
		"unknown type": {Type: transaction.AttrType(0x42), Value: &transaction.Conflicts{}},
	} {
		t.Run(name, func(t *testing.T) {
			client.scripts = nil
			b.SetAttributes(attr)
			tx, err := b.GetUnsignedTx()
			require.ErrorIs(t, err, ErrUnencodable)
			require.Nil(t, tx)
			require.Empty(t, client.scripts)

			_, err = b.Sign()
			require.ErrorIs(t, err, ErrUnencodable)
		})
	}

	// A transaction assembled by hand is rejected before signing.
	b.SetAttributes()
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	tx.Attributes = []transaction.Attribute{{Type: transaction.NotValidBeforeT}}
	err = SignTx(netmode.UnitTestNet, tx, []SignerAccount{signerAccount(acc, transaction.CalledByEntry)})
	require.ErrorIs(t, err, ErrUnencodable)
	require.Empty(t, tx.Scripts[0].InvocationScript)
}

func TestInvalidSigners(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	b := NewBuilder(client, Config{})

	for name, s := range map[string]transaction.Signer{
		"global with others": {Scopes: transaction.Global | transaction.CalledByEntry},
		"unknown scope bits": {Scopes: transaction.WitnessScope(0x02)},
		"rule without condition": {
			Scopes: transaction.WitnessRules,
			Rules:  []transaction.WitnessRule{{Action: transaction.WitnessAllow}},
		},
		"nested nil condition": {
			Scopes: transaction.WitnessRules,
			Rules: []transaction.WitnessRule{{
				Action:    transaction.WitnessDeny,
				Condition: &transaction.ConditionNot{},
			}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			s.Account = acc.ScriptHash()
			err := b.SetSigners(SignerAccount{Signer: s, Account: acc})
			require.ErrorIs(t, err, ErrInvalidSigner)
			require.Empty(t, b.Signers())
		})
	}

	cond := transaction.ConditionCalledByEntry{}
	good := signerAccount(acc, transaction.WitnessRules)
	good.Signer.Rules = []transaction.WitnessRule{{Action: transaction.WitnessAllow, Condition: cond}}
	require.NoError(t, b.SetSigners(good))
	require.Equal(t, good.Signer.Rules, b.Signers()[0].Signer.Rules)
}

func TestFees(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1}).AddSystemFee(10).AddSystemFee(5).AddNetworkFee(7).AddNetworkFee(3)
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))

	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, int64(984060+15), tx.SystemFee)
	require.Equal(t, int64(1230610+10), tx.NetworkFee)

	// Builder state is not affected by GetUnsignedTx.
	tx2, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, tx.SystemFee, tx2.SystemFee)
	require.Equal(t, tx.NetworkFee, tx2.NetworkFee)
}

func TestNonce(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1}).SetNonce(0xdeadbeef)
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), tx.Nonce)
}

func TestNetworkAffectsSignature(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	b := NewBuilder(client, Config{Network: netmode.TestNet})
	b.SetScript([]byte{1}).SetNonce(1).SetValidUntilBlock(10)
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))

	tx, err := b.Sign()
	require.NoError(t, err)
	sig := tx.Scripts[0].InvocationScript[2:]
	require.True(t, acc.PublicKey().VerifyHashable(sig, uint32(netmode.TestNet), tx))
	require.False(t, acc.PublicKey().VerifyHashable(sig, uint32(netmode.MainNet), tx))
}

func TestFeeOnlySigner(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	acc2 := testAccount(t, 1)
	acc3 := testAccount(t, 2)
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})

	err := b.SetSigners(signerAccount(acc, transaction.None), signerAccount(acc2, transaction.None))
	require.ErrorIs(t, err, ErrMultipleFeeOnlySigners)

	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry), signerAccount(acc2, transaction.None)))
	require.Equal(t, acc2.ScriptHash(), b.Signers()[0].Signer.Account)
	require.Equal(t, acc.ScriptHash(), b.Signers()[1].Signer.Account)

	require.ErrorIs(t, b.FirstSigner(acc.ScriptHash()), ErrFeeOnlySignerPresent)

	tx, err := b.Sign()
	require.NoError(t, err)
	require.Equal(t, acc2.ScriptHash(), tx.Sender())
	require.Equal(t, acc2.Contract.Script, tx.Scripts[0].VerificationScript)
	require.Equal(t, acc.Contract.Script, tx.Scripts[1].VerificationScript)

	require.NoError(t, b.SetSigners(
		signerAccount(acc, transaction.CalledByEntry),
		signerAccount(acc2, transaction.Global),
		signerAccount(acc3, transaction.CalledByEntry)))
	require.ErrorIs(t, b.FirstSigner(util.Uint160{1}), ErrSignerNotFound)
	require.NoError(t, b.FirstSigner(acc3.ScriptHash()))
	s := b.Signers()
	require.Equal(t, acc3.ScriptHash(), s[0].Signer.Account)
	require.Equal(t, acc.ScriptHash(), s[1].Signer.Account)
	require.Equal(t, acc2.ScriptHash(), s[2].Signer.Account)
}

func TestHighPriority(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	acc2 := testAccount(t, 1)
	client.committee = keys.PublicKeys{acc2.PublicKey()}

	hp := transaction.Attribute{Type: transaction.HighPriority}
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1}).SetAttributes(hp, hp)
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	_, err := b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrMultipleHighPriority)

	b.SetAttributes(hp)
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrHighPriorityNotCommittee)

	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry), signerAccount(acc2, transaction.CalledByEntry)))
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.True(t, tx.HasAttribute(transaction.HighPriority))

	// Committee multisignature address.
	client.committee = keys.PublicKeys{acc.PublicKey(), acc2.PublicKey()}
	script, err := smartcontract.CreateMajorityMultiSigRedeemScript(client.committee)
	require.NoError(t, err)
	committeeAcc := wallet.NewContractAccount(hash.Hash160(script))
	require.NoError(t, b.SetSigners(SignerAccount{
		Signer:  transaction.Signer{Account: committeeAcc.ScriptHash(), Scopes: transaction.CalledByEntry},
		Account: committeeAcc,
	}))
	_, err = b.GetUnsignedTx()
	require.NoError(t, err)
}

func TestSenderBalance(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	client.balance = 100
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))

	var called bool
	require.NoError(t, b.DoIfSenderCannotCoverFees(func(required, balance *big.Int) {
		called = true
		require.Equal(t, big.NewInt(984060+1230610), required)
		require.Equal(t, big.NewInt(100), balance)
	}))
	require.ErrorIs(t, b.ThrowIfSenderCannotCoverFees(nil), ErrFeePolicyConflict)
	_, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.True(t, called)

	b = NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	require.NoError(t, b.ThrowIfSenderCannotCoverFees(nil))
	require.ErrorIs(t, b.DoIfSenderCannotCoverFees(func(*big.Int, *big.Int) {}), ErrFeePolicyConflict)
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrInsufficientFunds)

	myErr := errors.New("not enough")
	b = NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	require.NoError(t, b.ThrowIfSenderCannotCoverFees(myErr))
	_, err = b.GetUnsignedTx()
	require.ErrorIs(t, err, myErr)

	client.balance = 984060 + 1230610
	_, err = b.GetUnsignedTx()
	require.NoError(t, err)
}

func TestFault(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	client.invRes = &result.Invoke{State: result.StateFault, GasConsumed: 3, FaultException: "bad"}
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))

	_, err := b.GetUnsignedTx()
	require.ErrorIs(t, err, ErrTransactionConfiguration)

	b.AllowTransmissionOnFault()
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, int64(3), tx.SystemFee)
}

func TestSignTx(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	acc2 := testAccount(t, 1)
	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)

	require.ErrorIs(t, SignTx(netmode.UnitTestNet, tx, nil), ErrSignersMismatch)
	require.ErrorIs(t, SignTx(netmode.UnitTestNet, tx, []SignerAccount{signerAccount(acc2, transaction.CalledByEntry)}), ErrSignersMismatch)

	// Locked account, transaction is not changed.
	acc.Locked = true
	err = SignTx(netmode.UnitTestNet, tx, []SignerAccount{signerAccount(acc, transaction.CalledByEntry)})
	require.ErrorIs(t, err, wallet.ErrAccountLocked)
	require.Empty(t, tx.Scripts[0].InvocationScript)
	acc.Locked = false

	require.NoError(t, SignTx(netmode.UnitTestNet, tx, []SignerAccount{signerAccount(acc, transaction.CalledByEntry)}))
	require.Equal(t, 66, len(tx.Scripts[0].InvocationScript))
}

func TestMultiSigAutoSign(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	acc2 := testAccount(t, 1)
	require.NoError(t, acc.ConvertMultisig(2, keys.PublicKeys{acc.PublicKey(), acc2.PublicKey()}))

	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(signerAccount(acc, transaction.CalledByEntry)))
	tx, err := b.GetUnsignedTx()
	require.NoError(t, err)
	require.Equal(t, acc.Contract.Script, tx.Scripts[0].VerificationScript)

	_, err = b.Sign()
	require.ErrorIs(t, err, ErrMultiSigAutoSign)
}

func TestContractSigner(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	h := util.Uint160{1, 2, 3}
	contractAcc := wallet.NewContractAccount(h,
		smartcontract.Parameter{Type: smartcontract.IntegerType, Value: big.NewInt(1)},
		smartcontract.Parameter{Type: smartcontract.StringType, Value: "x"})

	b := NewBuilder(client, Config{})
	b.SetScript([]byte{1})
	require.NoError(t, b.SetSigners(
		signerAccount(acc, transaction.CalledByEntry),
		SignerAccount{Signer: transaction.Signer{Account: h, Scopes: transaction.CalledByEntry}, Account: contractAcc}))
	tx, err := b.Sign()
	require.NoError(t, err)
	require.Equal(t, 2, len(tx.Scripts))
	require.Empty(t, tx.Scripts[1].VerificationScript)
	// PUSHDATA1 "x", PUSH1.
	require.Equal(t, []byte{0x0c, 0x01, 'x', 0x11}, tx.Scripts[1].InvocationScript)
}

func TestActorSend(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	a, err := NewSimple(client, acc)
	require.NoError(t, err)

	client.hash = util.Uint256{1, 2, 3}
	h, vub, err := a.SendRun([]byte{1})
	require.NoError(t, err)
	require.Equal(t, client.hash, h)
	require.Equal(t, uint32(41+100), vub)
	require.NotNil(t, client.sent)
	require.True(t, acc.PublicKey().VerifyHashable(client.sent.Scripts[0].InvocationScript[2:], uint32(netmode.UnitTestNet), client.sent))

	_, _, err = a.SendCall(util.Uint160{}, "method", 1)
	require.NoError(t, err)

	_, _, err = a.SendCall(util.Uint160{}, "", 1)
	require.Error(t, err)

	vub, err = a.CalculateValidUntilBlock()
	require.NoError(t, err)
	require.Equal(t, uint32(141), vub)

	tx, err := a.MakeUnsignedCall(util.Uint160{}, "method", nil, 1)
	require.NoError(t, err)
	require.Empty(t, tx.Scripts[0].InvocationScript)
	_, _, err = a.SignAndSend(tx)
	require.NoError(t, err)
	require.Equal(t, 66, len(client.sent.Scripts[0].InvocationScript))

	client.err = errors.New("send failed")
	_, _, err = a.Send(tx)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, "sendrawtransaction", rpcErr.Op)
}

func TestActorModifier(t *testing.T) {
	client, acc := testRPCAndAccount(t)
	a, err := NewTuned(client, []SignerAccount{signerAccount(acc, transaction.CalledByEntry)}, Options{
		Attributes: []transaction.Attribute{{Type: transaction.HighPriority}},
		Modifier: func(t *transaction.Transaction) error {
			t.ValidUntilBlock = 7
			return nil
		},
	})
	require.NoError(t, err)
	client.committee = keys.PublicKeys{acc.PublicKey()}

	tx, err := a.MakeRun([]byte{1})
	require.NoError(t, err)
	require.Equal(t, uint32(7), tx.ValidUntilBlock)
	require.True(t, tx.HasAttribute(transaction.HighPriority))

	tx, err = a.MakeUnsignedRun([]byte{1}, []transaction.Attribute{})
	require.NoError(t, err)
	require.False(t, tx.HasAttribute(transaction.HighPriority))

	a.opts.Modifier = func(t *transaction.Transaction) error { return errors.New("no") }
	_, err = a.MakeRun([]byte{1})
	require.Error(t, err)
}
