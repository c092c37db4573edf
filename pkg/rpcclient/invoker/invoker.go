/*
Package invoker runs test invocations at the current chain height.

An Invoker pairs an RPC client with a fixed list of signers, so that a
series of calls, verifications and script runs is executed in the same
witness context. Nothing it does produces transactions or changes the
chain state, results are returned as is for the caller to unwrap.
*/
package invoker

import (
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc/result"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// RPCInvoke is the subset of node calls used by Invoker.
type RPCInvoke interface {
	InvokeContractVerify(contract util.Uint160, params []smartcontract.Parameter, signers []transaction.Signer, witnesses ...transaction.Witness) (*result.Invoke, error)
	InvokeFunction(contract util.Uint160, operation string, params []smartcontract.Parameter, signers []transaction.Signer) (*result.Invoke, error)
	InvokeScript(script []byte, signers []transaction.Signer) (*result.Invoke, error)
}

// Invoker test-executes contract methods and scripts with its signers.
// Call parameters are regular Go values converted with
// smartcontract.NewParameterFromValue.
type Invoker struct {
	client  RPCInvoke
	signers []transaction.Signer
}

// New creates an Invoker using a deep copy of signers, nil signers are kept
// as nil.
func New(client RPCInvoke, signers []transaction.Signer) *Invoker {
	return &Invoker{client: client, signers: copySigners(signers)}
}

func copySigners(signers []transaction.Signer) []transaction.Signer {
	if signers == nil {
		return nil
	}
	res := make([]transaction.Signer, 0, len(signers))
	for i := range signers {
		res = append(res, *signers[i].Copy())
	}
	return res
}

// Signers returns the signers used for invocations.
func (v *Invoker) Signers() []transaction.Signer {
	return v.signers
}

// Call test-invokes the contract method with params.
func (v *Invoker) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	ps, err := smartcontract.NewParametersFromValues(params...)
	if err != nil {
		return nil, err
	}
	return v.client.InvokeFunction(contract, operation, ps, v.signers)
}

// Verify runs the verify method of the contract in the verification
// context, witnesses are passed along with the signers.
func (v *Invoker) Verify(contract util.Uint160, witnesses []transaction.Witness, params ...any) (*result.Invoke, error) {
	ps, err := smartcontract.NewParametersFromValues(params...)
	if err != nil {
		return nil, err
	}
	return v.client.InvokeContractVerify(contract, ps, v.signers, witnesses...)
}

// Run test-executes the script.
func (v *Invoker) Run(script []byte) (*result.Invoke, error) {
	return v.client.InvokeScript(script, v.signers)
}
