package rpcclient

import (
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc/result"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// call performs a request and decodes its result into a new T.
func call[T any](c *Client, method string, params ...any) (*T, error) {
	res := new(T)
	if err := c.performRequest(method, params, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetVersion returns the node version along with its protocol settings.
func (c *Client) GetVersion() (*result.Version, error) {
	return call[result.Version](c, "getversion")
}

// GetBlockCount returns the number of blocks in the chain, that's the height
// of the next block.
func (c *Client) GetBlockCount() (uint32, error) {
	n, err := call[uint32](c, "getblockcount")
	if err != nil {
		return 0, err
	}
	return *n, nil
}

// CalculateNetworkFee asks the node for the network fee of tx. Witnesses of
// standard signers need verification scripts only, contract signers may
// have empty ones.
func (c *Client) CalculateNetworkFee(tx *transaction.Transaction) (int64, error) {
	fee, err := call[result.NetworkFee](c, "calculatenetworkfee", tx.Bytes())
	if err != nil {
		return 0, err
	}
	return fee.Value, nil
}

// InvokeScript test-invokes the script with the given signers (which can be
// nil), nothing is persisted.
func (c *Client) InvokeScript(script []byte, signers []transaction.Signer) (*result.Invoke, error) {
	return c.invoke("invokescript", []any{script}, signers, nil)
}

// InvokeFunction test-invokes the method of the contract with the given
// parameters and signers.
func (c *Client) InvokeFunction(contract util.Uint160, operation string, params []smartcontract.Parameter, signers []transaction.Signer) (*result.Invoke, error) {
	if params == nil {
		params = []smartcontract.Parameter{}
	}
	return c.invoke("invokefunction", []any{contract.StringLE(), operation, params}, signers, nil)
}

// InvokeContractVerify runs the verify method of the contract in the
// verification context. Witnesses (if any) must correspond to signers.
func (c *Client) InvokeContractVerify(contract util.Uint160, params []smartcontract.Parameter, signers []transaction.Signer, witnesses ...transaction.Witness) (*result.Invoke, error) {
	if params == nil {
		params = []smartcontract.Parameter{}
	}
	return c.invoke("invokecontractverify", []any{contract.StringLE(), params}, signers, witnesses)
}

func (c *Client) invoke(method string, params []any, signers []transaction.Signer, witnesses []transaction.Witness) (*result.Invoke, error) {
	switch {
	case signers == nil:
	case witnesses == nil:
		params = append(params, signers)
	case len(witnesses) != len(signers):
		return nil, fmt.Errorf("number of witnesses should match number of signers, got %d vs %d", len(witnesses), len(signers))
	default:
		sw := make([]neorpc.SignerWithWitness, len(signers))
		for i := range sw {
			sw[i] = neorpc.SignerWithWitness{Signer: signers[i], Witness: witnesses[i]}
		}
		params = append(params, sw)
	}
	return call[result.Invoke](c, method, params...)
}

// SendRawTransaction relays tx to the network. The hash returned by the node
// is returned on success, the local hash of tx otherwise.
func (c *Client) SendRawTransaction(tx *transaction.Transaction) (util.Uint256, error) {
	res, err := call[result.RelayResult](c, "sendrawtransaction", tx.Bytes())
	if err != nil {
		return tx.Hash(), err
	}
	return res.Hash, nil
}
