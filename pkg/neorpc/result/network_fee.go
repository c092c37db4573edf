package result

import "github.com/R3E-Network/NeoRust-sub000/pkg/util"

// NetworkFee represents a result of calculatenetworkfee RPC call.
type NetworkFee struct {
	Value int64 `json:"networkfee,string"`
}

// RelayResult is a result of `sendrawtransaction` or `submitblock` RPC calls.
type RelayResult struct {
	Hash util.Uint256 `json:"hash"`
}
