package result

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
)

// Version is the getversion result. Transaction builders need the network
// magic and the ValidUntilBlock limit from the Protocol part.
type Version struct {
	TCPPort   uint16   `json:"tcpport"`
	WSPort    uint16   `json:"wsport,omitempty"`
	Nonce     uint32   `json:"nonce"`
	UserAgent string   `json:"useragent"`
	Protocol  Protocol `json:"protocol"`
	RPC       RPC      `json:"rpc"`
}

// RPC is the RPC server configuration of the node.
type RPC struct {
	MaxIteratorResultItems int  `json:"maxiteratorresultitems"`
	SessionEnabled         bool `json:"sessionenabled"`
}

// Protocol holds network parameters of the node.
type Protocol struct {
	AddressVersion              byte          `json:"addressversion"`
	Network                     netmode.Magic `json:"network"`
	MillisecondsPerBlock        int           `json:"msperblock"`
	MaxTraceableBlocks          uint32        `json:"maxtraceableblocks"`
	MaxValidUntilBlockIncrement uint32        `json:"maxvaliduntilblockincrement"`
	MaxTransactionsPerBlock     uint16        `json:"maxtransactionsperblock"`
	MemoryPoolMaxTransactions   int           `json:"memorypoolmaxtransactions"`
	ValidatorsCount             byte          `json:"validatorscount"`
	// InitialGasDistribution is in GAS fractions (1e-8).
	InitialGasDistribution int64           `json:"initialgasdistribution"`
	Hardforks              Hardforks       `json:"hardforks"`
	StandbyCommittee       keys.PublicKeys `json:"standbycommittee"`
	SeedList               []string        `json:"seedlist"`
}

// Hardforks maps hardfork names to their activation heights. Nodes use
// "HF_"-prefixed names, the prefix is stripped on decoding.
type Hardforks map[string]uint32

const hardforkPrefix = "HF_"

type hardforkJSON struct {
	Name   string `json:"name"`
	Height uint32 `json:"blockheight"`
}

// MarshalJSON implements the json.Marshaler interface, hardforks are ordered
// by height.
func (h Hardforks) MarshalJSON() ([]byte, error) {
	list := make([]hardforkJSON, 0, len(h))
	for name, height := range h {
		list = append(list, hardforkJSON{Name: name, Height: height})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Height != list[j].Height {
			return list[i].Height < list[j].Height
		}
		return list[i].Name < list[j].Name
	})
	return json.Marshal(list)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *Hardforks) UnmarshalJSON(data []byte) error {
	var list []hardforkJSON
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	res := make(Hardforks, len(list))
	for _, hf := range list {
		res[strings.TrimPrefix(hf.Name, hardforkPrefix)] = hf.Height
	}
	*h = res
	return nil
}
