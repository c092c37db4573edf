package config

import (
	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
)

// ProtocolConfiguration represents the part of the network protocol
// configuration transactions depend on.
type ProtocolConfiguration struct {
	// Magic is the network magic, it's a part of every signed message.
	Magic netmode.Magic `yaml:"Magic"`
	// AddressVersion is the version byte used for Base58 addresses.
	AddressVersion byte `yaml:"AddressVersion"`
	// MaxValidUntilBlockIncrement is the upper increment size of blockchain height in blocks
	// exceeding that a transaction should fail validation.
	MaxValidUntilBlockIncrement uint32 `yaml:"MaxValidUntilBlockIncrement"`
}

func (p *ProtocolConfiguration) setDefaults() {
	if p.AddressVersion == 0 {
		p.AddressVersion = DefaultAddressVersion
	}
	if p.MaxValidUntilBlockIncrement == 0 {
		p.MaxValidUntilBlockIncrement = DefaultMaxValidUntilBlockIncrement
	}
}
