/*
Package netmode defines network magic numbers of well-known Neo networks.
*/
package netmode

import "strconv"

// Magic is the network magic number, it's a part of every signed message.
type Magic uint32

// Well-known networks.
const (
	MainNet     Magic = 0x334f454e // "NEO3"
	TestNet     Magic = 0x3554334e // "N3T5"
	PrivNet     Magic = 56753      // Docker-based private network
	UnitTestNet Magic = 42
)

var names = map[Magic]string{
	MainNet:     "mainnet",
	TestNet:     "testnet",
	PrivNet:     "privnet",
	UnitTestNet: "unit_testnet",
}

// String implements the fmt.Stringer interface, unknown networks are printed
// as hex numbers.
func (n Magic) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "net 0x" + strconv.FormatUint(uint64(n), 16)
}
