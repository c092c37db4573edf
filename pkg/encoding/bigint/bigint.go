// Package bigint converts big integers to/from the little-endian two's
// complement form used by NeoVM.
package bigint

import (
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/util/slice"
)

// MaxBytesLen is the maximum length of a serialized integer suitable for Neo VM.
const MaxBytesLen = 32 // 256-bit signed integer

var bigOne = big.NewInt(1)

// FromBytesUnsigned converts data in little-endian format to an unsigned integer.
func FromBytesUnsigned(data []byte) *big.Int {
	bs := slice.CopyReverse(data)
	return new(big.Int).SetBytes(bs)
}

// FromBytes converts data in little-endian two's complement format to an
// integer. An empty slice is zero.
func FromBytes(data []byte) *big.Int {
	n := FromBytesUnsigned(data)
	if len(data) != 0 && data[len(data)-1]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(bigOne, uint(len(data))*8))
	}
	return n
}

// ToBytes converts an integer to a slice in little-endian two's complement
// format using the minimal number of bytes. Zero is an empty slice.
func ToBytes(n *big.Int) []byte {
	switch n.Sign() {
	case 0:
		return []byte{}
	case 1:
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		slice.Reverse(b)
		return b
	default:
		// -n-1 has the same bit length as the magnitude part of n.
		abs := new(big.Int).Neg(n)
		abs.Sub(abs, bigOne)
		size := abs.BitLen()/8 + 1

		v := new(big.Int).Lsh(bigOne, uint(size)*8)
		v.Add(v, n)
		b := v.FillBytes(make([]byte, size))
		slice.Reverse(b)
		return b
	}
}
