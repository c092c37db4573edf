package smartcontract

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/interop/interopnames"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/emit"
)

// CreateSignatureRedeemScript creates a check signature script runnable by VM.
func CreateSignatureRedeemScript(pub *keys.PublicKey) []byte {
	return pub.GetVerificationScript()
}

// CreateMultiSigRedeemScript creates an "m out of n" type verification script
// where n is the length of publicKeys. Keys are used in the given order, it's
// caller's responsibility to sort them if needed.
func CreateMultiSigRedeemScript(m int, publicKeys keys.PublicKeys) ([]byte, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: param m cannot be smaller than 1, got %d", ErrInvalidArgument, m)
	}
	if m > len(publicKeys) {
		return nil, fmt.Errorf("%w: length of the signatures (%d) is higher than the number of public keys", ErrInvalidArgument, m)
	}
	if len(publicKeys) > vm.MaxMultisigKeys {
		return nil, fmt.Errorf("%w: number of public keys %d exceeds %d", ErrInvalidArgument, len(publicKeys), vm.MaxMultisigKeys)
	}

	buf := io.NewBufBinWriter()
	emit.Int(buf.BinWriter, int64(m))
	for _, pubKey := range publicKeys {
		emit.Bytes(buf.BinWriter, pubKey.Bytes())
	}
	emit.Int(buf.BinWriter, int64(len(publicKeys)))
	emit.Syscall(buf.BinWriter, interopnames.SystemCryptoCheckMultisig)

	return buf.Bytes(), buf.Err
}

// CreateDefaultMultiSigRedeemScript creates an "m out of n" type verification script
// using publicKeys length with the default BFT assumptions of (n - (n-1)/3) for m.
// Keys are sorted before use.
func CreateDefaultMultiSigRedeemScript(publicKeys keys.PublicKeys) ([]byte, error) {
	n := len(publicKeys)
	m := GetDefaultHonestNodeCount(n)
	return createSortedMultiSigRedeemScript(m, publicKeys)
}

// CreateMajorityMultiSigRedeemScript creates an "m out of n" type verification script
// using publicKeys length with m set to majority. Keys are sorted before use.
func CreateMajorityMultiSigRedeemScript(publicKeys keys.PublicKeys) ([]byte, error) {
	n := len(publicKeys)
	m := GetMajorityHonestNodeCount(n)
	return createSortedMultiSigRedeemScript(m, publicKeys)
}

func createSortedMultiSigRedeemScript(m int, publicKeys keys.PublicKeys) ([]byte, error) {
	pubs := publicKeys.Copy()
	sort.Sort(pubs)
	return CreateMultiSigRedeemScript(m, pubs)
}

// GetDefaultHonestNodeCount returns minimum number of honest nodes
// required for network of size n.
func GetDefaultHonestNodeCount(n int) int {
	return n - (n-1)/3
}

// GetMajorityHonestNodeCount returns minimum number of honest nodes
// required for majority-style agreement.
func GetMajorityHonestNodeCount(n int) int {
	return n - (n-1)/2
}

// CreateMultiSigInvocationScript composes an invocation script for the given
// multisignature verification script from externally produced signatures.
// sigs maps compressed public keys (as hex strings) to signatures, keys are
// walked in the order of the verification script and the first m signatures
// found are pushed. It fails if there are less than m signatures available.
func CreateMultiSigInvocationScript(verification []byte, sigs map[string][]byte) ([]byte, error) {
	m, pubs, ok := vm.ParseMultiSigContract(verification)
	if !ok {
		return nil, fmt.Errorf("%w: not a multisignature script", ErrInvalidArgument)
	}
	buf := io.NewBufBinWriter()
	var count int
	for i := 0; i < len(pubs) && count < m; i++ {
		sig, ok := sigs[hex.EncodeToString(pubs[i])]
		if !ok {
			continue
		}
		if len(sig) != keys.SignatureLen {
			return nil, fmt.Errorf("%w: bad signature length %d for key #%d", ErrInvalidArgument, len(sig), i)
		}
		emit.Bytes(buf.BinWriter, sig)
		count++
	}
	if count < m {
		return nil, fmt.Errorf("%w: not enough signatures: %d out of %d", ErrInvalidArgument, count, m)
	}
	return buf.Bytes(), buf.Err
}
