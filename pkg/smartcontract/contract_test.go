package smartcontract

import (
	"encoding/hex"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidators(t *testing.T) keys.PublicKeys {
	val1, err := keys.NewPublicKeyFromString("03b209fd4f53a7170ea4444e0cb0a6bb6a53c2bd016926989cf85f9b0fba17a70c")
	require.NoError(t, err)
	val2, err := keys.NewPublicKeyFromString("02df48f60e8f3e01c48ff40b9b7f1310d7a8b2a193188befe1c2e3df740e895093")
	require.NoError(t, err)
	val3, err := keys.NewPublicKeyFromString("03b8d9d5771d8f513aa0869b9cc8d50986403b78c6da36890638c3d46a5adce04a")
	require.NoError(t, err)
	return keys.PublicKeys{val1, val2, val3}
}

func TestCreateMultiSigRedeemScript(t *testing.T) {
	validators := testValidators(t)

	out, err := CreateMultiSigRedeemScript(3, validators)
	require.NoError(t, err)

	br := io.NewBinReaderFromBuf(out)
	assert.Equal(t, opcode.PUSH3, opcode.Opcode(br.ReadB()))

	for i := 0; i < len(validators); i++ {
		assert.EqualValues(t, opcode.PUSHDATA1, br.ReadB())
		bb := br.ReadVarBytes()
		require.NoError(t, br.Err)
		assert.Equal(t, validators[i].Bytes(), bb)
	}

	assert.Equal(t, opcode.PUSH3, opcode.Opcode(br.ReadB()))
	assert.Equal(t, opcode.SYSCALL, opcode.Opcode(br.ReadB()))
	br.ReadU32LE()
	br.CheckEOF()
	require.NoError(t, br.Err)
}

func TestCreateMultiSigRedeemScriptKnown(t *testing.T) {
	validators := testValidators(t)

	out, err := CreateMultiSigRedeemScript(2, validators)
	require.NoError(t, err)
	require.Equal(t, "120c2103b209fd4f53a7170ea4444e0cb0a6bb6a53c2bd016926989cf85f9b0fba17a70c"+
		"0c2102df48f60e8f3e01c48ff40b9b7f1310d7a8b2a193188befe1c2e3df740e895093"+
		"0c2103b8d9d5771d8f513aa0869b9cc8d50986403b78c6da36890638c3d46a5adce04a"+
		"13419ed0dc3a", hex.EncodeToString(out))
	require.Equal(t, "NPrqVFXHgfPyEYtna6RC6JTjSzb4Nci6kS", address.Uint160ToString(hash.Hash160(out)))

	// Caller order matters.
	swapped := keys.PublicKeys{validators[1], validators[0], validators[2]}
	out2, err := CreateMultiSigRedeemScript(2, swapped)
	require.NoError(t, err)
	require.NotEqual(t, hash.Hash160(out), hash.Hash160(out2))
}

func TestCreateMultiSigRedeemScriptBad(t *testing.T) {
	validators := testValidators(t)

	for _, m := range []int{-1, 0, 4} {
		_, err := CreateMultiSigRedeemScript(m, validators)
		require.ErrorIs(t, err, ErrInvalidArgument, m)
	}

	_, err := CreateMultiSigRedeemScript(1, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	many := make(keys.PublicKeys, vm.MaxMultisigKeys+1)
	for i := range many {
		many[i] = validators[i%3]
	}
	_, err = CreateMultiSigRedeemScript(1, many)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMultiSigRoundTrip(t *testing.T) {
	validators := testValidators(t)
	for n := 1; n <= len(validators); n++ {
		for m := 1; m <= n; m++ {
			script, err := CreateMultiSigRedeemScript(m, validators[:n])
			require.NoError(t, err)

			th, err := vm.GetSigningThreshold(script)
			require.NoError(t, err)
			require.Equal(t, m, th)
			nr, err := vm.GetNrOfAccounts(script)
			require.NoError(t, err)
			require.Equal(t, n, nr)
		}
	}
}

func TestCreateDefaultMultiSigRedeemScript(t *testing.T) {
	validators := testValidators(t)

	var testFn = func(t *testing.T, expected int) {
		result, err := CreateDefaultMultiSigRedeemScript(validators)
		require.NoError(t, err)

		m, pubs, ok := vm.ParseMultiSigContract(result)
		require.True(t, ok)
		require.Equal(t, expected, m)
		for i := 1; i < len(pubs); i++ {
			pi, err := keys.NewPublicKeyFromString(hex.EncodeToString(pubs[i-1]))
			require.NoError(t, err)
			pj, err := keys.NewPublicKeyFromString(hex.EncodeToString(pubs[i]))
			require.NoError(t, err)
			require.True(t, pi.Cmp(pj) <= 0)
		}
	}

	testFn(t, 3)

	validators = append(validators, validators[0])
	testFn(t, 3)

	validators = validators[:1]
	testFn(t, 1)
}

func TestCreateMajorityMultiSigRedeemScript(t *testing.T) {
	validators := testValidators(t)
	sorted := keys.PublicKeys{validators[0], validators[2], validators[1]}

	result, err := CreateMajorityMultiSigRedeemScript(validators)
	require.NoError(t, err)
	expected, err := CreateMultiSigRedeemScript(2, sorted)
	require.NoError(t, err)
	require.Equal(t, expected, result)

	// Source slice is not reordered.
	require.Equal(t, "02df48f60e8f3e01c48ff40b9b7f1310d7a8b2a193188befe1c2e3df740e895093", validators[1].StringCompressed())
}

func TestCreateSignatureRedeemScript(t *testing.T) {
	pub := testValidators(t)[0]
	script := CreateSignatureRedeemScript(pub)
	require.Equal(t, 40, len(script))
	require.True(t, vm.IsSignatureContract(script))
	th, err := vm.GetSigningThreshold(script)
	require.NoError(t, err)
	require.Equal(t, 1, th)
}

func TestCreateMultiSigInvocationScript(t *testing.T) {
	privs := make([]*keys.PrivateKey, 3)
	pubs := make(keys.PublicKeys, 3)
	for i := range privs {
		var err error
		privs[i], err = keys.NewPrivateKey()
		require.NoError(t, err)
		pubs[i] = privs[i].PublicKey()
	}
	verif, err := CreateMultiSigRedeemScript(2, pubs)
	require.NoError(t, err)

	data := []byte{1, 2, 3}
	sigs := map[string][]byte{
		pubs[2].StringCompressed(): privs[2].Sign(data),
		pubs[0].StringCompressed(): privs[0].Sign(data),
	}
	inv, err := CreateMultiSigInvocationScript(verif, sigs)
	require.NoError(t, err)
	require.Equal(t, 2*(2+keys.SignatureLen), len(inv))
	require.Equal(t, sigs[pubs[0].StringCompressed()], inv[2:2+keys.SignatureLen])
	require.Equal(t, sigs[pubs[2].StringCompressed()], inv[4+keys.SignatureLen:])

	delete(sigs, pubs[0].StringCompressed())
	_, err = CreateMultiSigInvocationScript(verif, sigs)
	require.ErrorIs(t, err, ErrInvalidArgument)

	sigs[pubs[1].StringCompressed()] = []byte{1, 2}
	_, err = CreateMultiSigInvocationScript(verif, sigs)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = CreateMultiSigInvocationScript(pubs[0].GetVerificationScript(), sigs)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
