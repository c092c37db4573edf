package keys

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPublicKeys(t *testing.T, n int) PublicKeys {
	pubs := make(PublicKeys, n)
	for i := range pubs {
		priv, err := NewPrivateKey()
		require.NoError(t, err)
		pubs[i] = priv.PublicKey()
	}
	return pubs
}

func TestPublicKeysSort(t *testing.T) {
	pubs := randomPublicKeys(t, 10)
	shuffled := pubs.Copy()
	rand.Shuffle(len(shuffled), shuffled.Swap)

	sort.Sort(pubs)
	sort.Sort(shuffled)
	require.Equal(t, pubs, shuffled)
	for i := 1; i < len(pubs); i++ {
		require.True(t, pubs.Less(i-1, i))
	}
}

func TestPublicKeysContains(t *testing.T) {
	pubs := randomPublicKeys(t, 3)
	require.True(t, pubs.Contains(pubs[1]))

	decoded, err := NewPublicKeyFromBytes(pubs[2].Bytes(), pubs[2].Curve)
	require.NoError(t, err)
	require.True(t, pubs.Contains(decoded))

	require.False(t, pubs.Contains(testPub(t)))
	require.False(t, PublicKeys(nil).Contains(testPub(t)))
}

func TestPublicKeysCopy(t *testing.T) {
	require.Nil(t, PublicKeys(nil).Copy())

	pubs := randomPublicKeys(t, 5)
	cp := pubs.Copy()
	cp[0] = testPub(t)
	require.NotEqual(t, pubs[0], cp[0])
	require.Equal(t, pubs[1:], cp[1:])
}
