package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopesFromString(t *testing.T) {
	_, err := ScopesFromString("")
	require.ErrorIs(t, err, ErrInvalidWitnessScope)

	_, err = ScopesFromString("123")
	require.ErrorIs(t, err, ErrInvalidWitnessScope)

	me, err := ScopesFromString("None")
	require.NoError(t, err)
	require.Equal(t, None, me)

	me, err = ScopesFromString("CalledByEntry")
	require.NoError(t, err)
	require.Equal(t, CalledByEntry, me)

	me, err = ScopesFromString("CalledByEntry, CustomContracts,WitnessRules")
	require.NoError(t, err)
	require.Equal(t, CalledByEntry|CustomContracts|WitnessRules, me)

	me, err = ScopesFromString("Global")
	require.NoError(t, err)
	require.Equal(t, Global, me)

	_, err = ScopesFromString("Global, CalledByEntry")
	require.ErrorIs(t, err, ErrInvalidWitnessScope)

	_, err = ScopesFromString("CustomGroups, Global")
	require.ErrorIs(t, err, ErrInvalidWitnessScope)
}

func TestWitnessScopeString(t *testing.T) {
	require.Equal(t, "None", None.String())
	require.Equal(t, "Global", Global.String())
	require.Equal(t, "CalledByEntry, CustomGroups", (CalledByEntry | CustomGroups).String())
	require.Equal(t, "CustomContracts, WitnessScope(0x02)", (CustomContracts | 0x02).String())
}

func TestWitnessScopeIsValid(t *testing.T) {
	for _, s := range []WitnessScope{None, CalledByEntry, CustomContracts | CustomGroups | WitnessRules, Global} {
		require.True(t, s.IsValid(), s.String())
	}
	for _, s := range []WitnessScope{0x02, 0x08, Global | CalledByEntry, Global | WitnessRules} {
		require.False(t, s.IsValid(), s.String())
	}
}

func TestWitnessScopeJSON(t *testing.T) {
	s := CalledByEntry | CustomContracts
	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.Equal(t, `"CalledByEntry, CustomContracts"`, string(data))

	var actual WitnessScope
	require.NoError(t, json.Unmarshal(data, &actual))
	require.Equal(t, s, actual)

	require.Error(t, json.Unmarshal([]byte(`"Unknown"`), &actual))
	require.Error(t, json.Unmarshal([]byte(`1`), &actual))
}
