package keys

// PublicKeys is a list of public keys, sort.Interface orders them by
// coordinates as multisignature contracts expect.
type PublicKeys []*PublicKey

func (keys PublicKeys) Len() int           { return len(keys) }
func (keys PublicKeys) Swap(i, j int)      { keys[i], keys[j] = keys[j], keys[i] }
func (keys PublicKeys) Less(i, j int) bool { return keys[i].Cmp(keys[j]) < 0 }

// Contains checks whether the key is in the list.
func (keys PublicKeys) Contains(key *PublicKey) bool {
	for _, k := range keys {
		if k.Equal(key) {
			return true
		}
	}
	return false
}

// Copy returns a new list with the same keys.
func (keys PublicKeys) Copy() PublicKeys {
	if keys == nil {
		return nil
	}
	return append(make(PublicKeys, 0, len(keys)), keys...)
}
