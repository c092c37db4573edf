package cmdargs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/cli/flags"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
)

// ParseSigners parses signers given in signer[:scopes] form, addresses are
// expected to have the given version byte.
func ParseSigners(args []string, addrVersion byte) ([]transaction.Signer, error) {
	var signers []transaction.Signer
	for i := range args {
		s, err := parseSigner(args[i], addrVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to parse signer #%d: %w", i, err)
		}
		signers = append(signers, s)
	}
	return signers, nil
}

func parseSigner(arg string, addrVersion byte) (transaction.Signer, error) {
	acc, scopes, hasScopes := strings.Cut(arg, ":")
	h, err := flags.ParseAddress(acc, addrVersion)
	if err != nil {
		return transaction.Signer{}, err
	}
	res := transaction.Signer{
		Account: h,
		Scopes:  transaction.CalledByEntry,
	}
	if !hasScopes {
		return res, nil
	}
	res.Scopes = transaction.None
	for _, item := range strings.Split(scopes, ",") {
		if err := addScope(&res, item, addrVersion); err != nil {
			return transaction.Signer{}, err
		}
	}
	return res, nil
}

// addScope adds a single scope with its subitems (separated by ':') to s.
func addScope(s *transaction.Signer, item string, addrVersion byte) error {
	parts := strings.Split(item, ":")
	scope, err := transaction.ScopesFromString(parts[0])
	if err != nil {
		return err
	}
	global := scope == transaction.Global
	if global && s.Scopes&^transaction.Global != 0 || !global && s.Scopes&transaction.Global != 0 {
		return errors.New("Global scope can not be combined with other scopes")
	}
	s.Scopes |= scope

	subitems := parts[1:]
	switch scope {
	case transaction.CustomContracts:
		if len(subitems) == 0 {
			return errors.New("CustomContracts scope must refer to at least one contract")
		}
		for _, c := range subitems {
			h, err := flags.ParseAddress(c, addrVersion)
			if err != nil {
				return err
			}
			s.AllowedContracts = append(s.AllowedContracts, h)
		}
	case transaction.CustomGroups:
		if len(subitems) == 0 {
			return errors.New("CustomGroups scope must refer to at least one group")
		}
		for _, g := range subitems {
			pub, err := keys.NewPublicKeyFromString(g)
			if err != nil {
				return err
			}
			s.AllowedGroups = append(s.AllowedGroups, pub)
		}
	default:
		if len(subitems) != 0 {
			return fmt.Errorf("%s scope doesn't accept subitems", parts[0])
		}
	}
	return nil
}
