package actor

import (
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/wallet"
)

// SignerAccount represents combination of the transaction.Signer and the
// corresponding wallet.Account. It's used to create and sign transactions, each
// transaction has a set of signers that must witness the transaction with their
// signatures.
type SignerAccount struct {
	Signer  transaction.Signer
	Account *wallet.Account
}

// SignTx adds witnesses of all accounts to the transaction replacing the
// existing ones. Accounts must be given in the order of transaction signers.
// Standard single-signature accounts need a private key, deployed contract
// accounts get their verify parameters pushed into the invocation script.
// Multisignature accounts can't be handled here, their witnesses are to be
// composed with smartcontract.CreateMultiSigInvocationScript. Transaction is
// not changed if any error is returned.
func SignTx(net netmode.Magic, tx *transaction.Transaction, accounts []SignerAccount) error {
	if len(tx.Signers) != len(accounts) {
		return fmt.Errorf("%w: %d signers, %d accounts", ErrSignersMismatch, len(tx.Signers), len(accounts))
	}
	if err := checkEncodable(tx); err != nil {
		return err
	}
	for i := range accounts {
		if !tx.Signers[i].Account.Equals(accounts[i].Signer.Account) {
			return fmt.Errorf("%w: signer #%d is %s", ErrSignersMismatch, i, tx.Signers[i].Account.StringLE())
		}
		if err := checkSignerAccount(accounts[i]); err != nil {
			return err
		}
		if accounts[i].Account.IsMultiSig() {
			return fmt.Errorf("%w: signer #%d (%s)", ErrMultiSigAutoSign, i, accounts[i].Account.Address)
		}
	}
	// Witnesses are built on a copy, so that tx is either fully signed or
	// left as is.
	signed := *tx
	signed.Scripts = make([]transaction.Witness, 0, len(accounts))
	for i := range accounts {
		signed.Scripts = append(signed.Scripts, verificationWitness(accounts[i]))
		err := accounts[i].Account.SignTx(net, &signed)
		if err != nil {
			return fmt.Errorf("failed to add witness for signer #%d (%s): %w", i, accounts[i].Account.Address, err)
		}
	}
	tx.Scripts = signed.Scripts
	return nil
}
