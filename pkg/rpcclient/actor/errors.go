package actor

import (
	"errors"
	"fmt"
)

// Transaction configuration errors returned by Builder.
var (
	ErrNoScript                 = errors.New("no script")
	ErrNoSigners                = errors.New("no signers")
	ErrDuplicateSigner          = errors.New("duplicate signer")
	ErrTooManySigners           = errors.New("too many signers")
	ErrTooManyAttributes        = errors.New("too many attributes")
	ErrMultipleHighPriority     = errors.New("multiple HighPriority attributes")
	ErrHighPriorityNotCommittee = errors.New("HighPriority attribute requires a committee signer")
	ErrInvalidValidUntilBlock   = errors.New("invalid ValidUntilBlock")
	ErrMultipleFeeOnlySigners   = errors.New("multiple fee-only (None scope) signers")
	ErrFeeOnlySignerPresent     = errors.New("fee-only (None scope) signer is the sender already")
	ErrSignerNotFound           = errors.New("signer not found")
	ErrSignerAccountMismatch    = errors.New("signer account doesn't match script hash")
	ErrFeePolicyConflict        = errors.New("only one insufficient funds policy can be set")
	ErrNegativeFee              = errors.New("negative additional fee")
	ErrInvalidSigner            = errors.New("invalid signer")
	// ErrUnencodable is returned (wrapped) when some transaction field can't
	// be serialized, like an attribute without value.
	ErrUnencodable = errors.New("transaction can't be encoded")
	// ErrTransactionConfiguration is returned (wrapped) when the test
	// invocation of the script doesn't end in HALT state.
	ErrTransactionConfiguration = errors.New("script test invocation failed")
	// ErrInsufficientFunds is the default error for ThrowIfSenderCannotCoverFees.
	ErrInsufficientFunds = errors.New("sender can't cover fees")
)

// Signing errors.
var (
	// ErrMultiSigAutoSign is returned for multisignature accounts, their
	// witnesses have to be composed by the caller from individual signatures.
	ErrMultiSigAutoSign = errors.New("multisignature accounts can't be signed automatically")
	// ErrSignersMismatch is returned when the set of accounts doesn't match
	// transaction signers.
	ErrSignersMismatch = errors.New("accounts don't match transaction signers")
)

// RPCError wraps any error returned by the RPCActor, so that collaborator
// failures can be told apart from configuration and signing ones.
type RPCError struct {
	// Op is the name of the failed RPC operation.
	Op  string
	Err error
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RPCError) Unwrap() error {
	return e.Err
}

func rpcErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RPCError{Op: op, Err: err}
}
