package escrow

import "github.com/iov-one/trustbridge/errors"

// ABCI Response Codes
// escrow takes 1010-1019
var (
	// ErrNoEscrow is returned when the requested escrow ID was never
	// assigned.
	ErrNoEscrow = errors.Register(1010, "no escrow found")

	// ErrEscrowNotActive signals an escrow whose funds were already
	// released. Note that a release attempt on an inactive escrow
	// reports errors.ErrUnauthorized instead: the authorization check
	// covers the active flag and does not reveal which part failed.
	ErrEscrowNotActive = errors.Register(1011, "escrow not active")
)
