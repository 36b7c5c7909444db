package escrow

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
)

const (
	pathCreateEscrowMsg  = "escrow/create"
	pathReleaseEscrowMsg = "escrow/release"
)

var _ trustbridge.Msg = (*CreateEscrowMsg)(nil)
var _ trustbridge.Msg = (*ReleaseEscrowMsg)(nil)

// Path fulfills trustbridge.Msg interface to allow routing
func (CreateEscrowMsg) Path() string {
	return pathCreateEscrowMsg
}

// Path fulfills trustbridge.Msg interface to allow routing
func (ReleaseEscrowMsg) Path() string {
	return pathReleaseEscrowMsg
}

// Validate makes sure that this is sensible.
//
// There is no constraint keeping the parties distinct. An account may
// fill several roles, including arbitrating its own escrow.
func (m *CreateEscrowMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if err := m.Arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if m.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	return nil
}

// Validate makes sure that this is sensible
func (m *ReleaseEscrowMsg) Validate() error {
	return validateEscrowID(m.EscrowId)
}

// validateEscrowID ensures the escrow id is the size issued by the
// sequence.
func validateEscrowID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "escrow id: %X", id)
	}
	return nil
}
