package escrow

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/orm"
)

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is valid
func (e *Escrow) Validate() error {
	if err := e.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := e.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if err := e.Arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if e.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := e.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !e.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	return nil
}

// Copy produces an independent copy of the escrow.
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Amount:      e.Amount.Clone(),
		Owner:       e.Owner.Clone(),
		Beneficiary: e.Beneficiary.Clone(),
		Arbiter:     e.Arbiter.Clone(),
		Active:      e.Active,
	}
}

// Condition calculates the custody condition of an escrow given
// the key
func Condition(key []byte) trustbridge.Condition {
	return trustbridge.NewCondition("escrow", "seq", key)
}

// NewBucket returns a bucket holding all escrows, keyed by sequence
// IDs.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("esc", &Escrow{})
}

// escrowSeq issues escrow IDs. Zero based, so the first escrow gets
// ID 0.
var escrowSeq = orm.NewSequence("escrow", "id")

// GetEscrow loads the escrow with the given ID. An unknown ID returns
// a nil escrow, not an error.
func GetEscrow(db trustbridge.ReadOnlyKVStore, bucket orm.ModelBucket, id []byte) (*Escrow, error) {
	var esc Escrow
	switch err := bucket.One(db, id, &esc); {
	case err == nil:
		return &esc, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}
