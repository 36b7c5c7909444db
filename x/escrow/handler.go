package escrow

import (
	"fmt"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/coin"
	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/orm"
	"github.com/iov-one/trustbridge/x"
	"github.com/iov-one/trustbridge/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// pay escrow cost up-front
	createEscrowCost  int64 = 300
	releaseEscrowCost int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r trustbridge.Registry, auth x.Authenticator, ctrl cash.Controller) {
	bucket := NewBucket()

	r.Handle(pathCreateEscrowMsg, CreateEscrowHandler{auth, bucket, ctrl})
	r.Handle(pathReleaseEscrowMsg, ReleaseEscrowHandler{auth, bucket, ctrl})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr trustbridge.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// CreateEscrowHandler creates an escrow and locks the amount under
// its custody account.
type CreateEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.CoinMover
}

var _ trustbridge.Handler = CreateEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateEscrowHandler) Check(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return trustbridge.NewCheck(createEscrowCost, ""), nil
}

// Deliver moves the amount from the owner to the custody account and
// persists a new active escrow. The main signer becomes the owner.
func (h CreateEscrowHandler) Deliver(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	owner := x.MainSigner(ctx, h.auth).Address()

	key, err := escrowSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}

	esc := &Escrow{
		Amount:      msg.Amount,
		Owner:       owner,
		Beneficiary: msg.Beneficiary,
		Arbiter:     msg.Arbiter,
		Active:      true,
	}
	if err := h.bucket.Put(db, key, esc); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}

	// Deposit to the custody account.
	if err := h.bank.MoveCoins(db, owner, Condition(key).Address(), *msg.Amount); err != nil {
		return nil, err
	}

	res := &trustbridge.DeliverResult{
		Data: key,
		Tags: escrowTags(key, msg.Amount),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateEscrowHandler) validate(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*CreateEscrowMsg, error) {
	var msg CreateEscrowMsg
	if err := trustbridge.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// the owner wallet is charged, so a signer is required
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	return &msg, nil
}

// ReleaseEscrowHandler releases the custody funds to the beneficiary
// and deactivates the escrow.
type ReleaseEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.CoinMover
}

var _ trustbridge.Handler = ReleaseEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ReleaseEscrowHandler) Check(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return trustbridge.NewCheck(releaseEscrowCost, ""), nil
}

// Deliver moves the locked amount from the custody account to the
// beneficiary if all preconditions are met. The escrow record stays
// in the store, deactivated.
func (h ReleaseEscrowHandler) Deliver(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	custody := Condition(msg.EscrowId).Address()
	if err := h.bank.MoveCoins(db, custody, esc.Beneficiary, *esc.Amount); err != nil {
		return nil, err
	}

	esc.Active = false
	if err := h.bucket.Put(db, msg.EscrowId, esc); err != nil {
		return nil, errors.Wrap(err, "cannot save escrow")
	}

	res := &trustbridge.DeliverResult{
		Data: msg.EscrowId,
		Tags: escrowTags(msg.EscrowId, esc.Amount),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
//
// The authorization check covers the active flag as well. Whether the
// escrow was already released or the caller is not the arbiter, the
// answer is the same unauthorized, so a caller cannot probe which
// check failed.
func (h ReleaseEscrowHandler) validate(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*ReleaseEscrowMsg, *Escrow, error) {
	var msg ReleaseEscrowMsg
	if err := trustbridge.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	esc, err := GetEscrow(db, h.bucket, msg.EscrowId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load escrow")
	}
	if esc == nil {
		return nil, nil, errors.Wrapf(ErrNoEscrow, "%X", msg.EscrowId)
	}

	if !esc.Active || !h.auth.HasAddress(ctx, esc.Arbiter) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, esc, nil
}

func escrowTags(id []byte, amount *coin.Coin) []common.KVPair {
	return []common.KVPair{
		{Key: []byte("escrow-id"), Value: []byte(fmt.Sprintf("%X", id))},
		{Key: []byte("escrow-amount"), Value: []byte(amount.String())},
	}
}
