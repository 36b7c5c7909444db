package cash

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/coin"
	"github.com/iov-one/trustbridge/errors"
)

// CoinMover is the capability to transfer value between wallets.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them
	// to the destination account. This operation is atomic.
	MoveCoins(store trustbridge.KVStore, src trustbridge.Address, dest trustbridge.Address, amount coin.Coin) error
}

// Controller is the functionality needed by other extensions:
// moving funds, minting and balance lookup.
type Controller interface {
	CoinMover

	// IssueCoins adds the given amount to the destination wallet,
	// creating it when missing.
	IssueCoins(store trustbridge.KVStore, dest trustbridge.Address, amount coin.Coin) error

	// Balance returns the amount of funds stored under the given
	// address. Missing wallet is zero funds, not an error.
	Balance(store trustbridge.ReadOnlyKVStore, addr trustbridge.Address) (coin.Coins, error)
}

// BaseController implements Controller on top of a wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under given address.
func (c BaseController) Balance(store trustbridge.ReadOnlyKVStore, src trustbridge.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, nil
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store trustbridge.KVStore,
	src trustbridge.Address, dest trustbridge.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %#v", &amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrInsufficientFunds, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "wallet %s does not contain %s %d", src, amount.Ticker, amount.Whole)
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store trustbridge.KVStore,
	dest trustbridge.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
