package cash

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/coin"
	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

//---- Set

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return coin.Coins(s.GetCoins()).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	return &Set{
		Coins: coin.Coins(s.GetCoins()).Clone(),
	}
}

//--- Wallet (Set object, wallet + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key trustbridge.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// WalletWith creates a wallet with a balance
func WalletWith(key trustbridge.Address, coins ...*coin.Coin) (*Wallet, error) {
	w := NewWallet(key)
	if err := w.Concat(coins); err != nil {
		return nil, err
	}
	return w, nil
}

// Value gets the value stored in the object
func (w Wallet) Value() trustbridge.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy(),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return coin.Coins(w.value.GetCoins())
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func (w *Wallet) Concat(coins coin.Coins) error {
	joint, err := w.Coins().Combine(coins)
	if err != nil {
		return err
	}
	w.value.Coins = joint
	return nil
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

var _ trustbridge.QueryHandler = Bucket{}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// Get returns the wallet for the address, or nil when absent.
func (b Bucket) Get(db trustbridge.ReadOnlyKVStore, key trustbridge.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

// GetOrCreate returns the wallet for the address, empty when absent.
func (b Bucket) GetOrCreate(db trustbridge.ReadOnlyKVStore, key trustbridge.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}

// Save persists the wallet.
func (b Bucket) Save(db trustbridge.KVStore, wallet *Wallet) error {
	return b.Bucket.Save(db, wallet)
}
