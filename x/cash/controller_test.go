package cash

import (
	"testing"

	"github.com/iov-one/trustbridge/coin"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := tbtest.NewCondition().Address()

	// missing wallet is zero funds, not an error
	cs, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())

	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(100, 0, "IOV")))
	cs, err = ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, cs.Contains(coin.NewCoin(100, 0, "IOV")))
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	alice := tbtest.NewCondition().Address()
	bob := tbtest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(50, 0, "IOV")))

	require.NoError(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(20, 0, "IOV")))

	acs, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, acs.Contains(coin.NewCoin(30, 0, "IOV")))
	assert.False(t, acs.Contains(coin.NewCoin(31, 0, "IOV")))

	bcs, err := ctrl.Balance(db, bob)
	require.NoError(t, err)
	assert.True(t, bcs.Contains(coin.NewCoin(20, 0, "IOV")))
}

func TestMoveCoinsInsufficient(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	alice := tbtest.NewCondition().Address()
	bob := tbtest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(10, 0, "IOV")))

	// more than the wallet holds
	err := ctrl.MoveCoins(db, alice, bob, coin.NewCoin(11, 0, "IOV"))
	assert.True(t, ErrInsufficientFunds.Is(err))

	// wrong currency
	err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(1, 0, "BTC"))
	assert.True(t, ErrInsufficientFunds.Is(err))

	// missing source wallet
	err = ctrl.MoveCoins(db, bob, alice, coin.NewCoin(1, 0, "IOV"))
	assert.True(t, ErrInsufficientFunds.Is(err))

	// balances are untouched after failures
	acs, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, acs.Contains(coin.NewCoin(10, 0, "IOV")))
	bcs, err := ctrl.Balance(db, bob)
	require.NoError(t, err)
	assert.True(t, bcs.IsEmpty())
}

func TestMoveCoinsNonPositive(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	alice := tbtest.NewCondition().Address()
	bob := tbtest.NewCondition().Address()
	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(10, 0, "IOV")))

	assert.Error(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(0, 0, "IOV")))
	assert.Error(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(-2, 0, "IOV")))
}

func TestMoveCoinsFullBalance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	alice := tbtest.NewCondition().Address()
	bob := tbtest.NewCondition().Address()
	require.NoError(t, ctrl.IssueCoins(db, alice, coin.NewCoin(7, 500, "IOV")))

	require.NoError(t, ctrl.MoveCoins(db, alice, bob, coin.NewCoin(7, 500, "IOV")))

	acs, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, acs.IsEmpty())
}
