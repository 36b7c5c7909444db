package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/coin"
	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/iov-one/trustbridge/x/cash"
	"github.com/iov-one/trustbridge/x/escrow"
	"github.com/iov-one/trustbridge/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

// appEnv wires the full application stack the way cmd/tbd does:
// a savepoint guarding DeliverTx, an action tagger and a router with
// the escrow handlers registered.
type appEnv struct {
	db    trustbridge.CacheableKVStore
	stack trustbridge.Handler
	auth  *tbtest.CtxAuth
	ctrl  cash.BaseController

	owner   trustbridge.Condition
	arbiter trustbridge.Condition
	benefit trustbridge.Condition
}

func newAppEnv(t *testing.T, funding coin.Coin) *appEnv {
	t.Helper()

	env := &appEnv{
		db:      store.MemStore(),
		auth:    &tbtest.CtxAuth{Key: "auth"},
		ctrl:    cash.NewController(cash.NewBucket()),
		owner:   tbtest.NewCondition(),
		arbiter: tbtest.NewCondition(),
		benefit: tbtest.NewCondition(),
	}

	router := NewRouter()
	escrow.RegisterRoutes(router, env.auth, env.ctrl)
	env.stack = ChainDecorators(
		utils.NewLogging(),
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	).WithHandler(router)

	if !funding.IsZero() {
		accts := []cash.GenesisAccount{{
			Address: env.owner.Address(),
			Set:     cash.Set{Coins: []*coin.Coin{&funding}},
		}}
		raw, err := json.Marshal(accts)
		require.NoError(t, err)
		opts := trustbridge.Options{"cash": raw}
		require.NoError(t, cash.Initializer{}.FromGenesis(opts, env.db))
	}
	return env
}

func (env *appEnv) signedBy(c trustbridge.Condition) trustbridge.Context {
	return env.auth.SetConditions(context.Background(), c)
}

func (env *appEnv) createTx(amount coin.Coin) trustbridge.Tx {
	return &tbtest.Tx{Msg: &escrow.CreateEscrowMsg{
		Amount:      &amount,
		Beneficiary: env.benefit.Address(),
		Arbiter:     env.arbiter.Address(),
	}}
}

func (env *appEnv) releaseTx(id []byte) trustbridge.Tx {
	return &tbtest.Tx{Msg: &escrow.ReleaseEscrowMsg{EscrowId: id}}
}

func (env *appEnv) balance(t *testing.T, addr trustbridge.Address) coin.Coins {
	t.Helper()
	cs, err := env.ctrl.Balance(env.db, addr)
	require.NoError(t, err)
	return cs
}

func tagValue(tags []common.KVPair, key string) string {
	for _, tag := range tags {
		if string(tag.Key) == key {
			return string(tag.Value)
		}
	}
	return ""
}

func TestAppEscrowLifecycle(t *testing.T) {
	env := newAppEnv(t, coin.NewCoin(1000, 0, "IOV"))
	amount := coin.NewCoin(100, 0, "IOV")

	res, err := env.stack.Deliver(env.signedBy(env.owner), env.db, env.createTx(amount))
	require.NoError(t, err)
	assert.Equal(t, tbtest.SequenceID(0), res.Data)
	assert.Equal(t, "escrow/create", tagValue(res.Tags, utils.ActionKey))
	assert.NotEmpty(t, tagValue(res.Tags, "escrow-id"))

	// funds moved from the owner to the custody account
	custody := escrow.Condition(res.Data).Address()
	assert.True(t, env.balance(t, env.owner.Address()).Equals(mustCoins(t, coin.NewCoin(900, 0, "IOV"))))
	assert.True(t, env.balance(t, custody).Equals(mustCoins(t, amount)))

	res, err = env.stack.Deliver(env.signedBy(env.arbiter), env.db, env.releaseTx(res.Data))
	require.NoError(t, err)
	assert.Equal(t, "escrow/release", tagValue(res.Tags, utils.ActionKey))

	assert.True(t, env.balance(t, env.benefit.Address()).Equals(mustCoins(t, amount)))
	assert.Empty(t, env.balance(t, custody))

	esc, err := escrow.GetEscrow(env.db, escrow.NewBucket(), res.Data)
	require.NoError(t, err)
	require.NotNil(t, esc)
	assert.False(t, esc.Active)

	// a released escrow cannot be released again
	_, err = env.stack.Deliver(env.signedBy(env.arbiter), env.db, env.releaseTx(res.Data))
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestAppSequentialEscrowIDs(t *testing.T) {
	env := newAppEnv(t, coin.NewCoin(1000, 0, "IOV"))

	for i := int64(0); i < 3; i++ {
		res, err := env.stack.Deliver(env.signedBy(env.owner), env.db, env.createTx(coin.NewCoin(10, 0, "IOV")))
		require.NoError(t, err)
		assert.Equal(t, tbtest.SequenceID(uint64(i)), res.Data)
	}
}

func TestAppFailedCreateLeavesNoTrace(t *testing.T) {
	env := newAppEnv(t, coin.NewCoin(50, 0, "IOV"))

	_, err := env.stack.Deliver(env.signedBy(env.owner), env.db, env.createTx(coin.NewCoin(100, 0, "IOV")))
	assert.True(t, cash.ErrInsufficientFunds.Is(err))

	// the savepoint discarded the partial state, so neither the
	// record nor the sequence increment survived
	esc, err := escrow.GetEscrow(env.db, escrow.NewBucket(), tbtest.SequenceID(0))
	require.NoError(t, err)
	assert.Nil(t, esc)

	res, err := env.stack.Deliver(env.signedBy(env.owner), env.db, env.createTx(coin.NewCoin(30, 0, "IOV")))
	require.NoError(t, err)
	assert.Equal(t, tbtest.SequenceID(0), res.Data)
}

func TestAppRejectsUnsignedCreate(t *testing.T) {
	env := newAppEnv(t, coin.NewCoin(100, 0, "IOV"))

	_, err := env.stack.Deliver(context.Background(), env.db, env.createTx(coin.NewCoin(10, 0, "IOV")))
	assert.True(t, errors.ErrUnauthorized.Is(err))

	esc, err := escrow.GetEscrow(env.db, escrow.NewBucket(), tbtest.SequenceID(0))
	require.NoError(t, err)
	assert.Nil(t, esc)
}

func TestAppUnroutableMessage(t *testing.T) {
	env := newAppEnv(t, coin.Coin{})

	tx := &tbtest.Tx{Msg: &tbtest.Msg{RoutePath: "nothing/registered"}}
	_, err := env.stack.Deliver(context.Background(), env.db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func mustCoins(t *testing.T, cs ...coin.Coin) coin.Coins {
	t.Helper()
	coins, err := coin.CombineCoins(cs...)
	require.NoError(t, err)
	return coins
}
