package escrow

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFromGenesis(t *testing.T) {
	admin := tbtest.NewCondition().Address()
	opts := trustbridge.Options{
		"escrow": json.RawMessage(fmt.Sprintf(`{"admin": "%s"}`, admin)),
	}

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	got, err := Admin(db)
	require.NoError(t, err)
	assert.True(t, admin.Equals(got))
}

func TestInitFromGenesisNoAdmin(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(trustbridge.Options{}, db))

	got, err := Admin(db)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInitFromGenesisBadAdmin(t *testing.T) {
	opts := trustbridge.Options{
		"escrow": json.RawMessage(`{"admin": "abcd"}`),
	}
	db := store.MemStore()
	assert.Error(t, Initializer{}.FromGenesis(opts, db))
}
