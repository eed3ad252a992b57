package tokenpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakelock.net/chaincore/transaction"
	"stakelock.net/pkg/currency"
)

func testTxn() *transaction.Transaction {
	return &transaction.Transaction{
		Hash:       "txn_hash",
		ClientID:   "client",
		ToClientID: "sc_address",
	}
}

func TestTokenPool_DigPool(t *testing.T) {
	t.Parallel()

	p := &TokenPool{}
	resp, err := p.DigPool("pool_id", testTxn(), currency.NewCoin(100))
	require.NoError(t, err)
	assert.NotEmpty(t, resp)
	assert.Equal(t, "pool_id", p.GetID())
	assert.True(t, p.GetBalance().Equal(currency.NewCoin(100)))

	_, err = p.DigPool("pool_id", testTxn(), currency.Coin{})
	assert.Error(t, err)
}

func TestTokenPool_FillPool(t *testing.T) {
	t.Parallel()

	p := &TokenPool{ID: "pool_id", Balance: currency.NewCoin(100)}
	_, err := p.FillPool(testTxn(), currency.NewCoin(50))
	require.NoError(t, err)
	assert.True(t, p.GetBalance().Equal(currency.NewCoin(150)))

	_, err = p.FillPool(testTxn(), currency.Coin{})
	assert.Error(t, err)
	assert.True(t, p.GetBalance().Equal(currency.NewCoin(150)))
}

func TestTokenPool_DrainPool(t *testing.T) {
	t.Parallel()

	p := &TokenPool{ID: "pool_id", Balance: currency.NewCoin(100)}
	_, err := p.DrainPool("sc_address", "client", currency.NewCoin(30))
	require.NoError(t, err)
	assert.True(t, p.GetBalance().Equal(currency.NewCoin(70)))

	_, err = p.DrainPool("sc_address", "client", currency.NewCoin(71))
	assert.Error(t, err)
	assert.True(t, p.GetBalance().Equal(currency.NewCoin(70)))
}

func TestTokenPool_EmptyPool(t *testing.T) {
	t.Parallel()

	p := &TokenPool{ID: "pool_id", Balance: currency.NewCoin(100)}
	value, resp, err := p.EmptyPool("sc_address", "client")
	require.NoError(t, err)
	assert.NotEmpty(t, resp)
	assert.True(t, value.Equal(currency.NewCoin(100)))
	balance := p.GetBalance()
	assert.True(t, balance.IsZero())

	_, _, err = p.EmptyPool("sc_address", "client")
	assert.Error(t, err)
}
