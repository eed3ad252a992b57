package rewardpoolsc

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"stakelock.net/chaincore/state"
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

// client ids have the same shape as real client ids
const (
	ownerID = "1746b06bb09f55ee01b33b5e2e055d6cc7a900cb57c0a3a5eaabb8a0e7745802"
	client1 = "af39f1a27a7b1e123f08ebde1eca6d7b1a65bf1f19a133d435e1f6beac167c55"
	client2 = "bfc19c2e8a6babcdee2bdba22c624a4d19f19828d0e2e1ab7d0f70e05b2c1a10"
)

func mustCoin(t *testing.T, s string) currency.Coin {
	t.Helper()
	c, err := currency.ParseCoin(s)
	require.NoError(t, err)
	return c
}

func mustEncode(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

var txnSeq int

func newTransaction(client datastore.Key, value currency.Coin,
	now common.Timestamp) *transaction.Transaction {

	txnSeq++
	return &transaction.Transaction{
		Hash:         fmt.Sprintf("txn-hash-%d", txnSeq),
		ClientID:     client,
		ToClientID:   ADDRESS,
		Value:        value,
		CreationDate: now,
	}
}

func newTestSC(t *testing.T) *RewardPoolSmartContract {
	t.Helper()
	rpsc := NewRewardPoolSmartContract()
	rpsc.gn.OwnerId = ownerID
	require.NoError(t, rpsc.gn.validate())
	return rpsc
}

const testAsset = "7b2f1e4f1d9a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f7081920304"

// createTestPool funds the owner and creates a pool, returning its id.
func createTestPool(t *testing.T, rpsc *RewardPoolSmartContract,
	sctx *state.StateContext, funded, minStake currency.Coin,
	start, end common.Timestamp, apr uint64) uint64 {

	t.Helper()
	sctx.SetClientBalance(testAsset, ownerID, funded)
	txn := newTransaction(ownerID, funded, start-1)
	sctx.SetTransaction(txn)
	_, err := rpsc.Execute(txn, "create_pool", mustEncode(t, &newPoolRequest{
		FundedRewards: funded,
		MinStake:      minStake,
		Asset:         testAsset,
		StartTime:     start,
		EndTime:       end,
		APR:           apr,
	}), sctx)
	require.NoError(t, err)
	return rpsc.gn.LastPoolID
}

// feeTakingContext simulates an asset that takes a fee on transfer: the
// amount reported as moved is short of the amount requested.
type feeTakingContext struct {
	*state.StateContext
	fee currency.Coin
}

func (fc *feeTakingContext) PullTokens(asset, fromClientID, toClientID datastore.Key,
	amount currency.Coin) (currency.Coin, error) {

	moved, err := fc.StateContext.PullTokens(asset, fromClientID, toClientID, amount)
	if err != nil {
		return currency.Coin{}, err
	}
	return currency.MinusCoin(moved, fc.fee)
}

// failingPushContext refuses outbound transfers.
type failingPushContext struct {
	*state.StateContext
}

func (fc *failingPushContext) PushTokens(asset, fromClientID, toClientID datastore.Key,
	amount currency.Coin) error {
	return common.NewError("transfer_rejected", "push refused")
}

func balanceOf(t *testing.T, sctx *state.StateContext, client datastore.Key) currency.Coin {
	t.Helper()
	b, err := sctx.GetClientBalance(testAsset, client)
	require.NoError(t, err)
	return b
}
