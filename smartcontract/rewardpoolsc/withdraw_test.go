package rewardpoolsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakelock.net/chaincore/state"
	"stakelock.net/core/common"
	"stakelock.net/pkg/currency"
)

func withdrawInput(t *testing.T, poolID uint64) []byte {
	t.Helper()
	return mustEncode(t, &withdrawRequest{PoolID: poolID})
}

func TestWithdrawUnusedRewardsAuthorization(t *testing.T) {
	rpsc := newTestSC(t)
	sctx := state.NewStateContext(nil)
	poolID := setupPool(t, rpsc, sctx)

	txn := newTransaction(client1, currency.Coin{}, testEnd)
	sctx.SetTransaction(txn)
	_, err := rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), sctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized access")
}

func TestWithdrawUnusedRewardsPoolNotFound(t *testing.T) {
	rpsc := newTestSC(t)
	txn := newTransaction(ownerID, currency.Coin{}, testEnd)
	sctx := state.NewStateContext(txn)

	_, err := rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, 42), sctx)
	require.Error(t, err)
	assert.Equal(t, errPoolNotFound, common.ErrorCode(err))
}

func TestWithdrawUnusedRewardsPoolStillOpen(t *testing.T) {
	rpsc := newTestSC(t)
	sctx := state.NewStateContext(nil)
	poolID := setupPool(t, rpsc, sctx)

	txn := newTransaction(ownerID, currency.Coin{}, testEnd-1)
	sctx.SetTransaction(txn)
	_, err := rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), sctx)
	require.Error(t, err)
	assert.Equal(t, errPoolStillOpen, common.ErrorCode(err))
}

func TestWithdrawUnusedRewardsOK(t *testing.T) {
	rpsc := newTestSC(t)
	sctx := state.NewStateContext(nil)
	poolID := setupPool(t, rpsc, sctx)

	amount := mustCoin(t, "1000000000000000000000")
	sctx.SetClientBalance(testAsset, client1, amount)
	txn := newTransaction(client1, amount, testEnd-3600)
	sctx.SetTransaction(txn)
	_, err := rpsc.Execute(txn, "stake", stakeInput(t, poolID, amount), sctx)
	require.NoError(t, err)

	pool := rpsc.pools[poolID]
	unused := pool.remainingBudget()
	require.False(t, unused.IsZero())

	// the end moment itself is withdrawable
	txn = newTransaction(ownerID, currency.Coin{}, testEnd)
	sctx.SetTransaction(txn)
	_, err = rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), sctx)
	require.NoError(t, err)

	assert.True(t, balanceOf(t, sctx, ownerID).Equal(unused))

	// the pool's books now show the budget fully consumed
	pool = rpsc.pools[poolID]
	remaining := pool.remainingBudget()
	assert.True(t, remaining.IsZero())
	assert.True(t, pool.DistributedRewards.Equal(pool.FundedRewards))

	events := sctx.GetEvents()
	require.Len(t, events, 3)
	assert.Equal(t, state.TagRewardsWithdrawn, events[2].Tag)

	// a second attempt finds nothing left
	txn = newTransaction(ownerID, currency.Coin{}, testEnd+100)
	sctx.SetTransaction(txn)
	_, err = rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), sctx)
	require.Error(t, err)
	assert.Equal(t, errNothingToWithdraw, common.ErrorCode(err))

	// and the staker's payout is untouched by the withdrawal
	stake := rpsc.stakes[1]
	payout, err := currency.AddCoin(stake.Principal, stake.Reward)
	require.NoError(t, err)
	txn = newTransaction(client1, currency.Coin{}, testEnd+100)
	sctx.SetTransaction(txn)
	_, err = rpsc.Execute(txn, "unstake",
		mustEncode(t, &unstakeRequest{StakeID: 1}), sctx)
	require.NoError(t, err)
	assert.True(t, balanceOf(t, sctx, client1).Equal(payout))

	// custody closes out to exactly zero
	poolBalance := rpsc.pools[poolID].GetBalance()
	assert.True(t, poolBalance.IsZero())
}

func TestWithdrawUnusedRewardsExhaustedBudget(t *testing.T) {
	rpsc := newTestSC(t)
	sctx := state.NewStateContext(nil)
	poolID := setupPool(t, rpsc, sctx)

	// a pre-open full-window stake consumes the entire budget
	amount := mustCoin(t, "1000000000000000000000")
	sctx.SetClientBalance(testAsset, client1, amount)
	txn := newTransaction(client1, amount, testStart-1)
	sctx.SetTransaction(txn)
	_, err := rpsc.Execute(txn, "stake", stakeInput(t, poolID, amount), sctx)
	require.NoError(t, err)

	txn = newTransaction(ownerID, currency.Coin{}, testEnd)
	sctx.SetTransaction(txn)
	_, err = rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), sctx)
	require.Error(t, err)
	assert.Equal(t, errNothingToWithdraw, common.ErrorCode(err))
}

func TestWithdrawUnusedRewardsTransferFailureRollsBack(t *testing.T) {
	rpsc := newTestSC(t)
	inner := state.NewStateContext(nil)
	poolID := setupPool(t, rpsc, inner)
	before := *rpsc.pools[poolID]

	txn := newTransaction(ownerID, currency.Coin{}, testEnd)
	inner.SetTransaction(txn)
	sctx := &failingPushContext{StateContext: inner}
	_, err := rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), sctx)
	require.Error(t, err)

	after := rpsc.pools[poolID]
	assert.True(t, after.DistributedRewards.Equal(before.DistributedRewards))
	assert.True(t, after.GetBalance().Equal(before.GetBalance()))

	// the rewards remain withdrawable once transfers recover
	inner.SetTransaction(txn)
	_, err = rpsc.Execute(txn, "withdraw_unused_rewards", withdrawInput(t, poolID), inner)
	require.NoError(t, err)
}
