package rewardpoolsc

import (
	"strconv"

	c_state "stakelock.net/chaincore/state"
	sci "stakelock.net/chaincore/smartcontractinterface"
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/pkg/currency"
)

// withdrawUnusedRewards reclaims a closed pool's unclaimed reward budget for
// the administrator. The staged pool marks the budget fully consumed before
// the transfer, so a second withdrawal can only ever find nothing left.
func (rpsc *RewardPoolSmartContract) withdrawUnusedRewards(t *transaction.Transaction,
	input []byte, balances c_state.StateContextI) (resp string, err error) {

	if err = sci.AuthorizeWithOwner("withdraw_rewards_failed", func() bool {
		return rpsc.gn.OwnerId == t.ClientID
	}); err != nil {
		return "", err
	}

	var wr withdrawRequest
	if err = wr.decode(input); err != nil {
		return "", common.NewError("withdraw_rewards_failed",
			"malformed request: "+err.Error())
	}

	pool, err := rpsc.getPool(wr.PoolID)
	if err != nil {
		return "", err
	}
	if t.CreationDate < pool.EndTime {
		return "", common.NewErrorf(errPoolStillOpen,
			"pool %d is open until %v", pool.PoolID, pool.EndTime)
	}

	amount, err := currency.MinusCoin(pool.FundedRewards, pool.DistributedRewards)
	if err != nil {
		return "", common.NewError("withdraw_rewards_failed", err.Error())
	}
	if amount.IsZero() {
		return "", common.NewErrorf(errNothingToWithdraw,
			"pool %d has no unused rewards", pool.PoolID)
	}

	staged := pool.clone()
	staged.DistributedRewards = staged.FundedRewards
	resp, err = staged.DrainPool(rpsc.ID, t.ClientID, amount)
	if err != nil {
		return "", common.NewError("withdraw_rewards_failed", err.Error())
	}
	if err = balances.PushTokens(pool.Asset, rpsc.ID, t.ClientID, amount); err != nil {
		return "", common.NewError("withdraw_rewards_failed",
			"withdrawal transfer failed: "+err.Error())
	}

	rpsc.pools[pool.PoolID] = staged

	balances.EmitEvent(c_state.TypeStats, c_state.TagRewardsWithdrawn,
		strconv.FormatUint(pool.PoolID, 10), rewardsWithdrawnEvent{
			PoolID: pool.PoolID,
			Amount: amount,
		})
	return resp, nil
}
