package rewardpoolsc

import (
	"strconv"

	c_state "stakelock.net/chaincore/state"
	sci "stakelock.net/chaincore/smartcontractinterface"
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
)

func poolKey(scKey datastore.Key, poolID uint64) datastore.Key {
	return scKey + ":rewardpool:" + strconv.FormatUint(poolID, 10)
}

// createPool validates and funds a new reward campaign. The pool id is
// allocated only after validation and the escrow transfer both succeed, so a
// failed attempt consumes no id and leaves no gap in the sequence.
func (rpsc *RewardPoolSmartContract) createPool(t *transaction.Transaction,
	input []byte, balances c_state.StateContextI) (resp string, err error) {

	if err = sci.AuthorizeWithOwner("create_pool_failed", func() bool {
		return rpsc.gn.OwnerId == t.ClientID
	}); err != nil {
		return "", err
	}

	var npr newPoolRequest
	if err = npr.decode(input); err != nil {
		return "", common.NewError("create_pool_failed",
			"malformed request: "+err.Error())
	}

	switch {
	case npr.FundedRewards.IsZero():
		return "", common.NewError(errZeroRewardsAmount,
			"pool must be funded with a nonzero rewards amount")
	case npr.StartTime <= t.CreationDate:
		return "", common.NewError(errStartTimeNotInFuture,
			"pool start time must be strictly after the current time")
	case npr.StartTime >= npr.EndTime:
		return "", common.NewError(errStartNotBeforeEnd,
			"pool start time must be before its end time")
	case datastore.IsEmpty(npr.Asset):
		return "", common.NewError("create_pool_failed", "empty asset")
	}

	moved, err := balances.PullTokens(npr.Asset, t.ClientID, rpsc.ID, npr.FundedRewards)
	if err != nil {
		return "", common.NewError("create_pool_failed",
			"can't escrow rewards: "+err.Error())
	}
	if !moved.Equal(npr.FundedRewards) {
		return "", common.NewErrorf(errTransferAmountMismatch,
			"requested %v of asset %v but %v moved", npr.FundedRewards, npr.Asset, moved)
	}

	poolID := rpsc.gn.LastPoolID + 1
	pool := &rewardPool{
		PoolID:        poolID,
		Asset:         npr.Asset,
		FundedRewards: npr.FundedRewards,
		MinStake:      npr.MinStake,
		StartTime:     npr.StartTime,
		EndTime:       npr.EndTime,
		APR:           npr.APR,
	}
	resp, err = pool.DigPool(poolKey(rpsc.ID, poolID), t, moved)
	if err != nil {
		return "", common.NewError("create_pool_failed", err.Error())
	}

	rpsc.gn.LastPoolID = poolID
	rpsc.pools[poolID] = pool

	balances.EmitEvent(c_state.TypeStats, c_state.TagPoolCreated,
		strconv.FormatUint(poolID, 10), poolCreatedEvent{
			PoolID:        poolID,
			Asset:         pool.Asset,
			FundedRewards: pool.FundedRewards,
			MinStake:      pool.MinStake,
			StartTime:     pool.StartTime,
			EndTime:       pool.EndTime,
			APR:           pool.APR,
		})
	return resp, nil
}
