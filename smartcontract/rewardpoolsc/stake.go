package rewardpoolsc

import (
	"strconv"

	c_state "stakelock.net/chaincore/state"
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/pkg/currency"
)

// stake reserves a reward out of the pool's remaining budget and records the
// deposit. The reward is fixed here, at stake time, and never recomputed.
// State is committed only after the principal transfer is verified, so a
// failed or short transfer leaves the ledger untouched.
func (rpsc *RewardPoolSmartContract) stake(t *transaction.Transaction,
	input []byte, balances c_state.StateContextI) (resp string, err error) {

	var sr stakeRequest
	if err = sr.decode(input); err != nil {
		return "", common.NewError("stake_failed",
			"malformed request: "+err.Error())
	}

	pool, err := rpsc.getPool(sr.PoolID)
	if err != nil {
		return "", err
	}

	var now = t.CreationDate
	if pool.isClosed(now) {
		return "", common.NewErrorf(errPoolClosed,
			"pool %d closed at %v", pool.PoolID, pool.EndTime)
	}
	if sr.Amount.Less(pool.MinStake) {
		return "", common.NewErrorf(errBelowMinimumStake,
			"stake of %v is below the pool minimum of %v", sr.Amount, pool.MinStake)
	}
	if sr.Amount.Less(rpsc.gn.MinStake) {
		return "", common.NewErrorf(errBelowMinimumStake,
			"stake of %v is below the configured minimum of %v", sr.Amount, rpsc.gn.MinStake)
	}

	// a stake placed before the pool opens earns from the declared start,
	// never retroactively
	var effectiveStart = now
	if effectiveStart < pool.StartTime {
		effectiveStart = pool.StartTime
	}

	reward, err := calculateReward(sr.Amount, effectiveStart, pool.EndTime, pool.APR)
	if err != nil {
		return "", err
	}
	if reward.IsZero() {
		return "", common.NewError(errZeroCalculatedRewards,
			"stake earns no reward at this amount and window")
	}
	if pool.remainingBudget().Less(reward) {
		return "", common.NewErrorf(errInsufficientRewardBudget,
			"reward %v exceeds the pool's remaining budget %v", reward, pool.remainingBudget())
	}

	// all bookkeeping is computed up front so the commit below cannot fail
	newDistributed, err := currency.AddCoin(pool.DistributedRewards, reward)
	if err != nil {
		return "", common.NewError("stake_failed", err.Error())
	}
	newTotalStaked, err := currency.AddCoin(rpsc.gn.TotalStaked, sr.Amount)
	if err != nil {
		return "", common.NewError("stake_failed", err.Error())
	}
	newTotalDistributed, err := currency.AddCoin(rpsc.gn.TotalDistributed, reward)
	if err != nil {
		return "", common.NewError("stake_failed", err.Error())
	}

	moved, err := balances.PullTokens(pool.Asset, t.ClientID, rpsc.ID, sr.Amount)
	if err != nil {
		return "", common.NewError("stake_failed",
			"can't pull principal: "+err.Error())
	}
	if !moved.Equal(sr.Amount) {
		return "", common.NewErrorf(errTransferAmountMismatch,
			"requested %v of asset %v but %v moved", sr.Amount, pool.Asset, moved)
	}

	staged := pool.clone()
	resp, err = staged.FillPool(t, moved)
	if err != nil {
		return "", common.NewError("stake_failed", err.Error())
	}
	staged.DistributedRewards = newDistributed

	stakeID := rpsc.gn.LastStakeID + 1
	stake := &poolStake{
		StakeID:      stakeID,
		PoolID:       pool.PoolID,
		Owner:        t.ClientID,
		Principal:    moved,
		Reward:       reward,
		MaturityTime: pool.EndTime,
	}

	rpsc.gn.LastStakeID = stakeID
	rpsc.gn.TotalStaked = newTotalStaked
	rpsc.gn.TotalDistributed = newTotalDistributed
	rpsc.pools[pool.PoolID] = staged
	rpsc.stakes[stakeID] = stake
	rpsc.getOrCreateUserNode(t.ClientID).addStake(stakeID)

	balances.EmitEvent(c_state.TypeStats, c_state.TagStakeCreated,
		strconv.FormatUint(stakeID, 10), stakeCreatedEvent{
			Owner:        stake.Owner,
			StakeID:      stakeID,
			PoolID:       stake.PoolID,
			Amount:       stake.Principal,
			Reward:       stake.Reward,
			MaturityTime: stake.MaturityTime,
		})
	return resp, nil
}

// unstake pays out principal plus the reward reserved at stake time and
// removes the stake. The budget already consumed by the stake stays on the
// pool's books; distribution is append-only.
func (rpsc *RewardPoolSmartContract) unstake(t *transaction.Transaction,
	input []byte, balances c_state.StateContextI) (resp string, err error) {

	var ur unstakeRequest
	if err = ur.decode(input); err != nil {
		return "", common.NewError("unstake_failed",
			"malformed request: "+err.Error())
	}

	// a stake of another owner reports the same way as a missing one
	stake, ok := rpsc.stakes[ur.StakeID]
	if !ok || stake.Owner != t.ClientID {
		return "", common.NewErrorf(errStakeNotFound,
			"no stake with id %d", ur.StakeID)
	}
	if t.CreationDate < stake.MaturityTime {
		return "", common.NewErrorf(errNotYetMatured,
			"stake %d matures at %v", stake.StakeID, stake.MaturityTime)
	}

	pool, err := rpsc.getPool(stake.PoolID)
	if err != nil {
		return "", common.NewError("unstake_failed", err.Error())
	}

	payout, err := currency.AddCoin(stake.Principal, stake.Reward)
	if err != nil {
		return "", common.NewError("unstake_failed", err.Error())
	}
	newTotalStaked, err := currency.MinusCoin(rpsc.gn.TotalStaked, stake.Principal)
	if err != nil {
		return "", common.NewError("unstake_failed", err.Error())
	}

	staged := pool.clone()
	resp, err = staged.DrainPool(rpsc.ID, t.ClientID, payout)
	if err != nil {
		return "", common.NewError("unstake_failed", err.Error())
	}
	if err = balances.PushTokens(pool.Asset, rpsc.ID, t.ClientID, payout); err != nil {
		return "", common.NewError("unstake_failed",
			"payout transfer failed: "+err.Error())
	}

	rpsc.pools[stake.PoolID] = staged
	delete(rpsc.stakes, stake.StakeID)
	if un, ok := rpsc.users[t.ClientID]; ok {
		un.removeStake(stake.StakeID)
		if !un.hasStakes() {
			delete(rpsc.users, t.ClientID)
		}
	}
	rpsc.gn.TotalStaked = newTotalStaked

	balances.EmitEvent(c_state.TypeStats, c_state.TagUnstaked,
		strconv.FormatUint(stake.StakeID, 10), unstakeEvent{
			Owner:   stake.Owner,
			StakeID: stake.StakeID,
		})
	return resp, nil
}
