package rewardpoolsc

import (
	"context"
	"net/url"
	"strconv"

	"stakelock.net/core/common"
	"stakelock.net/pkg/currency"
)

func (rpsc *RewardPoolSmartContract) poolStat(pool *rewardPool, now common.Timestamp) *poolStat {
	return &poolStat{
		ID:                 pool.PoolID,
		Asset:              pool.Asset,
		FundedRewards:      pool.FundedRewards,
		DistributedRewards: pool.DistributedRewards,
		RemainingBudget:    pool.remainingBudget(),
		MinStake:           pool.MinStake,
		StartTime:          pool.StartTime,
		EndTime:            pool.EndTime,
		APR:                pool.APR,
		Balance:            pool.GetBalance(),
		Status:             pool.status(now).String(),
	}
}

func (rpsc *RewardPoolSmartContract) stakeStat(stake *poolStake, now common.Timestamp) *stakeStat {
	return &stakeStat{
		ID:           stake.StakeID,
		PoolID:       stake.PoolID,
		Owner:        stake.Owner,
		Principal:    stake.Principal,
		Reward:       stake.Reward,
		MaturityTime: stake.MaturityTime,
		Matured:      now >= stake.MaturityTime,
	}
}

func parseID(params url.Values, key string) (uint64, error) {
	id, err := strconv.ParseUint(params.Get(key), 10, 64)
	if err != nil {
		return 0, common.NewErrBadRequest("can't parse " + key)
	}
	return id, nil
}

func (rpsc *RewardPoolSmartContract) getPoolStatHandler(ctx context.Context, params url.Values) (interface{}, error) {
	poolID, err := parseID(params, "pool_id")
	if err != nil {
		return nil, err
	}

	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	pool, ok := rpsc.pools[poolID]
	if !ok {
		return nil, common.NewErrNoResource("can't find pool")
	}
	return rpsc.poolStat(pool, common.Now()), nil
}

func (rpsc *RewardPoolSmartContract) getPoolsHandler(ctx context.Context, params url.Values) (interface{}, error) {
	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	var (
		now   = common.Now()
		stats = &poolStats{}
	)
	for id := uint64(1); id <= rpsc.gn.LastPoolID; id++ {
		if rpsc.gn.MaxPoolsPerRequest > 0 && len(stats.Stats) >= rpsc.gn.MaxPoolsPerRequest {
			break
		}
		if pool, ok := rpsc.pools[id]; ok {
			stats.addStat(rpsc.poolStat(pool, now))
		}
	}
	return stats, nil
}

func (rpsc *RewardPoolSmartContract) getOpenPoolsHandler(ctx context.Context, params url.Values) (interface{}, error) {
	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	var (
		now   = common.Now()
		stats = &poolStats{}
	)
	for id := uint64(1); id <= rpsc.gn.LastPoolID; id++ {
		if rpsc.gn.MaxPoolsPerRequest > 0 && len(stats.Stats) >= rpsc.gn.MaxPoolsPerRequest {
			break
		}
		pool, ok := rpsc.pools[id]
		if !ok || pool.status(now) != poolOpen {
			continue
		}
		stats.addStat(rpsc.poolStat(pool, now))
	}
	return stats, nil
}

func (rpsc *RewardPoolSmartContract) getStakeStatHandler(ctx context.Context, params url.Values) (interface{}, error) {
	stakeID, err := parseID(params, "stake_id")
	if err != nil {
		return nil, err
	}

	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	stake, ok := rpsc.stakes[stakeID]
	if !ok {
		return nil, common.NewErrNoResource("can't find stake")
	}
	return rpsc.stakeStat(stake, common.Now()), nil
}

func (rpsc *RewardPoolSmartContract) getUserStakeIdsHandler(ctx context.Context, params url.Values) (interface{}, error) {
	clientID := params.Get("client_id")

	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	un, ok := rpsc.users[clientID]
	if !ok {
		return nil, common.NewErrNoResource("can't find user node")
	}
	ids := make([]uint64, len(un.StakeIDs))
	copy(ids, un.StakeIDs)
	return ids, nil
}

func (rpsc *RewardPoolSmartContract) getUserStakesHandler(ctx context.Context, params url.Values) (interface{}, error) {
	clientID := params.Get("client_id")

	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	un, ok := rpsc.users[clientID]
	if !ok {
		return nil, common.NewErrNoResource("can't find user node")
	}
	var (
		now   = common.Now()
		stats = &stakeStats{}
	)
	for _, id := range un.StakeIDs {
		if stake, ok := rpsc.stakes[id]; ok {
			stats.Stats = append(stats.Stats, rpsc.stakeStat(stake, now))
		}
	}
	return stats, nil
}

// getStakeQuoteHandler answers what a stake of the given amount would earn
// in the given pool right now, using the same formula stake commits with.
func (rpsc *RewardPoolSmartContract) getStakeQuoteHandler(ctx context.Context, params url.Values) (interface{}, error) {
	poolID, err := parseID(params, "pool_id")
	if err != nil {
		return nil, err
	}
	amount, err := currency.ParseCoin(params.Get("amount"))
	if err != nil {
		return nil, common.NewErrBadRequest("can't parse amount")
	}

	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()

	pool, ok := rpsc.pools[poolID]
	if !ok {
		return nil, common.NewErrNoResource("can't find pool")
	}

	var now = common.Now()
	if pool.isClosed(now) {
		return nil, common.NewError(errPoolClosed, "pool is closed")
	}
	var effectiveStart = now
	if effectiveStart < pool.StartTime {
		effectiveStart = pool.StartTime
	}
	reward, err := calculateReward(amount, effectiveStart, pool.EndTime, pool.APR)
	if err != nil {
		return nil, err
	}
	rewardTokens, err := reward.ToToken()
	if err != nil {
		return nil, common.NewErrInternal("can't convert reward: " + err.Error())
	}
	return &rewardQuote{
		PoolID:         pool.PoolID,
		Amount:         amount,
		EffectiveStart: effectiveStart,
		MaturityTime:   pool.EndTime,
		Reward:         reward,
		RewardTokens:   rewardTokens,
	}, nil
}

func (rpsc *RewardPoolSmartContract) getConfigHandler(ctx context.Context, params url.Values) (interface{}, error) {
	rpsc.mutex.RLock()
	defer rpsc.mutex.RUnlock()
	return rpsc.gn, nil
}
