package rewardpoolsc

import (
	"fmt"
	"sync"
	"time"

	metrics "github.com/rcrowley/go-metrics"
	"go.uber.org/zap"

	"stakelock.net/chaincore/config"
	c_state "stakelock.net/chaincore/state"
	sci "stakelock.net/chaincore/smartcontractinterface"
	"stakelock.net/chaincore/transaction"
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/core/logging"
	"stakelock.net/pkg/currency"
)

const (
	ADDRESS = "2f0c88bc12e553c4e7b9e600dd801f1e1063d47e3f8e03e51a8691216e1e1897"
	name    = "rewardpool"
)

// stable error kinds; callers and tests branch on these via common.ErrorCode
const (
	errZeroRewardsAmount        = "zero_rewards_amount"
	errStartTimeNotInFuture     = "start_time_not_in_future"
	errStartNotBeforeEnd        = "start_not_before_end"
	errTransferAmountMismatch   = "transfer_amount_mismatch"
	errPoolNotFound             = "pool_not_found"
	errPoolClosed               = "pool_closed"
	errBelowMinimumStake        = "below_minimum_stake"
	errZeroCalculatedRewards    = "zero_calculated_rewards"
	errInsufficientRewardBudget = "insufficient_reward_budget"
	errStakeNotFound            = "stake_not_found"
	errNotYetMatured            = "not_yet_matured"
	errPoolStillOpen            = "pool_still_open"
	errNothingToWithdraw        = "nothing_to_withdraw"
)

//RewardPoolSmartContract - the reward-pool ledger. It owns the pool table,
//the stake table and the per-owner stake index. Every mutating operation
//executes under the write lock, held across the value-transfer call, so each
//operation is indivisible to all others; read handlers share the read lock.
type RewardPoolSmartContract struct {
	*sci.SmartContract

	mutex  sync.RWMutex
	gn     *GlobalNode
	pools  map[uint64]*rewardPool
	stakes map[uint64]*poolStake
	users  map[datastore.Key]*UserNode
}

func NewRewardPoolSmartContract() *RewardPoolSmartContract {
	var rpsc = &RewardPoolSmartContract{
		SmartContract: sci.NewSC(ADDRESS),
		pools:         make(map[uint64]*rewardPool),
		stakes:        make(map[uint64]*poolStake),
		users:         make(map[datastore.Key]*UserNode),
	}
	rpsc.gn = getGlobalNode()
	rpsc.setSC(rpsc.SmartContract)
	return rpsc
}

func (rpsc *RewardPoolSmartContract) GetName() string {
	return name
}

func (rpsc *RewardPoolSmartContract) GetAddress() string {
	return ADDRESS
}

func (rpsc *RewardPoolSmartContract) GetRestPoints() map[string]sci.SmartContractRestHandler {
	return rpsc.RestHandlers
}

func (rpsc *RewardPoolSmartContract) setSC(sc *sci.SmartContract) {
	rpsc.SmartContract = sc
	rpsc.SmartContract.RestHandlers["/getPoolStat"] = rpsc.getPoolStatHandler
	rpsc.SmartContract.RestHandlers["/getPools"] = rpsc.getPoolsHandler
	rpsc.SmartContract.RestHandlers["/getOpenPools"] = rpsc.getOpenPoolsHandler
	rpsc.SmartContract.RestHandlers["/getStakeStat"] = rpsc.getStakeStatHandler
	rpsc.SmartContract.RestHandlers["/getUserStakeIds"] = rpsc.getUserStakeIdsHandler
	rpsc.SmartContract.RestHandlers["/getUserStakes"] = rpsc.getUserStakesHandler
	rpsc.SmartContract.RestHandlers["/getStakeQuote"] = rpsc.getStakeQuoteHandler
	rpsc.SmartContract.RestHandlers["/getConfig"] = rpsc.getConfigHandler
	for _, fn := range []string{"create_pool", "stake", "unstake", "withdraw_unused_rewards"} {
		rpsc.SmartContractExecutionStats[fn] = metrics.GetOrRegisterTimer(
			fmt.Sprintf("sc:%v:func:%v", rpsc.ID, fn), nil)
	}
}

// configurations from sc.yaml
func getGlobalNode() *GlobalNode {
	gn := newGlobalNode()
	const pfx = "smart_contracts.rewardpoolsc."
	var conf = config.SmartContractConfig
	gn.OwnerId = conf.GetString(pfx + "owner_id")
	gn.MaxPoolsPerRequest = conf.GetInt(pfx + "max_pools_per_request")
	minStake, err := currency.ParseToken(conf.GetFloat64(pfx + "min_stake"))
	if err != nil {
		logging.Logger.Warn("reward pool sc configuration invalid", zap.Error(err))
	} else {
		gn.MinStake = minStake
	}
	if err := gn.validate(); err != nil {
		logging.Logger.Warn("reward pool sc configuration invalid", zap.Error(err))
	}
	return gn
}

func (rpsc *RewardPoolSmartContract) getPool(poolID uint64) (*rewardPool, error) {
	pool, ok := rpsc.pools[poolID]
	if !ok {
		return nil, common.NewErrorf(errPoolNotFound, "no pool with id %d", poolID)
	}
	return pool, nil
}

func (rpsc *RewardPoolSmartContract) getOrCreateUserNode(clientID datastore.Key) *UserNode {
	un, ok := rpsc.users[clientID]
	if !ok {
		un = newUserNode(clientID)
		rpsc.users[clientID] = un
	}
	return un
}

func (rpsc *RewardPoolSmartContract) Execute(t *transaction.Transaction,
	funcName string, input []byte, balances c_state.StateContextI) (resp string, err error) {

	if tm, ok := rpsc.SmartContractExecutionStats[funcName].(metrics.Timer); ok {
		defer tm.UpdateSince(time.Now())
	}

	rpsc.mutex.Lock()
	defer rpsc.mutex.Unlock()

	switch funcName {
	case "create_pool":
		resp, err = rpsc.createPool(t, input, balances)
	case "stake":
		resp, err = rpsc.stake(t, input, balances)
	case "unstake":
		resp, err = rpsc.unstake(t, input, balances)
	case "withdraw_unused_rewards":
		resp, err = rpsc.withdrawUnusedRewards(t, input, balances)
	default:
		err = common.NewErrorf("failed execution",
			"no reward pool smart contract method with name %s", funcName)
	}
	if err != nil {
		logging.Logger.Debug("reward pool sc execution failed",
			zap.String("func", funcName),
			zap.String("txn", t.Hash),
			zap.Error(err))
	}
	return
}
