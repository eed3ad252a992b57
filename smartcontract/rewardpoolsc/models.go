package rewardpoolsc

import (
	"encoding/json"

	"github.com/asaskevich/govalidator"

	"stakelock.net/chaincore/tokenpool"
	"stakelock.net/core/common"
	"stakelock.net/core/datastore"
	"stakelock.net/pkg/currency"
)

type GlobalNode struct {
	ID      datastore.Key `json:"id"`
	OwnerId datastore.Key `json:"owner_id"`
	// id counters; ids start at 1, never reused, assigned only after an
	// operation has fully validated and funded
	LastPoolID  uint64 `json:"last_pool_id"`
	LastStakeID uint64 `json:"last_stake_id"`
	// running stats
	TotalStaked      currency.Coin `json:"total_staked"`
	TotalDistributed currency.Coin `json:"total_distributed"`

	// MinStake is a contract-wide floor under every pool's own minimum,
	// configured in whole tokens
	MinStake currency.Coin `json:"min_stake"`

	MaxPoolsPerRequest int `json:"max_pools_per_request"`
}

func newGlobalNode() *GlobalNode {
	return &GlobalNode{ID: ADDRESS}
}

func (gn *GlobalNode) Encode() []byte {
	buff, _ := json.Marshal(gn)
	return buff
}

func (gn *GlobalNode) Decode(input []byte) error {
	return json.Unmarshal(input, gn)
}

func (gn *GlobalNode) validate() error {
	if !govalidator.IsHash(string(gn.OwnerId), "sha256") {
		return common.NewError("invalid_config",
			"owner_id is not a sha256 hex string")
	}
	return nil
}

//rewardPool - one reward campaign: a fixed, pre-funded reward budget for one
//asset over a fixed time window at a fixed APR. The embedded token pool
//tracks the asset held in custody for this campaign (the funded rewards plus
//all live principal). All fields other than DistributedRewards and the
//custody balance are immutable after creation.
type rewardPool struct {
	tokenpool.TokenPool `json:"pool"`

	PoolID        uint64           `json:"pool_id"`
	Asset         datastore.Key    `json:"asset"`
	FundedRewards currency.Coin    `json:"funded_rewards"`
	MinStake      currency.Coin    `json:"min_stake"`
	StartTime     common.Timestamp `json:"start_time"`
	EndTime       common.Timestamp `json:"end_time"`
	APR           uint64           `json:"apr"` // basis points, 10000 = 100%
	// DistributedRewards only grows: it accumulates every reward promised
	// to a staker and, on a final withdrawal, the reclaimed residue.
	// Invariant: DistributedRewards <= FundedRewards.
	DistributedRewards currency.Coin `json:"distributed_rewards"`
}

func (rp *rewardPool) encode() []byte {
	buff, _ := json.Marshal(rp)
	return buff
}

func (rp *rewardPool) decode(input []byte) error {
	return json.Unmarshal(input, rp)
}

// remainingBudget is what the pool can still promise to new stakers.
func (rp *rewardPool) remainingBudget() currency.Coin {
	left, err := currency.MinusCoin(rp.FundedRewards, rp.DistributedRewards)
	if err != nil {
		return currency.Coin{}
	}
	return left
}

func (rp *rewardPool) isClosed(now common.Timestamp) bool {
	return now >= rp.EndTime
}

func (rp *rewardPool) status(now common.Timestamp) poolStatus {
	return resolveStatus(rp.FundedRewards, rp.DistributedRewards, now, rp.StartTime, rp.EndTime)
}

// clone returns a staged copy mutating operations work against; the copy is
// published back to the pool table only after the operation's value
// transfer succeeded.
func (rp *rewardPool) clone() *rewardPool {
	c := *rp
	return &c
}

//poolStake - one deposit event. The reward is computed once, when the stake
//is created, and honored exactly as recorded no matter what happens to the
//pool afterwards.
type poolStake struct {
	StakeID      uint64           `json:"stake_id"`
	PoolID       uint64           `json:"pool_id"`
	Owner        datastore.Key    `json:"owner"`
	Principal    currency.Coin    `json:"principal"`
	Reward       currency.Coin    `json:"reward"`
	MaturityTime common.Timestamp `json:"maturity_time"`
}

func (ps *poolStake) encode() []byte {
	buff, _ := json.Marshal(ps)
	return buff
}

func (ps *poolStake) decode(input []byte) error {
	return json.Unmarshal(input, ps)
}

//UserNode - the per-owner index of live stake ids
type UserNode struct {
	ClientID datastore.Key `json:"client_id"`
	StakeIDs []uint64      `json:"stake_ids"`
}

func newUserNode(clientID datastore.Key) *UserNode {
	return &UserNode{ClientID: clientID}
}

func (un *UserNode) Encode() []byte {
	buff, _ := json.Marshal(un)
	return buff
}

func (un *UserNode) Decode(input []byte) error {
	return json.Unmarshal(input, un)
}

func (un *UserNode) addStake(stakeID uint64) {
	un.StakeIDs = append(un.StakeIDs, stakeID)
}

// removeStake swaps the target id with the last element and truncates, so
// removal is O(1); callers must not depend on the order of the remaining ids.
func (un *UserNode) removeStake(stakeID uint64) bool {
	for i, id := range un.StakeIDs {
		if id == stakeID {
			last := len(un.StakeIDs) - 1
			un.StakeIDs[i] = un.StakeIDs[last]
			un.StakeIDs = un.StakeIDs[:last]
			return true
		}
	}
	return false
}

func (un *UserNode) hasStakes() bool {
	return len(un.StakeIDs) > 0
}

//
// requests
//

type newPoolRequest struct {
	FundedRewards currency.Coin    `json:"funded_rewards"`
	MinStake      currency.Coin    `json:"min_stake"`
	Asset         datastore.Key    `json:"asset"`
	StartTime     common.Timestamp `json:"start_time"`
	EndTime       common.Timestamp `json:"end_time"`
	APR           uint64           `json:"apr"`
}

func (npr *newPoolRequest) decode(input []byte) error {
	return json.Unmarshal(input, npr)
}

type stakeRequest struct {
	PoolID uint64        `json:"pool_id"`
	Amount currency.Coin `json:"amount"`
}

func (sr *stakeRequest) decode(input []byte) error {
	return json.Unmarshal(input, sr)
}

type unstakeRequest struct {
	StakeID uint64 `json:"stake_id"`
}

func (ur *unstakeRequest) decode(input []byte) error {
	return json.Unmarshal(input, ur)
}

type withdrawRequest struct {
	PoolID uint64 `json:"pool_id"`
}

func (wr *withdrawRequest) decode(input []byte) error {
	return json.Unmarshal(input, wr)
}

//
// stats (read surface)
//

type poolStat struct {
	ID                 uint64           `json:"pool_id"`
	Asset              datastore.Key    `json:"asset"`
	FundedRewards      currency.Coin    `json:"funded_rewards"`
	DistributedRewards currency.Coin    `json:"distributed_rewards"`
	RemainingBudget    currency.Coin    `json:"remaining_budget"`
	MinStake           currency.Coin    `json:"min_stake"`
	StartTime          common.Timestamp `json:"start_time"`
	EndTime            common.Timestamp `json:"end_time"`
	APR                uint64           `json:"apr"`
	Balance            currency.Coin    `json:"balance"`
	Status             string           `json:"status"`
}

type poolStats struct {
	Stats []*poolStat `json:"stats"`
}

func (ps *poolStats) addStat(p *poolStat) {
	ps.Stats = append(ps.Stats, p)
}

type stakeStat struct {
	ID           uint64           `json:"stake_id"`
	PoolID       uint64           `json:"pool_id"`
	Owner        datastore.Key    `json:"owner"`
	Principal    currency.Coin    `json:"principal"`
	Reward       currency.Coin    `json:"reward"`
	MaturityTime common.Timestamp `json:"maturity_time"`
	Matured      bool             `json:"matured"`
}

type stakeStats struct {
	Stats []*stakeStat `json:"stats"`
}

type rewardQuote struct {
	PoolID         uint64           `json:"pool_id"`
	Amount         currency.Coin    `json:"amount"`
	EffectiveStart common.Timestamp `json:"effective_start"`
	MaturityTime   common.Timestamp `json:"maturity_time"`
	Reward         currency.Coin    `json:"reward"`
	RewardTokens   float64          `json:"reward_tokens"`
}

//
// event payloads
//

type poolCreatedEvent struct {
	PoolID        uint64           `json:"pool_id"`
	Asset         datastore.Key    `json:"asset"`
	FundedRewards currency.Coin    `json:"funded_rewards"`
	MinStake      currency.Coin    `json:"min_stake"`
	StartTime     common.Timestamp `json:"start_time"`
	EndTime       common.Timestamp `json:"end_time"`
	APR           uint64           `json:"apr"`
}

type stakeCreatedEvent struct {
	Owner        datastore.Key    `json:"owner"`
	StakeID      uint64           `json:"stake_id"`
	PoolID       uint64           `json:"pool_id"`
	Amount       currency.Coin    `json:"amount"`
	Reward       currency.Coin    `json:"reward"`
	MaturityTime common.Timestamp `json:"maturity_time"`
}

type unstakeEvent struct {
	Owner   datastore.Key `json:"owner"`
	StakeID uint64        `json:"stake_id"`
}

type rewardsWithdrawnEvent struct {
	PoolID uint64        `json:"pool_id"`
	Amount currency.Coin `json:"amount"`
}
