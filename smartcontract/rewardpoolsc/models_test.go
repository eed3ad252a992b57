package rewardpoolsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakelock.net/pkg/currency"
)

func TestUserNodeAddRemoveStake(t *testing.T) {
	un := newUserNode(client1)
	assert.False(t, un.hasStakes())

	for _, id := range []uint64{1, 2, 3, 4} {
		un.addStake(id)
	}
	assert.Equal(t, []uint64{1, 2, 3, 4}, un.StakeIDs)

	// removal swaps the last element into the hole
	assert.True(t, un.removeStake(2))
	assert.Equal(t, []uint64{1, 4, 3}, un.StakeIDs)

	assert.False(t, un.removeStake(2))
	assert.Equal(t, []uint64{1, 4, 3}, un.StakeIDs)

	assert.True(t, un.removeStake(3))
	assert.Equal(t, []uint64{1, 4}, un.StakeIDs)

	assert.True(t, un.removeStake(1))
	assert.True(t, un.removeStake(4))
	assert.False(t, un.hasStakes())
}

func TestUserNodeSerde(t *testing.T) {
	un := newUserNode(client1)
	un.addStake(7)
	un.addStake(9)

	var got UserNode
	require.NoError(t, got.Decode(un.Encode()))
	assert.Equal(t, un.ClientID, got.ClientID)
	assert.Equal(t, un.StakeIDs, got.StakeIDs)
}

func TestGlobalNodeValidate(t *testing.T) {
	gn := newGlobalNode()
	require.Error(t, gn.validate())

	gn.OwnerId = "not-a-hash"
	require.Error(t, gn.validate())

	gn.OwnerId = ownerID
	require.NoError(t, gn.validate())
}

func TestRewardPoolRemainingBudget(t *testing.T) {
	pool := &rewardPool{
		FundedRewards:      currency.MustParseCoin("100"),
		DistributedRewards: currency.MustParseCoin("30"),
	}
	assert.Equal(t, "70", pool.remainingBudget().String())

	pool.DistributedRewards = pool.FundedRewards
	remaining := pool.remainingBudget()
	assert.True(t, remaining.IsZero())
}

func TestRewardPoolCloneIsDetached(t *testing.T) {
	pool := &rewardPool{
		PoolID:             3,
		FundedRewards:      currency.MustParseCoin("100"),
		DistributedRewards: currency.MustParseCoin("10"),
	}
	staged := pool.clone()
	staged.DistributedRewards = currency.MustParseCoin("99")
	staged.Balance = currency.MustParseCoin("1")

	assert.Equal(t, "10", pool.DistributedRewards.String())
	assert.True(t, pool.Balance.IsZero())
}
