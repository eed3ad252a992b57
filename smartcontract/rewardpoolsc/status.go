package rewardpoolsc

import (
	"stakelock.net/core/common"
	"stakelock.net/pkg/currency"
)

//poolStatus - the derived lifecycle state of a pool. Statuses are for
//reporting only; mutating operations check times and budgets directly.
type poolStatus int

const (
	poolPending poolStatus = iota
	poolOpen
	poolOpenWithoutRewards
	poolClosed
)

func (ps poolStatus) String() string {
	switch ps {
	case poolPending:
		return "pending"
	case poolOpen:
		return "open"
	case poolOpenWithoutRewards:
		return "open_without_rewards"
	case poolClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func resolveStatus(funded, distributed currency.Coin, now, start, end common.Timestamp) poolStatus {
	switch {
	case now < start:
		return poolPending
	case now >= end:
		return poolClosed
	case distributed.Equal(funded):
		return poolOpenWithoutRewards
	default:
		return poolOpen
	}
}
