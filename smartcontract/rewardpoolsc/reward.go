package rewardpoolsc

import (
	"stakelock.net/core/common"
	"stakelock.net/pkg/currency"
)

const (
	// aprDenominator - APRs are expressed in basis points, 10000 = 100%
	aprDenominator = 10000
	// secondsPerYear - 365 days
	secondsPerYear = 365 * 86400
)

// timeRatioPrecision - fixed-point scale of the earning-window / year ratio
var timeRatioPrecision = currency.MustParseCoin("1000000000000000000") // 1e18

// calculateReward returns the reward that amount earns from effectiveStart
// until poolEnd at the given APR:
//
//	annual = floor(amount * aprBps / 10000)
//	ratio  = floor(period * 1e18 / secondsPerYear)
//	reward = floor(annual * ratio / 1e18)
//
// The two final divisions must stay sequential; folding them into one
// division changes the least-significant digits of the result.
func calculateReward(amount currency.Coin, effectiveStart, poolEnd common.Timestamp, aprBps uint64) (currency.Coin, error) {
	if poolEnd <= effectiveStart {
		return currency.Coin{}, common.NewError("calculate_reward",
			"earning window must end after it starts")
	}

	annual, err := currency.MulDivCoin(amount,
		currency.NewCoin(aprBps), currency.NewCoin(aprDenominator))
	if err != nil {
		return currency.Coin{}, common.NewError("calculate_reward", err.Error())
	}

	period := currency.NewCoin(uint64(poolEnd - effectiveStart))
	ratio, err := currency.MulDivCoin(period, timeRatioPrecision, currency.NewCoin(secondsPerYear))
	if err != nil {
		return currency.Coin{}, common.NewError("calculate_reward", err.Error())
	}

	reward, err := currency.MulDivCoin(annual, ratio, timeRatioPrecision)
	if err != nil {
		return currency.Coin{}, common.NewError("calculate_reward", err.Error())
	}
	return reward, nil
}
