package currency

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TokenExponent - assets are tracked in an 18-decimal fixed-point
// representation, one token = 1e18 base units.
const TokenExponent = 18

var (
	// ErrNegativeValue is returned if a float value is a negative number
	ErrNegativeValue = errors.New("negative coin value")
	// ErrTooManyDecimals is returned if a value has more than 18 decimal places
	ErrTooManyDecimals = errors.New("too many decimal places")
)

//ParseToken - converts a whole-token amount to base units
func ParseToken(t float64) (Coin, error) {
	d := decimal.NewFromFloat(t)
	if d.Sign() == -1 {
		return Coin{}, ErrNegativeValue
	}
	if d.Exponent() < -TokenExponent {
		return Coin{}, ErrTooManyDecimals
	}
	return ParseCoin(d.Shift(TokenExponent).Truncate(0).String())
}

//ToToken - the whole-token value of a coin amount, for display only
func (c Coin) ToToken() (float64, error) {
	d, err := decimal.NewFromString(c.Int.Dec())
	if err != nil {
		return 0, err
	}
	return d.Shift(-TokenExponent).InexactFloat64(), nil
}
