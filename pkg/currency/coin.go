package currency

import (
	"encoding/json"
	"errors"

	"github.com/holiman/uint256"
)

var (
	// ErrAddOverflow is returned if adding coin values overflows 256 bits
	ErrAddOverflow = errors.New("coin addition overflow")
	// ErrSubUnderflow is returned if subtracting coin values underflows zero
	ErrSubUnderflow = errors.New("coin subtraction underflow")
	// ErrMultOverflow is returned if multiplying coin values overflows 256 bits
	ErrMultOverflow = errors.New("coin multiplication overflow")
	// ErrDivideByZero is returned on division with a zero divisor
	ErrDivideByZero = errors.New("coin division by zero")
	// ErrInvalidValue is returned if a string is not an unsigned decimal
	// number that fits 256 bits
	ErrInvalidValue = errors.New("invalid coin value")
)

//Coin - any quantity that is represented as an unsigned integer in the
//lowest denomination of the asset. There are no negative coin values;
//every arithmetic helper is checked and never wraps silently.
type Coin struct {
	uint256.Int
}

//NewCoin - a coin from a small amount
func NewCoin(v uint64) Coin {
	var c Coin
	c.SetUint64(v)
	return c
}

//ParseCoin - a coin from its decimal string representation
func ParseCoin(s string) (Coin, error) {
	var c Coin
	if err := c.SetFromDecimal(s); err != nil {
		return Coin{}, ErrInvalidValue
	}
	return c, nil
}

//MustParseCoin - like ParseCoin, panics on a bad value. For constants
//and tests only.
func MustParseCoin(s string) Coin {
	c, err := ParseCoin(s)
	if err != nil {
		panic(err)
	}
	return c
}

//AddCoin - sums a and b, erroring on overflow
func AddCoin(a, b Coin) (Coin, error) {
	var c Coin
	if _, overflow := c.AddOverflow(&a.Int, &b.Int); overflow {
		return Coin{}, ErrAddOverflow
	}
	return c, nil
}

//MinusCoin - subtracts b from a, erroring if b > a
func MinusCoin(a, b Coin) (Coin, error) {
	var c Coin
	if _, underflow := c.SubOverflow(&a.Int, &b.Int); underflow {
		return Coin{}, ErrSubUnderflow
	}
	return c, nil
}

//MultCoin - multiplies a by b, erroring on overflow
func MultCoin(a, b Coin) (Coin, error) {
	var c Coin
	if _, overflow := c.MulOverflow(&a.Int, &b.Int); overflow {
		return Coin{}, ErrMultOverflow
	}
	return c, nil
}

//DivCoin - the floor of a divided by b
func DivCoin(a, b Coin) (Coin, error) {
	if b.IsZero() {
		return Coin{}, ErrDivideByZero
	}
	var c Coin
	c.Div(&a.Int, &b.Int)
	return c, nil
}

//MulDivCoin - the floor of a*b/div, erroring if the product overflows.
//The division truncates toward zero.
func MulDivCoin(a, b, div Coin) (Coin, error) {
	p, err := MultCoin(a, b)
	if err != nil {
		return Coin{}, err
	}
	return DivCoin(p, div)
}

func (c Coin) Less(o Coin) bool {
	return c.Int.Lt(&o.Int)
}

func (c Coin) LessOrEqual(o Coin) bool {
	return !c.Int.Gt(&o.Int)
}

func (c Coin) Equal(o Coin) bool {
	return c.Int.Eq(&o.Int)
}

func (c Coin) String() string {
	return c.Int.Dec()
}

// Coins serialize as decimal strings; uint256's own hex encoding is not
// used on the wire.
func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Int.Dec())
}

func (c *Coin) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// tolerate bare numeric literals
		s = string(b)
	}
	if err := c.SetFromDecimal(s); err != nil {
		return ErrInvalidValue
	}
	return nil
}
