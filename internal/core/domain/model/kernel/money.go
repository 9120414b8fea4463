package kernel

import (
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept after percentage math.
const moneyScale = 2

var hundred = decimal.NewFromInt(100)

// Money is a non-negative amount in the store currency. Arithmetic is decimal so
// that commissions over whole-unit prices stay exact.
type Money struct {
	amount decimal.Decimal
}

// NewMoney returns a Money for amount, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt is a shorthand for whole amounts such as catalog prices.
func MoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// ZeroMoney is the additive identity.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns percentage% of m rounded half away from zero to two decimals.
func (m Money) Percent(percentage decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(percentage).Div(hundred).Round(moneyScale)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}
