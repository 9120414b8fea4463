package invoice

import (
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CommissionPercentage is the platform's cut of every vendor invoice.
var CommissionPercentage = decimal.NewFromInt(10)

// Commission is the platform fee owed on an invoice.
type Commission struct {
	percentage decimal.Decimal
	amount     kernel.Money
}

func NewCommission(total kernel.Money, percentage decimal.Decimal) Commission {
	return Commission{
		percentage: percentage,
		amount:     total.Percent(percentage),
	}
}

func RestoreCommission(percentage decimal.Decimal, amount kernel.Money) Commission {
	return Commission{percentage: percentage, amount: amount}
}

func (c Commission) Percentage() decimal.Decimal { return c.percentage }
func (c Commission) Amount() kernel.Money        { return c.amount }
