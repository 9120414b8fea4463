package invoice

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is one billed line. TotalPrice is fixed when the item is created and is
// never re-derived from the originating order.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money
}

func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := errors.Join(productID.Validate(), quantityErr); err != nil {
		return Item{}, err
	}

	return Item{
		productID:   productID,
		productName: strings.TrimSpace(productName),
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  unitPrice.Times(quantity),
	}, nil
}

// RestoreItem rebuilds a stored item, keeping its stored total.
func RestoreItem(productID kernel.UUID, productName string, quantity int, unitPrice, totalPrice kernel.Money) Item {
	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  totalPrice,
	}
}

func (i Item) ProductID() kernel.UUID   { return i.productID }
func (i Item) ProductName() string      { return i.productName }
func (i Item) Quantity() int            { return i.quantity }
func (i Item) UnitPrice() kernel.Money  { return i.unitPrice }
func (i Item) TotalPrice() kernel.Money { return i.totalPrice }
