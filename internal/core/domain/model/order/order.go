package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer's purchase across one or more vendors.
//
// The order number is assigned once by NewOrder. Status only changes through
// Advance and AdvanceTo, and every change appends one Activity; activities are
// never removed or reordered.
type Order struct {
	id            kernel.UUID
	number        string
	status        Status
	customer      Customer
	productOrders []ProductOrder
	vendors       []VendorRef
	activities    []Activity
	createdAt     time.Time
	updatedAt     time.Time
	version       int64

	isConstructed bool
}

// NewOrder places an order in PaymentPending and records the placement activity.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	productOrders []ProductOrder,
	placedBy kernel.Actor,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        PaymentPending,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setProductOrders(productOrders),
		placedBy.Validate(),
	); err != nil {
		return nil, err
	}

	o.number = kernel.NewDocumentNumber(kernel.OrderNumberPrefix, id, now)
	o.vendors = deriveVendors(productOrders)
	o.activities = []Activity{
		newActivity(placedBy, ActionOrderPlaced, PaymentPending, PaymentPending, customer.Notes(), now),
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage without re-running creation rules.
func RestoreOrder(
	id kernel.UUID,
	number string,
	status Status,
	customer Customer,
	productOrders []ProductOrder,
	vendors []VendorRef,
	activities []Activity,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate(), customer.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(number) == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	return &Order{
		id:            id,
		number:        number,
		status:        status,
		customer:      customer,
		productOrders: slices.Clone(productOrders),
		vendors:       slices.Clone(vendors),
		activities:    slices.Clone(activities),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID      { return o.id }
func (o *Order) Number() string       { return o.number }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Customer() Customer   { return o.customer }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version is the concurrency token the order was loaded with.
func (o *Order) Version() int64 { return o.version }

func (o *Order) ProductOrders() []ProductOrder {
	return slices.Clone(o.productOrders)
}

func (o *Order) Vendors() []VendorRef {
	return slices.Clone(o.vendors)
}

// Activities returns the audit log in insertion order.
func (o *Order) Activities() []Activity {
	return slices.Clone(o.activities)
}

// ActivitiesNewestFirst returns the audit log sorted for display.
func (o *Order) ActivitiesNewestFirst() []Activity {
	sorted := slices.Clone(o.activities)
	slices.SortStableFunc(sorted, func(a, b Activity) int {
		return b.timestamp.Compare(a.timestamp)
	})
	return sorted
}

// Total is the sum of all line subtotals.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, po := range o.productOrders {
		total = total.Add(po.Subtotal())
	}
	return total
}

// Advance moves the order one step forward and records who did it. On error the
// order is left untouched.
func (o *Order) Advance(actor kernel.Actor, notes string, now time.Time) (from, to Status, err error) {
	if err = actor.Validate(); err != nil {
		return Unknown, Unknown, err
	}

	next, err := o.status.Next()
	if err != nil {
		return Unknown, Unknown, err
	}

	from = o.status
	o.activities = append(o.activities, newActivity(
		actor,
		fmt.Sprintf(actionStatusChanged, from, next),
		from,
		next,
		strings.TrimSpace(notes),
		now,
	))
	o.status = next
	o.updatedAt = now.UTC()

	return from, next, nil
}

// AdvanceTo advances only if target is the immediate successor of the current
// status. It rejects stale or skipping requests from the admin quick-update path.
func (o *Order) AdvanceTo(target Status, actor kernel.Actor, notes string, now time.Time) (from, to Status, err error) {
	if err = target.Validate(); err != nil {
		return Unknown, Unknown, err
	}

	next, err := o.status.Next()
	if err != nil {
		return Unknown, Unknown, err
	}

	if next != target {
		return Unknown, Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move from %s to %s, next status is %s", o.status, target, next),
		)
	}

	return o.Advance(actor, notes, now)
}

// AddNote appends a free-text activity without changing the status.
func (o *Order) AddNote(actor kernel.Actor, notes string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		return errs.NewValueIsRequiredError("notes")
	}

	o.activities = append(o.activities, newActivity(actor, ActionNoteAdded, o.status, o.status, notes, now))
	o.updatedAt = now.UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setProductOrders(productOrders []ProductOrder) error {
	if len(productOrders) == 0 {
		return errs.NewValueIsRequiredError("product orders")
	}
	o.productOrders = slices.Clone(productOrders)
	return nil
}

// deriveVendors returns the distinct vendors of the lines in first-appearance
// order, keeping the first non-empty name seen for each.
func deriveVendors(productOrders []ProductOrder) []VendorRef {
	var vendors []VendorRef
	index := make(map[kernel.UUID]int)

	for _, po := range productOrders {
		v := po.product.vendor
		if !v.HasID() {
			continue
		}
		if i, ok := index[v.id]; ok {
			if vendors[i].name == "" {
				vendors[i].name = v.name
			}
			continue
		}
		index[v.id] = len(vendors)
		vendors = append(vendors, v)
	}

	return vendors
}
