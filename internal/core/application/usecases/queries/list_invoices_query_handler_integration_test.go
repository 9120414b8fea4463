package queries_test

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

func (suite *OrderQueriesIntegrationTestSuite) issue(o *order.Order, vendorID kernel.UUID, issuedAt time.Time) *invoice.Invoice {
	price, err := kernel.MoneyFromInt(10000)
	suite.Require().NoError(err)
	item, err := invoice.NewItem(kernel.NewUUID(), "Mango", 2, price)
	suite.Require().NoError(err)

	inv, err := invoice.NewInvoice(kernel.NewUUID(), o.ID(), vendorID, "Vendor A", o.Customer(), []invoice.Item{item}, issuedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.invoiceRepo.Add(context.Background(), inv))
	return inv
}

func (suite *OrderQueriesIntegrationTestSuite) listInvoices(now time.Time, query queries.ListInvoicesQuery) []queries.InvoiceView {
	handler := queries.NewListInvoicesQueryHandler(suite.db, func() time.Time { return now })
	invoices, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return invoices
}

func (suite *OrderQueriesIntegrationTestSuite) TestListInvoices_NewestFirstWithComputedOverdue() {
	// Given
	o := suite.placeOrder(placed, order.InvoiceIssued)
	old := suite.issue(o, vendorA, placed)
	recent := suite.issue(o, vendorB, placed.AddDate(0, 0, 20))
	now := placed.AddDate(0, 0, 35)

	// When
	invoices := suite.listInvoices(now, queries.NewListInvoicesQuery())

	// Then
	suite.Require().Len(invoices, 2)
	suite.True(recent.ID().IsEqual(invoices[0].ID))
	suite.True(old.ID().IsEqual(invoices[1].ID))
	suite.False(invoices[0].IsOverdue)
	suite.True(invoices[1].IsOverdue)
	suite.Equal(invoice.Issued, invoices[1].Status)
	suite.Equal("20000", invoices[1].TotalAmount.String())
	suite.Equal("2000", invoices[1].CommissionAmount.String())
	suite.Equal("10", invoices[1].CommissionPercentage.String())
	suite.Equal("Asha", invoices[1].Customer.Name)
	suite.Require().Len(invoices[1].Items, 1)
	suite.Equal("Mango", invoices[1].Items[0].ProductName)
	suite.Nil(invoices[1].SettledDate)
}

func (suite *OrderQueriesIntegrationTestSuite) TestListInvoices_SettledIsNeverOverdue() {
	// Given
	o := suite.placeOrder(placed, order.InvoiceIssued)
	inv := suite.issue(o, vendorA, placed)
	inv.MarkSettled(placed.AddDate(0, 0, 40), placed.AddDate(0, 0, 40))
	suite.Require().NoError(suite.invoiceRepo.Update(context.Background(), inv))

	// When
	invoices := suite.listInvoices(placed.AddDate(0, 0, 60), queries.NewListInvoicesQuery())

	// Then
	suite.Require().Len(invoices, 1)
	suite.Equal(invoice.Settled, invoices[0].Status)
	suite.False(invoices[0].IsOverdue)
	suite.Require().NotNil(invoices[0].SettledDate)
}

func (suite *OrderQueriesIntegrationTestSuite) TestListInvoices_Filters() {
	// Given
	first := suite.placeOrder(placed, order.InvoiceIssued)
	second := suite.placeOrder(placed, order.InvoiceIssued)
	a1 := suite.issue(first, vendorA, placed)
	suite.issue(first, vendorB, placed)
	suite.issue(second, vendorA, placed.AddDate(0, 0, 30))
	now := placed.AddDate(0, 0, 40)

	// When
	byOrder := suite.listInvoices(now, queries.NewListInvoicesQuery().ForOrder(first.ID()))
	byVendor := suite.listInvoices(now, queries.NewListInvoicesQuery().ForVendor(vendorA))
	byBoth := suite.listInvoices(now, queries.NewListInvoicesQuery().ForOrder(first.ID()).ForVendor(vendorA))
	overdue := suite.listInvoices(now, queries.NewListInvoicesQuery().WithStatus(invoice.Overdue))
	settled := suite.listInvoices(now, queries.NewListInvoicesQuery().WithStatus(invoice.Settled))

	// Then
	suite.Len(byOrder, 2)
	suite.Len(byVendor, 2)
	suite.Require().Len(byBoth, 1)
	suite.True(a1.ID().IsEqual(byBoth[0].ID))
	suite.Len(overdue, 2)
	suite.Empty(settled)
}
