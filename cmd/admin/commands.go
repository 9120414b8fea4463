package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"storefront/internal/adapters/in/seed"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "seed",
		Short:   "Load vendors and products from a YAML catalog file",
		Example: "  storefront-admin seed --file catalog.yaml",
		RunE: func(c *cobra.Command, _ []string) error {
			path, _ := c.Flags().GetString("file")
			fh, err := os.Open(path)
			if err != nil {
				return err
			}
			defer fh.Close()

			f, err := seed.Parse(fh)
			if err != nil {
				return err
			}

			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			result, err := seed.Apply(c.Context(), app.CatalogWriter(), f)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "seeded %d vendors and %d products\n", result.Vendors, result.Products)
			return nil
		},
	}
	c.Flags().StringP("file", "f", "catalog.yaml", "catalog file")
	return c
}

func newOrdersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "orders",
		Short: "List orders, newest first",
		RunE: func(c *cobra.Command, _ []string) error {
			raw, _ := c.Flags().GetString("status")
			var status *order.Status
			if raw != "" {
				s, err := order.ParseStatus(raw)
				if err != nil {
					return err
				}
				status = &s
			}

			query, err := queries.NewListOrdersQuery(status)
			if err != nil {
				return err
			}
			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			list, err := app.CreateListOrdersQueryHandler().Handle(c.Context(), query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tSTATUS\tCUSTOMER\tTOTAL\tCREATED")
			for _, o := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					o.Number, o.Status, o.Customer.Name, o.Total, o.CreatedAt.Format(time.DateTime))
			}
			return w.Flush()
		},
	}
	c.Flags().String("status", "", "only orders in this status")
	return c
}

func newAdvanceCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "advance ORDER_ID",
		Short: "Move an order to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			orderID, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			notes, _ := c.Flags().GetString("notes")
			cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, kernel.SystemActor(), notes)
			if err != nil {
				return err
			}

			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			result, err := app.CreateAdvanceOrderStatusCommandHandler().Handle(c.Context(), cmd)
			printTransition(c, result)
			return err
		},
	}
	c.Flags().String("notes", "", "note recorded with the status change")
	return c
}

func newSetStatusCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "set-status ORDER_ID STATUS",
		Short: "Move an order to the given status",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			orderID, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			target, err := order.ParseStatus(args[1])
			if err != nil {
				return err
			}
			notes, _ := c.Flags().GetString("notes")
			cmd, err := commands.NewSetOrderStatusCommand(orderID, kernel.SystemActor(), target, notes)
			if err != nil {
				return err
			}

			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			result, err := app.CreateSetOrderStatusCommandHandler().Handle(c.Context(), cmd)
			printTransition(c, result)
			return err
		},
	}
	c.Flags().String("notes", "", "note recorded with the status change")
	return c
}

func printTransition(c *cobra.Command, result commands.OrderTransitionResult) {
	if result.OrderNumber == "" {
		return
	}
	fmt.Fprintf(c.OutOrStdout(), "%s: %s -> %s\n", result.OrderNumber, result.FromStatus, result.ToStatus)
	for _, id := range result.InvoiceIDs {
		fmt.Fprintf(c.OutOrStdout(), "  invoice %s\n", id)
	}
}

func newGenerateInvoicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-invoices ORDER_ID",
		Short: "Create the invoices still missing for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			orderID, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			cmd, err := commands.NewGenerateInvoicesCommand(orderID)
			if err != nil {
				return err
			}

			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			result, err := app.CreateGenerateInvoicesCommandHandler().Handle(c.Context(), cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "created %d invoices, skipped %d vendors\n",
				len(result.InvoiceIDs), len(result.SkippedVendors))
			return nil
		},
	}
}

func newInvoicesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "invoices",
		Short: "List invoices, newest first",
		RunE: func(c *cobra.Command, _ []string) error {
			query := queries.NewListInvoicesQuery()
			if raw, _ := c.Flags().GetString("order"); raw != "" {
				id, err := kernel.UUIDFromString(raw)
				if err != nil {
					return err
				}
				query = query.ForOrder(id)
			}
			if raw, _ := c.Flags().GetString("status"); raw != "" {
				s, err := invoice.ParseStatus(raw)
				if err != nil {
					return err
				}
				query = query.WithStatus(s)
			}

			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			list, err := app.CreateListInvoicesQueryHandler().Handle(c.Context(), query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tVENDOR\tTOTAL\tCOMMISSION\tSTATUS\tDUE")
			for _, inv := range list {
				status := inv.Status.String()
				if inv.IsOverdue {
					status = invoice.Overdue.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.Number, inv.VendorName, inv.TotalAmount, inv.CommissionAmount, status, inv.DueDate.Format(time.DateOnly))
			}
			return w.Flush()
		},
	}
	c.Flags().String("order", "", "only invoices of this order")
	c.Flags().String("status", "", "only invoices in this status")
	return c
}

func newSettleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "settle INVOICE_ID",
		Short: "Mark an invoice as settled",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			invoiceID, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}

			var settledDate *time.Time
			if raw, _ := c.Flags().GetString("date"); raw != "" {
				d, err := time.Parse(time.DateOnly, raw)
				if err != nil {
					return fmt.Errorf("invalid date, use YYYY-MM-DD: %w", err)
				}
				settledDate = &d
			}

			cmd, err := commands.NewMarkInvoiceSettledCommand(invoiceID, settledDate)
			if err != nil {
				return err
			}
			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			return app.CreateMarkInvoiceSettledCommandHandler().Handle(c.Context(), cmd)
		},
	}
	c.Flags().String("date", "", "settlement date (YYYY-MM-DD), defaults to now")
	return c
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Generate missing invoices once, outside the schedule",
		RunE: func(c *cobra.Command, _ []string) error {
			app, err := bootstrap(c.Context())
			if err != nil {
				return err
			}
			job := app.CreateInvoiceReconciliationJob()
			fmt.Fprintf(c.OutOrStdout(), "repaired %d orders\n", job.Run(c.Context()))
			return nil
		},
	}
}
