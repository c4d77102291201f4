package server

import (
	"fmt"
	"net/http"
	"net/url"
)

// BillingCommands covers the account balance, invoices and payments.
var BillingCommands = []Tool{
	{
		Name:        "nimbus_get_account",
		Description: "Get the account's balance and pending charges",
		Args:        combineArgs(formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/account"}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			m := obj(payload, "account")
			return section("Account",
				"Email: "+str(m, "email"),
				"Balance: "+moneyStr(m, "balance", "currency"),
				"Pending charges: "+moneyStr(m, "pending_charges", "currency"),
				"Created: "+timeStr(m, "created_at"),
			)
		},
	},

	{
		Name:        "nimbus_list_invoices",
		Description: "List the account's invoices, newest first",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/billing/invoices", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "invoices", args, "No invoices found.", renderInvoice)
		},
	},

	{
		Name:        "nimbus_get_invoice",
		Description: "Get details of an invoice",
		Args: combineArgs(formatArg(),
			stringID("invoice_id", "ID of the invoice")),
		Build: func(args Args) (*Request, error) {
			return &Request{
				Method: http.MethodGet,
				Path:   "/billing/invoices/" + url.PathEscape(args.String("invoice_id")),
			}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderInvoice(obj(payload, "invoice"))
		},
	},

	{
		Name:        "nimbus_list_payments",
		Description: "List the account's payments, newest first",
		Args:        combineArgs(paginationArgs(), formatArg()),
		Build: func(args Args) (*Request, error) {
			return &Request{Method: http.MethodGet, Path: "/billing/payments", Query: listQuery(args)}, nil
		},
		Render: func(payload map[string]any, args Args) string {
			return renderList(payload, "payments", args, "No payments found.", renderPayment)
		},
	},
}

func renderInvoice(m map[string]any) string {
	return section(str(m, "id"),
		"Status: "+str(m, "status"),
		"Amount: "+moneyStr(m, "amount", "currency"),
		"Period: "+str(m, "period"),
		"Issued: "+timeStr(m, "issued_at"),
		"Due: "+timeStr(m, "due_at"),
	)
}

func renderPayment(m map[string]any) string {
	return fmt.Sprintf("## %s\nStatus: %s\nAmount: %s\nMethod: %s\nReceived: %s",
		str(m, "id"), str(m, "status"), moneyStr(m, "amount", "currency"),
		str(m, "method"), timeStr(m, "received_at"))
}
