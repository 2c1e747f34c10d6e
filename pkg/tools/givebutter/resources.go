package givebutter

import "net/http"

// resourceOperations covers the read-only families: transactions,
// tickets, payouts, plans, and funds.
var resourceOperations = []Operation{
	{
		Name:        "list_transactions",
		Description: "List all transactions for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InQuery, Description: "Only return transactions for this campaign"},
		},
	},
	{
		Name:        "get_transaction",
		Description: "Get details of a specific transaction",
		Method:      http.MethodGet,
		Path:        "/transactions/{transaction_id}",
		Params: []Param{
			{Name: "transaction_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the transaction"},
		},
	},
	{
		Name:        "list_tickets",
		Description: "List all tickets for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/tickets",
	},
	{
		Name:        "get_ticket",
		Description: "Get details of a specific ticket",
		Method:      http.MethodGet,
		Path:        "/tickets/{ticket_id}",
		Params: []Param{
			{Name: "ticket_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the ticket"},
		},
	},
	{
		Name:        "list_payouts",
		Description: "List all payouts for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/payouts",
	},
	{
		Name:        "get_payout",
		Description: "Get details of a specific payout",
		Method:      http.MethodGet,
		Path:        "/payouts/{payout_id}",
		Params: []Param{
			{Name: "payout_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the payout"},
		},
	},
	{
		Name:        "list_plans",
		Description: "List all recurring giving plans for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/plans",
	},
	{
		Name:        "get_plan",
		Description: "Get details of a specific recurring giving plan",
		Method:      http.MethodGet,
		Path:        "/plans/{plan_id}",
		Params: []Param{
			{Name: "plan_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the plan"},
		},
	},
	{
		Name:        "list_funds",
		Description: "List all funds for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/funds",
	},
	{
		Name:        "get_fund",
		Description: "Get details of a specific fund",
		Method:      http.MethodGet,
		Path:        "/funds/{fund_id}",
		Params: []Param{
			{Name: "fund_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the fund"},
		},
	},
}
