package models

// SellerStats groups a seller's sale count and revenue split by payment type.
type SellerStats struct {
	Count       int     `json:"count"`
	CashTotal   float64 `json:"cash_total"`
	CreditTotal float64 `json:"credit_total"`
}

// SalesStats is the sales section of the statistics payload.
type SalesStats struct {
	TotalSales int                    `json:"total_sales"`
	BySeller   map[string]SellerStats `json:"by_seller"`
}

// FinanceStats is the money section of the statistics payload. GrossProfit
// attributes cost using only the current lot's cost basis.
type FinanceStats struct {
	TotalCash       float64 `json:"total_cash"`
	TotalReceivable float64 `json:"total_receivable"`
	TotalRevenue    float64 `json:"total_revenue"`
	GrossProfit     float64 `json:"gross_profit"`
}

// Statistics is the full read-side snapshot over both stores, recomputed on
// every request.
type Statistics struct {
	Lots           []Lot        `json:"lots"`
	TotalLots      int          `json:"total_lots"`
	UnitsAvailable int          `json:"units_available"`
	UnitsProduced  int          `json:"units_produced"`
	UnitsSold      int          `json:"units_sold"`
	Sales          SalesStats   `json:"sales"`
	Finances       FinanceStats `json:"finances"`
}
