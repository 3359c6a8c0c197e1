package models

// PaymentType distinguishes immediate cash sales from deferred credit sales.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// Credit terms offered to customers, in days after the sale date.
const (
	DefaultCreditDays = 8
	LongCreditDays    = 15
)

// Seller is the authenticated identity a sale is recorded under. The ledger
// trusts it as-is; authentication happens upstream.
type Seller struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Sale records a single unit sold from a lot. Price is copied from the lot at
// sale time and never changes afterwards; Paid only ever flips false -> true.
type Sale struct {
	ID            int         `bson:"sale_id" json:"id"`
	LotID         int         `bson:"lot_id" json:"lot_id"`
	SellerID      int         `bson:"seller_id" json:"seller_id"`
	SellerName    string      `bson:"seller_name" json:"seller_name"`
	CustomerName  string      `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerPhone string      `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	PaymentType   PaymentType `bson:"payment_type" json:"payment_type"`
	SaleDate      string      `bson:"sale_date" json:"sale_date"`
	DueDate       string      `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Paid          bool        `bson:"paid" json:"paid"`
	Price         float64     `bson:"price" json:"price"`
}

// RegisterSaleRequest is the payload accepted when registering a sale.
// CreditDays is only meaningful for credit sales; zero means "use the default
// term".
type RegisterSaleRequest struct {
	PaymentType   PaymentType `json:"payment_type" binding:"required"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CreditDays    int         `json:"credit_days"`
}
