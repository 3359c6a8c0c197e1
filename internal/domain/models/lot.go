package models

// DateLayout is the canonical calendar-date format used across the ledger.
// Lexicographic comparison of two dates in this layout matches chronological order.
const DateLayout = "2006-01-02"

// Ingredient is a raw material consumed by a production lot. It has no
// lifecycle of its own; it only exists embedded in a Lot.
type Ingredient struct {
	Name              string  `bson:"name" json:"name" binding:"required"`
	UnitCost          float64 `bson:"unit_cost" json:"unit_cost" binding:"required,gt=0"`
	QuantityPurchased float64 `bson:"quantity_purchased" json:"quantity_purchased" binding:"required,gt=0"`
	TotalCost         float64 `bson:"total_cost" json:"total_cost"`
}

// Lot is a batch of manufactured units sharing one production cost and sale
// price. UnitsAvailable starts at UnitsProduced and only ever moves down, one
// decrement per sale; the invariant 0 <= UnitsAvailable <= UnitsProduced holds
// at all times.
type Lot struct {
	ID                  int          `bson:"lot_id" json:"id"`
	CreatedDate         string       `bson:"created_date" json:"created_date"`
	Ingredients         []Ingredient `bson:"ingredients" json:"ingredients"`
	TotalProductionCost float64      `bson:"total_production_cost" json:"total_production_cost"`
	UnitsProduced       int          `bson:"units_produced" json:"units_produced"`
	UnitPrice           float64      `bson:"unit_price" json:"unit_price"`
	UnitsAvailable      int          `bson:"units_available" json:"units_available"`
}

// AddLotRequest is the payload accepted when opening a new production lot.
type AddLotRequest struct {
	Ingredients         []Ingredient `json:"ingredients" binding:"required,dive"`
	TotalProductionCost float64      `json:"total_production_cost" binding:"required,gt=0"`
	UnitsProduced       int          `json:"units_produced" binding:"required"`
	UnitPrice           float64      `json:"unit_price" binding:"required"`
}
