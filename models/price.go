package models

// PriceBreakdown is a derived value type. It is recomputed from the current
// selections and never mutated in place.
type PriceBreakdown struct {
	TotalDays   int     `bson:"total_days" json:"totalDays"`
	BasePrice   float64 `bson:"base_price" json:"basePrice"`
	ExtrasTotal float64 `bson:"extras_total" json:"extrasTotal"`
	TaxAmount   float64 `bson:"tax_amount" json:"taxAmount"`
	GrandTotal  float64 `bson:"grand_total" json:"grandTotal"`
}
