package model

// ReferencePrice is a market price scraped for one card. Normal and Foil
// are nil when the source page had no parseable value for that finish.
// Amounts are in the reference source's currency.
type ReferencePrice struct {
	Name   string
	Normal *float64
	Foil   *float64
}

// PriceDecision is the outcome of comparing one variant's listed price
// against the converted reference price. Computed fresh every run.
type PriceDecision struct {
	ProductID    string
	VariantID    string
	Condition    string
	OldAmount    float64
	NewAmount    float64
	ShouldUpdate bool
}

// NewPriceDecision compares old and new exactly; any difference means update.
func NewPriceDecision(productID, variantID, condition string, oldAmount, newAmount float64) PriceDecision {
	return PriceDecision{
		ProductID:    productID,
		VariantID:    variantID,
		Condition:    condition,
		OldAmount:    oldAmount,
		NewAmount:    newAmount,
		ShouldUpdate: oldAmount != newAmount,
	}
}
