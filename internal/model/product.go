package model

import "strconv"

// Condition attribute values used by catalogs that track card condition
// per variant. Flat catalogs carry a single variant with no attributes.
const (
	AttrCondition         = "Condition"
	ConditionNearMint     = "Near Mint"
	ConditionNearMintFoil = "Near Mint Foil"
)

type Money struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Amount parses the decimal string carried on the wire.
func (m Money) Amount() (float64, error) {
	return strconv.ParseFloat(m.Value, 64)
}

type Pricing struct {
	BasePrice Money `json:"basePrice"`
}

type Variant struct {
	ID         string            `json:"id"`
	SKU        string            `json:"sku,omitempty"`
	Pricing    Pricing           `json:"pricing"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Condition returns the variant's condition attribute, or "" when the
// catalog schema does not tag variants with a condition.
func (v Variant) Condition() string {
	return v.Attributes[AttrCondition]
}

// Amount is the variant's current listed price as a number.
func (v Variant) Amount() (float64, error) {
	return v.Pricing.BasePrice.Amount()
}

type Product struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Variants []Variant `json:"variants"`
}

// HasConditionVariants reports whether this product uses the richer schema
// where variants are distinguished by a Condition attribute.
func (p Product) HasConditionVariants() bool {
	for _, v := range p.Variants {
		if v.Condition() != "" {
			return true
		}
	}
	return false
}
