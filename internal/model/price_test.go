package model

import "testing"

func TestNewPriceDecision(t *testing.T) {
	d := NewPriceDecision("p1", "v1", ConditionNearMint, 10.0, 12.5)
	if !d.ShouldUpdate {
		t.Error("different amounts must flag an update")
	}

	d = NewPriceDecision("p1", "v1", ConditionNearMint, 12.5, 12.5)
	if d.ShouldUpdate {
		t.Error("equal amounts must not flag an update")
	}
}

func TestHasConditionVariants(t *testing.T) {
	flat := Product{Variants: []Variant{{ID: "v1"}}}
	if flat.HasConditionVariants() {
		t.Error("flat product reported condition variants")
	}

	rich := Product{Variants: []Variant{
		{ID: "v1", Attributes: map[string]string{AttrCondition: ConditionNearMint}},
	}}
	if !rich.HasConditionVariants() {
		t.Error("condition-tagged product not detected")
	}
}

func TestMoneyAmount(t *testing.T) {
	m := Money{Value: "1234.56", Currency: "BRL"}
	got, err := m.Amount()
	if err != nil || got != 1234.56 {
		t.Errorf("Amount() = %v, %v", got, err)
	}

	if _, err := (Money{Value: "n/a"}).Amount(); err == nil {
		t.Error("expected error for non-decimal value")
	}
}
