package reconcile

import (
	"context"
	"log"
	"math"

	"cardsync/internal/model"
	"cardsync/internal/observability"
)

type PriceSource interface {
	Lookup(ctx context.Context, cardName string) (*model.ReferencePrice, error)
}

type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type Writer interface {
	UpdateVariantPrice(ctx context.Context, productID, variantID string, amount float64) error
}

// Recorder persists price decisions for later reporting. Optional.
type Recorder interface {
	Record(ctx context.Context, d model.PriceDecision) error
}

// Engine walks the catalog in retrieval order and pushes a price update for
// every variant whose listed price differs from the converted reference
// price. Lookup, conversion, and write failures are all per-item: they are
// logged and the loop moves on.
type Engine struct {
	Source    PriceSource
	Converter Converter
	Writer    Writer
	Recorder  Recorder

	From   string // reference source currency
	To     string // listing currency
	DryRun bool
}

type Summary struct {
	Products      int
	Missed        int
	Updated       int
	Unchanged     int
	Skipped       int
	WriteFailures int
}

func (e *Engine) Reconcile(ctx context.Context, products []model.Product) Summary {
	var sum Summary
	for i := range products {
		e.reconcileProduct(ctx, &products[i], &sum)
	}
	return sum
}

func (e *Engine) reconcileProduct(ctx context.Context, p *model.Product, sum *Summary) {
	sum.Products++
	observability.ProductsProcessed.Inc()

	ref, err := e.Source.Lookup(ctx, p.Name)
	if err != nil {
		log.Printf("[Reconcile] %s: lookup failed: %v", p.Name, err)
		ref = nil
	}
	if ref == nil || (ref.Normal == nil && ref.Foil == nil) {
		log.Printf("[Reconcile] %s: no price found", p.Name)
		sum.Missed++
		observability.LookupsMissed.Inc()
		return
	}

	conditioned := p.HasConditionVariants()
	for i := range p.Variants {
		e.reconcileVariant(ctx, p, &p.Variants[i], ref, conditioned, sum)
	}
}

func (e *Engine) reconcileVariant(ctx context.Context, p *model.Product, v *model.Variant, ref *model.ReferencePrice, conditioned bool, sum *Summary) {
	amount := referenceAmount(v, ref, conditioned)
	if amount == nil {
		return
	}

	converted, err := e.Converter.Convert(ctx, *amount, e.From, e.To)
	if err != nil {
		log.Printf("[Reconcile] %s/%s: conversion failed: %v", p.Name, v.ID, err)
		sum.Skipped++
		return
	}
	// Listed prices carry two decimals, so compare at that precision.
	converted = math.Round(converted*100) / 100

	old, err := v.Amount()
	if err != nil {
		log.Printf("[Reconcile] %s/%s: bad listed price %q: %v", p.Name, v.ID, v.Pricing.BasePrice.Value, err)
		sum.Skipped++
		return
	}

	d := model.NewPriceDecision(p.ID, v.ID, v.Condition(), old, converted)
	if e.Recorder != nil {
		if err := e.Recorder.Record(ctx, d); err != nil {
			log.Printf("[Reconcile] %s/%s: record decision: %v", p.Name, v.ID, err)
		}
	}

	if !d.ShouldUpdate {
		log.Printf("[Reconcile] %s/%s: unchanged at %.2f", p.Name, v.ID, old)
		sum.Unchanged++
		observability.VariantsUnchanged.Inc()
		return
	}

	if e.DryRun {
		log.Printf("[Reconcile] %s/%s: would update %.2f -> %.2f", p.Name, v.ID, old, converted)
		sum.Updated++
		return
	}

	if err := e.Writer.UpdateVariantPrice(ctx, p.ID, v.ID, converted); err != nil {
		log.Printf("[Reconcile] %s/%s: update rejected: %v", p.Name, v.ID, err)
		sum.WriteFailures++
		observability.WriteFailures.Inc()
		return
	}

	log.Printf("[Reconcile] %s/%s: updated %.2f -> %.2f", p.Name, v.ID, old, converted)
	sum.Updated++
	observability.VariantsUpdated.Inc()
}

// referenceAmount picks the scraped amount that applies to this variant.
// Condition-tagged catalogs map Near Mint to the normal price and Near Mint
// Foil to the foil price; anything else is left alone. Flat catalogs take
// the normal price for their single variant.
func referenceAmount(v *model.Variant, ref *model.ReferencePrice, conditioned bool) *float64 {
	if !conditioned {
		return ref.Normal
	}
	switch v.Condition() {
	case model.ConditionNearMint:
		return ref.Normal
	case model.ConditionNearMintFoil:
		return ref.Foil
	default:
		return nil
	}
}
