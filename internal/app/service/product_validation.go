package service

import (
	"strings"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
)

// ValidationError carries per-field messages. The controller turns it into a
// fields map so the form can show each error under its own input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// requiredStrings maps the JSON field name to its display label for the
// fields every product model requires.
var requiredStrings = []struct {
	field string
	label string
	get   func(*model.Product) string
}{
	{"sku", "SKU", func(p *model.Product) string { return p.SKU }},
	{"displayName", "Display Name", func(p *model.Product) string { return p.DisplayName }},
	{"brand", "Brand", func(p *model.Product) string { return p.Brand }},
}

var priceFields = []struct {
	field string
	label string
	get   func(*model.Product) float64
}{
	{"costPrice", "Cost Price", func(p *model.Product) float64 { return p.CostPrice }},
	{"resellerPrice", "Reseller Price", func(p *model.Product) float64 { return p.ResellerPrice }},
	{"sellPrice", "Sell Price", func(p *model.Product) float64 { return p.SellPrice }},
	{"incentiveAmount", "Incentive Amount", func(p *model.Product) float64 { return p.IncentiveAmount }},
}

// ValidateProduct applies the form validation contract: required strings
// reject whitespace-only input with "<Field> is required", money fields
// reject negatives with "<Field> cannot be negative", and contact solutions
// must expire strictly after manufacture, reported against the expiry field.
// A nil return means the product may be persisted.
func ValidateProduct(product *model.Product) *ValidationError {
	fields := map[string]string{}

	if !model.ValidProductModel(product.Model) {
		fields["model"] = "Product model is invalid"
	}

	for _, rule := range requiredStrings {
		if strings.TrimSpace(rule.get(product)) == "" {
			fields[rule.field] = rule.label + " is required"
		}
	}

	for _, rule := range priceFields {
		if rule.get(product) < 0 {
			fields[rule.field] = rule.label + " cannot be negative"
		}
	}

	if product.Model == model.ModelContactSolutions {
		switch {
		case product.ManufactureDate == nil:
			fields["manufactureDate"] = "Manufacture Date is required"
		case product.ExpiryDate == nil:
			fields["expiryDate"] = "Expiry Date is required"
		case !product.ExpiryDate.After(*product.ManufactureDate):
			fields["expiryDate"] = "Expiry Date must be after Manufacture Date"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
