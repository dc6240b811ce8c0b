// Package promo holds the static promo code table and the discount
// rules attached to each code.
package promo

import (
	"wander/shared/failure"
)

const (
	KindPercentage = "percentage"
	KindFlat       = "flat"
)

type Code struct {
	Code  string
	Kind  string
	Value float64
}

var codes = map[string]Code{
	"SAVE10":  {Code: "SAVE10", Kind: KindPercentage, Value: 10},
	"FLAT100": {Code: "FLAT100", Kind: KindFlat, Value: 100},
}

func Lookup(code string) (Code, bool) {
	c, ok := codes[code]

	return c, ok
}

// Apply returns the discount the code grants over the subtotal. The
// discount never exceeds the subtotal. An unknown non-empty code is a
// bad request.
func Apply(code string, subtotal float64) (float64, error) {
	if code == "" {
		return 0, nil
	}

	c, ok := Lookup(code)
	if !ok {
		return 0, failure.BadRequestFromString("invalid promo code") // nolint:wrapcheck
	}

	var discount float64

	switch c.Kind {
	case KindPercentage:
		discount = subtotal * c.Value / 100
	case KindFlat:
		discount = c.Value
	}

	if discount > subtotal {
		discount = subtotal
	}

	return discount, nil
}
