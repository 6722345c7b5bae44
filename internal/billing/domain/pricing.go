package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PricedItems is the result of pricing a list of raw line items.
type PricedItems struct {
	Items      []LineItem
	TotalNew   decimal.Decimal
	TotalWaste decimal.Decimal
	Net        decimal.Decimal
}

// PriceItems computes per-item subtotals and the bill totals. It is pure:
// no side effects, same output for the same input. Item order is preserved,
// it is the print order of the bill.
func PriceItems(items []LineItemInput) (PricedItems, error) {
	priced := PricedItems{
		Items:      make([]LineItem, 0, len(items)),
		TotalNew:   decimal.Zero,
		TotalWaste: decimal.Zero,
	}

	for i, item := range items {
		if !item.Quantity.IsPositive() {
			return PricedItems{}, &ValidationError{Msg: fmt.Sprintf("item %d: quantity must be positive, got %s", i, item.Quantity)}
		}

		subTotal := item.Quantity.Mul(item.UnitPrice)

		switch item.Type {
		case ItemTypeSold:
			priced.TotalNew = priced.TotalNew.Add(subTotal)
		case ItemTypeBought:
			priced.TotalWaste = priced.TotalWaste.Add(subTotal)
		default:
			return PricedItems{}, &ValidationError{Msg: fmt.Sprintf("item %d: unknown item type %q", i, item.Type)}
		}

		priced.Items = append(priced.Items, LineItem{
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SubTotal:    subTotal,
			Type:        item.Type,
		})
	}

	priced.Net = priced.TotalNew.Sub(priced.TotalWaste)

	return priced, nil
}
