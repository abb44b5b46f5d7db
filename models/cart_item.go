package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItem is one line item from a transaction's cart_info detail group.
type CartItem struct {
	Code        string
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   Amount
	TotalPrice  Amount
}

// CartItemFromAPI builds a CartItem from one item_details element. The line
// total (item_amount) is required. Quantity defaults to 1, and when PayPal
// omits item_unit_price the unit price is derived as total over quantity.
func CartItemFromAPI(source map[string]interface{}) (CartItem, error) {
	rawTotal, ok := source["item_amount"].(map[string]interface{})
	if !ok {
		return CartItem{}, fmt.Errorf("cart item has no item_amount")
	}
	totalPrice, err := AmountFromAPI(rawTotal)
	if err != nil {
		return CartItem{}, err
	}

	quantity := decimal.NewFromInt(1)
	if rawQuantity, ok := source["item_quantity"].(string); ok {
		quantity, err = decimal.NewFromString(rawQuantity)
		if err != nil {
			return CartItem{}, fmt.Errorf("error parsing item_quantity: [%v]", err)
		}
	}

	var unitPrice Amount
	if rawUnit, ok := source["item_unit_price"].(map[string]interface{}); ok {
		unitPrice, err = AmountFromAPI(rawUnit)
		if err != nil {
			return CartItem{}, err
		}
	} else {
		unitPrice = Amount{
			Value:        totalPrice.Value.Div(quantity),
			CurrencyCode: totalPrice.CurrencyCode,
		}
	}

	item := CartItem{
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	}
	item.Code, _ = source["item_code"].(string)
	item.Name, _ = source["item_name"].(string)
	item.Description, _ = source["item_description"].(string)
	return item, nil
}

// DisplayName returns the best human-readable name for the item, falling back
// to the supplied default (typically the transaction's subject line) when the
// item carries no name of its own.
func (i CartItem) DisplayName(fallback string) string {
	switch {
	case i.Name != "":
		return i.Name
	case i.Description != "":
		return i.Description
	case i.Code != "":
		return i.Code
	case fallback != "":
		return fallback
	}
	return "Unknown Item"
}
