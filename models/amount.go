package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as PayPal reports it: a decimal number plus an
// ISO 4217 currency code.
type Amount struct {
	Value        decimal.Decimal
	CurrencyCode string
}

// AmountFromAPI builds an Amount from a PayPal money object, which carries the
// number as a decimal string under "value" and the currency under
// "currency_code".
func AmountFromAPI(source map[string]interface{}) (Amount, error) {
	rawValue, ok := source["value"].(string)
	if !ok {
		return Amount{}, fmt.Errorf("amount object has no value")
	}
	currency, ok := source["currency_code"].(string)
	if !ok {
		return Amount{}, fmt.Errorf("amount object has no currency_code")
	}
	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return Amount{}, fmt.Errorf("error parsing amount value: [%v]", err)
	}
	return Amount{Value: value, CurrencyCode: currency}, nil
}

func (a Amount) String() string {
	return a.Value.String() + " " + a.CurrencyCode
}
