package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitAmountFromAPI(t *testing.T) {
	amount, err := AmountFromAPI(map[string]interface{}{
		"value":         "15.98",
		"currency_code": "USD",
	})
	assert.NoError(t, err)
	assert.Equal(t, "15.98", amount.Value.String())
	assert.Equal(t, "USD", amount.CurrencyCode)
	assert.Equal(t, "15.98 USD", amount.String())

	_, err = AmountFromAPI(map[string]interface{}{"currency_code": "USD"})
	assert.EqualError(t, err, "amount object has no value")

	_, err = AmountFromAPI(map[string]interface{}{"value": "1.00"})
	assert.EqualError(t, err, "amount object has no currency_code")

	_, err = AmountFromAPI(map[string]interface{}{
		"value":         "one hundred",
		"currency_code": "USD",
	})
	assert.Error(t, err)
}

func TestUnitAmountEquality(t *testing.T) {
	left, err := AmountFromAPI(map[string]interface{}{"value": "5.00", "currency_code": "GBP"})
	assert.NoError(t, err)
	right, err := AmountFromAPI(map[string]interface{}{"value": "5.00", "currency_code": "GBP"})
	assert.NoError(t, err)
	assert.Equal(t, left, right)
}
