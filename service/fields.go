package service

import (
	"fmt"
	"strings"
)

// UnknownFieldNameError is returned when a field-selector argument does not
// name any known field.
type UnknownFieldNameError struct {
	Kind string
	Name string
}

func (e *UnknownFieldNameError) Error() string {
	return fmt.Sprintf("unknown %s field %q", e.Kind, e.Name)
}

// TransactionFields selects which optional detail groups a transaction
// search should return. It is a bitset over the base fields below; PayPal
// serialises each base field with an _info suffix.
type TransactionFields uint

const (
	TransactionFieldTransaction TransactionFields = 1 << iota
	TransactionFieldPayer
	TransactionFieldShipping
	TransactionFieldAuction
	TransactionFieldCart
	TransactionFieldIncentive
	TransactionFieldStore
)

// Canonical declaration order, used for serialisation and help text.
var transactionFieldTable = []struct {
	flag TransactionFields
	name string
}{
	{TransactionFieldTransaction, "transaction"},
	{TransactionFieldPayer, "payer"},
	{TransactionFieldShipping, "shipping"},
	{TransactionFieldAuction, "auction"},
	{TransactionFieldCart, "cart"},
	{TransactionFieldIncentive, "incentive"},
	{TransactionFieldStore, "store"},
}

// TransactionFieldsAll is the union of every base transaction field.
var TransactionFieldsAll = func() TransactionFields {
	var all TransactionFields
	for _, entry := range transactionFieldTable {
		all |= entry.flag
	}
	return all
}()

// ParamValue renders the selector in the API's comma-separated parameter
// format, in canonical order.
func (f TransactionFields) ParamValue() string {
	names := make([]string, 0, len(transactionFieldTable))
	for _, entry := range transactionFieldTable {
		if f&entry.flag != 0 {
			names = append(names, entry.name+"_info")
		}
	}
	return strings.Join(names, ",")
}

// TransactionFieldsFromArg resolves a field name case-insensitively.
func TransactionFieldsFromArg(arg string) (TransactionFields, error) {
	lower := strings.ToLower(arg)
	if lower == "all" {
		return TransactionFieldsAll, nil
	}
	for _, entry := range transactionFieldTable {
		if entry.name == lower {
			return entry.flag, nil
		}
	}
	return 0, &UnknownFieldNameError{Kind: "transaction", Name: arg}
}

// CombineTransactionFields unions a list of selectors. An empty list selects
// every field.
func CombineTransactionFields(fields []TransactionFields) TransactionFields {
	if len(fields) == 0 {
		return TransactionFieldsAll
	}
	var combined TransactionFields
	for _, field := range fields {
		combined |= field
	}
	return combined
}

// TransactionFieldChoices lists the valid argument names.
func TransactionFieldChoices() []string {
	choices := make([]string, 0, len(transactionFieldTable)+1)
	for _, entry := range transactionFieldTable {
		choices = append(choices, entry.name)
	}
	return append(choices, "all")
}

// SubscriptionFields selects which optional detail groups a subscription GET
// should return. Unlike TransactionFields, base names are serialised as-is.
type SubscriptionFields uint

const (
	SubscriptionFieldLastFailedPayment SubscriptionFields = 1 << iota
	SubscriptionFieldPlan
)

var subscriptionFieldTable = []struct {
	flag SubscriptionFields
	name string
}{
	{SubscriptionFieldLastFailedPayment, "last_failed_payment"},
	{SubscriptionFieldPlan, "plan"},
}

// SubscriptionFieldsAll is the union of every base subscription field.
var SubscriptionFieldsAll = func() SubscriptionFields {
	var all SubscriptionFields
	for _, entry := range subscriptionFieldTable {
		all |= entry.flag
	}
	return all
}()

// ParamValue renders the selector in the API's comma-separated parameter
// format, in canonical order.
func (f SubscriptionFields) ParamValue() string {
	names := make([]string, 0, len(subscriptionFieldTable))
	for _, entry := range subscriptionFieldTable {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ",")
}

// SubscriptionFieldsFromArg resolves a field name case-insensitively.
func SubscriptionFieldsFromArg(arg string) (SubscriptionFields, error) {
	lower := strings.ToLower(arg)
	if lower == "all" {
		return SubscriptionFieldsAll, nil
	}
	for _, entry := range subscriptionFieldTable {
		if entry.name == lower {
			return entry.flag, nil
		}
	}
	return 0, &UnknownFieldNameError{Kind: "subscription", Name: arg}
}

// CombineSubscriptionFields unions a list of selectors. An empty list selects
// every field.
func CombineSubscriptionFields(fields []SubscriptionFields) SubscriptionFields {
	if len(fields) == 0 {
		return SubscriptionFieldsAll
	}
	var combined SubscriptionFields
	for _, field := range fields {
		combined |= field
	}
	return combined
}

// SubscriptionFieldChoices lists the valid argument names.
func SubscriptionFieldChoices() []string {
	choices := make([]string, 0, len(subscriptionFieldTable)+1)
	for _, entry := range subscriptionFieldTable {
		choices = append(choices, entry.name)
	}
	return append(choices, "all")
}
