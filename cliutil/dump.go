package cliutil

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"paypalquery/models"
	"paypalquery/service"
)

// Detail groups are dumped in a fixed reading order rather than
// alphabetically: shipping and payer identify the transaction's parties
// before the figures.
var transactionDumpOrder = []struct {
	flag service.TransactionFields
	key  string
}{
	{service.TransactionFieldShipping, "shipping_info"},
	{service.TransactionFieldPayer, "payer_info"},
	{service.TransactionFieldTransaction, "transaction_info"},
	{service.TransactionFieldCart, "cart_info"},
	{service.TransactionFieldStore, "store_info"},
	{service.TransactionFieldAuction, "auction_info"},
	{service.TransactionFieldIncentive, "incentive_info"},
}

// DumpTransaction writes one transaction as a YAML document, restricted to
// the requested detail groups and keeping them in display order.
func DumpTransaction(w io.Writer, txn *models.Transaction, fields service.TransactionFields) error {
	doc := yaml.MapSlice{}
	for _, entry := range transactionDumpOrder {
		if fields&entry.flag == 0 {
			continue
		}
		if value, ok := txn.Get(entry.key); ok {
			doc = append(doc, yaml.MapItem{Key: entry.key, Value: value})
		}
	}
	return writeYAML(w, doc)
}

// DumpSubscription writes a raw subscription response as a YAML document.
func DumpSubscription(w io.Writer, subscription map[string]interface{}) error {
	return writeYAML(w, subscription)
}

func writeYAML(w io.Writer, doc interface{}) error {
	rendered, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error rendering YAML output: [%s]", err)
	}
	_, err = w.Write(rendered)
	return err
}
