package cliutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"paypalquery/models"
)

var one = decimal.NewFromInt(1)

// SummarizeTransaction prints the tabular summary block for one transaction:
// a header line with date, id, status and payer, then one aligned line per
// cart item. Transactions with no cart get a single synthesized line for the
// gross amount, and a fee line is appended when PayPal charged one.
func SummarizeTransaction(txn *models.Transaction, w io.Writer) error {
	updated, err := txn.UpdatedDate()
	if err != nil {
		return err
	}
	id, err := txn.TransactionID()
	if err != nil {
		return err
	}
	status, err := txn.Status()
	if err != nil {
		return err
	}

	// The payer block is optional detail, not a summary requirement.
	from := ""
	if name, nameErr := txn.PayerFullName(); nameErr == nil {
		if email, emailErr := txn.PayerEmail(); emailErr == nil {
			from = fmt.Sprintf("\t%s (%s)", name, email)
		}
	}
	fmt.Fprintf(w, "%s\t%s\t%s%s\n", updated.UTC().Format("2006-01-02 15:04"), id, status.Label(), from)

	cart, err := txn.CartItems()
	if err != nil {
		var notLoaded *models.FieldNotLoadedError
		if !errors.As(err, &notLoaded) {
			return err
		}
		// Cart details were not requested; fall through to the gross line.
		cart = nil
	}
	if len(cart) == 0 {
		amount, amountErr := txn.Amount()
		if amountErr != nil {
			return amountErr
		}
		name := txn.Subject()
		if name == "" {
			name = "Gross Amount"
		}
		cart = append(cart, models.CartItem{
			Name:       name,
			Quantity:   one,
			UnitPrice:  amount,
			TotalPrice: amount,
		})
	}
	fee, err := txn.FeeAmount()
	if err == nil && fee != nil {
		cart = append(cart, models.CartItem{
			Name:       "PayPal Fee",
			Quantity:   one,
			UnitPrice:  *fee,
			TotalPrice: *fee,
		})
	}

	names := make([]string, len(cart))
	amounts := make([]string, len(cart))
	nameLen, amountLen := 0, 0
	for i, item := range cart {
		names[i] = item.DisplayName("")
		amounts[i] = item.TotalPrice.String()
		if len(names[i]) > nameLen {
			nameLen = len(names[i])
		}
		if len(amounts[i]) > amountLen {
			amountLen = len(amounts[i])
		}
	}
	lineFormat := fmt.Sprintf("  %%%ds │ %%%ds%%s\n", nameLen, amountLen)
	for i, item := range cart {
		unit := ""
		if !item.Quantity.Equal(one) {
			unit = fmt.Sprintf(" (%s @ %s)", item.Quantity, item.UnitPrice)
		}
		fmt.Fprintf(w, lineFormat, names[i], amounts[i], unit)
	}
	return nil
}
