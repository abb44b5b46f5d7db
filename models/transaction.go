package models

import (
	"fmt"
	"time"

	"paypalquery/utils"
)

// Transaction is a read-only view over one element of a transaction search
// response's transaction_details array. The wrapped tree is never mutated.
//
// PayPal only includes the top-level detail groups (transaction_info,
// payer_info, cart_info, ...) that the caller requested, so the typed
// accessors distinguish "group never requested" (*FieldNotLoadedError) from
// "group loaded but optional sub-field absent" (*MissingKeyError).
type Transaction struct {
	response map[string]interface{}
}

// NewTransaction wraps a decoded transaction_details element.
func NewTransaction(response map[string]interface{}) *Transaction {
	return &Transaction{response: response}
}

// Raw returns the wrapped tree. Callers must treat it as read-only.
func (t *Transaction) Raw() map[string]interface{} {
	return t.response
}

// Has reports whether a top-level detail group is present.
func (t *Transaction) Has(key string) bool {
	_, ok := t.response[key]
	return ok
}

// Get returns a top-level value and whether it was present.
func (t *Transaction) Get(key string) (interface{}, bool) {
	value, ok := t.response[key]
	return value, ok
}

// Keys returns the top-level keys of the wrapped tree.
func (t *Transaction) Keys() []string {
	keys := make([]string, 0, len(t.response))
	for key := range t.response {
		keys = append(keys, key)
	}
	return keys
}

// Len returns the number of top-level keys.
func (t *Transaction) Len() int {
	return len(t.response)
}

// label identifies the transaction in error messages, falling back to a
// generic label when the id itself was not loaded.
func (t *Transaction) label() string {
	if info, ok := t.response["transaction_info"].(map[string]interface{}); ok {
		if id, ok := info["transaction_id"].(string); ok {
			return "transaction " + id
		}
	}
	return "transaction"
}

// lookup walks a fixed path of nested keys. A miss on the first key means the
// detail group was never requested; a miss further down means the field is
// genuinely absent from the payload.
func (t *Transaction) lookup(path ...string) (interface{}, error) {
	var source interface{} = t.response
	for i, key := range path {
		node, ok := source.(map[string]interface{})
		if !ok {
			return nil, &MissingKeyError{Label: t.label(), Path: path[:i+1]}
		}
		source, ok = node[key]
		if !ok {
			if i == 0 {
				return nil, &FieldNotLoadedError{Label: t.label(), Field: key}
			}
			return nil, &MissingKeyError{Label: t.label(), Path: path[:i+1]}
		}
	}
	return source, nil
}

func (t *Transaction) lookupString(path ...string) (string, error) {
	value, err := t.lookup(path...)
	if err != nil {
		return "", err
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s %s is not a string", t.label(), path[len(path)-1])
	}
	return str, nil
}

func (t *Transaction) lookupAmount(path ...string) (Amount, error) {
	value, err := t.lookup(path...)
	if err != nil {
		return Amount{}, err
	}
	source, ok := value.(map[string]interface{})
	if !ok {
		return Amount{}, fmt.Errorf("%s %s is not an amount object", t.label(), path[len(path)-1])
	}
	return AmountFromAPI(source)
}

func (t *Transaction) lookupDatetime(path ...string) (time.Time, error) {
	value, err := t.lookupString(path...)
	if err != nil {
		return time.Time{}, err
	}
	return utils.ParseDatetime(value)
}

// TransactionID returns the transaction's id.
func (t *Transaction) TransactionID() (string, error) {
	return t.lookupString("transaction_info", "transaction_id")
}

// Amount returns the transaction's gross amount.
func (t *Transaction) Amount() (Amount, error) {
	return t.lookupAmount("transaction_info", "transaction_amount")
}

// FeeAmount returns the fee PayPal charged, or nil when no fee was charged.
// Fees are genuinely optional, so an absent fee_amount key is not an error
// the way other missing sub-fields are.
func (t *Transaction) FeeAmount() (*Amount, error) {
	info, err := t.lookup("transaction_info")
	if err != nil {
		return nil, err
	}
	source, ok := info.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s transaction_info is not an object", t.label())
	}
	rawFee, ok := source["fee_amount"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	fee, err := AmountFromAPI(rawFee)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// Status returns the transaction's status.
func (t *Transaction) Status() (TransactionStatus, error) {
	code, err := t.lookupString("transaction_info", "transaction_status")
	if err != nil {
		return "", err
	}
	return ParseTransactionStatus(code)
}

// Subject returns the transaction's subject line, or the empty string when
// none was set.
func (t *Transaction) Subject() string {
	subject, err := t.lookupString("transaction_info", "transaction_subject")
	if err != nil {
		return ""
	}
	return subject
}

// InitiationDate returns when the transaction was initiated.
func (t *Transaction) InitiationDate() (time.Time, error) {
	return t.lookupDatetime("transaction_info", "transaction_initiation_date")
}

// UpdatedDate returns when the transaction was last updated.
func (t *Transaction) UpdatedDate() (time.Time, error) {
	return t.lookupDatetime("transaction_info", "transaction_updated_date")
}

// PayerEmail returns the payer's email address.
func (t *Transaction) PayerEmail() (string, error) {
	return t.lookupString("payer_info", "email_address")
}

// PayerFullName returns the payer's full name.
func (t *Transaction) PayerFullName() (string, error) {
	return t.lookupString("payer_info", "payer_name", "alternate_full_name")
}

// CartItems returns the transaction's cart line items. A loaded cart with no
// item_details is an empty cart. Individual items that fail to convert are
// dropped rather than failing the whole cart, since partial cart data is
// still useful for display.
func (t *Transaction) CartItems() ([]CartItem, error) {
	group, err := t.lookup("cart_info")
	if err != nil {
		return nil, err
	}
	cartInfo, ok := group.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s cart_info is not an object", t.label())
	}
	rawItems, ok := cartInfo["item_details"].([]interface{})
	if !ok {
		return []CartItem{}, nil
	}
	items := make([]CartItem, 0, len(rawItems))
	for _, rawItem := range rawItems {
		source, ok := rawItem.(map[string]interface{})
		if !ok {
			continue
		}
		item, err := CartItemFromAPI(source)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
