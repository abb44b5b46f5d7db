package fixtures

// GetTransactionInfo returns a transaction_info detail group as the reporting
// API decodes it.
func GetTransactionInfo() map[string]interface{} {
	return map[string]interface{}{
		"transaction_id":              "8XC12345AB6789012",
		"transaction_status":          "S",
		"transaction_subject":         "Monthly donation",
		"transaction_initiation_date": "2023-04-01T09:30:00+0000",
		"transaction_updated_date":    "2023-04-01T09:31:11+0000",
		"transaction_amount": map[string]interface{}{
			"currency_code": "USD",
			"value":         "15.98",
		},
		"fee_amount": map[string]interface{}{
			"currency_code": "USD",
			"value":         "0.76",
		},
	}
}

// GetPayerInfo returns a payer_info detail group.
func GetPayerInfo() map[string]interface{} {
	return map[string]interface{}{
		"email_address": "donor@example.com",
		"payer_name": map[string]interface{}{
			"alternate_full_name": "Ada Lovelace",
		},
	}
}

// GetCartInfo returns a cart_info detail group with one two-unit line item
// that carries no unit price of its own.
func GetCartInfo() map[string]interface{} {
	return map[string]interface{}{
		"item_details": []interface{}{
			map[string]interface{}{
				"item_code":     "WDG-1",
				"item_name":     "Widget",
				"item_quantity": "2",
				"item_amount": map[string]interface{}{
					"currency_code": "USD",
					"value":         "15.98",
				},
			},
		},
	}
}

// GetTransactionDetail returns one fully loaded transaction_details element.
func GetTransactionDetail() map[string]interface{} {
	return map[string]interface{}{
		"transaction_info": GetTransactionInfo(),
		"payer_info":       GetPayerInfo(),
		"cart_info":        GetCartInfo(),
	}
}

// GetSearchResponse returns a transaction search page wrapping the given
// details.
func GetSearchResponse(page, totalPages int, details ...map[string]interface{}) map[string]interface{} {
	rawDetails := make([]interface{}, 0, len(details))
	for _, detail := range details {
		rawDetails = append(rawDetails, detail)
	}
	return map[string]interface{}{
		"page":                page,
		"total_pages":         totalPages,
		"total_items":         len(details),
		"transaction_details": rawDetails,
	}
}

// GetTokenResponse returns a client-credentials token grant body.
func GetTokenResponse(token string) map[string]interface{} {
	return map[string]interface{}{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   32400,
	}
}
