package service

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/url"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"

	"paypalquery/config"
	"paypalquery/models"
)

const (
	transactionSearchPath  = "/v1/reporting/transactions"
	subscriptionPathFormat = "/v1/billing/subscriptions/%s"

	// The reporting API only goes back three years.
	transactionLookback = 3 * 365 * 24 * time.Hour
)

// NotFoundError is returned when a transaction lookup exhausts its date range
// without a match.
type NotFoundError struct {
	TransactionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.TransactionID)
}

// PayPalService queries PayPal's billing and reporting APIs over an
// authenticated session. All iteration it produces is sequential and lazy;
// abandoning an iterator simply stops further requests.
type PayPalService struct {
	Session ApiSession
	APIBase string
}

// NewPayPalService builds a service from configuration, resolving the site
// alias to an API base URL.
func NewPayPalService(cfg *config.Config) (*PayPalService, error) {
	apiBase := getPayPalAPIBase(cfg.Site)
	if apiBase == "" {
		return nil, fmt.Errorf("invalid paypal site in config: %s", cfg.Site)
	}
	return &PayPalService{
		Session: NewSession(cfg.ClientID, cfg.ClientSecret, apiBase),
		APIBase: apiBase,
	}, nil
}

// GetSubscription fetches one billing subscription, restricted to the
// requested detail groups. The response is returned as the decoded JSON
// tree.
func (pp *PayPalService) GetSubscription(subscriptionID string, fields SubscriptionFields) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("fields", fields.ParamValue())
	return pp.getJSON(fmt.Sprintf(subscriptionPathFormat, subscriptionID), params)
}

// GetTransaction finds one transaction by id. The reporting API caps each
// search request at a 31-day span, so the lookup walks 30-day windows
// backward from endDate until a window matches or startDate is reached.
// A zero endDate defaults to now; a zero startDate defaults to the API's
// three-year lookback limit.
func (pp *PayPalService) GetTransaction(transactionID string, startDate, endDate time.Time, fields TransactionFields) (*models.Transaction, error) {
	now := time.Now().UTC()
	if endDate.IsZero() {
		endDate = now
	}
	if startDate.IsZero() {
		startDate = now.Add(-transactionLookback)
	}

	extra := url.Values{}
	extra.Set("transaction_id", transactionID)
	extra.Set("fields", fields.ParamValue())

	// Newest window first: the end bound seeds the generator's start.
	windows := NewDateWindows(endDate, startDate, defaultWindowSpan, extra)
	for {
		params, ok := windows.Next()
		if !ok {
			break
		}
		response, err := pp.getJSON(transactionSearchPath, params)
		if err != nil {
			return nil, err
		}
		details, _ := response["transaction_details"].([]interface{})
		if len(details) == 0 {
			continue
		}
		source, ok := details[0].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("malformed transaction_details entry for transaction %q", transactionID)
		}
		return models.NewTransaction(source), nil
	}
	return nil, &NotFoundError{TransactionID: transactionID}
}

// IterTransactions lazily iterates every transaction in [startDate, endDate]
// in API response order: forward date windows, then pages, then entries.
func (pp *PayPalService) IterTransactions(startDate, endDate time.Time, fields TransactionFields) *TransactionIterator {
	extra := url.Values{}
	extra.Set("fields", fields.ParamValue())
	return &TransactionIterator{
		service: pp,
		windows: NewDateWindows(startDate, endDate, defaultWindowSpan, extra),
	}
}

// getJSON issues one authenticated GET and decodes the response body. A
// non-success status after the session's single authorised retry is logged
// and returned as a *models.APIError.
func (pp *PayPalService) getJSON(path string, params url.Values) (map[string]interface{}, error) {
	response, err := pp.Session.Get(pp.APIBase+path, params)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiErr := &models.APIError{StatusCode: response.StatusCode}
		if err = json.Unmarshal(body, apiErr); err != nil {
			apiErr.Name = "HTTP_ERROR"
			apiErr.Message = strings.TrimSpace(string(body))
		}
		pp.logError(path, apiErr)
		return nil, apiErr
	}

	decoded := map[string]interface{}{}
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}
	return decoded, nil
}

func (pp *PayPalService) logError(path string, apiErr *models.APIError) {
	log.Error(fmt.Errorf("%s", apiErr.Render()), log.Data{
		"path":        path,
		"http_status": apiErr.StatusCode,
		"debug_id":    apiErr.DebugID,
	})
}

// TransactionIterator is a lazy, finite, non-restartable sequence of
// transactions produced by IterTransactions.
type TransactionIterator struct {
	service *PayPalService
	windows *DateWindows
	pages   *pageIterator
	items   []interface{}
	current *models.Transaction
	err     error
}

// Next advances to the next transaction, issuing window and page requests as
// needed. It returns false when the range is exhausted or a request failed.
func (it *TransactionIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for {
		if len(it.items) > 0 {
			raw := it.items[0]
			it.items = it.items[1:]
			source, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			it.current = models.NewTransaction(source)
			return true
		}
		if it.pages != nil {
			if it.pages.Next() {
				it.items, _ = it.pages.Page()["transaction_details"].([]interface{})
				continue
			}
			if it.pages.Err() != nil {
				it.err = it.pages.Err()
				return false
			}
		}
		params, ok := it.windows.Next()
		if !ok {
			return false
		}
		it.pages = it.service.iterPages(transactionSearchPath, params)
	}
}

// Transaction returns the transaction reached by the last successful Next.
func (it *TransactionIterator) Transaction() *models.Transaction {
	return it.current
}

// Err returns the first request error, if any.
func (it *TransactionIterator) Err() error {
	return it.err
}

func getPayPalAPIBase(site string) string {
	if strings.HasPrefix(site, "https://") || strings.HasPrefix(site, "http://") {
		return strings.TrimSuffix(site, "/")
	}
	switch strings.ToLower(site) {
	case "live":
		return paypal.APIBaseLive
	case "sandbox":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
