package service

import (
	"net/url"
	"strconv"
)

// pageIterator walks every page of one search window. It starts out assuming
// page 0 of 1 total so at least one request goes out, then trusts the
// response's own page and total_pages fields to decide whether to continue.
type pageIterator struct {
	service    *PayPalService
	path       string
	params     url.Values
	page       int
	totalPages int
	current    map[string]interface{}
	err        error
}

func (pp *PayPalService) iterPages(path string, params url.Values) *pageIterator {
	copied := url.Values{}
	for key, values := range params {
		copied[key] = values
	}
	return &pageIterator{
		service:    pp,
		path:       path,
		params:     copied,
		page:       0,
		totalPages: 1,
	}
}

// Next requests the next page, returning false once every reported page has
// been consumed or a request failed.
func (p *pageIterator) Next() bool {
	if p.err != nil || p.page >= p.totalPages {
		return false
	}
	p.params.Set("page", strconv.Itoa(p.page+1))
	response, err := p.service.getJSON(p.path, p.params)
	if err != nil {
		p.err = err
		return false
	}
	p.current = response
	p.page = jsonInt(response["page"], p.page+1)
	p.totalPages = jsonInt(response["total_pages"], p.totalPages)
	return true
}

// Page returns the page fetched by the last successful Next.
func (p *pageIterator) Page() map[string]interface{} {
	return p.current
}

// Err returns the first request error, if any.
func (p *pageIterator) Err() error {
	return p.err
}

// jsonInt reads a decoded JSON number or numeric string, falling back when
// the value is absent or malformed.
func jsonInt(value interface{}, fallback int) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
