package service

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

const tokenPath = "/v1/oauth2/token"

// ApiSession issues authenticated GET requests against the PayPal API.
type ApiSession interface {
	Get(rawURL string, params url.Values) (*http.Response, error)
}

// Session is an OAuth2 client-credentials session. It attaches its current
// access token to outgoing requests; when PayPal answers 401 it fetches a
// fresh token from the fixed token endpoint and retries the request exactly
// once. A second 401 is returned to the caller as-is.
//
// A Session is not safe for concurrent use: the token is replaced in place
// by the retry transition with no locking.
type Session struct {
	HTTPClient   *http.Client
	APIBase      string
	ClientID     string
	ClientSecret string
	token        string
}

// NewSession builds a Session for the given credentials and API base URL.
func NewSession(clientID, clientSecret, apiBase string) *Session {
	return &Session{
		HTTPClient:   http.DefaultClient,
		APIBase:      strings.TrimSuffix(apiBase, "/"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}
}

// Get issues an authenticated GET with the given query parameters, applying
// the refresh-and-retry-once policy on an authorisation failure.
func (s *Session) Get(rawURL string, params url.Values) (*http.Response, error) {
	response, err := s.do(rawURL, params)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusUnauthorized {
		return response, nil
	}
	response.Body.Close()
	if err = s.fetchToken(); err != nil {
		return nil, err
	}
	return s.do(rawURL, params)
}

func (s *Session) do(rawURL string, params url.Values) (*http.Response, error) {
	request, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}
	if params != nil {
		request.URL.RawQuery = params.Encode()
	}
	request.Header.Add("accept", "application/json")
	if s.token != "" {
		request.Header.Add("authorization", "Bearer "+s.token)
	}

	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to PayPal: [%s]", err)
	}
	return response, nil
}

// fetchToken exchanges the stored client credentials for a new access token.
func (s *Session) fetchToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	request, err := http.NewRequest("POST", s.APIBase+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error generating token request for PayPal: [%s]", err)
	}
	request.SetBasicAuth(s.ClientID, s.ClientSecret)
	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return fmt.Errorf("error sending token request to PayPal: [%s]", err)
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("error reading token response from PayPal: [%s]", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("error status [%v] back from PayPal token endpoint", response.StatusCode)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err = json.Unmarshal(body, &tokenResponse); err != nil {
		return fmt.Errorf("error reading token response from PayPal: [%s]", err)
	}
	if tokenResponse.AccessToken == "" {
		return fmt.Errorf("PayPal token response contained no access token")
	}
	s.token = tokenResponse.AccessToken
	return nil
}
