// Package cep looks up partial address data for a Brazilian postal code via
// the ViaCEP directory. The lookup is best-effort enrichment: every failure
// mode collapses into a nil result and never reaches the caller as an error.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://viacep.com.br"

// Address is the subset of directory fields merged into a new area.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type directoryResponse struct {
	Address
	Erro bool `json:"erro"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Normalize strips everything but digits. Postal codes are stored as entered
// but compared and queried in this form.
func Normalize(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// Lookup resolves a raw postal code to address fields, or nil when the code
// is malformed, unknown to the directory, or the directory is unreachable.
// No network call is made unless the normalized code has exactly 8 digits.
func (c *Client) Lookup(ctx context.Context, raw string) *Address {
	code := Normalize(raw)
	if len(code) != 8 {
		return nil
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("cep", code).Debug("postal lookup request failed")
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.logger.WithField("status", res.StatusCode).WithField("cep", code).Debug("postal lookup non-ok response")
		return nil
	}

	var payload directoryResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		c.logger.WithError(err).WithField("cep", code).Debug("postal lookup malformed response")
		return nil
	}

	if payload.Erro {
		return nil
	}

	return &payload.Address
}
