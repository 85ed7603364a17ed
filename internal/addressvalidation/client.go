// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package addressvalidation is the client for the address-validation
// service. One call in, one verdict out: the service's confirmation flags
// are folded into a single validity bit, with the corrected address and any
// service messages passed through untouched.
package addressvalidation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/auth/httptransport"
	"github.com/go-json-experiment/json"
	"google.golang.org/api/googleapi"

	"github.com/go-a2a/mailbridge/types"
)

// DefaultBaseURL is the production endpoint of the validation service.
const DefaultBaseURL = "https://addressvalidation.googleapis.com"

// Config configures the validation [Client].
type Config struct {
	// APIKey authenticates requests to the validation service.
	APIKey string

	// BaseURL overrides [DefaultBaseURL] when set.
	BaseURL string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the underlying [*http.Client], replacing the API-key
// client built from [Config.APIKey].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// Client talks to the address-validation service.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a new validation [Client].
//
// A missing API key is not an error here: the configuration error surfaces
// on the first [Client.Validate] call, before any network activity, so the
// tool surface can report it per invocation.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: cfg.BaseURL,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.hc == nil && cfg.APIKey != "" {
		hc, err := httptransport.NewClient(&httptransport.Options{
			APIKey: cfg.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("build API key client: %w", err)
		}
		c.hc = hc
	}

	return c, nil
}

// ValidateInput is one address to validate.
type ValidateInput struct {
	AddressLine string
	Locality    string
	PostalCode  string

	// RegionCode defaults to "US" when empty.
	RegionCode string
}

type validateRequest struct {
	Address        postalAddress `json:"address"`
	EnableUspsCass bool          `json:"enableUspsCass"`
}

type postalAddress struct {
	RegionCode   string   `json:"regionCode"`
	Locality     string   `json:"locality,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	AddressLines []string `json:"addressLines"`
}

type validateResponse struct {
	Result struct {
		Verdict struct {
			HasUnconfirmedComponents bool `json:"hasUnconfirmedComponents"`
			HasInferredComponents    bool `json:"hasInferredComponents"`
		} `json:"verdict"`
		Address struct {
			PostalAddress map[string]any `json:"postalAddress"`
		} `json:"address"`
	} `json:"result"`
	Messages []string `json:"messages"`
}

// Validate sends the address to the validation service and maps its verdict.
//
// An address is valid exactly when the service neither left components
// unconfirmed nor inferred any; an absent flag counts as false.
func (c *Client) Validate(ctx context.Context, in ValidateInput) (*types.AddressValidationResult, error) {
	const step = "validate address"

	if c.hc == nil {
		return nil, &types.ConfigurationError{Missing: "address validation API key"}
	}

	region := in.RegionCode
	if region == "" {
		region = "US"
	}

	body, err := json.Marshal(validateRequest{
		Address: postalAddress{
			RegionCode:   region,
			Locality:     in.Locality,
			PostalCode:   in.PostalCode,
			AddressLines: []string{in.AddressLine},
		},
		EnableUspsCass: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1:validateAddress", bytes.NewReader(body))
	if err != nil {
		return nil, &types.TransportError{Step: step, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &types.TransportError{Step: step, Err: err}
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		terr := &types.TransportError{Step: step, Err: err}
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			terr.StatusCode = gerr.Code
			terr.Body = gerr.Body
		}
		return nil, terr
	}

	var vr validateResponse
	if err := json.UnmarshalRead(resp.Body, &vr); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", step, err)
	}

	corrected := vr.Result.Address.PostalAddress
	if corrected == nil {
		corrected = map[string]any{}
	}
	messages := vr.Messages
	if messages == nil {
		messages = []string{}
	}

	return &types.AddressValidationResult{
		IsValid:          !vr.Result.Verdict.HasUnconfirmedComponents && !vr.Result.Verdict.HasInferredComponents,
		CorrectedAddress: corrected,
		OriginalAddress: types.Address{
			Street:     in.AddressLine,
			City:       in.Locality,
			PostalCode: in.PostalCode,
			Country:    region,
		},
		Messages: messages,
	}, nil
}
