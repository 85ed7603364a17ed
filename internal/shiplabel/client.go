// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package shiplabel is the client for the shipping-label service. It builds
// a shipment from flat to/from address fields and a parcel weight, requests
// a label at the fixed "Priority" service level, and extracts the label URL
// from the response.
package shiplabel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"golang.org/x/oauth2"

	"github.com/go-a2a/mailbridge/types"
)

// serviceLevel is the fixed service level requested for every shipment.
const serviceLevel = "Priority"

// Config configures the label [Client].
type Config struct {
	// Token is the bearer token for the label service.
	Token string

	// CarrierAccountID, when set, is attached to every shipment as a
	// single-element carrier account list.
	CarrierAccountID string

	// BaseURL is the root of the label service API, without a trailing slash.
	BaseURL string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the underlying [*http.Client], replacing the
// bearer-token client built from [Config.Token].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// Client talks to the shipping-label service.
type Client struct {
	baseURL          string
	carrierAccountID string
	hc               *http.Client
}

// NewClient creates a new label [Client].
//
// A missing token is not an error here: the configuration error surfaces on
// the first [Client.CreateLabel] call, before any network activity.
func NewClient(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	c := &Client{
		baseURL:          cfg.BaseURL,
		carrierAccountID: cfg.CarrierAccountID,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.hc == nil && cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		c.hc = oauth2.NewClient(ctx, ts)
	}

	return c, nil
}

// PartyAddress is one side of a shipment.
type PartyAddress struct {
	Name       string `json:"name"`
	Street     string `json:"street1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"zip"`
	Country    string `json:"country"`
}

// LabelInput describes one shipment to buy a label for.
type LabelInput struct {
	To   PartyAddress
	From PartyAddress

	// WeightOunces is the parcel weight as supplied by the caller. It is
	// parsed to a floating-point number before sending.
	WeightOunces string
}

type shipmentRequest struct {
	ToAddress       PartyAddress `json:"to_address"`
	FromAddress     PartyAddress `json:"from_address"`
	Parcel          parcel       `json:"parcel"`
	Service         string       `json:"service"`
	CarrierAccounts []string     `json:"carrier_accounts,omitempty"`
}

type parcel struct {
	WeightOunces float64 `json:"weight"`
}

type shipmentResponse struct {
	PostageLabel struct {
		LabelURL *string `json:"label_url"`
	} `json:"postage_label"`
}

// CreateLabel buys a Priority label for the shipment and returns its URL.
//
// A response without a label URL is a [*types.MissingFieldError], distinct
// from transport failure: the purchase call succeeded, the label simply has
// no URL yet.
func (c *Client) CreateLabel(ctx context.Context, in LabelInput) (string, error) {
	const step = "create shipping label"

	if c.hc == nil {
		return "", &types.ConfigurationError{Missing: "shipping label API token"}
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(in.WeightOunces), 64)
	if err != nil {
		return "", fmt.Errorf("parse parcel weight %q: %w", in.WeightOunces, err)
	}

	payload := shipmentRequest{
		ToAddress:   withDefaultCountry(in.To),
		FromAddress: withDefaultCountry(in.From),
		Parcel:      parcel{WeightOunces: weight},
		Service:     serviceLevel,
	}
	if c.carrierAccountID != "" {
		payload.CarrierAccounts = []string{c.carrierAccountID}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shipments", bytes.NewReader(body))
	if err != nil {
		return "", &types.TransportError{Step: step, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", &types.TransportError{Step: step, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &types.TransportError{Step: step, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &types.TransportError{Step: step, StatusCode: resp.StatusCode, Body: string(data)}
	}

	var sr shipmentResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", step, err)
	}
	labelURL := types.Deref(sr.PostageLabel.LabelURL, "")
	if labelURL == "" {
		return "", &types.MissingFieldError{Field: "postage_label.label_url"}
	}

	return labelURL, nil
}

func withDefaultCountry(a PartyAddress) PartyAddress {
	if a.Country == "" {
		a.Country = "US"
	}
	return a
}
