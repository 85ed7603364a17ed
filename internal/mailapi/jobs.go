// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mailapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Fixed production parameters for every job. These are policy constants of
// the letter product, not caller-configurable knobs.
const (
	jobLayout         = "Address on Separate Page"
	jobProductionTime = "Next Day"
	jobEnvelope       = "#10 Double Window"
	jobColor          = "Black and White"
	jobPaperType      = "White 24#"
	jobPrintOption    = "Printing One side"
	jobMailClass      = "First Class"

	jobBillingType = "User Credit"
)

const formContentType = "application/x-www-form-urlencoded"

// CreateJob creates a vendor-side job combining an uploaded document with an
// address list and returns the job's opaque id.
//
// Both identifiers must already exist vendor-side; the letter pipeline
// enforces that ordering, the vendor does not.
func (c *Client) CreateJob(ctx context.Context, auth, documentID, addressListID string) (string, error) {
	const step = "create job"

	form := url.Values{
		"documentId":     {documentID},
		"addressId":      {addressListID},
		"layout":         {jobLayout},
		"productionTime": {jobProductionTime},
		"envelope":       {jobEnvelope},
		"color":          {jobColor},
		"paperType":      {jobPaperType},
		"printOption":    {jobPrintOption},
		"mailClass":      {jobMailClass},
	}

	data, err := c.do(ctx, step, http.MethodPost, "/jobs", auth, formContentType, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	id, err := extractField(data, "id")
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	return id, nil
}

// SubmitJob submits a created job for production.
func (c *Client) SubmitJob(ctx context.Context, auth, jobID string) error {
	const step = "submit job"

	form := url.Values{
		"billingType": {jobBillingType},
	}

	path := fmt.Sprintf("/jobs/%s/submit", url.PathEscape(jobID))
	_, err := c.do(ctx, step, http.MethodPost, path, auth, formContentType, strings.NewReader(form.Encode()))
	return err
}

// JobStatus returns the vendor's free-text description of the job state.
func (c *Client) JobStatus(ctx context.Context, auth, jobID string) (string, error) {
	path := fmt.Sprintf("/jobs/%s", url.PathEscape(jobID))
	data, err := c.do(ctx, "job status", http.MethodGet, path, auth, "", nil)
	if err != nil {
		return "", err
	}
	return extractField(data, "description")
}

// ProofURL returns the URL where the proof of a job can be viewed.
func (c *Client) ProofURL(ctx context.Context, auth, jobID string) (string, error) {
	path := fmt.Sprintf("/jobs/%s/proof", url.PathEscape(jobID))
	data, err := c.do(ctx, "view proof", http.MethodPost, path, auth, "", nil)
	if err != nil {
		return "", err
	}
	return extractField(data, "statusUrl")
}

// Balance returns the account balance as text. A zero balance is a valid
// balance, not absence.
func (c *Client) Balance(ctx context.Context, auth string) (string, error) {
	data, err := c.do(ctx, "check balance", http.MethodGet, "/credit", auth, "", nil)
	if err != nil {
		return "", err
	}
	return extractField(data, "balance")
}
