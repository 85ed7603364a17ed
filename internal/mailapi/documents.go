// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mailapi

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"mime/multipart"
	"net/http"
)

// documentClass is the fixed class metadata sent with every uploaded
// document. It is vendor policy, not caller-configurable.
const documentClass = "Letter 8.5 x 11"

// UploadInput describes one document to upload.
type UploadInput struct {
	// Name is the vendor-visible document name.
	Name string

	// Format is the letter format tag, e.g. "PDF".
	Format string

	// Content is the raw document bytes.
	Content []byte
}

// UploadDocument uploads a document and returns the opaque id the vendor
// assigned to it.
func (c *Client) UploadDocument(ctx context.Context, auth string, in UploadInput) (string, error) {
	const step = "upload document"

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("documentFormat", in.Format); err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	if err := w.WriteField("documentClass", documentClass); err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	if err := w.WriteField("documentName", in.Name); err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	part, err := w.CreateFormFile("file", in.Name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	if _, err := part.Write(in.Content); err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}

	data, err := c.do(ctx, step, http.MethodPost, "/documents", auth, w.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}

	id, err := extractField(data, "id")
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	return id, nil
}

// Recipient is the single destination of a letter.
type Recipient struct {
	Name        string
	AddressLine string
	Locality    string
	PostalCode  string

	// RegionCode defaults to "US" when empty.
	RegionCode string
}

// addressList is the vendor's XML body for address-list creation.
type addressList struct {
	XMLName   xml.Name     `xml:"addressList"`
	Name      string       `xml:"addressListName"`
	MappingID string       `xml:"addressMappingId"`
	Addresses []xmlAddress `xml:"addresses>address"`
}

type xmlAddress struct {
	Name       string `xml:"name"`
	Address1   string `xml:"address1"`
	City       string `xml:"city"`
	PostalCode string `xml:"postalCode"`
	Country    string `xml:"country"`
}

// CreateAddressList creates a vendor-side address list holding the single
// recipient and returns its opaque id.
func (c *Client) CreateAddressList(ctx context.Context, auth string, r Recipient) (string, error) {
	const step = "create address list"

	region := r.RegionCode
	if region == "" {
		region = "US"
	}

	body, err := xml.Marshal(addressList{
		Name:      "mailbridge list for " + r.Name,
		MappingID: "1",
		Addresses: []xmlAddress{{
			Name:       r.Name,
			Address1:   r.AddressLine,
			City:       r.Locality,
			PostalCode: r.PostalCode,
			Country:    region,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}

	data, err := c.do(ctx, step, http.MethodPost, "/addressLists", auth, "application/xml", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	id, err := extractField(data, "id")
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	return id, nil
}
