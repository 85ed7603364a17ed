// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package shiplabel_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-a2a/mailbridge/internal/shiplabel"
	"github.com/go-a2a/mailbridge/types"
)

func newTestClient(t *testing.T, carrierAccount string, handler http.HandlerFunc) *shiplabel.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := shiplabel.NewClient(t.Context(), shiplabel.Config{
		Token:            "test-token",
		CarrierAccountID: carrierAccount,
		BaseURL:          srv.URL,
	}, shiplabel.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func labelInput() shiplabel.LabelInput {
	return shiplabel.LabelInput{
		To: shiplabel.PartyAddress{
			Name:       "Jane Doe",
			Street:     "500 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62704",
		},
		From: shiplabel.PartyAddress{
			Name:       "Acme Corp",
			Street:     "1 Acme Way",
			City:       "Columbus",
			State:      "OH",
			PostalCode: "43004",
		},
		WeightOunces: "15.4",
	}
}

func TestCreateLabel(t *testing.T) {
	ctx := t.Context()

	t.Run("returns the label URL byte-exact", func(t *testing.T) {
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/shipments" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			fmt.Fprint(w, `{"postage_label": {"label_url": "https://x/y.pdf"}}`)
		})

		got, err := client.CreateLabel(ctx, labelInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "https://x/y.pdf"; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("missing label URL is a missing field, not a transport failure", func(t *testing.T) {
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"postage_label": {}}`)
		})

		_, err := client.CreateLabel(ctx, labelInput())
		var mfe *types.MissingFieldError
		if !errors.As(err, &mfe) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
		if mfe.Field != "postage_label.label_url" {
			t.Errorf("unexpected field %q", mfe.Field)
		}
	})

	t.Run("non-success status is a transport failure", func(t *testing.T) {
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate unavailable", http.StatusUnprocessableEntity)
		})

		_, err := client.CreateLabel(ctx, labelInput())
		var terr *types.TransportError
		if !errors.As(err, &terr) {
			t.Fatalf("expected TransportError, got %v", err)
		}
		if terr.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", terr.StatusCode)
		}
	})
}

func TestCreateLabelShipmentPayload(t *testing.T) {
	ctx := t.Context()

	t.Run("fixed Priority service and parsed weight", func(t *testing.T) {
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			for _, want := range []string{
				`"service":"Priority"`,
				`"weight":15.4`,
			} {
				if !strings.Contains(string(body), want) {
					t.Errorf("request body %s must contain %s", body, want)
				}
			}
			if strings.Contains(string(body), "carrier_accounts") {
				t.Errorf("carrier_accounts must be omitted when unconfigured: %s", body)
			}
			fmt.Fprint(w, `{"postage_label": {"label_url": "https://x/y.pdf"}}`)
		})

		if _, err := client.CreateLabel(ctx, labelInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("configured carrier account rides along as a single-element list", func(t *testing.T) {
		client := newTestClient(t, "ca_123", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), `"carrier_accounts":["ca_123"]`) {
				t.Errorf("request body %s must carry the carrier account", body)
			}
			fmt.Fprint(w, `{"postage_label": {"label_url": "https://x/y.pdf"}}`)
		})

		if _, err := client.CreateLabel(ctx, labelInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unparseable weight fails before sending", func(t *testing.T) {
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request must be sent for an unparseable weight")
		})

		in := labelInput()
		in.WeightOunces = "heavy"
		if _, err := client.CreateLabel(ctx, in); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestCreateLabelMissingToken(t *testing.T) {
	ctx := t.Context()

	client, err := shiplabel.NewClient(ctx, shiplabel.Config{BaseURL: "http://labels.invalid"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.CreateLabel(ctx, labelInput())
	var cerr *types.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
