// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/internal/addressvalidation"
	"github.com/go-a2a/mailbridge/internal/mailapi"
	"github.com/go-a2a/mailbridge/internal/shiplabel"
	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/tool/tools"
	"github.com/go-a2a/mailbridge/types"
)

const testCredential = "dXNlcjpwYXNz"

// newMailRegistry wires the mail-vendor tools against a fake vendor.
func newMailRegistry(t *testing.T, handler http.HandlerFunc) (*tool.Registry, *int) {
	t.Helper()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := mailapi.NewClient(mailapi.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	reg := tool.NewRegistry()
	if err := reg.Register(
		tools.NewSendLetterTool(client),
		tools.NewSendPostcardTool(),
		tools.NewJobStatusTool(client),
		tools.NewViewProofTool(client),
		tools.NewCheckBalanceTool(client),
	); err != nil {
		t.Fatal(err)
	}
	return reg, &calls
}

func TestSendLetterTool(t *testing.T) {
	ctx := t.Context()

	reg, _ := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/documents":
			fmt.Fprint(w, `{"id": 101}`)
		case "/addressLists":
			fmt.Fprint(w, `{"id": 202}`)
		case "/jobs":
			fmt.Fprint(w, `{"id": 303}`)
		case "/jobs/303/submit":
			fmt.Fprint(w, `{"status": 0}`)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	out, err := reg.Dispatch(ctx, "send_letter", map[string]any{
		tool.CredentialArg: testCredential,
		"document":         "Dear Jane, your order shipped.",
		"letter_format":    "PDF",
		"recipient_name":   "Jane Doe",
		"address_line":     "500 Main St",
		"locality":         "Springfield",
		"postal_code":      "62704",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, ok := out.(string)
	if !ok {
		t.Fatalf("expected text output, got %T", out)
	}
	if !strings.Contains(text, "PDF") || !strings.Contains(text, "303") {
		t.Errorf("confirmation %q must contain the letter format and the job id", text)
	}
}

func TestSendLetterToolWithoutCredential(t *testing.T) {
	ctx := t.Context()

	reg, calls := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("a call without a credential must not reach the network")
	})

	out, err := reg.Dispatch(ctx, "send_letter", map[string]any{
		"document":       "content",
		"letter_format":  "PDF",
		"recipient_name": "Jane Doe",
		"address_line":   "500 Main St",
		"locality":       "Springfield",
		"postal_code":    "62704",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, ok := out.(string)
	if !ok || !strings.Contains(text, "configuration error") {
		t.Errorf("expected configuration-error text, got %v", out)
	}
	if *calls != 0 {
		t.Errorf("expected zero network activity, got %d requests", *calls)
	}
}

func TestJobStatusTool(t *testing.T) {
	ctx := t.Context()

	t.Run("returns the description", func(t *testing.T) {
		reg, _ := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"description": "Job submitted for production"}`)
		})

		out, err := reg.Dispatch(ctx, "job_status", map[string]any{
			tool.CredentialArg: testCredential,
			"job_id":           "7001",
		})
		if err != nil {
			t.Fatal(err)
		}
		if out != "Job submitted for production" {
			t.Errorf("unexpected output %v", out)
		}
	})

	t.Run("missing description yields the fixed message", func(t *testing.T) {
		reg, _ := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": 7001}`)
		})

		out, err := reg.Dispatch(ctx, "job_status", map[string]any{
			tool.CredentialArg: testCredential,
			"job_id":           "7001",
		})
		if err != nil {
			t.Fatal(err)
		}
		if out != "Status description not found." {
			t.Errorf("expected the fixed not-found message, got %v", out)
		}
	})
}

func TestCheckBalanceTool(t *testing.T) {
	ctx := t.Context()

	t.Run("zero balance is zero, not absence", func(t *testing.T) {
		reg, _ := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"balance": 0}`)
		})

		out, err := reg.Dispatch(ctx, "check_balance", map[string]any{
			tool.CredentialArg: testCredential,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out != "0" {
			t.Errorf("expected %q, got %v", "0", out)
		}
	})

	t.Run("absent balance yields the fixed message", func(t *testing.T) {
		reg, _ := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		})

		out, err := reg.Dispatch(ctx, "check_balance", map[string]any{
			tool.CredentialArg: testCredential,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out != "Balance not found." {
			t.Errorf("expected the fixed not-found message, got %v", out)
		}
	})
}

func TestViewProofTool(t *testing.T) {
	ctx := t.Context()

	reg, _ := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"statusUrl": "https://vendor.example/proof/7001"}`)
	})

	out, err := reg.Dispatch(ctx, "view_proof", map[string]any{
		tool.CredentialArg: testCredential,
		"job_id":           "7001",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "https://vendor.example/proof/7001" {
		t.Errorf("unexpected output %v", out)
	}
}

func TestSendPostcardTool(t *testing.T) {
	ctx := t.Context()

	reg, calls := newMailRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("the postcard stub must not reach the network")
	})

	out, err := reg.Dispatch(ctx, "send_postcard", map[string]any{
		"postcard": "front.png",
		"document": "back.pdf",
	})
	if err != nil {
		t.Fatal(err)
	}
	text, ok := out.(string)
	if !ok || !strings.Contains(text, "not implemented") {
		t.Errorf("expected a not-implemented message, got %v", out)
	}
	if *calls != 0 {
		t.Errorf("expected zero network activity, got %d requests", *calls)
	}
}

func TestCreateShippingLabelTool(t *testing.T) {
	ctx := t.Context()

	labelArgs := map[string]any{
		"to_name":     "Jane Doe",
		"to_street":   "500 Main St",
		"to_city":     "Springfield",
		"to_state":    "IL",
		"to_zip":      "62704",
		"from_name":   "Acme Corp",
		"from_street": "1 Acme Way",
		"from_city":   "Columbus",
		"from_state":  "OH",
		"from_zip":    "43004",
		"weight":      "15.4",
	}

	newRegistry := func(t *testing.T, handler http.HandlerFunc) *tool.Registry {
		t.Helper()

		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		client, err := shiplabel.NewClient(t.Context(), shiplabel.Config{
			Token:   "test-token",
			BaseURL: srv.URL,
		}, shiplabel.WithHTTPClient(srv.Client()))
		if err != nil {
			t.Fatal(err)
		}

		reg := tool.NewRegistry()
		if err := reg.Register(tools.NewCreateShippingLabelTool(client)); err != nil {
			t.Fatal(err)
		}
		return reg
	}

	t.Run("returns the label URL", func(t *testing.T) {
		reg := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"postage_label": {"label_url": "https://x/y.pdf"}}`)
		})

		out, err := reg.Dispatch(ctx, "create_shipping_label", labelArgs)
		if err != nil {
			t.Fatal(err)
		}
		if out != "https://x/y.pdf" {
			t.Errorf("expected the exact label URL, got %v", out)
		}
	})

	t.Run("success without a label URL is not an error", func(t *testing.T) {
		reg := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"postage_label": {}}`)
		})

		out, err := reg.Dispatch(ctx, "create_shipping_label", labelArgs)
		if err != nil {
			t.Fatal(err)
		}
		if out != "Label URL not found in response." {
			t.Errorf("expected the fixed not-found message, got %v", out)
		}
	})
}

func TestValidateAddressTool(t *testing.T) {
	ctx := t.Context()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": {"verdict": {"hasUnconfirmedComponents": false, "hasInferredComponents": false}}}`)
	}))
	t.Cleanup(srv.Close)

	client, err := addressvalidation.NewClient(addressvalidation.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}, addressvalidation.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}

	reg := tool.NewRegistry()
	if err := reg.Register(tools.NewValidateAddressTool(client)); err != nil {
		t.Fatal(err)
	}

	out, err := reg.Dispatch(ctx, "validate_address", map[string]any{
		"address_line": "1600 Amphitheatre Pkwy",
		"locality":     "Mountain View",
		"postal_code":  "94043",
	})
	if err != nil {
		t.Fatal(err)
	}

	result, ok := out.(*types.AddressValidationResult)
	if !ok {
		t.Fatalf("expected a structured result, got %T", out)
	}
	if !result.IsValid {
		t.Error("expected is_valid=true for a clean verdict")
	}
	if diff := cmp.Diff(types.Address{
		Street:     "1600 Amphitheatre Pkwy",
		City:       "Mountain View",
		PostalCode: "94043",
		Country:    "US",
	}, result.OriginalAddress); diff != "" {
		t.Errorf("original address mismatch (-want +got):\n%s", diff)
	}
}

func TestToolDeclarations(t *testing.T) {
	mailClient, err := mailapi.NewClient(mailapi.Config{BaseURL: "http://vendor.invalid"})
	if err != nil {
		t.Fatal(err)
	}
	labelClient, err := shiplabel.NewClient(t.Context(), shiplabel.Config{BaseURL: "http://labels.invalid"})
	if err != nil {
		t.Fatal(err)
	}
	validationClient, err := addressvalidation.NewClient(addressvalidation.Config{})
	if err != nil {
		t.Fatal(err)
	}

	all := []types.Tool{
		tools.NewValidateAddressTool(validationClient),
		tools.NewCreateShippingLabelTool(labelClient),
		tools.NewSendLetterTool(mailClient),
		tools.NewSendPostcardTool(),
		tools.NewJobStatusTool(mailClient),
		tools.NewViewProofTool(mailClient),
		tools.NewCheckBalanceTool(mailClient),
	}

	for _, tl := range all {
		t.Run(tl.Name(), func(t *testing.T) {
			decl := tl.GetDeclaration()
			if decl == nil {
				t.Fatal("expected a declaration")
			}
			if decl.Name != tl.Name() {
				t.Errorf("declaration name %q does not match tool name %q", decl.Name, tl.Name())
			}
			if decl.Parameters == nil || decl.Parameters.Type != genai.TypeObject {
				t.Error("expected an object parameter schema")
			}
		})
	}
}
