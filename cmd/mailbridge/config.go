// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
)

// config is the process configuration, read once from the environment and
// passed explicitly to each client constructor. Nothing else in the program
// reads the environment.
type config struct {
	mailBaseURL string

	labelBaseURL        string
	labelToken          string
	labelCarrierAccount string

	validationBaseURL string
	validationAPIKey  string
}

func configFromEnv() config {
	return config{
		mailBaseURL:         envOr("MAILBRIDGE_MAIL_BASE_URL", "https://rest.click2mail.com/molpro"),
		labelBaseURL:        envOr("MAILBRIDGE_LABEL_BASE_URL", "https://api.easypost.com/v2"),
		labelToken:          os.Getenv("MAILBRIDGE_LABEL_TOKEN"),
		labelCarrierAccount: os.Getenv("MAILBRIDGE_CARRIER_ACCOUNT"),
		validationBaseURL:   os.Getenv("MAILBRIDGE_VALIDATION_BASE_URL"),
		validationAPIKey:    os.Getenv("MAILBRIDGE_VALIDATION_API_KEY"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
