// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cms-cli/models"
)

const blankCodeMessage = "Code cannot blank"

// otpQuestion asks for the one-time passcode sent by the CMS.
var otpQuestion = models.Question{
	Name:     "otp_attempt",
	Message:  "We sent a code to your email/phone, please insert the authentication code:",
	Validate: NonEmpty(blankCodeMessage),
}

// NonEmpty returns a validator rejecting blank answers with msg.
func NonEmpty(msg string) func(string) error {
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
