// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthRequest is the JSON body posted to the login and signup endpoints.
//
// OTPAttempt is sent only on the second login round, after the API answered
// the first one with "otp_required": true.
type AuthRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	OTPAttempt string `json:"otp_attempt,omitempty"`
}
