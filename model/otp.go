/*
Copyright 2025 Lendflow Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package model

import "time"

// AcceptedOTP is the single code the simulated OTP surface accepts.
const AcceptedOTP = "123456"

// DefaultOTPTTL is the countdown window for one issued OTP.
const DefaultOTPTTL = 120 * time.Second

// OTPPurpose says what a pending OTP verification completes when the code
// is accepted.
type OTPPurpose string

const (
	OTPPurposeMobile      OTPPurpose = "mobile"
	OTPPurposeOVD         OTPPurpose = "ovd"
	OTPPurposeBusinessOVD OTPPurpose = "business-ovd"
)

// OTPSession is one pending OTP verification. Issuing a new OTP (send or
// resend) replaces the session wholesale, which restarts the countdown and
// guarantees a single live timer per application.
type OTPSession struct {
	Mobile    string     `json:"mobile"`
	Purpose   OTPPurpose `json:"purpose"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// NewOTPSession issues a fresh OTP countdown for the given mobile number
// and purpose.
func NewOTPSession(mobile string, purpose OTPPurpose, ttl time.Duration) *OTPSession {
	now := time.Now()
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPSession{
		Mobile:    mobile,
		Purpose:   purpose,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// Remaining reports the countdown seconds left, clamped at zero so an
// expired session freezes the display at 00:00.
func (s *OTPSession) Remaining(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	left := s.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the countdown has reached zero, which enables
// the resend action.
func (s *OTPSession) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
