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

package lendflow

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/lendflow-finance/lendflow/config"
	"github.com/lendflow-finance/lendflow/internal/notification"
	"github.com/lendflow-finance/lendflow/model"
)

// OTP verification failure modes. Malformed and invalid are distinct so
// the surface can tell "not 6 digits" from "wrong code".
var (
	ErrNoOTPPending = errors.New("no OTP has been sent for this application")
	ErrOTPExpired   = errors.New("the OTP has expired, request a new one")
	ErrOTPMalformed = errors.New("enter the 6-digit OTP")
	ErrOTPInvalid   = errors.New("incorrect OTP, try again")
)

// OTPStatus is what the surface needs to render the countdown.
type OTPStatus struct {
	Purpose          model.OTPPurpose `json:"purpose"`
	Mobile           string           `json:"mobile"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Expired          bool             `json:"expired"`
}

func otpStatus(s *model.OTPSession, now time.Time) OTPStatus {
	return OTPStatus{
		Purpose:          s.Purpose,
		Mobile:           s.Mobile,
		RemainingSeconds: int(s.Remaining(now).Seconds()),
		Expired:          s.Expired(now),
	}
}

// otpMobile resolves which captured mobile number an OTP purpose is
// verified against.
func otpMobile(p *model.ApplicationProfile, purpose model.OTPPurpose) (string, error) {
	key := "mobile"
	if purpose == model.OTPPurposeBusinessOVD {
		key = "businessMobile"
	}
	mobile := p.Field(key)
	if !model.ValidMobile(mobile) {
		return "", fmt.Errorf("enter a valid mobile number before requesting an OTP")
	}
	return mobile, nil
}

// SendOTP issues a fresh OTP countdown for the given purpose. Issuing
// replaces any pending session wholesale, so exactly one countdown is
// live per application.
func (l *Lendflow) SendOTP(ctx context.Context, applicationID string, purpose model.OTPPurpose) (OTPStatus, error) {
	switch purpose {
	case model.OTPPurposeMobile, model.OTPPurposeOVD, model.OTPPurposeBusinessOVD:
	default:
		return OTPStatus{}, fmt.Errorf("unknown OTP purpose %q", purpose)
	}

	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return OTPStatus{}, err
	}
	mobile, err := otpMobile(session.Profile, purpose)
	if err != nil {
		return OTPStatus{}, err
	}

	conf, err := config.Fetch()
	if err != nil {
		return OTPStatus{}, err
	}

	now := time.Now()
	session.OTP = model.NewOTPSession(mobile, purpose, conf.OTPTTL())
	if err := l.saveSession(ctx, session); err != nil {
		return OTPStatus{}, err
	}

	notification.SendSMS(mobile, fmt.Sprintf("Your Lendflow OTP is %s. It expires in %d seconds.", model.AcceptedOTP, int(conf.OTPTTL().Seconds())))
	return otpStatus(session.OTP, now), nil
}

// ResendOTP reissues the pending OTP and restarts the countdown.
func (l *Lendflow) ResendOTP(ctx context.Context, applicationID string) (OTPStatus, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return OTPStatus{}, err
	}
	if session.OTP == nil {
		return OTPStatus{}, ErrNoOTPPending
	}
	return l.SendOTP(ctx, applicationID, session.OTP.Purpose)
}

// VerifyOTP checks a submitted code against the pending OTP session and,
// on success, completes the session's purpose: the matching verified flag
// is set and the OTP session is consumed.
func (l *Lendflow) VerifyOTP(ctx context.Context, applicationID string, code string) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if session.OTP == nil {
		return nil, ErrNoOTPPending
	}
	if session.OTP.Expired(time.Now()) {
		return nil, ErrOTPExpired
	}
	if !model.ValidOTPShape(code) {
		return nil, ErrOTPMalformed
	}
	if code != model.AcceptedOTP {
		return nil, ErrOTPInvalid
	}

	switch session.OTP.Purpose {
	case model.OTPPurposeMobile:
		session.Profile.MobileVerified = true
	case model.OTPPurposeOVD:
		session.Profile.OVDVerified = true
	case model.OTPPurposeBusinessOVD:
		session.Profile.BusinessOVDVerified = true
	}
	session.OTP = nil

	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
