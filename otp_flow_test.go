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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendflow-finance/lendflow/model"
)

func TestSendOTP_RequiresValidMobile(t *testing.T) {
	l := newTestLendflow(t)
	session := newStartedApplication(t, l)

	_, err := l.SendOTP(context.Background(), session.Profile.ApplicationID, model.OTPPurposeMobile)
	assert.Error(t, err)
}

func TestOTPFlow_CompletesPurpose(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	_, err := l.UpdateFields(ctx, id, map[string]string{"mobile": "9876543210"})
	require.NoError(t, err)

	status, err := l.SendOTP(ctx, id, model.OTPPurposeMobile)
	require.NoError(t, err)
	assert.False(t, status.Expired)
	assert.Greater(t, status.RemainingSeconds, 0)

	updated, err := l.VerifyOTP(ctx, id, model.AcceptedOTP)
	require.NoError(t, err)
	assert.True(t, updated.Profile.MobileVerified)
	assert.Nil(t, updated.OTP, "a consumed OTP session does not linger")
}

func TestVerifyOTP_DistinguishesMalformedAndWrong(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	_, err := l.VerifyOTP(ctx, id, model.AcceptedOTP)
	assert.ErrorIs(t, err, ErrNoOTPPending)

	_, err = l.UpdateFields(ctx, id, map[string]string{"mobile": "9876543210"})
	require.NoError(t, err)
	_, err = l.SendOTP(ctx, id, model.OTPPurposeMobile)
	require.NoError(t, err)

	_, err = l.VerifyOTP(ctx, id, "12x456")
	assert.ErrorIs(t, err, ErrOTPMalformed)

	_, err = l.VerifyOTP(ctx, id, "654321")
	assert.ErrorIs(t, err, ErrOTPInvalid)

	// The pending session survives failed attempts.
	updated, err := l.VerifyOTP(ctx, id, model.AcceptedOTP)
	require.NoError(t, err)
	assert.True(t, updated.Profile.MobileVerified)
}

func TestVerifyOTP_Expired(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	_, err := l.UpdateFields(ctx, id, map[string]string{"mobile": "9876543210"})
	require.NoError(t, err)
	_, err = l.SendOTP(ctx, id, model.OTPPurposeMobile)
	require.NoError(t, err)

	// Force the countdown past its deadline.
	loaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	loaded.OTP.ExpiresAt = time.Now().Add(-time.Second)
	require.NoError(t, l.saveSession(ctx, loaded))

	_, err = l.VerifyOTP(ctx, id, model.AcceptedOTP)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestResendOTP_RestartsCountdown(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	_, err := l.ResendOTP(ctx, id)
	assert.ErrorIs(t, err, ErrNoOTPPending)

	_, err = l.UpdateFields(ctx, id, map[string]string{"businessMobile": "9876543210"})
	require.NoError(t, err)
	_, err = l.SendOTP(ctx, id, model.OTPPurposeBusinessOVD)
	require.NoError(t, err)

	// Expire the first session, then resend.
	loaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	loaded.OTP.ExpiresAt = time.Now().Add(-time.Second)
	require.NoError(t, l.saveSession(ctx, loaded))

	status, err := l.ResendOTP(ctx, id)
	require.NoError(t, err)
	assert.False(t, status.Expired)
	assert.Equal(t, model.OTPPurposeBusinessOVD, status.Purpose)

	updated, err := l.VerifyOTP(ctx, id, model.AcceptedOTP)
	require.NoError(t, err)
	assert.True(t, updated.Profile.BusinessOVDVerified)
}
