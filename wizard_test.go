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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendflow-finance/lendflow/model"
)

func TestAdvance_BlockedWithoutSelections(t *testing.T) {
	l := newTestLendflow(t)
	session := newStartedApplication(t, l)

	_, err := l.Advance(context.Background(), session.Profile.ApplicationID)
	var gerr *GuardError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, model.StepLoanSelection, gerr.Step)

	// A refused advance does not move the wizard.
	reloaded, err := l.GetApplication(context.Background(), session.Profile.ApplicationID)
	require.NoError(t, err)
	assert.Equal(t, model.StepLoanSelection, reloaded.Step)
}

func TestAdvance_GuardFailureIsRepeatable(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	first := l.mustGuardError(t, id)
	second := l.mustGuardError(t, id)
	assert.Equal(t, first.Message, second.Message)

	// Fixing the violations lets the same advance succeed.
	selectIndividualVehicle(t, l, id)
	advanced, err := l.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StepBasicDetails, advanced.Step)
}

func (l *Lendflow) mustGuardError(t *testing.T, applicationID string) *GuardError {
	t.Helper()
	_, err := l.Advance(context.Background(), applicationID)
	var gerr *GuardError
	require.ErrorAs(t, err, &gerr)
	return gerr
}

func TestAdvance_BasicDetailsCollectsFieldErrors(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	selectIndividualVehicle(t, l, id)
	_, err := l.Advance(ctx, id)
	require.NoError(t, err)

	gerr := l.mustGuardError(t, id)
	assert.Equal(t, model.StepBasicDetails, gerr.Step)
	assert.NotEmpty(t, gerr.FieldErrors)
}

func TestAdvance_BasicDetailsRequiresOVDVerification(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	selectIndividualVehicle(t, l, id)
	_, err := l.Advance(ctx, id)
	require.NoError(t, err)

	// All fields valid but the OVD was never verified.
	_, err = l.UpdateFields(ctx, id, map[string]string{
		"fullName":                 "Asha Rao",
		"mobile":                   "9876543210",
		"loanAmount":               "10,00,000",
		"panNumber":                "ABCDE1234F",
		"ovdType":                  "aadhar",
		"ovdNumber":                "123412341234",
		"agreeOVD":                 "true",
		"agreeTerms":               "true",
		"agreeConsent":             "true",
		"agreeDisclosure":          "true",
		"agreeDirectorDeclaration": "true",
	})
	require.NoError(t, err)

	gerr := l.mustGuardError(t, id)
	assert.Empty(t, gerr.FieldErrors)
	assert.Contains(t, gerr.Message, "OVD")
}

func TestAdvance_FullIndividualVehicleJourney(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	selectIndividualVehicle(t, l, id)
	advance := func(expected model.WizardStep) {
		t.Helper()
		s, err := l.Advance(ctx, id)
		require.NoError(t, err)
		require.Equal(t, expected, s.Step)
	}

	advance(model.StepBasicDetails)
	fillIndividualBasic(t, l, id)
	advance(model.StepPersonalDetails)
	fillIndividualPersonal(t, l, id)
	advance(model.StepIncomeDetails)
	fillIndividualIncome(t, l, id)
	advance(model.StepOffer)
	// The offer step never blocks.
	advance(model.StepDocumentUpload)

	gerr := l.mustGuardError(t, id)
	assert.Equal(t, []string{"bankStatement", "dealerInvoice", "itrDoc"}, gerr.MissingDocuments)

	verifyAllDocuments(t, l, id)
	advance(model.StepFinalApproval)
	advance(model.StepThankYou)

	_, err := l.Advance(ctx, id)
	assert.Error(t, err, "there is nothing past the thank-you step")
}

func TestRetreat_FloorsAtLoanSelection(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	back, err := l.Retreat(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StepLoanSelection, back.Step)

	selectIndividualVehicle(t, l, id)
	_, err = l.Advance(ctx, id)
	require.NoError(t, err)

	back, err = l.Retreat(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StepLoanSelection, back.Step)
}

func TestJumpTo(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	jumped, err := l.JumpTo(ctx, id, model.StepDocumentUpload)
	require.NoError(t, err)
	assert.Equal(t, model.StepDocumentUpload, jumped.Step)

	_, err = l.JumpTo(ctx, id, model.StepPersonalDetails)
	assert.Error(t, err, "form steps are not direct-navigation targets")
}
