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

func TestVerifyDocument_BankStatement(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	doc, outcome, err := l.VerifyDocument(ctx, id, model.DocumentSubmission{
		DocumentType: model.DocumentBankStatement,
		Attachment:   &model.FileAttachment{Name: "statement.pdf", SizeBytes: 2048, ContentType: "application/pdf"},
		Metadata: map[string]string{
			"accountNumber": "004401523652",
			"bankName":      "State Bank",
			"ifscCode":      "SBIN0001234",
			"accountType":   "savings",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeVerified, outcome)
	assert.Regexp(t, `^BS\d{6}$`, doc.VerificationID)

	reloaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.True(t, reloaded.Profile.Documents[model.DocumentBankStatement].Verified)
}

func TestVerifyDocument_FailureLeavesSlotUntouched(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	good := model.DocumentSubmission{
		DocumentType: model.DocumentBankStatement,
		Attachment:   &model.FileAttachment{Name: "statement.pdf", SizeBytes: 2048, ContentType: "application/pdf"},
		Metadata: map[string]string{
			"accountNumber": "004401523652",
			"bankName":      "State Bank",
			"ifscCode":      "SBIN0001234",
			"accountType":   "savings",
		},
	}
	first, _, err := l.VerifyDocument(ctx, id, good)
	require.NoError(t, err)

	// A later failed attempt must not disturb the verified slot.
	bad := good
	bad.Metadata = map[string]string{"accountNumber": "004401523652"}
	_, _, err = l.VerifyDocument(ctx, id, bad)
	var serr *model.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.ElementsMatch(t, []string{"accountType", "bankName", "ifscCode"}, serr.MissingFields)

	reloaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first.VerificationID, reloaded.Profile.Documents[model.DocumentBankStatement].VerificationID)
}

func TestVerifyDocument_ReverificationOverwrites(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	submission := newCarInvoiceSubmission()
	first, _, err := l.VerifyDocument(ctx, id, submission)
	require.NoError(t, err)

	second, _, err := l.VerifyDocument(ctx, id, submission)
	require.NoError(t, err)

	reloaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	require.Len(t, reloaded.Profile.Documents, 1)
	assert.Equal(t, second.VerificationID, reloaded.Profile.Documents[model.DocumentDealerInvoice].VerificationID)
	_ = first
}

func TestVerifyDocument_PreOwnedIsBranchReferral(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	doc, outcome, err := l.VerifyDocument(ctx, id, model.DocumentSubmission{
		DocumentType: model.DocumentDealerInvoice,
		CarType:      model.CarPreOwned,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeBranchReferral, outcome)
	assert.Nil(t, doc)

	// The slot is never marked verified, no matter how often it is tried.
	_, outcome, err = l.VerifyDocument(ctx, id, model.DocumentSubmission{
		DocumentType: model.DocumentDealerInvoice,
		CarType:      model.CarPreOwned,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeBranchReferral, outcome)

	reloaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.NotContains(t, reloaded.Profile.Documents, model.DocumentDealerInvoice)
}

func TestVerifyDocument_RejectsBadAttachment(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	_, _, err := l.VerifyDocument(ctx, id, model.DocumentSubmission{
		DocumentType: model.DocumentBankStatement,
		Attachment:   &model.FileAttachment{Name: "statement.exe", SizeBytes: 2048, ContentType: "application/octet-stream"},
		Metadata: map[string]string{
			"accountNumber": "004401523652",
			"bankName":      "State Bank",
			"ifscCode":      "SBIN0001234",
			"accountType":   "savings",
		},
	})
	assert.Error(t, err)
}

func TestVerifyBankAccount(t *testing.T) {
	l := newTestLendflow(t)
	ctx := context.Background()
	session := newStartedApplication(t, l)
	id := session.Profile.ApplicationID

	account, err := l.VerifyBankAccount(ctx, id, BankAccountRequest{
		AccountNumber:        "004401523652",
		ConfirmAccountNumber: "004401523652",
		IFSCCode:             "SBIN0001234",
		BankName:             "State Bank",
		AccountType:          "savings",
	})
	require.NoError(t, err)
	assert.True(t, account.Verified)

	reloaded, err := l.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.True(t, reloaded.Profile.BankAccount.Verified)
}

func TestVerifyBankAccount_Mismatch(t *testing.T) {
	l := newTestLendflow(t)
	session := newStartedApplication(t, l)

	_, err := l.VerifyBankAccount(context.Background(), session.Profile.ApplicationID, BankAccountRequest{
		AccountNumber:        "004401523652",
		ConfirmAccountNumber: "004401523653",
		IFSCCode:             "SBIN0001234",
		BankName:             "State Bank",
	})
	assert.ErrorContains(t, err, "do not match")
}
