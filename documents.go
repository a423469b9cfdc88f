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
	"strings"
	"time"

	"github.com/lendflow-finance/lendflow/internal/files"
	"github.com/lendflow-finance/lendflow/model"
)

// VerifyDocument runs one verification attempt for a document slot. The
// slot is only written when every structural check passes within this
// call; a failed attempt leaves the previous verified slot untouched. A
// pre-owned vehicle invoice returns the branch-referral outcome and never
// marks the slot verified.
func (l *Lendflow) VerifyDocument(ctx context.Context, applicationID string, submission model.DocumentSubmission) (*model.UploadedDocument, model.VerificationOutcome, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, "", err
	}

	if submission.Attachment != nil {
		a := submission.Attachment
		if err := files.Validate(a.Name, a.SizeBytes, a.ContentType); err != nil {
			return nil, "", err
		}
	}

	outcome, err := submission.Check()
	if err != nil {
		return nil, "", err
	}

	if outcome == model.OutcomeBranchReferral {
		if err := SendWebhook(NewWebhook{Event: "application.branch_referral", Payload: map[string]string{
			"application_id": session.Profile.ApplicationID,
			"document_type":  string(submission.DocumentType),
		}}); err != nil {
			logErr(err)
		}
		return nil, outcome, nil
	}

	doc := &model.UploadedDocument{
		DocumentType:   submission.DocumentType,
		Metadata:       submission.Metadata,
		Verified:       true,
		VerificationID: model.NewVerificationID(submission.DocumentType),
		UploadedAt:     time.Now(),
	}
	if submission.Attachment != nil {
		doc.FileName = submission.Attachment.Name
		doc.FileSizeBytes = submission.Attachment.SizeBytes
	}

	// Re-verification overwrites the slot, it never accumulates.
	session.Profile.Documents[submission.DocumentType] = doc
	if err := l.saveSession(ctx, session); err != nil {
		return nil, "", err
	}

	if err := SendWebhook(NewWebhook{Event: "application.document_verified", Payload: doc}); err != nil {
		logErr(err)
	}
	return doc, outcome, nil
}

// BankAccountRequest carries the disbursal account details submitted for
// verification.
type BankAccountRequest struct {
	AccountNumber        string `json:"account_number"`
	ConfirmAccountNumber string `json:"confirm_account_number"`
	IFSCCode             string `json:"ifsc_code"`
	BankName             string `json:"bank_name"`
	AccountType          string `json:"account_type"`
}

// VerifyBankAccount runs the simulated disbursal account verification and
// stores the verified account on the profile.
func (l *Lendflow) VerifyBankAccount(ctx context.Context, applicationID string, req BankAccountRequest) (*model.BankAccount, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	if accountNumber == "" {
		return nil, fmt.Errorf("account number is required")
	}
	if accountNumber != strings.TrimSpace(req.ConfirmAccountNumber) {
		return nil, fmt.Errorf("account numbers do not match")
	}
	if !model.ValidIFSC(strings.TrimSpace(req.IFSCCode)) {
		return nil, fmt.Errorf("enter a valid IFSC code")
	}
	if strings.TrimSpace(req.BankName) == "" {
		return nil, fmt.Errorf("bank name is required")
	}

	account := &model.BankAccount{
		AccountNumber: accountNumber,
		BankName:      strings.TrimSpace(req.BankName),
		IFSCCode:      strings.TrimSpace(req.IFSCCode),
		AccountType:   strings.TrimSpace(req.AccountType),
		Verified:      true,
		VerifiedAt:    time.Now(),
	}
	session.Profile.BankAccount = account
	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return account, nil
}
