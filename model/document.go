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

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DocumentType identifies one required document slot.
type DocumentType string

const (
	DocumentBankStatement DocumentType = "bankStatement"
	DocumentGST           DocumentType = "gstDoc"
	DocumentITR           DocumentType = "itrDoc"
	DocumentDealerInvoice DocumentType = "dealerInvoice"
)

// VerificationPrefix returns the prefix used in verification IDs for the
// document type.
func (d DocumentType) VerificationPrefix() string {
	switch d {
	case DocumentBankStatement:
		return "BS"
	case DocumentGST:
		return "GST"
	case DocumentITR:
		return "ITR"
	case DocumentDealerInvoice:
		return "DI"
	default:
		return "DOC"
	}
}

// DocumentState tracks a document slot through its verification workflow.
type DocumentState string

const (
	DocumentEmpty            DocumentState = "EMPTY"
	DocumentAwaitingMetadata DocumentState = "AWAITING_METADATA"
	DocumentVerified         DocumentState = "VERIFIED"
)

// ITRMethod is the exclusive choice of how income-tax return data is
// supplied.
type ITRMethod string

const (
	ITRFetch  ITRMethod = "fetch"
	ITRUpload ITRMethod = "upload"
)

// CarType is the exclusive dealer-invoice vehicle choice.
type CarType string

const (
	CarPreOwned CarType = "preOwned"
	CarNew      CarType = "newCar"
)

// FuelType refines a new-car dealer invoice.
type FuelType string

const (
	FuelPetrolDiesel FuelType = "petrol-diesel"
	FuelEV           FuelType = "ev"
)

// FileAttachment describes a picked file. Only the name, byte size and
// MIME type are ever inspected; file bytes never reach this system.
type FileAttachment struct {
	Name        string `json:"name"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
}

// UploadedDocument is one verified document slot. It is created on the
// first successful verification for its type and overwritten, never
// accumulated, on re-verification.
type UploadedDocument struct {
	DocumentType   DocumentType      `json:"document_type"`
	Metadata       map[string]string `json:"metadata"`
	Verified       bool              `json:"verified"`
	VerificationID string            `json:"verification_id"`
	FileName       string            `json:"file_name"`
	FileSizeBytes  int64             `json:"file_size_bytes"`
	UploadedAt     time.Time         `json:"uploaded_at"`
}

// VerificationOutcome is the result of checking a document submission's
// structural requirements.
type VerificationOutcome string

const (
	// OutcomeVerified means the submission met every requirement for its
	// type and the slot may be marked verified.
	OutcomeVerified VerificationOutcome = "VERIFIED"
	// OutcomeBranchReferral is the terminal non-success exit for pre-owned
	// vehicles: the applicant is redirected to the in-person process and
	// the slot is never marked verified.
	OutcomeBranchReferral VerificationOutcome = "BRANCH_REFERRAL"
)

// DocumentSubmission carries everything supplied for one verification
// attempt on a document slot.
type DocumentSubmission struct {
	DocumentType DocumentType      `json:"document_type"`
	Attachment   *FileAttachment   `json:"attachment,omitempty"`
	Metadata     map[string]string `json:"metadata"`
	ITRMethod    ITRMethod         `json:"itr_method,omitempty"`
	CarType      CarType           `json:"car_type,omitempty"`
	FuelType     FuelType          `json:"fuel_type,omitempty"`
}

// DealerInvoiceFields is the fixed field set a new-car dealer invoice must
// carry. All of these are required; the ones in dealerInvoiceNumericFields
// must additionally parse as numbers.
var DealerInvoiceFields = []string{
	"carModelVariant",
	"manufacturerName",
	"dealerName",
	"dealerAddress",
	"dealerVicinity",
	"insuranceSource",
	"downPayment",
	"invoiceDate",
	"exShowroomCost",
	"registration",
	"insurance",
	"discount",
	"exchangeAmount",
	"accessories",
	"otherTaxes",
	"installationFee",
	"totalInvoiceValue",
}

var dealerInvoiceNumericFields = map[string]bool{
	"downPayment":       true,
	"exShowroomCost":    true,
	"registration":      true,
	"insurance":         true,
	"discount":          true,
	"exchangeAmount":    true,
	"accessories":       true,
	"otherTaxes":        true,
	"installationFee":   true,
	"totalInvoiceValue": true,
}

var bankAccountTypes = map[string]bool{
	"savings": true,
	"current": true,
	"salary":  true,
}

// SubmissionError reports why a document submission failed its structural
// checks. It is fully recoverable: the applicant corrects the listed
// fields and retries.
type SubmissionError struct {
	DocumentType  DocumentType `json:"document_type"`
	MissingFields []string     `json:"missing_fields,omitempty"`
	Message       string       `json:"message"`
}

func (e *SubmissionError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.DocumentType, e.Message, strings.Join(e.MissingFields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.DocumentType, e.Message)
}

func submissionErr(d DocumentType, message string, missing ...string) *SubmissionError {
	sort.Strings(missing)
	return &SubmissionError{DocumentType: d, Message: message, MissingFields: missing}
}

func (s *DocumentSubmission) meta(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(s.Metadata[key])
}

// Check validates the submission's structural requirements for its
// document type. It returns the outcome and an error describing the first
// violated requirement set. The caller must only mark a slot verified when
// the outcome is OutcomeVerified and the error is nil.
func (s *DocumentSubmission) Check() (VerificationOutcome, error) {
	switch s.DocumentType {
	case DocumentBankStatement:
		return s.checkBankStatement()
	case DocumentGST:
		return s.checkGST()
	case DocumentITR:
		return s.checkITR()
	case DocumentDealerInvoice:
		return s.checkDealerInvoice()
	default:
		return "", submissionErr(s.DocumentType, "unknown document type")
	}
}

func (s *DocumentSubmission) checkBankStatement() (VerificationOutcome, error) {
	if s.Attachment == nil {
		return "", submissionErr(s.DocumentType, "a statement file must be attached")
	}
	var missing []string
	for _, key := range []string{"accountNumber", "bankName", "ifscCode", "accountType"} {
		if s.meta(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "", submissionErr(s.DocumentType, "required fields are empty", missing...)
	}
	if !ValidIFSC(s.meta("ifscCode")) {
		return "", submissionErr(s.DocumentType, "invalid IFSC code")
	}
	if !bankAccountTypes[s.meta("accountType")] {
		return "", submissionErr(s.DocumentType, "account type must be savings, current or salary")
	}
	return OutcomeVerified, nil
}

func (s *DocumentSubmission) checkGST() (VerificationOutcome, error) {
	if s.Attachment == nil {
		return "", submissionErr(s.DocumentType, "a certificate file must be attached")
	}
	var missing []string
	for _, key := range []string{"gstNumber", "businessName", "registrationDate", "businessType"} {
		if s.meta(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "", submissionErr(s.DocumentType, "required fields are empty", missing...)
	}
	if !ValidGSTNumber(s.meta("gstNumber")) {
		return "", submissionErr(s.DocumentType, "invalid GST number")
	}
	return OutcomeVerified, nil
}

func (s *DocumentSubmission) checkITR() (VerificationOutcome, error) {
	switch s.ITRMethod {
	case ITRFetch:
		var missing []string
		for _, key := range []string{"assessmentYear", "userId", "password"} {
			if s.meta(key) == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return "", submissionErr(s.DocumentType, "fetch method requires assessment year, user ID and password", missing...)
		}
		return OutcomeVerified, nil
	case ITRUpload:
		if s.Attachment == nil {
			return "", submissionErr(s.DocumentType, "a return file must be attached")
		}
		var missing []string
		for _, key := range []string{"assessmentYear", "grossIncome", "netIncome"} {
			if s.meta(key) == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return "", submissionErr(s.DocumentType, "upload method requires assessment year, gross income and net income", missing...)
		}
		for _, key := range []string{"grossIncome", "netIncome"} {
			if _, err := strconv.ParseFloat(s.meta(key), 64); err != nil {
				return "", submissionErr(s.DocumentType, fmt.Sprintf("%s must be numeric", key))
			}
		}
		return OutcomeVerified, nil
	default:
		return "", submissionErr(s.DocumentType, "a verification method (fetch or upload) must be selected")
	}
}

func (s *DocumentSubmission) checkDealerInvoice() (VerificationOutcome, error) {
	switch s.CarType {
	case CarPreOwned:
		// Terminal informational exit. Not a failure, never a verification.
		return OutcomeBranchReferral, nil
	case CarNew:
	default:
		return "", submissionErr(s.DocumentType, "a car type (pre-owned or new car) must be selected")
	}
	if s.FuelType != FuelPetrolDiesel && s.FuelType != FuelEV {
		return "", submissionErr(s.DocumentType, "a fuel type must be selected")
	}
	if s.Attachment == nil {
		return "", submissionErr(s.DocumentType, "an invoice file must be attached")
	}
	var missing []string
	for _, key := range DealerInvoiceFields {
		if s.meta(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "", submissionErr(s.DocumentType, "required invoice fields are empty", missing...)
	}
	for key := range dealerInvoiceNumericFields {
		if _, err := strconv.ParseFloat(strings.ReplaceAll(s.meta(key), ",", ""), 64); err != nil {
			return "", submissionErr(s.DocumentType, fmt.Sprintf("%s must be numeric", key))
		}
	}
	return OutcomeVerified, nil
}
