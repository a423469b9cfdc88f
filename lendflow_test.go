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

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/lendflow-finance/lendflow/config"
	"github.com/lendflow-finance/lendflow/model"
)

func newTestLendflow(t *testing.T) *Lendflow {
	t.Helper()
	mr := miniredis.RunT(t)
	config.MockConfig(&config.Configuration{
		ProjectName: "lendflow-test",
		Redis:       config.RedisConfig{Dns: mr.Addr()},
	})
	l, err := NewLendflow()
	require.NoError(t, err)
	return l
}

func newStartedApplication(t *testing.T, l *Lendflow) *ApplicationSession {
	t.Helper()
	session, err := l.CreateApplication(context.Background())
	require.NoError(t, err)
	return session
}

// selectIndividualVehicle completes step 0 as a salaried individual
// applying for a four-wheeler loan.
func selectIndividualVehicle(t *testing.T, l *Lendflow, applicationID string) {
	t.Helper()
	_, err := l.ApplySelections(context.Background(), applicationID, SelectionUpdate{
		LoanType:          string(model.LoanTypeVehicle),
		VehicleSubType:    string(model.VehicleFourWheeler),
		EmploymentType:    string(model.EmploymentIndividual),
		EmploymentSubType: string(model.SubTypeSalaried),
	})
	require.NoError(t, err)
}

// fillIndividualBasic fills every basic-details field with valid values
// and marks the OVD as verified.
func fillIndividualBasic(t *testing.T, l *Lendflow, applicationID string) {
	t.Helper()
	ctx := context.Background()
	_, err := l.UpdateFields(ctx, applicationID, map[string]string{
		"fullName":                 gofakeit.Name(),
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

	_, err = l.SendOTP(ctx, applicationID, model.OTPPurposeOVD)
	require.NoError(t, err)
	_, err = l.VerifyOTP(ctx, applicationID, model.AcceptedOTP)
	require.NoError(t, err)
}

func fillIndividualPersonal(t *testing.T, l *Lendflow, applicationID string) {
	t.Helper()
	_, err := l.UpdateFields(context.Background(), applicationID, map[string]string{
		"address1":           gofakeit.Street(),
		"city":               gofakeit.City(),
		"state":              "Karnataka",
		"pinCode":            "560001",
		"dob":                time.Now().AddDate(-30, 0, 0).Format("2006-01-02"),
		"fatherName":         gofakeit.Name(),
		"aadharNumber":       "123412341234",
		"email":              "applicant@example.com",
		"gender":             "female",
		"existingCustomer":   "no",
		"residenceType":      "owned",
		"yearsAtResidence":   "4",
		"agreePersonalTerms": "true",
	})
	require.NoError(t, err)
}

func fillIndividualIncome(t *testing.T, l *Lendflow, applicationID string) {
	t.Helper()
	_, err := l.UpdateFields(context.Background(), applicationID, map[string]string{
		"employerName":           gofakeit.Company(),
		"grossMonthlyIncome":     "95000",
		"totalMonthlyObligation": "0",
		"yearsAtEmployer":        "3.5",
		"officialEmailID":        "applicant@acme.com",
	})
	require.NoError(t, err)
}

// verifyAllDocuments verifies the full vehicle-loan individual document
// set: bank statement, ITR and dealer invoice.
func verifyAllDocuments(t *testing.T, l *Lendflow, applicationID string) {
	t.Helper()
	ctx := context.Background()

	_, _, err := l.VerifyDocument(ctx, applicationID, model.DocumentSubmission{
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

	_, _, err = l.VerifyDocument(ctx, applicationID, model.DocumentSubmission{
		DocumentType: model.DocumentITR,
		ITRMethod:    model.ITRFetch,
		Metadata: map[string]string{
			"assessmentYear": "2025-26",
			"userId":         "ABCDE1234F",
			"password":       "secret",
		},
	})
	require.NoError(t, err)

	_, _, err = l.VerifyDocument(ctx, applicationID, newCarInvoiceSubmission())
	require.NoError(t, err)
}

func newCarInvoiceSubmission() model.DocumentSubmission {
	metadata := map[string]string{
		"carModelVariant":  "Alto K10 VXI",
		"manufacturerName": "Maruti Suzuki",
		"dealerName":       gofakeit.Company(),
		"dealerAddress":    gofakeit.Street(),
		"dealerVicinity":   "Bengaluru",
		"insuranceSource":  "dealer",
		"invoiceDate":      "2026-08-15",
	}
	for _, key := range []string{
		"downPayment", "exShowroomCost", "registration", "insurance",
		"discount", "exchangeAmount", "accessories", "otherTaxes",
		"installationFee", "totalInvoiceValue",
	} {
		metadata[key] = "10000"
	}
	return model.DocumentSubmission{
		DocumentType: model.DocumentDealerInvoice,
		CarType:      model.CarNew,
		FuelType:     model.FuelPetrolDiesel,
		Attachment:   &model.FileAttachment{Name: "invoice.pdf", SizeBytes: 4096, ContentType: "application/pdf"},
		Metadata:     metadata,
	}
}
